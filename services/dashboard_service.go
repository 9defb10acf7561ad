package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DashboardStats is the aggregate block behind the admin dashboard.
type DashboardStats struct {
	Clients        int64   `json:"clients"`
	Salles         int64   `json:"salles"`
	Reservations   int64   `json:"reservations"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
}

// DashboardService aggregates counts and revenue. When a Redis client is
// present the block is cached for a short TTL; with a nil client every call
// hits the database.
type DashboardService struct {
	DB    *gorm.DB
	Cache *redis.Client

	clients      *ClientService
	salles       *SalleService
	reservations *ReservationService
}

const (
	dashboardCacheKey = "dashboard:stats"
	dashboardCacheTTL = 30 * time.Second
)

func NewDashboardService(db *gorm.DB, cache *redis.Client,
	clients *ClientService, salles *SalleService, reservations *ReservationService) *DashboardService {
	return &DashboardService{
		DB:           db,
		Cache:        cache,
		clients:      clients,
		salles:       salles,
		reservations: reservations,
	}
}

func (s *DashboardService) Stats(ctx context.Context) (DashboardStats, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, dashboardCacheKey).Bytes(); err == nil {
			var cached DashboardStats
			if json.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	var stats DashboardStats
	var err error

	if stats.Clients, err = s.clients.Count(); err != nil {
		return DashboardStats{}, err
	}
	if stats.Salles, err = s.salles.Count(); err != nil {
		return DashboardStats{}, err
	}
	if stats.Reservations, err = s.reservations.Count(); err != nil {
		return DashboardStats{}, err
	}
	if stats.MonthlyRevenue, err = s.reservations.MonthlyRevenue(); err != nil {
		return DashboardStats{}, err
	}

	if s.Cache != nil {
		if raw, mErr := json.Marshal(stats); mErr == nil {
			// best-effort; a cache failure never fails the request
			_ = s.Cache.Set(ctx, dashboardCacheKey, raw, dashboardCacheTTL).Err()
		}
	}
	return stats, nil
}

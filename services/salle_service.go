package services

import (
	"errors"
	"fmt"
	"time"

	"gym-backend/models"

	"gorm.io/gorm"
)

type SalleService struct {
	DB *gorm.DB
}

func NewSalleService(db *gorm.DB) *SalleService {
	return &SalleService{DB: db}
}

func (s *SalleService) validate(salle *models.Salle) error {
	if salle.Name == "" {
		return &ValidationError{Message: "salle name is required"}
	}
	if salle.Capacity <= 0 {
		return &ValidationError{Message: "salle capacity must be positive"}
	}
	if salle.HourlyPrice <= 0 {
		return &ValidationError{Message: "salle hourly price must be positive"}
	}
	return nil
}

func (s *SalleService) Create(salle *models.Salle) error {
	if err := s.validate(salle); err != nil {
		return err
	}
	if err := s.DB.Create(salle).Error; err != nil {
		return fmt.Errorf("failed to create salle: %w", err)
	}
	return nil
}

func (s *SalleService) GetByID(id uint) (*models.Salle, error) {
	var salle models.Salle
	if err := s.DB.First(&salle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "salle", ID: id}
		}
		return nil, fmt.Errorf("failed to retrieve salle %d: %w", id, err)
	}
	if err := s.fillOccupancy(&salle); err != nil {
		return nil, err
	}
	return &salle, nil
}

func (s *SalleService) GetAll() ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.DB.Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve salles: %w", err)
	}
	if err := s.fillOccupancyAll(salles); err != nil {
		return nil, err
	}
	return salles, nil
}

func (s *SalleService) Update(id uint, details *models.Salle) (*models.Salle, error) {
	if err := s.validate(details); err != nil {
		return nil, err
	}

	var salle models.Salle
	if err := s.DB.First(&salle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "salle", ID: id}
		}
		return nil, fmt.Errorf("failed to load salle %d: %w", id, err)
	}

	updates := map[string]interface{}{
		"name":         details.Name,
		"type":         details.Type,
		"capacity":     details.Capacity,
		"hourly_price": details.HourlyPrice,
		"description":  details.Description,
		"equipment":    details.Equipment,
		"available":    details.Available,
	}
	if err := s.DB.Model(&salle).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update salle %d: %w", id, err)
	}
	return s.GetByID(id)
}

// Delete removes a salle. A salle holding confirmed reservations cannot be
// deleted; those bookings are authoritative and must be cancelled first.
func (s *SalleService) Delete(id uint) error {
	var salle models.Salle
	if err := s.DB.First(&salle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "salle", ID: id}
		}
		return fmt.Errorf("failed to load salle %d: %w", id, err)
	}

	var confirmed int64
	err := s.DB.Model(&models.Reservation{}).
		Where("salle_id = ? AND status = ?", id, models.StatusConfirmed).
		Count(&confirmed).Error
	if err != nil {
		return fmt.Errorf("failed to count confirmed reservations for salle %d: %w", id, err)
	}
	if confirmed > 0 {
		return &ValidationError{
			Message: fmt.Sprintf("salle %d still has %d confirmed reservation(s)", id, confirmed),
		}
	}

	if err := s.DB.Delete(&salle).Error; err != nil {
		return fmt.Errorf("failed to delete salle %d: %w", id, err)
	}
	return nil
}

// FindAvailable returns the salles with no confirmed reservation overlapping
// [start, end], as the set complement of the conflict subquery. Result order
// follows storage order (primary key), so it is stable.
func (s *SalleService) FindAvailable(start, end time.Time) ([]models.Salle, error) {
	if !start.Before(end) {
		return nil, &ValidationError{Message: "start time must be before end time"}
	}

	sub := s.DB.Model(&models.Reservation{}).
		Select("salle_id").
		Where("status = ? AND start_time <= ? AND end_time >= ?", models.StatusConfirmed, end, start)

	var salles []models.Salle
	if err := s.DB.Where("id NOT IN (?)", sub).Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to search available salles: %w", err)
	}
	if err := s.fillOccupancyAll(salles); err != nil {
		return nil, err
	}
	return salles, nil
}

func (s *SalleService) GetAvailableFlagged() ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.DB.Where("available = ?", true).Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve available salles: %w", err)
	}
	return salles, nil
}

func (s *SalleService) GetByType(salleType string) ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.DB.Where("type = ?", salleType).Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve salles of type %s: %w", salleType, err)
	}
	return salles, nil
}

func (s *SalleService) GetByMinCapacity(capacity int) ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.DB.Where("capacity >= ?", capacity).Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve salles by capacity: %w", err)
	}
	return salles, nil
}

func (s *SalleService) GetByMaxPrice(maxPrice float64) ([]models.Salle, error) {
	var salles []models.Salle
	if err := s.DB.Where("hourly_price <= ?", maxPrice).Order("id").Find(&salles).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve salles by price: %w", err)
	}
	return salles, nil
}

func (s *SalleService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Salle{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count salles: %w", err)
	}
	return count, nil
}

// fillOccupancy computes the transient occupancy rate for one salle:
// confirmed reservation count / capacity * 100.
func (s *SalleService) fillOccupancy(salle *models.Salle) error {
	var confirmed int64
	err := s.DB.Model(&models.Reservation{}).
		Where("salle_id = ? AND status = ?", salle.ID, models.StatusConfirmed).
		Count(&confirmed).Error
	if err != nil {
		return fmt.Errorf("failed to compute occupancy for salle %d: %w", salle.ID, err)
	}
	if salle.Capacity > 0 {
		salle.OccupancyRate = float64(confirmed) / float64(salle.Capacity) * 100
	}
	return nil
}

// fillOccupancyAll does the same with one grouped query instead of a query
// per salle.
func (s *SalleService) fillOccupancyAll(salles []models.Salle) error {
	if len(salles) == 0 {
		return nil
	}

	type salleCount struct {
		SalleID uint
		Total   int64
	}
	var counts []salleCount
	err := s.DB.Model(&models.Reservation{}).
		Select("salle_id, COUNT(*) AS total").
		Where("status = ?", models.StatusConfirmed).
		Group("salle_id").
		Scan(&counts).Error
	if err != nil {
		return fmt.Errorf("failed to compute occupancy rates: %w", err)
	}

	byID := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byID[c.SalleID] = c.Total
	}
	for i := range salles {
		if salles[i].Capacity > 0 {
			salles[i].OccupancyRate = float64(byID[salles[i].ID]) / float64(salles[i].Capacity) * 100
		}
	}
	return nil
}

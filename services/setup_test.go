package services

import (
	"path/filepath"
	"testing"
	"time"

	"gym-backend/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testClock is the fixed "now" used by reservation tests so the
// no-booking-in-the-past rule is deterministic.
var testClock = time.Date(2025, time.June, 15, 8, 0, 0, 0, time.UTC)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gym_test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// sqlite allows one writer; a single pooled connection keeps concurrent
	// test traffic from tripping SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access raw database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Salle{},
		&models.Client{},
		&models.Reservation{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func newReservationService(t *testing.T, db *gorm.DB) *ReservationService {
	t.Helper()
	s := NewReservationService(db)
	s.Now = func() time.Time { return testClock }
	return s
}

func mustCreateSalle(t *testing.T, db *gorm.DB, name string, capacity int, hourlyPrice float64) *models.Salle {
	t.Helper()
	salle := &models.Salle{
		Name:        name,
		Type:        "Musculation",
		Capacity:    capacity,
		HourlyPrice: hourlyPrice,
		Available:   true,
	}
	if err := db.Create(salle).Error; err != nil {
		t.Fatalf("failed to create salle %q: %v", name, err)
	}
	return salle
}

func mustCreateClient(t *testing.T, db *gorm.DB, email string) *models.Client {
	t.Helper()
	client := &models.Client{
		FirstName:    "Jean",
		LastName:     "Dupont",
		Email:        email,
		Phone:        "0123456789",
		Subscription: models.SubscriptionOccasional,
		RegisteredAt: testClock,
	}
	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create client %q: %v", email, err)
	}
	return client
}

// at builds an instant the given number of days after the test clock, at
// hour:minute.
func at(days, hour, minute int) time.Time {
	d := testClock.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
}

func mustReserve(t *testing.T, db *gorm.DB, clientID, salleID uint, start, end time.Time, status string, price float64) *models.Reservation {
	t.Helper()
	r := &models.Reservation{
		ClientID:   clientID,
		SalleID:    salleID,
		StartTime:  start,
		EndTime:    end,
		Status:     status,
		TotalPrice: &price,
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("failed to insert reservation: %v", err)
	}
	return r
}

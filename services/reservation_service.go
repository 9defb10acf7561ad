package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"gym-backend/models"

	"gorm.io/gorm"
)

// ReservationService wraps *gorm.DB and holds every piece of booking
// orchestration: validation -> conflict check -> pricing -> persistence.
type ReservationService struct {
	DB *gorm.DB

	// Now is the clock used for the no-booking-in-the-past rule and the
	// monthly revenue window. Overridable in tests.
	Now func() time.Time

	salleLocks sync.Map // salle id -> *sync.Mutex
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db, Now: time.Now}
}

// ReservationInput carries the writable fields of a reservation for create
// and full-update operations.
type ReservationInput struct {
	ClientID  uint      `json:"clientId" binding:"required"`
	SalleID   uint      `json:"salleId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
	Status    string    `json:"status"`
	Remarks   string    `json:"remarks"`
}

// lockSalle serializes check-then-write sequences per salle so two
// concurrent creates cannot both observe "no conflict" and both commit
// overlapping confirmed reservations.
func (s *ReservationService) lockSalle(salleID uint) func() {
	v, _ := s.salleLocks.LoadOrStore(salleID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *ReservationService) validateInterval(start, end time.Time) error {
	if !start.Before(end) {
		return &ValidationError{Message: "start time must be before end time"}
	}
	if start.Before(s.Now()) {
		return &ValidationError{Message: "reservation cannot start in the past"}
	}
	return nil
}

// findConflicting loads the salle's reservations and filters them through
// ConflictingReservations, so the status and boundary rules live in one
// place. excludeID (0 = none) skips the reservation being updated.
func findConflicting(tx *gorm.DB, salleID uint, start, end time.Time, excludeID uint) ([]models.Reservation, error) {
	var existing []models.Reservation
	if err := tx.Where("salle_id = ?", salleID).Find(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to query reservations for salle %d: %w", salleID, err)
	}
	return ConflictingReservations(existing, start, end, excludeID), nil
}

// Create validates the draft, refuses overlapping confirmed reservations on
// the salle, computes the price and persists with status pending.
func (s *ReservationService) Create(input ReservationInput) (*models.Reservation, error) {
	if err := s.validateInterval(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}

	unlock := s.lockSalle(input.SalleID)
	defer unlock()

	var created models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var salle models.Salle
		if err := tx.First(&salle, input.SalleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "salle", ID: input.SalleID}
			}
			return fmt.Errorf("db error checking salle %d: %w", input.SalleID, err)
		}

		var client models.Client
		if err := tx.First(&client, input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "client", ID: input.ClientID}
			}
			return fmt.Errorf("db error checking client %d: %w", input.ClientID, err)
		}

		conflicts, err := findConflicting(tx, input.SalleID, input.StartTime, input.EndTime, 0)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{SalleID: input.SalleID, Start: conflicts[0].StartTime, End: conflicts[0].EndTime}
		}

		price := CalculatePrice(salle.HourlyPrice, input.StartTime, input.EndTime)
		created = models.Reservation{
			ClientID:   input.ClientID,
			SalleID:    input.SalleID,
			StartTime:  input.StartTime,
			EndTime:    input.EndTime,
			Status:     models.StatusPending,
			TotalPrice: &price,
			Remarks:    input.Remarks,
		}
		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(created.ID)
}

// Update overwrites client, salle, interval, status and remarks of an
// existing reservation. The conflict check excludes the reservation itself;
// the price is only recomputed when the salle or the interval changed, never
// on a pure status change.
func (s *ReservationService) Update(id uint, input ReservationInput) (*models.Reservation, error) {
	if err := s.validateInterval(input.StartTime, input.EndTime); err != nil {
		return nil, err
	}
	if input.Status != "" && !models.ValidStatus(input.Status) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown status %q", input.Status)}
	}

	unlock := s.lockSalle(input.SalleID)
	defer unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Reservation
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "reservation", ID: id}
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		var salle models.Salle
		if err := tx.First(&salle, input.SalleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "salle", ID: input.SalleID}
			}
			return fmt.Errorf("db error checking salle %d: %w", input.SalleID, err)
		}
		if err := tx.First(&models.Client{}, input.ClientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "client", ID: input.ClientID}
			}
			return fmt.Errorf("db error checking client %d: %w", input.ClientID, err)
		}

		conflicts, err := findConflicting(tx, input.SalleID, input.StartTime, input.EndTime, id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return &ConflictError{SalleID: input.SalleID, Start: conflicts[0].StartTime, End: conflicts[0].EndTime}
		}

		status := input.Status
		if status == "" {
			status = existing.Status
		}

		price := existing.TotalPrice
		intervalChanged := existing.SalleID != input.SalleID ||
			!existing.StartTime.Equal(input.StartTime) ||
			!existing.EndTime.Equal(input.EndTime)
		if intervalChanged || price == nil {
			p := CalculatePrice(salle.HourlyPrice, input.StartTime, input.EndTime)
			price = &p
		}

		updates := map[string]interface{}{
			"client_id":   input.ClientID,
			"salle_id":    input.SalleID,
			"start_time":  input.StartTime,
			"end_time":    input.EndTime,
			"status":      status,
			"total_price": price,
			"remarks":     input.Remarks,
		}
		if err := tx.Model(&existing).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update reservation %d: %w", id, err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	return s.GetByID(id)
}

// setStatus applies a lifecycle transition. Confirm and cancel never re-run
// conflict detection and never recompute the price: only the interval and
// the salle can invalidate either, and neither changes here. The
// load-check-write runs under the salle lock so a concurrent cancel cannot
// commit between another caller's read and write; the status write itself
// only lands when the row still holds the status the check saw.
func (s *ReservationService) setStatus(id uint, target string) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "reservation", ID: id}
		}
		return nil, fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	unlock := s.lockSalle(reservation.SalleID)
	defer unlock()

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "reservation", ID: id}
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}

		if !CanTransition(reservation.Status, target) {
			return &ValidationError{
				Message: fmt.Sprintf("cannot change reservation status from %s to %s", reservation.Status, target),
			}
		}

		res := tx.Model(&models.Reservation{}).
			Where("id = ? AND status = ?", id, reservation.Status).
			Update("status", target)
		if res.Error != nil {
			return fmt.Errorf("failed to set reservation %d status: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return &ValidationError{
				Message: fmt.Sprintf("reservation %d changed concurrently, cannot move to %s", id, target),
			}
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return s.GetByID(id)
}

func (s *ReservationService) Confirm(id uint) (*models.Reservation, error) {
	return s.setStatus(id, models.StatusConfirmed)
}

func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	return s.setStatus(id, models.StatusCancelled)
}

// Complete is the administrative mark closing out a reservation.
func (s *ReservationService) Complete(id uint) (*models.Reservation, error) {
	return s.setStatus(id, models.StatusCompleted)
}

func (s *ReservationService) Delete(id uint) error {
	var reservation models.Reservation
	if err := s.DB.First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "reservation", ID: id}
		}
		return fmt.Errorf("failed to load reservation %d: %w", id, err)
	}

	unlock := s.lockSalle(reservation.SalleID)
	defer unlock()

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reservation, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "reservation", ID: id}
			}
			return fmt.Errorf("failed to load reservation %d: %w", id, err)
		}
		if err := tx.Delete(&reservation).Error; err != nil {
			return fmt.Errorf("failed to delete reservation %d: %w", id, err)
		}
		return nil
	})
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.DB.Preload("Client").Preload("Salle").First(&reservation, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "reservation", ID: id}
		}
		return nil, fmt.Errorf("failed to retrieve reservation %d: %w", id, err)
	}
	return &reservation, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Client").Preload("Salle").Order("created_at DESC").Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByClient(clientID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Salle").
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for client %d: %w", clientID, err)
	}
	return list, nil
}

func (s *ReservationService) GetBySalle(salleID uint) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Client").
		Where("salle_id = ?", salleID).
		Order("start_time DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations for salle %d: %w", salleID, err)
	}
	return list, nil
}

func (s *ReservationService) GetByStatus(status string) ([]models.Reservation, error) {
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("unknown status %q", status)}
	}
	var list []models.Reservation
	err := s.DB.Preload("Client").Preload("Salle").
		Where("status = ?", status).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations with status %s: %w", status, err)
	}
	return list, nil
}

// GetBetween returns reservations fully contained in [debut, fin]:
// start_time >= debut AND end_time <= fin.
func (s *ReservationService) GetBetween(debut, fin time.Time) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Client").Preload("Salle").
		Where("start_time >= ? AND end_time <= ?", debut, fin).
		Order("start_time").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations between dates: %w", err)
	}
	return list, nil
}

func (s *ReservationService) Count() (int64, error) {
	var count int64
	if err := s.DB.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}
	return count, nil
}

// MonthlyRevenue sums the total price of confirmed reservations whose start
// falls in the current calendar month.
func (s *ReservationService) MonthlyRevenue() (float64, error) {
	now := s.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	var total float64
	err := s.DB.Model(&models.Reservation{}).
		Where("status = ? AND start_time >= ? AND start_time < ?", models.StatusConfirmed, monthStart, nextMonth).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute monthly revenue: %w", err)
	}
	return total, nil
}

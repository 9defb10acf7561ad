package services

import (
	"errors"
	"testing"

	"gym-backend/models"
)

func TestSalleValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewSalleService(db)

	var validationErr *ValidationError

	cases := []models.Salle{
		{Name: "", Capacity: 10, HourlyPrice: 20000},
		{Name: "Salle Cardio", Capacity: 0, HourlyPrice: 20000},
		{Name: "Salle Cardio", Capacity: 10, HourlyPrice: 0},
		{Name: "Salle Cardio", Capacity: -1, HourlyPrice: 20000},
	}
	for i := range cases {
		if err := s.Create(&cases[i]); !errors.As(err, &validationErr) {
			t.Errorf("case %d: got %v, want ValidationError", i, err)
		}
	}

	ok := models.Salle{Name: "Salle Cardio", Capacity: 25, HourlyPrice: 22000, Available: true}
	if err := s.Create(&ok); err != nil {
		t.Fatalf("valid salle rejected: %v", err)
	}
}

func TestSalleOccupancyRate(t *testing.T) {
	db := newTestDB(t)
	s := NewSalleService(db)
	salle := mustCreateSalle(t, db, "Salle Musculation 1", 20, 25000)
	client := mustCreateClient(t, db, "jean.dupont@email.com")

	mustReserve(t, db, client.ID, salle.ID, at(1, 8, 0), at(1, 9, 0), models.StatusConfirmed, 25000)
	mustReserve(t, db, client.ID, salle.ID, at(2, 8, 0), at(2, 9, 0), models.StatusConfirmed, 25000)
	mustReserve(t, db, client.ID, salle.ID, at(3, 8, 0), at(3, 9, 0), models.StatusPending, 25000)

	got, err := s.GetByID(salle.ID)
	if err != nil {
		t.Fatalf("GetByID() failed: %v", err)
	}
	// 2 confirmed / capacity 20 * 100
	if got.OccupancyRate != 10 {
		t.Errorf("occupancy = %v, want 10", got.OccupancyRate)
	}

	all, err := s.GetAll()
	if err != nil {
		t.Fatalf("GetAll() failed: %v", err)
	}
	if len(all) != 1 || all[0].OccupancyRate != 10 {
		t.Errorf("GetAll occupancy = %v, want 10", all[0].OccupancyRate)
	}

	// Never persisted.
	var raw models.Salle
	if err := db.First(&raw, salle.ID).Error; err != nil {
		t.Fatalf("raw read failed: %v", err)
	}
	if raw.OccupancyRate != 0 {
		t.Errorf("occupancy leaked into storage: %v", raw.OccupancyRate)
	}
}

// Availability search is the complement of conflict detection: a salle
// appears iff none of its confirmed reservations overlaps the window.
func TestFindAvailable(t *testing.T) {
	db := newTestDB(t)
	s := NewSalleService(db)
	salle1 := mustCreateSalle(t, db, "Salle Musculation 1", 20, 25000)
	salle2 := mustCreateSalle(t, db, "Studio Yoga", 15, 20000)
	salle3 := mustCreateSalle(t, db, "Salle Cardio", 25, 22000)
	client := mustCreateClient(t, db, "jean.dupont@email.com")

	mustReserve(t, db, client.ID, salle1.ID, at(1, 10, 0), at(1, 12, 0), models.StatusConfirmed, 50000)
	mustReserve(t, db, client.ID, salle2.ID, at(1, 10, 0), at(1, 12, 0), models.StatusPending, 40000)

	// Window overlapping the confirmed booking: salle1 is out, the pending
	// booking does not block salle2.
	free, err := s.FindAvailable(at(1, 11, 0), at(1, 13, 0))
	if err != nil {
		t.Fatalf("FindAvailable() failed: %v", err)
	}
	if len(free) != 2 || free[0].ID != salle2.ID || free[1].ID != salle3.ID {
		t.Errorf("FindAvailable = %d salles, want salle2 then salle3 in storage order", len(free))
	}

	// Touching window conflicts under the inclusive boundary rule.
	free, err = s.FindAvailable(at(1, 12, 0), at(1, 13, 0))
	if err != nil {
		t.Fatalf("FindAvailable() failed: %v", err)
	}
	for _, salle := range free {
		if salle.ID == salle1.ID {
			t.Error("boundary-touching window must exclude salle1")
		}
	}

	// Disjoint window frees everything.
	free, err = s.FindAvailable(at(1, 13, 0), at(1, 14, 0))
	if err != nil {
		t.Fatalf("FindAvailable() failed: %v", err)
	}
	if len(free) != 3 {
		t.Errorf("disjoint window: %d salles, want 3", len(free))
	}

	var validationErr *ValidationError
	if _, err := s.FindAvailable(at(1, 13, 0), at(1, 13, 0)); !errors.As(err, &validationErr) {
		t.Errorf("empty window: got %v, want ValidationError", err)
	}
}

// Deleting a salle is refused while it holds confirmed reservations;
// pending or cancelled ones do not block.
func TestDeleteSalleGuarded(t *testing.T) {
	db := newTestDB(t)
	s := NewSalleService(db)
	salle := mustCreateSalle(t, db, "Dojo Arts Martiaux", 30, 30000)
	client := mustCreateClient(t, db, "jean.dupont@email.com")

	confirmed := mustReserve(t, db, client.ID, salle.ID, at(1, 10, 0), at(1, 11, 0), models.StatusConfirmed, 30000)
	mustReserve(t, db, client.ID, salle.ID, at(2, 10, 0), at(2, 11, 0), models.StatusPending, 30000)

	var validationErr *ValidationError
	if err := s.Delete(salle.ID); !errors.As(err, &validationErr) {
		t.Fatalf("delete with confirmed reservation: got %v, want ValidationError", err)
	}

	if err := db.Model(confirmed).Update("status", models.StatusCancelled).Error; err != nil {
		t.Fatalf("failed to cancel reservation: %v", err)
	}
	if err := s.Delete(salle.ID); err != nil {
		t.Fatalf("delete without confirmed reservations failed: %v", err)
	}

	var notFoundErr *NotFoundError
	if err := s.Delete(salle.ID); !errors.As(err, &notFoundErr) {
		t.Errorf("double delete: got %v, want NotFoundError", err)
	}
}

func TestSalleFiltersAndUpdate(t *testing.T) {
	db := newTestDB(t)
	s := NewSalleService(db)
	mustCreateSalle(t, db, "Salle Musculation 1", 20, 25000)
	yoga := mustCreateSalle(t, db, "Studio Yoga", 15, 20000)
	if err := db.Model(&models.Salle{}).Where("id = ?", yoga.ID).Update("type", "Yoga").Error; err != nil {
		t.Fatalf("failed to retype salle: %v", err)
	}

	byType, err := s.GetByType("Yoga")
	if err != nil {
		t.Fatalf("GetByType() failed: %v", err)
	}
	if len(byType) != 1 || byType[0].ID != yoga.ID {
		t.Errorf("GetByType(Yoga) wrong result")
	}

	byCapacity, err := s.GetByMinCapacity(18)
	if err != nil {
		t.Fatalf("GetByMinCapacity() failed: %v", err)
	}
	if len(byCapacity) != 1 {
		t.Errorf("GetByMinCapacity(18) = %d, want 1", len(byCapacity))
	}

	byPrice, err := s.GetByMaxPrice(21000)
	if err != nil {
		t.Fatalf("GetByMaxPrice() failed: %v", err)
	}
	if len(byPrice) != 1 || byPrice[0].ID != yoga.ID {
		t.Errorf("GetByMaxPrice(21000) wrong result")
	}

	updated, err := s.Update(yoga.ID, &models.Salle{
		Name: "Studio Yoga & Pilates", Type: "Yoga", Capacity: 12, HourlyPrice: 21000, Available: false,
	})
	if err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if updated.Name != "Studio Yoga & Pilates" || updated.Capacity != 12 || updated.Available {
		t.Errorf("Update() did not overwrite fields: %+v", updated)
	}
}

package services

import (
	"errors"
	"testing"

	"gym-backend/models"
)

func TestClientCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	s := NewClientService(db)

	client := &models.Client{
		FirstName: "Sophie",
		LastName:  "Moreau",
		Email:     "sophie.moreau@email.com",
		Phone:     "0456789012",
	}
	if err := s.Create(client); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	if client.Subscription != models.SubscriptionOccasional {
		t.Errorf("subscription = %q, want default occasional", client.Subscription)
	}
	if client.RegisteredAt.IsZero() {
		t.Error("registration date must default to the creation day")
	}
}

func TestClientDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	s := NewClientService(db)

	first := mustCreateClient(t, db, "jean.dupont@email.com")
	other := mustCreateClient(t, db, "marie.martin@email.com")

	var duplicateErr *DuplicateError

	err := s.Create(&models.Client{
		FirstName: "Faux", LastName: "Jean", Email: "jean.dupont@email.com",
	})
	if !errors.As(err, &duplicateErr) {
		t.Errorf("create with taken email: got %v, want DuplicateError", err)
	}
	if duplicateErr != nil && duplicateErr.Email != "jean.dupont@email.com" {
		t.Errorf("duplicate email detail = %q", duplicateErr.Email)
	}

	// Update onto another client's email is refused.
	details := *other
	details.Email = first.Email
	if _, err := s.Update(other.ID, &details); !errors.As(err, &duplicateErr) {
		t.Errorf("update onto taken email: got %v, want DuplicateError", err)
	}

	// Keeping one's own email is fine.
	details = *other
	details.Phone = "0999999999"
	updated, err := s.Update(other.ID, &details)
	if err != nil {
		t.Fatalf("update keeping own email failed: %v", err)
	}
	if updated.Phone != "0999999999" {
		t.Errorf("phone = %q, not updated", updated.Phone)
	}
}

func TestClientValidation(t *testing.T) {
	db := newTestDB(t)
	s := NewClientService(db)

	var validationErr *ValidationError

	cases := []models.Client{
		{FirstName: "", LastName: "Dupont", Email: "a@email.com"},
		{FirstName: "Jean", LastName: "", Email: "a@email.com"},
		{FirstName: "Jean", LastName: "Dupont", Email: ""},
		{FirstName: "Jean", LastName: "Dupont", Email: "a@email.com", Subscription: "weekly"},
	}
	for i := range cases {
		if err := s.Create(&cases[i]); !errors.As(err, &validationErr) {
			t.Errorf("case %d: got %v, want ValidationError", i, err)
		}
	}
}

// Deleting a client removes its reservations: the client owns them.
func TestClientDeleteCascades(t *testing.T) {
	db := newTestDB(t)
	s := NewClientService(db)
	salle := mustCreateSalle(t, db, "Salle Musculation 1", 20, 25000)
	victim := mustCreateClient(t, db, "jean.dupont@email.com")
	keeper := mustCreateClient(t, db, "marie.martin@email.com")

	mustReserve(t, db, victim.ID, salle.ID, at(1, 10, 0), at(1, 11, 0), models.StatusConfirmed, 25000)
	mustReserve(t, db, victim.ID, salle.ID, at(2, 10, 0), at(2, 11, 0), models.StatusPending, 25000)
	kept := mustReserve(t, db, keeper.ID, salle.ID, at(3, 10, 0), at(3, 11, 0), models.StatusConfirmed, 25000)

	if err := s.Delete(victim.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	var count int64
	if err := db.Model(&models.Reservation{}).Where("client_id = ?", victim.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Errorf("deleted client still has %d reservations", count)
	}

	if err := db.First(&models.Reservation{}, kept.ID).Error; err != nil {
		t.Errorf("other client's reservation was removed: %v", err)
	}

	var notFoundErr *NotFoundError
	if err := s.Delete(victim.ID); !errors.As(err, &notFoundErr) {
		t.Errorf("double delete: got %v, want NotFoundError", err)
	}
}

func TestClientSearchAndFilters(t *testing.T) {
	db := newTestDB(t)
	s := NewClientService(db)

	jean := mustCreateClient(t, db, "jean.dupont@email.com")
	marie := &models.Client{
		FirstName: "Marie", LastName: "Martin", Email: "marie.martin@email.com",
		Subscription: models.SubscriptionMonthly, RegisteredAt: testClock,
	}
	if err := s.Create(marie); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	found, err := s.Search("mar")
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != marie.ID {
		t.Errorf("Search(mar) = %d results, want Marie Martin only", len(found))
	}

	found, err = s.Search("DUPONT")
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(found) != 1 || found[0].ID != jean.ID {
		t.Errorf("search must be case-insensitive")
	}

	monthly, err := s.GetBySubscription(models.SubscriptionMonthly)
	if err != nil {
		t.Fatalf("GetBySubscription() failed: %v", err)
	}
	if len(monthly) != 1 || monthly[0].ID != marie.ID {
		t.Errorf("GetBySubscription(monthly) wrong result")
	}

	var validationErr *ValidationError
	if _, err := s.GetBySubscription("weekly"); !errors.As(err, &validationErr) {
		t.Errorf("unknown subscription: got %v, want ValidationError", err)
	}

	byEmail, err := s.GetByEmail("jean.dupont@email.com")
	if err != nil {
		t.Fatalf("GetByEmail() failed: %v", err)
	}
	if byEmail.ID != jean.ID {
		t.Errorf("GetByEmail wrong client")
	}
}

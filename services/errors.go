package services

import (
	"fmt"
	"time"
)

// ValidationError rejects a write before any persistence call (bad interval,
// start in the past, unknown status...).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports an overlapping confirmed reservation on a salle.
// It carries enough detail for the caller to explain the refusal.
type ConflictError struct {
	SalleID uint
	Start   time.Time
	End     time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("salle %d already has a confirmed reservation overlapping %s - %s",
		e.SalleID, e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}

// NotFoundError reports a missing reservation, client or salle.
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// DuplicateError reports a client email already in use.
type DuplicateError struct {
	Email string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("a client with email %s already exists", e.Email)
}

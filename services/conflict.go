package services

import (
	"time"

	"gym-backend/models"
)

// Overlaps reports whether two intervals conflict. The comparison is
// inclusive at both boundaries: reservations touching at the exact same
// instant (one ends at 12:00, the next starts at 12:00) DO conflict. This
// mirrors the production booking query and is kept deliberately; switching
// to half-open semantics needs product sign-off.
func Overlaps(candidateStart, candidateEnd, existingStart, existingEnd time.Time) bool {
	return !candidateStart.After(existingEnd) && !candidateEnd.Before(existingStart)
}

// ConflictingReservations returns the confirmed reservations in the given
// set whose interval overlaps the candidate. Pending, cancelled and
// completed reservations never block a booking. excludeID lets an update
// ignore the reservation being rewritten; pass 0 to exclude nothing.
func ConflictingReservations(reservations []models.Reservation, candidateStart, candidateEnd time.Time, excludeID uint) []models.Reservation {
	var conflicts []models.Reservation
	for _, r := range reservations {
		if r.Status != models.StatusConfirmed {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if Overlaps(candidateStart, candidateEnd, r.StartTime, r.EndTime) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}

// HasConflict reports whether the candidate interval overlaps any confirmed
// reservation in the given set.
func HasConflict(reservations []models.Reservation, candidateStart, candidateEnd time.Time, excludeID uint) bool {
	return len(ConflictingReservations(reservations, candidateStart, candidateEnd, excludeID)) > 0
}

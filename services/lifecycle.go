package services

import "gym-backend/models"

// allowedTransitions is the single source of truth for reservation status
// changes. Cancelled and completed are terminal; completion is an
// administrative mark allowed from any live state.
var allowedTransitions = map[string][]string{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted},
	models.StatusConfirmed: {models.StatusCancelled, models.StatusCompleted},
}

// CanTransition reports whether a reservation may move from one status to
// another via confirm/cancel/complete.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

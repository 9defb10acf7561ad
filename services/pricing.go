package services

import "time"

// CalculatePrice returns the total price for booking a salle at hourlyPrice
// over [start, end). Billing is by whole elapsed hours: partial hours are
// truncated, so a 90-minute booking bills exactly 1 hour.
func CalculatePrice(hourlyPrice float64, start, end time.Time) float64 {
	hours := int64(end.Sub(start) / time.Hour)
	if hours < 0 {
		hours = 0
	}
	return float64(hours) * hourlyPrice
}

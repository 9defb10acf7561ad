package models

import (
	"time"

	"gorm.io/gorm"
)

// Subscription tiers a client can hold.
const (
	SubscriptionOccasional = "occasional"
	SubscriptionMonthly    = "monthly"
	SubscriptionQuarterly  = "quarterly"
	SubscriptionAnnual     = "annual"
)

type Client struct {
	gorm.Model

	FirstName    string    `json:"firstName" gorm:"column:first_name;type:varchar(100);not null"`
	LastName     string    `json:"lastName" gorm:"column:last_name;type:varchar(100);not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(191);not null"`
	Phone        string    `json:"phone" gorm:"type:varchar(20)"`
	Address      string    `json:"address" gorm:"type:varchar(255)"`
	RegisteredAt time.Time `json:"registeredAt" gorm:"column:registered_at"`
	Subscription string    `json:"subscription" gorm:"type:varchar(20);default:occasional"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:ClientID"`
}

func ValidSubscription(s string) bool {
	switch s {
	case SubscriptionOccasional, SubscriptionMonthly, SubscriptionQuarterly, SubscriptionAnnual:
		return true
	}
	return false
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation statuses. Cancelled and completed are terminal.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ClientID uint `gorm:"index;column:client_id;not null" json:"clientId"`
	SalleID  uint `gorm:"index;column:salle_id;not null" json:"salleId"`

	StartTime time.Time `gorm:"column:start_time;not null" json:"startTime"`
	EndTime   time.Time `gorm:"column:end_time;not null" json:"endTime"`

	Status string `gorm:"type:varchar(20);default:pending" json:"status"`

	// Derived from the interval and the salle's hourly price; nil until
	// computed.
	TotalPrice *float64 `gorm:"column:total_price" json:"totalPrice,omitempty"`

	Remarks string `gorm:"type:text" json:"remarks,omitempty"`

	Client Client `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
	Salle  Salle  `gorm:"foreignKey:SalleID;references:ID" json:"salle,omitempty"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Salle struct {
	gorm.Model

	Name        string  `json:"name" gorm:"column:name;type:varchar(100);not null"`
	Type        string  `json:"type" gorm:"type:varchar(50)"`
	Capacity    int     `json:"capacity" gorm:"not null"`
	HourlyPrice float64 `json:"hourlyPrice" gorm:"column:hourly_price;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Available   bool    `json:"available" gorm:"default:true"`

	Equipment datatypes.JSON `json:"equipment,omitempty" gorm:"column:equipment"`

	// Filled by the read path (confirmed reservations / capacity * 100),
	// never persisted.
	OccupancyRate float64 `json:"occupancyRate" gorm:"-"`

	Reservations []Reservation `json:"-" gorm:"foreignKey:SalleID"`
}

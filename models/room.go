package models

import (
	"gorm.io/gorm"
)

type Room struct {
	gorm.Model

	RoomNumber int     `json:"roomNumber" gorm:"column:room_number;uniqueIndex;not null"`
	Type       string  `json:"type" gorm:"type:varchar(20);not null"`
	Status     string  `json:"status" gorm:"type:varchar(20);not null"`
	Price      float64 `json:"price"`

	// GuestName is set while the room holds a checked-in reservation.
	GuestName string `json:"guestName,omitempty" gorm:"column:guest_name;type:varchar(255)"`
}

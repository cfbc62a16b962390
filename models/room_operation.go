package models

import "time"

const (
	OperationCheckIn  = "checkin"
	OperationCheckOut = "checkout"
)

// RoomOperation is one front-desk transition in a room's history.
type RoomOperation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomNumber int       `gorm:"column:room_number;index;not null" json:"roomNumber"`
	GuestName  string    `gorm:"column:guest_name;size:255" json:"guestName"`
	Operation  string    `gorm:"column:operation;size:16;not null" json:"operation"`
	OperatedAt time.Time `gorm:"column:operated_at;index" json:"operatedAt"`
}

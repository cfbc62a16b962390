package models

import (
	"time"

	"gorm.io/datatypes"
)

type Employee struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	EmpID    int     `gorm:"column:emp_id;uniqueIndex;not null" json:"empId"`
	Name     string  `gorm:"size:255" json:"name"`
	Position string  `gorm:"size:100" json:"position"`
	Salary   float64 `json:"salary"`

	// Tasks keeps insertion order and duplicates.
	Tasks datatypes.JSONSlice[string] `gorm:"column:tasks" json:"tasks"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// File: /models/testdrive.go
package models

import (
	"time"
)

type TestDrive struct {
	ID        string          `json:"id" gorm:"primaryKey;size:191"`
	VehicleID string          `json:"vehicle_id" gorm:"not null;size:191;index"`
	UserID    string          `json:"user_id" gorm:"not null;size:191;index"` // no guest bookings
	Date      time.Time       `json:"preferred_date" gorm:"not null;type:date"`
	Time      string          `json:"preferred_time" gorm:"not null;size:5"` // "HH:mm", validated at the boundary
	Notes     *string         `json:"notes" gorm:"size:1000"`
	Status    TestDriveStatus `json:"status" gorm:"not null;default:'Pending';size:20"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`

	Vehicle Vehicle `json:"vehicle" gorm:"foreignKey:VehicleID"`
	User    User    `json:"user" gorm:"foreignKey:UserID"`
}

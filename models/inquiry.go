// File: /models/inquiry.go
package models

import (
	"time"
)

type Inquiry struct {
	ID        string        `json:"id" gorm:"primaryKey;size:191"`
	VehicleID string        `json:"vehicle_id" gorm:"not null;size:191;index"`
	UserID    *string       `json:"user_id" gorm:"size:191;index"` // nil for guest inquiries
	Name      string        `json:"name" gorm:"not null;size:255"`
	Email     string        `json:"email" gorm:"not null;size:255"`
	Message   string        `json:"message" gorm:"not null;type:text"`
	Status    InquiryStatus `json:"status" gorm:"not null;default:'Pending';size:20"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	Vehicle Vehicle `json:"vehicle" gorm:"foreignKey:VehicleID"`
	User    *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

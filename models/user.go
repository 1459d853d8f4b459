// File: /models/user.go
package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	FullName     string    `json:"full_name" gorm:"not null;size:255"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string    `json:"-" gorm:"not null;size:255"`
	Role         Role      `json:"role" gorm:"not null;default:'User';size:20"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Favorites  []Favorite  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TestDrives []TestDrive `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Inquiries  []Inquiry   `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

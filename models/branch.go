// File: /models/branch.go
package models

import (
	"time"
)

type Branch struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	City      string    `json:"city" gorm:"not null;size:100"`
	Address   string    `json:"address" gorm:"not null;size:255"`
	Phone     *string   `json:"phone" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Deleting a branch leaves its vehicles without a showroom, it
	// does not delist them.
	Vehicles []Vehicle `json:"-" gorm:"foreignKey:BranchID;constraint:OnDelete:SET NULL"`
}

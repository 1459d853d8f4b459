// File: /models/favorite.go
package models

import (
	"time"
)

// Favorite is a join record between a user and a vehicle. The composite
// primary key is what rejects duplicate pairs; there is no separate
// existence check anywhere.
type Favorite struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;size:191"`
	VehicleID string    `json:"vehicle_id" gorm:"primaryKey;size:191"`
	CreatedAt time.Time `json:"created_at"`

	User    User    `json:"user" gorm:"foreignKey:UserID"`
	Vehicle Vehicle `json:"vehicle" gorm:"foreignKey:VehicleID"`
}

// File: /models/vehicle.go
package models

import (
	"time"
)

type Vehicle struct {
	ID               string      `json:"id" gorm:"primaryKey;size:191"`
	BranchID         *string     `json:"branch_id" gorm:"size:191;index"`
	Brand            string      `json:"brand" gorm:"not null;size:100;index"`
	Model            string      `json:"model" gorm:"not null;size:100;index"`
	Year             int         `json:"year" gorm:"not null"`
	Mileage          int         `json:"mileage" gorm:"not null"`
	Price            float64     `json:"price" gorm:"not null;type:decimal(12,2)"`
	FuelType         string      `json:"fuel_type" gorm:"not null;size:50"`
	Transmission     *string     `json:"transmission" gorm:"size:50"`
	Color            *string     `json:"color" gorm:"size:50"`
	ShortDescription *string     `json:"short_description" gorm:"size:500"`
	Description      *string     `json:"description" gorm:"type:text"`
	ImageURLs        StringSlice `json:"image_urls" gorm:"type:json"`
	CreatedAt        time.Time   `json:"created_at" gorm:"index"`
	UpdatedAt        time.Time   `json:"updated_at"`

	Branch *Branch `json:"branch,omitempty" gorm:"foreignKey:BranchID"`

	// Fact records about a listing go away with the listing.
	Inquiries  []Inquiry   `json:"-" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	TestDrives []TestDrive `json:"-" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
	Favorites  []Favorite  `json:"-" gorm:"foreignKey:VehicleID;constraint:OnDelete:CASCADE"`
}

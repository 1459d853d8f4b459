// File: /database/database.go
package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autohub-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
		// Unique-key violations must come back as gorm.ErrDuplicatedKey so
		// the repositories can report Conflict from the insert itself.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Vehicle{},
		&models.Favorite{},
		&models.Inquiry{},
		&models.TestDrive{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addCustomIndexes(db); err != nil {
		return fmt.Errorf("failed to add custom indexes: %w", err)
	}

	return nil
}

func addCustomIndexes(db *gorm.DB) error {
	// Search is always ordered newest first with id as tie-break.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_vehicles_created_id ON vehicles(created_at DESC, id DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for vehicles: %v\n", err)
	}

	// Admin favorites view lists newest pairs first.
	if err := db.Exec("CREATE INDEX IF NOT EXISTS idx_favorites_created ON favorites(created_at DESC)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for favorites: %v\n", err)
	}

	return nil
}

// SeedData populates the database with a small demo catalogue for
// development. Safe to call repeatedly; it is a no-op once users exist.
func SeedData(db *gorm.DB) error {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)

	if userCount > 0 {
		fmt.Println("Database already has data, skipping seed")
		return nil
	}

	admin := models.User{
		ID:       uuid.New().String(),
		FullName: "AutoHub Admin",
		Email:    "admin@autohub.example",
		// bcrypt hash, dev seed only
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		fmt.Printf("Warning: Could not create admin user: %v\n", err)
	}

	phone := "+383 44 123 456"
	branches := []models.Branch{
		{ID: uuid.New().String(), Name: "Downtown Showroom", City: "Prishtina", Address: "Bulevardi Bill Clinton 12", Phone: &phone},
		{ID: uuid.New().String(), Name: "Airport Branch", City: "Prizren", Address: "Rruga e Aeroportit 3"},
	}
	for i := range branches {
		if err := db.Create(&branches[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create branch %s: %v\n", branches[i].Name, err)
		}
	}

	automatic := "Automatic"
	manual := "Manual"
	black := "Black"
	white := "White"
	vehicles := []models.Vehicle{
		{
			ID:           uuid.New().String(),
			BranchID:     &branches[0].ID,
			Brand:        "Audi",
			Model:        "A4",
			Year:         2020,
			Mileage:      45000,
			Price:        23500,
			FuelType:     "Diesel",
			Transmission: &automatic,
			Color:        &black,
			ImageURLs:    models.StringSlice{"https://picsum.photos/640/400?random=1"},
			CreatedAt:    time.Now().Add(-48 * time.Hour),
		},
		{
			ID:           uuid.New().String(),
			BranchID:     &branches[0].ID,
			Brand:        "BMW",
			Model:        "320d",
			Year:         2019,
			Mileage:      62000,
			Price:        21900,
			FuelType:     "Diesel",
			Transmission: &automatic,
			Color:        &white,
			ImageURLs:    models.StringSlice{"https://picsum.photos/640/400?random=2"},
			CreatedAt:    time.Now().Add(-24 * time.Hour),
		},
		{
			ID:           uuid.New().String(),
			BranchID:     &branches[1].ID,
			Brand:        "Volkswagen",
			Model:        "Golf",
			Year:         2021,
			Mileage:      18000,
			Price:        19500,
			FuelType:     "Petrol",
			Transmission: &manual,
			ImageURLs:    models.StringSlice{"https://picsum.photos/640/400?random=3"},
			CreatedAt:    time.Now(),
		},
	}
	for i := range vehicles {
		if err := db.Create(&vehicles[i]).Error; err != nil {
			fmt.Printf("Warning: Could not create vehicle %s %s: %v\n", vehicles[i].Brand, vehicles[i].Model, err)
		}
	}

	fmt.Println("Database seeded with demo catalogue")
	return nil
}

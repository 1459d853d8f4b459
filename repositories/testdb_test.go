// File: /repositories/testdb_test.go
package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"autohub-api/models"
)

// newTestDB opens a private in-memory store per test, with the same error
// translation the production connection uses so unique-key violations come
// back as gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Branch{},
		&models.Vehicle{},
		&models.Favorite{},
		&models.Inquiry{},
		&models.TestDrive{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	user := models.User{
		ID:           uuid.New().String(),
		FullName:     "Test User",
		Email:        email,
		PasswordHash: "$2a$10$dummy",
		Role:         models.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedBranch(t *testing.T, db *gorm.DB, name, city string) models.Branch {
	t.Helper()

	branch := models.Branch{
		ID:      uuid.New().String(),
		Name:    name,
		City:    city,
		Address: "Test Street 1",
	}
	if err := db.Create(&branch).Error; err != nil {
		t.Fatalf("failed to seed branch: %v", err)
	}
	return branch
}

func seedVehicle(t *testing.T, db *gorm.DB, brand, model string, price float64, branchID *string, created time.Time) models.Vehicle {
	t.Helper()

	vehicle := models.Vehicle{
		ID:        uuid.New().String(),
		BranchID:  branchID,
		Brand:     brand,
		Model:     model,
		Year:      2020,
		Mileage:   30000,
		Price:     price,
		FuelType:  "Petrol",
		CreatedAt: created,
	}
	if err := db.Create(&vehicle).Error; err != nil {
		t.Fatalf("failed to seed vehicle %s %s: %v", brand, model, err)
	}
	return vehicle
}

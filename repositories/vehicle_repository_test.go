// File: /repositories/vehicle_repository_test.go
package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autohub-api/apperrors"
	"autohub-api/models"
)

func float(v float64) *float64 { return &v }

func TestListWithoutPredicatesReturnsAllNewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	oldest := seedVehicle(t, db, "Audi", "A4", 10000, nil, base)
	middle := seedVehicle(t, db, "BMW", "320d", 20000, nil, base.Add(time.Hour))
	newest := seedVehicle(t, db, "Skoda", "Octavia", 5000, nil, base.Add(2*time.Hour))

	vehicles, err := repo.List(VehicleFilter{})
	require.NoError(t, err)
	require.Len(t, vehicles, 3)

	assert.Equal(t, newest.ID, vehicles[0].ID)
	assert.Equal(t, middle.ID, vehicles[1].ID)
	assert.Equal(t, oldest.ID, vehicles[2].ID)
}

func TestListAppliesAllProvidedPredicates(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	downtown := seedBranch(t, db, "Downtown", "Prishtina")
	airport := seedBranch(t, db, "Airport", "Prizren")

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	a4 := seedVehicle(t, db, "Audi", "A4", 23500, &downtown.ID, base)
	seedVehicle(t, db, "BMW", "320d", 21900, &downtown.ID, base.Add(time.Hour))
	q5 := seedVehicle(t, db, "Audi", "Q5", 35000, &airport.ID, base.Add(2*time.Hour))

	// Brand substring is case-insensitive.
	vehicles, err := repo.List(VehicleFilter{Brand: "audi"})
	require.NoError(t, err)
	assert.Len(t, vehicles, 2)

	// Every provided predicate must hold at once.
	vehicles, err = repo.List(VehicleFilter{Brand: "audi", MaxPrice: float(30000)})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, a4.ID, vehicles[0].ID)

	vehicles, err = repo.List(VehicleFilter{BranchID: airport.ID, MinPrice: float(30000)})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, q5.ID, vehicles[0].ID)

	vehicles, err = repo.List(VehicleFilter{MinPrice: float(22000), MaxPrice: float(24000)})
	require.NoError(t, err)
	require.Len(t, vehicles, 1)
	assert.Equal(t, a4.ID, vehicles[0].ID)
}

func TestListNoMatchIsEmptyNotError(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	seedVehicle(t, db, "Audi", "A4", 23500, nil, time.Now())

	vehicles, err := repo.List(VehicleFilter{Brand: "Tesla"})
	require.NoError(t, err)
	assert.NotNil(t, vehicles)
	assert.Empty(t, vehicles)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	branch := seedBranch(t, db, "Downtown", "Prishtina")
	transmission := "Automatic"

	vehicle := models.Vehicle{
		ID:           uuid.New().String(),
		BranchID:     &branch.ID,
		Brand:        "Audi",
		Model:        "A4",
		Year:         2020,
		Mileage:      45000,
		Price:        23500,
		FuelType:     "Diesel",
		Transmission: &transmission,
		ImageURLs:    models.StringSlice{"https://example.com/a4-front.jpg", "https://example.com/a4-rear.jpg"},
	}
	require.NoError(t, repo.Create(&vehicle))

	got, err := repo.GetByID(vehicle.ID)
	require.NoError(t, err)

	assert.Equal(t, vehicle.Brand, got.Brand)
	assert.Equal(t, vehicle.Model, got.Model)
	assert.Equal(t, vehicle.Year, got.Year)
	assert.Equal(t, vehicle.Mileage, got.Mileage)
	assert.Equal(t, vehicle.Price, got.Price)
	assert.Equal(t, vehicle.FuelType, got.FuelType)
	assert.Equal(t, []string(vehicle.ImageURLs), []string(got.ImageURLs))
	assert.False(t, got.CreatedAt.IsZero())

	require.NotNil(t, got.Branch)
	assert.Equal(t, branch.Name, got.Branch.Name)
}

func TestCreateRejectsUnknownBranch(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	missing := "no-such-branch"
	vehicle := models.Vehicle{
		ID:       uuid.New().String(),
		BranchID: &missing,
		Brand:    "Audi",
		Model:    "A4",
		Year:     2020,
		Price:    23500,
		FuelType: "Diesel",
	}

	err := repo.Create(&vehicle)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGetMissingVehicleNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	_, err := repo.GetByID("no-such-vehicle")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteMissingVehicleNotFoundAndStoreUnchanged(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	seedVehicle(t, db, "Audi", "A4", 23500, nil, time.Now())

	err := repo.Delete("no-such-vehicle")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	var count int64
	db.Model(&models.Vehicle{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUpdateMissingVehicleNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	err := repo.Update("no-such-vehicle", &models.Vehicle{Brand: "Audi", Model: "A4"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteVehicleRemovesFactRecords(t *testing.T) {
	db := newTestDB(t)
	repo := NewVehicleRepository(db)

	user := seedUser(t, db, "buyer@example.com")
	vehicle := seedVehicle(t, db, "Audi", "A4", 23500, nil, time.Now())

	require.NoError(t, db.Create(&models.Favorite{UserID: user.ID, VehicleID: vehicle.ID}).Error)
	require.NoError(t, db.Create(&models.Inquiry{
		ID: uuid.New().String(), VehicleID: vehicle.ID,
		Name: "Guest", Email: "guest@example.com", Message: "Still available?",
		Status: models.InquiryPending,
	}).Error)
	require.NoError(t, db.Create(&models.TestDrive{
		ID: uuid.New().String(), VehicleID: vehicle.ID, UserID: user.ID,
		Date: time.Now(), Time: "10:30", Status: models.TestDrivePending,
	}).Error)

	require.NoError(t, repo.Delete(vehicle.ID))

	var favorites, inquiries, drives int64
	db.Model(&models.Favorite{}).Count(&favorites)
	db.Model(&models.Inquiry{}).Count(&inquiries)
	db.Model(&models.TestDrive{}).Count(&drives)
	assert.Zero(t, favorites)
	assert.Zero(t, inquiries)
	assert.Zero(t, drives)
}

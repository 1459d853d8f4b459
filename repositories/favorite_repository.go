// File: /repositories/favorite_repository.go
package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"autohub-api/apperrors"
	"autohub-api/models"
)

type FavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

// Add inserts the pair and lets the composite primary key reject
// duplicates. Two concurrent requests for the same pair cannot both
// succeed; there is deliberately no read-then-write existence check.
func (r *FavoriteRepository) Add(userID, vehicleID string) error {
	var user models.User
	if err := r.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s: %w", userID, apperrors.ErrValidation)
		}
		return err
	}
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", vehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vehicle %s: %w", vehicleID, apperrors.ErrValidation)
		}
		return err
	}

	favorite := models.Favorite{UserID: userID, VehicleID: vehicleID}
	if err := r.db.Create(&favorite).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("favorite (%s, %s) already exists: %w", userID, vehicleID, apperrors.ErrConflict)
		}
		return err
	}
	return nil
}

func (r *FavoriteRepository) Remove(userID, vehicleID string) error {
	result := r.db.Where("user_id = ? AND vehicle_id = ?", userID, vehicleID).
		Delete(&models.Favorite{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("favorite (%s, %s): %w", userID, vehicleID, apperrors.ErrNotFound)
	}
	return nil
}

// ListForUser returns the favorited vehicles with their branch attached.
func (r *FavoriteRepository) ListForUser(userID string) ([]models.Vehicle, error) {
	var favorites []models.Favorite
	err := r.db.Preload("Vehicle.Branch").Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC, vehicle_id DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}

	vehicles := make([]models.Vehicle, 0, len(favorites))
	for _, f := range favorites {
		vehicles = append(vehicles, f.Vehicle)
	}
	return vehicles, nil
}

// ListAll is the administrative view: every pair with user, vehicle and
// branch expanded, newest first.
func (r *FavoriteRepository) ListAll() ([]models.Favorite, error) {
	var favorites []models.Favorite
	err := r.db.Preload("User").Preload("Vehicle.Branch").Preload("Vehicle").
		Order("created_at DESC").
		Find(&favorites).Error
	if err != nil {
		return nil, err
	}
	return favorites, nil
}

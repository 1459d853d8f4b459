// File: /repositories/vehicle_repository.go
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"autohub-api/apperrors"
	"autohub-api/models"
)

// VehicleFilter holds the optional search predicates. Absent fields impose
// no constraint; provided fields are AND-composed.
type VehicleFilter struct {
	Brand    string
	Model    string
	BranchID string
	MinPrice *float64
	MaxPrice *float64
}

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

// List returns vehicles matching every provided predicate, newest first.
// Ties on created_at break by id so pagination over the result is stable.
func (r *VehicleRepository) List(filter VehicleFilter) ([]models.Vehicle, error) {
	query := r.db.Preload("Branch").Model(&models.Vehicle{})

	if filter.Brand != "" {
		query = query.Where("brand LIKE ?", "%"+filter.Brand+"%")
	}
	if filter.Model != "" {
		query = query.Where("model LIKE ?", "%"+filter.Model+"%")
	}
	if filter.BranchID != "" {
		query = query.Where("branch_id = ?", filter.BranchID)
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}

	vehicles := []models.Vehicle{}
	if err := query.Order("created_at DESC, id DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *VehicleRepository) GetByID(id string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Preload("Branch").First(&vehicle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *VehicleRepository) Create(vehicle *models.Vehicle) error {
	if vehicle.BranchID != nil {
		var branch models.Branch
		if err := r.db.First(&branch, "id = ?", *vehicle.BranchID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("branch %s: %w", *vehicle.BranchID, apperrors.ErrValidation)
			}
			return err
		}
	}
	return r.db.Create(vehicle).Error
}

// Update replaces every mutable field in one statement. CreatedAt and ID
// are not mutable through this path.
func (r *VehicleRepository) Update(id string, vehicle *models.Vehicle) error {
	var existing models.Vehicle
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vehicle %s: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	updates := map[string]interface{}{
		"branch_id":         vehicle.BranchID,
		"brand":             vehicle.Brand,
		"model":             vehicle.Model,
		"year":              vehicle.Year,
		"mileage":           vehicle.Mileage,
		"price":             vehicle.Price,
		"fuel_type":         vehicle.FuelType,
		"transmission":      vehicle.Transmission,
		"color":             vehicle.Color,
		"short_description": vehicle.ShortDescription,
		"description":       vehicle.Description,
		"image_urls":        vehicle.ImageURLs,
		"updated_at":        time.Now(),
	}

	return r.db.Model(&existing).Updates(updates).Error
}

// Delete removes the listing and, in the same transaction, the fact records
// that reference it.
func (r *VehicleRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var vehicle models.Vehicle
		if err := tx.First(&vehicle, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("vehicle %s: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.Inquiry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", id).Delete(&models.TestDrive{}).Error; err != nil {
			return err
		}

		return tx.Delete(&vehicle).Error
	})
}

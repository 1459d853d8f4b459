// File: /repositories/testdrive_repository.go
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"autohub-api/apperrors"
	"autohub-api/models"
)

type TestDriveRepository struct {
	db *gorm.DB
}

func NewTestDriveRepository(db *gorm.DB) *TestDriveRepository {
	return &TestDriveRepository{db: db}
}

// Create expects the preferred time to be validated at the boundary
// already; it still checks the referenced vehicle and user.
func (r *TestDriveRepository) Create(drive *models.TestDrive) error {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", drive.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vehicle %s: %w", drive.VehicleID, apperrors.ErrValidation)
		}
		return err
	}
	var user models.User
	if err := r.db.First(&user, "id = ?", drive.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s: %w", drive.UserID, apperrors.ErrValidation)
		}
		return err
	}

	drive.Status = models.TestDrivePending
	drive.CreatedAt = time.Now()
	return r.db.Create(drive).Error
}

func (r *TestDriveRepository) SetStatus(id string, status models.TestDriveStatus) error {
	var drive models.TestDrive
	if err := r.db.First(&drive, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("test drive %s: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	return r.db.Model(&drive).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}

func (r *TestDriveRepository) ListAll() ([]models.TestDrive, error) {
	var drives []models.TestDrive
	err := r.db.Preload("Vehicle").Preload("User").
		Order("created_at DESC, id DESC").
		Find(&drives).Error
	if err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *TestDriveRepository) ListByUser(userID string) ([]models.TestDrive, error) {
	var drives []models.TestDrive
	err := r.db.Preload("Vehicle").
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&drives).Error
	if err != nil {
		return nil, err
	}
	return drives, nil
}

func (r *TestDriveRepository) GetByID(id string) (*models.TestDrive, error) {
	var drive models.TestDrive
	err := r.db.Preload("Vehicle").Preload("User").First(&drive, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("test drive %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &drive, nil
}

func (r *TestDriveRepository) Delete(id string) error {
	result := r.db.Delete(&models.TestDrive{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("test drive %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

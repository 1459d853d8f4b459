// File: /repositories/inquiry_repository.go
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"autohub-api/apperrors"
	"autohub-api/models"
)

type InquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) *InquiryRepository {
	return &InquiryRepository{db: db}
}

// Create checks the referenced vehicle (and user, when present), forces the
// initial status to Pending and stamps the creation time server-side.
func (r *InquiryRepository) Create(inquiry *models.Inquiry) error {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, "id = ?", inquiry.VehicleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("vehicle %s: %w", inquiry.VehicleID, apperrors.ErrValidation)
		}
		return err
	}
	if inquiry.UserID != nil {
		var user models.User
		if err := r.db.First(&user, "id = ?", *inquiry.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %s: %w", *inquiry.UserID, apperrors.ErrValidation)
			}
			return err
		}
	}

	inquiry.Status = models.InquiryPending
	inquiry.CreatedAt = time.Now()
	return r.db.Create(inquiry).Error
}

// SetStatus overwrites the status unconditionally; any valid status may
// follow any other.
func (r *InquiryRepository) SetStatus(id string, status models.InquiryStatus) error {
	var inquiry models.Inquiry
	if err := r.db.First(&inquiry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("inquiry %s: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	return r.db.Model(&inquiry).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}).Error
}

func (r *InquiryRepository) ListAll() ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Preload("Vehicle").
		Order("created_at DESC, id DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) ListByVehicle(vehicleID string) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := r.db.Where("vehicle_id = ?", vehicleID).
		Order("created_at DESC, id DESC").
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}
	return inquiries, nil
}

func (r *InquiryRepository) GetByID(id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	err := r.db.Preload("Vehicle").First(&inquiry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("inquiry %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &inquiry, nil
}

func (r *InquiryRepository) Delete(id string) error {
	result := r.db.Delete(&models.Inquiry{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("inquiry %s: %w", id, apperrors.ErrNotFound)
	}
	return nil
}

// File: /repositories/branch_repository.go
package repositories

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"autohub-api/apperrors"
	"autohub-api/models"
)

type BranchRepository struct {
	db *gorm.DB
}

func NewBranchRepository(db *gorm.DB) *BranchRepository {
	return &BranchRepository{db: db}
}

func (r *BranchRepository) List() ([]models.Branch, error) {
	var branches []models.Branch
	if err := r.db.Order("city ASC, name ASC").Find(&branches).Error; err != nil {
		return nil, err
	}
	return branches, nil
}

func (r *BranchRepository) GetByID(id string) (*models.Branch, error) {
	var branch models.Branch
	err := r.db.First(&branch, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("branch %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &branch, nil
}

func (r *BranchRepository) Create(branch *models.Branch) error {
	return r.db.Create(branch).Error
}

func (r *BranchRepository) Update(id string, branch *models.Branch) error {
	var existing models.Branch
	if err := r.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("branch %s: %w", id, apperrors.ErrNotFound)
		}
		return err
	}

	return r.db.Model(&existing).Updates(map[string]interface{}{
		"name":       branch.Name,
		"city":       branch.City,
		"address":    branch.Address,
		"phone":      branch.Phone,
		"updated_at": time.Now(),
	}).Error
}

// Delete detaches the branch's vehicles instead of delisting them, then
// removes the branch.
func (r *BranchRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var branch models.Branch
		if err := tx.First(&branch, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("branch %s: %w", id, apperrors.ErrNotFound)
			}
			return err
		}

		if err := tx.Model(&models.Vehicle{}).Where("branch_id = ?", id).
			Update("branch_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&branch).Error
	})
}

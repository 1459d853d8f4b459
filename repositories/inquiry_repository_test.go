// File: /repositories/inquiry_repository_test.go
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

func TestCreateGuestInquiryStartsPending(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	vehicle := seedVehicle(t, db, "Audi", "A4", 23500, nil, time.Now())

	inquiry := models.Inquiry{
		ID:        uuid.New().String(),
		VehicleID: vehicle.ID,
		Name:      "Guest Visitor",
		Email:     "guest@example.com",
		Message:   "Is this still available?",
		Status:    models.InquiryResolved, // client-supplied status must be ignored
	}
	require.NoError(t, repo.Create(&inquiry))

	got, err := repo.GetByID(inquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InquiryPending, got.Status)
	assert.Nil(t, got.UserID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestCreateInquiryUnknownVehicle(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	inquiry := models.Inquiry{
		ID:        uuid.New().String(),
		VehicleID: "no-such-vehicle",
		Name:      "Guest Visitor",
		Email:     "guest@example.com",
		Message:   "Is this still available?",
	}
	assert.ErrorIs(t, repo.Create(&inquiry), apperrors.ErrValidation)
}

func TestInquirySetStatusMissingNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	err := repo.SetStatus("no-such-inquiry", models.InquiryResolved)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInquiryDeleteMissingNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	err := repo.Delete("no-such-inquiry")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

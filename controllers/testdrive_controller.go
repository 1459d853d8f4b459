// File: /controllers/testdrive_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/services"
	"autohub-api/utils"
)

type TestDriveController struct {
	testDrives   *repositories.TestDriveRepository
	vehicles     *repositories.VehicleRepository
	users        *repositories.UserRepository
	emailService *services.EmailService
}

func NewTestDriveController(testDrives *repositories.TestDriveRepository, vehicles *repositories.VehicleRepository, users *repositories.UserRepository, emailService *services.EmailService) *TestDriveController {
	return &TestDriveController{
		testDrives:   testDrives,
		vehicles:     vehicles,
		users:        users,
		emailService: emailService,
	}
}

type CreateTestDriveRequest struct {
	VehicleID     string  `json:"vehicleId" binding:"required"`
	UserID        string  `json:"userId" binding:"required"`
	PreferredDate string  `json:"preferredDate" binding:"required"` // "2006-01-02"
	PreferredTime string  `json:"preferredTime" binding:"required"` // "HH:mm"
	Notes         *string `json:"notes"`
}

func (tc *TestDriveController) GetTestDrives(c *gin.Context) {
	drives, err := tc.testDrives.ListAll()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, drives)
}

func (tc *TestDriveController) GetTestDrive(c *gin.Context) {
	drive, err := tc.testDrives.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, drive)
}

func (tc *TestDriveController) GetTestDrivesByUser(c *gin.Context) {
	drives, err := tc.testDrives.ListByUser(c.Param("userId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, drives)
}

func (tc *TestDriveController) CreateTestDrive(c *gin.Context) {
	var req CreateTestDriveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	date, err := time.Parse("2006-01-02", req.PreferredDate)
	if err != nil {
		utils.SendValidationError(c, "preferredDate must be formatted as YYYY-MM-DD")
		return
	}

	// Malformed time is a client error, never a server fault.
	preferredTime, ok := utils.ParsePreferredTime(req.PreferredTime)
	if !ok {
		utils.SendValidationError(c, "preferredTime must be a 24-hour HH:mm value")
		return
	}

	drive := models.TestDrive{
		ID:        uuid.New().String(),
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
		Date:      date,
		Time:      preferredTime,
		Notes:     req.Notes,
	}

	if err := tc.testDrives.Create(&drive); err != nil {
		utils.SendAppError(c, err)
		return
	}

	// Acknowledge by email; delivery failure must not fail the booking.
	vehicle, vErr := tc.vehicles.GetByID(drive.VehicleID)
	user, uErr := tc.users.GetByID(drive.UserID)
	if vErr == nil && uErr == nil {
		go func() {
			if err := tc.emailService.SendTestDriveAcknowledgement(&drive, user, vehicle); err != nil {
				fmt.Printf("Failed to send test drive acknowledgement: %v\n", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, drive)
}

func (tc *TestDriveController) UpdateTestDriveStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	status := models.TestDriveStatus(req.Status)
	if !status.Valid() {
		utils.SendValidationError(c, fmt.Sprintf("unknown test drive status %q", req.Status))
		return
	}

	if err := tc.testDrives.SetStatus(c.Param("id"), status); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (tc *TestDriveController) DeleteTestDrive(c *gin.Context) {
	if err := tc.testDrives.Delete(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// File: /controllers/inquiry_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/services"
	"autohub-api/utils"
)

type InquiryController struct {
	inquiries    *repositories.InquiryRepository
	vehicles     *repositories.VehicleRepository
	emailService *services.EmailService
}

func NewInquiryController(inquiries *repositories.InquiryRepository, vehicles *repositories.VehicleRepository, emailService *services.EmailService) *InquiryController {
	return &InquiryController{
		inquiries:    inquiries,
		vehicles:     vehicles,
		emailService: emailService,
	}
}

type CreateInquiryRequest struct {
	VehicleID string  `json:"vehicleId" binding:"required"`
	UserID    *string `json:"userId"` // omitted for guest inquiries
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Message   string  `json:"message" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (ic *InquiryController) GetInquiries(c *gin.Context) {
	inquiries, err := ic.inquiries.ListAll()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (ic *InquiryController) GetInquiry(c *gin.Context) {
	inquiry, err := ic.inquiries.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiry)
}

func (ic *InquiryController) GetInquiriesByVehicle(c *gin.Context) {
	inquiries, err := ic.inquiries.ListByVehicle(c.Param("vehicleId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, inquiries)
}

func (ic *InquiryController) CreateInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if !utils.IsValidEmail(req.Email) {
		utils.SendValidationError(c, "invalid email address")
		return
	}

	inquiry := models.Inquiry{
		ID:        uuid.New().String(),
		VehicleID: req.VehicleID,
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
	}

	if err := ic.inquiries.Create(&inquiry); err != nil {
		utils.SendAppError(c, err)
		return
	}

	// Notify the sales inbox; a delivery failure must not fail the request.
	if vehicle, err := ic.vehicles.GetByID(inquiry.VehicleID); err == nil {
		go func() {
			if err := ic.emailService.SendInquiryNotification(&inquiry, vehicle); err != nil {
				fmt.Printf("Failed to send inquiry notification: %v\n", err)
			}
		}()
	}

	c.JSON(http.StatusCreated, inquiry)
}

func (ic *InquiryController) UpdateInquiryStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	status := models.InquiryStatus(req.Status)
	if !status.Valid() {
		utils.SendValidationError(c, fmt.Sprintf("unknown inquiry status %q", req.Status))
		return
	}

	if err := ic.inquiries.SetStatus(c.Param("id"), status); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (ic *InquiryController) DeleteInquiry(c *gin.Context) {
	if err := ic.inquiries.Delete(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// File: /controllers/vehicle_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autohub-api/listing"
	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/utils"
)

type VehicleController struct {
	vehicles *repositories.VehicleRepository
}

func NewVehicleController(vehicles *repositories.VehicleRepository) *VehicleController {
	return &VehicleController{vehicles: vehicles}
}

type VehicleRequest struct {
	BranchID         *string  `json:"branch_id"`
	Brand            string   `json:"brand" binding:"required"`
	Model            string   `json:"model" binding:"required"`
	Year             int      `json:"year" binding:"required"`
	Mileage          int      `json:"mileage"`
	Price            float64  `json:"price"`
	FuelType         string   `json:"fuel_type" binding:"required"`
	Transmission     *string  `json:"transmission"`
	Color            *string  `json:"color"`
	ShortDescription *string  `json:"short_description"`
	Description      *string  `json:"description"`
	ImageURLs        []string `json:"image_urls"`
}

func (req *VehicleRequest) validate() string {
	if req.Price < 0 {
		return "price must be non-negative"
	}
	if req.Mileage < 0 {
		return "mileage must be non-negative"
	}
	if !utils.IsValidYear(req.Year) {
		return "year must be a plausible 4-digit year"
	}
	return ""
}

func (vc *VehicleController) GetVehicles(c *gin.Context) {
	vehicles, err := vc.vehicles.List(repositories.VehicleFilter{})
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// SearchVehicles applies the AND-composed filter server-side and optionally
// re-sorts and pages the result via the listing engine. The response stays
// a plain array; paging metadata travels in headers.
func (vc *VehicleController) SearchVehicles(c *gin.Context) {
	filter := repositories.VehicleFilter{
		Brand:    c.Query("brand"),
		Model:    c.Query("model"),
		BranchID: c.Query("branchId"),
	}

	if raw := c.Query("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.SendValidationError(c, "minPrice must be a number")
			return
		}
		filter.MinPrice = &min
	}
	if raw := c.Query("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.SendValidationError(c, "maxPrice must be a number")
			return
		}
		filter.MaxPrice = &max
	}

	vehicles, err := vc.vehicles.List(filter)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	if raw := c.Query("sort"); raw != "" {
		listing.SortVehicles(vehicles, listing.ParseSortKey(raw))
	}

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			utils.SendValidationError(c, "page must be an integer")
			return
		}
		pageSize := listing.DefaultPageSize
		if rawLimit := c.Query("limit"); rawLimit != "" {
			if n, err := strconv.Atoi(rawLimit); err == nil && n > 0 && n <= 50 {
				pageSize = n
			}
		}

		pageItems, page, totalPages := listing.Paginate(vehicles, page, pageSize)
		c.Header("X-Total-Count", strconv.Itoa(len(vehicles)))
		c.Header("X-Page", strconv.Itoa(page))
		c.Header("X-Total-Pages", strconv.Itoa(totalPages))
		if pageItems == nil {
			pageItems = []models.Vehicle{}
		}
		vehicles = pageItems
	}

	c.JSON(http.StatusOK, vehicles)
}

func (vc *VehicleController) GetVehicle(c *gin.Context) {
	vehicle, err := vc.vehicles.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

func (vc *VehicleController) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.SendValidationError(c, msg)
		return
	}

	vehicle := models.Vehicle{
		ID:               uuid.New().String(),
		BranchID:         req.BranchID,
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             req.Year,
		Mileage:          req.Mileage,
		Price:            req.Price,
		FuelType:         req.FuelType,
		Transmission:     req.Transmission,
		Color:            req.Color,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURLs:        models.StringSlice(req.ImageURLs),
	}

	if err := vc.vehicles.Create(&vehicle); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/vehicles/%s", vehicle.ID))
	c.JSON(http.StatusCreated, vehicle)
}

func (vc *VehicleController) UpdateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}
	if msg := req.validate(); msg != "" {
		utils.SendValidationError(c, msg)
		return
	}

	vehicle := models.Vehicle{
		BranchID:         req.BranchID,
		Brand:            req.Brand,
		Model:            req.Model,
		Year:             req.Year,
		Mileage:          req.Mileage,
		Price:            req.Price,
		FuelType:         req.FuelType,
		Transmission:     req.Transmission,
		Color:            req.Color,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ImageURLs:        models.StringSlice(req.ImageURLs),
	}

	if err := vc.vehicles.Update(c.Param("id"), &vehicle); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (vc *VehicleController) DeleteVehicle(c *gin.Context) {
	if err := vc.vehicles.Delete(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

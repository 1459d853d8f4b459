// File: /controllers/favorite_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub-api/repositories"
	"autohub-api/utils"
)

type FavoriteController struct {
	favorites *repositories.FavoriteRepository
}

func NewFavoriteController(favorites *repositories.FavoriteRepository) *FavoriteController {
	return &FavoriteController{favorites: favorites}
}

// Request bodies use camelCase keys, matching the login response; stored
// entities keep snake_case.
type CreateFavoriteRequest struct {
	UserID    string `json:"userId" binding:"required"`
	VehicleID string `json:"vehicleId" binding:"required"`
}

// GetAllFavorites is the admin view: every pair with user, vehicle and
// branch expanded, newest first.
func (fc *FavoriteController) GetAllFavorites(c *gin.Context) {
	favorites, err := fc.favorites.ListAll()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, favorites)
}

func (fc *FavoriteController) GetUserFavorites(c *gin.Context) {
	vehicles, err := fc.favorites.ListForUser(c.Param("userId"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	var req CreateFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	if err := fc.favorites.Add(req.UserID, req.VehicleID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusCreated)
}

// RemoveFavorite deletes the pair identified by query parameters:
// DELETE /favorites?userId=...&vehicleId=...
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID := c.Query("userId")
	vehicleID := c.Query("vehicleId")
	if userID == "" || vehicleID == "" {
		utils.SendValidationError(c, "userId and vehicleId query parameters are required")
		return
	}

	if err := fc.favorites.Remove(userID, vehicleID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

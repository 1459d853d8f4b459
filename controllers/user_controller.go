// File: /controllers/user_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/utils"
)

type UserController struct {
	users *repositories.UserRepository
}

func NewUserController(users *repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// UpdateUserRequest covers the only mutable fields. Email and credential
// cannot change through this path.
type UpdateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.users.List()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (uc *UserController) GetUser(c *gin.Context) {
	user, err := uc.users.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	role := models.Role(req.Role)
	if !role.Valid() {
		utils.SendValidationError(c, fmt.Sprintf("unknown role %q", req.Role))
		return
	}

	if err := uc.users.Update(c.Param("id"), req.FullName, role); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.users.Delete(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

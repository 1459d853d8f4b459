// File: /controllers/branch_controller.go
package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"autohub-api/models"
	"autohub-api/repositories"
	"autohub-api/utils"
)

type BranchController struct {
	branches *repositories.BranchRepository
}

func NewBranchController(branches *repositories.BranchRepository) *BranchController {
	return &BranchController{branches: branches}
}

type BranchRequest struct {
	Name    string  `json:"name" binding:"required"`
	City    string  `json:"city" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Phone   *string `json:"phone"`
}

func (bc *BranchController) GetBranches(c *gin.Context) {
	branches, err := bc.branches.List()
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, branches)
}

func (bc *BranchController) GetBranch(c *gin.Context) {
	branch, err := bc.branches.GetByID(c.Param("id"))
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, branch)
}

func (bc *BranchController) CreateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	branch := models.Branch{
		ID:      uuid.New().String(),
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := bc.branches.Create(&branch); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/api/v1/branches/%s", branch.ID))
	c.JSON(http.StatusCreated, branch)
}

func (bc *BranchController) UpdateBranch(c *gin.Context) {
	var req BranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	branch := models.Branch{
		Name:    req.Name,
		City:    req.City,
		Address: req.Address,
		Phone:   req.Phone,
	}

	if err := bc.branches.Update(c.Param("id"), &branch); err != nil {
		utils.SendAppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (bc *BranchController) DeleteBranch(c *gin.Context) {
	if err := bc.branches.Delete(c.Param("id")); err != nil {
		utils.SendAppError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

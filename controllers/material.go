// controllers/material.go
package controllers

import (
	"errors"
	"net/http"

	"retrofit-backend/config"
	"retrofit-backend/models"
	"retrofit-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateMaterialInput defines the expected JSON structure for creating a material
type CreateMaterialInput struct {
	Name        string  `json:"name" binding:"required"`
	CostPerSqft float64 `json:"costPerSqft" binding:"required,min=0"`
}

// UpdateMaterialInput defines the expected JSON structure for updating a material
type UpdateMaterialInput struct {
	Name        *string  `json:"name"`
	CostPerSqft *float64 `json:"costPerSqft"`
	IsActive    *bool    `json:"isActive"`
}

// CreateMaterial adds a material to the user's library
func CreateMaterial(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	var input CreateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	material := models.Material{
		UserID:      userUUID,
		Name:        input.Name,
		CostPerSqft: input.CostPerSqft,
	}

	if err := config.DB.Create(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create material")
		return
	}

	c.JSON(http.StatusCreated, material)
}

// GetMaterials retrieves the user's material library
func GetMaterials(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	var materials []models.Material
	if err := config.DB.
		Where("user_id = ?", userUUID).
		Order("created_at ASC").
		Find(&materials).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve materials")
		return
	}

	c.JSON(http.StatusOK, materials)
}

// GetMaterial retrieves a specific material by ID
func GetMaterial(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	var material models.Material
	if err := config.DB.
		Where("user_id = ? AND id = ?", userUUID, materialUUID).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, material)
}

// UpdateMaterial updates an existing material
func UpdateMaterial(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	var input UpdateMaterialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var material models.Material
	if err := config.DB.
		Where("user_id = ? AND id = ?", userUUID, materialUUID).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Name != nil {
		material.Name = *input.Name
	}
	if input.CostPerSqft != nil {
		if *input.CostPerSqft < 0 {
			utils.RespondWithError(c, http.StatusBadRequest, "Cost must be non-negative")
			return
		}
		material.CostPerSqft = *input.CostPerSqft
	}
	if input.IsActive != nil {
		material.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&material).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update material")
		return
	}

	c.JSON(http.StatusOK, material)
}

// DeleteMaterial soft deletes a material
func DeleteMaterial(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	materialUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid material ID format")
		return
	}

	result := config.DB.
		Where("user_id = ? AND id = ?", userUUID, materialUUID).
		Delete(&models.Material{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Material not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Material deleted successfully"})
}

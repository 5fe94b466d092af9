// controllers/quote.go
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

// CreateQuoteInput defines the expected JSON structure for creating a quote
// record directly, outside the wizard.
type CreateQuoteInput struct {
	ClientName    string  `json:"client_name" binding:"required"`
	ClientEmail   string  `json:"client_email"`
	ClientPhone   string  `json:"client_phone"`
	ProjectName   string  `json:"project_name"`
	Address       string  `json:"address"`
	PostalCode    string  `json:"postal_code"`
	SquareFootage float64 `json:"square_footage" binding:"min=0"`
	MaterialCost  float64 `json:"material_cost" binding:"min=0"`
	LaborCost     float64 `json:"labor_cost" binding:"min=0"`
	RebateAmount  float64 `json:"rebate_amount" binding:"min=0"`
	Amount        float64 `json:"amount" binding:"min=0"`
	Status        string  `json:"status" binding:"omitempty,oneof=draft sent approved"`
	Notes         string  `json:"notes"`
}

// UpdateQuoteInput defines the expected JSON structure for partial updates
type UpdateQuoteInput struct {
	ClientName    *string  `json:"client_name"`
	ClientEmail   *string  `json:"client_email"`
	ClientPhone   *string  `json:"client_phone"`
	ProjectName   *string  `json:"project_name"`
	Address       *string  `json:"address"`
	PostalCode    *string  `json:"postal_code"`
	SquareFootage *float64 `json:"square_footage"`
	MaterialCost  *float64 `json:"material_cost"`
	LaborCost     *float64 `json:"labor_cost"`
	RebateAmount  *float64 `json:"rebate_amount"`
	Amount        *float64 `json:"amount"`
	Status        *string  `json:"status" binding:"omitempty,oneof=draft sent approved"`
	Notes         *string  `json:"notes"`
}

func userUUIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	userUUID, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return userUUID, true
}

// CreateQuote creates a new quote record for the user
func CreateQuote(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	var input CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	projectName := input.ProjectName
	if projectName == "" {
		projectName = input.ClientName
	}

	status := input.Status
	if status == "" {
		status = models.QuoteStatusDraft
	}

	quote := models.Quote{
		UserID:        userUUID,
		ClientName:    input.ClientName,
		ClientEmail:   input.ClientEmail,
		ClientPhone:   input.ClientPhone,
		ProjectName:   projectName,
		Address:       input.Address,
		PostalCode:    input.PostalCode,
		SquareFootage: input.SquareFootage,
		MaterialCost:  input.MaterialCost,
		LaborCost:     input.LaborCost,
		RebateAmount:  input.RebateAmount,
		Amount:        input.Amount,
		Status:        status,
		Notes:         input.Notes,
	}

	if err := config.DB.Create(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create quote")
		return
	}

	c.JSON(http.StatusCreated, quote)
}

// GetQuotes retrieves all quotes for the user, newest first
func GetQuotes(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	var quotes []models.Quote
	if err := config.DB.
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Find(&quotes).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve quotes")
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// GetQuote retrieves a specific quote by ID
func GetQuote(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	quoteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID format")
		return
	}

	var quote models.Quote
	if err := config.DB.
		Where("user_id = ? AND id = ?", userUUID, quoteUUID).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}

// UpdateQuote updates an existing quote
func UpdateQuote(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	quoteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID format")
		return
	}

	var input UpdateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var quote models.Quote
	if err := config.DB.
		Where("user_id = ? AND id = ?", userUUID, quoteUUID).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.ClientName != nil {
		quote.ClientName = *input.ClientName
	}
	if input.ClientEmail != nil {
		quote.ClientEmail = *input.ClientEmail
	}
	if input.ClientPhone != nil {
		quote.ClientPhone = *input.ClientPhone
	}
	if input.ProjectName != nil {
		quote.ProjectName = *input.ProjectName
	}
	if input.Address != nil {
		quote.Address = *input.Address
	}
	if input.PostalCode != nil {
		quote.PostalCode = *input.PostalCode
	}
	if input.SquareFootage != nil {
		quote.SquareFootage = *input.SquareFootage
	}
	if input.MaterialCost != nil {
		quote.MaterialCost = *input.MaterialCost
	}
	if input.LaborCost != nil {
		quote.LaborCost = *input.LaborCost
	}
	if input.RebateAmount != nil {
		quote.RebateAmount = *input.RebateAmount
	}
	if input.Amount != nil {
		quote.Amount = *input.Amount
	}
	if input.Status != nil && *input.Status != quote.Status {
		quote.Status = *input.Status
		// A freshly sent quote becomes eligible for a follow-up again
		if quote.Status == models.QuoteStatusSent {
			quote.FollowUpSent = false
		}
	}
	if input.Notes != nil {
		quote.Notes = *input.Notes
	}

	if err := config.DB.Save(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update quote")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// DeleteQuote soft deletes a quote
func DeleteQuote(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	quoteUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid quote ID format")
		return
	}

	var quote models.Quote
	if err := config.DB.
		Where("user_id = ? AND id = ?", userUUID, quoteUUID).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Quote not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := config.DB.Delete(&quote).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete quote")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}

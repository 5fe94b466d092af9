// controllers/profile.go
package controllers

import (
	"net/http"

	"retrofit-backend/config"
	"retrofit-backend/models"
	"retrofit-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Company        string `json:"company"`
	CompanyAddress string `json:"companyAddress"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":                 user.Name,
		"email":                user.Email,
		"phone":                user.Phone,
		"company":              user.Company,
		"companyAddress":       user.CompanyAddress,
		"notificationsEnabled": user.NotificationsEnabled,
		"emailNotifications":   user.EmailNotifications,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if input.Phone != "" && !utils.ValidatePhone(input.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	user.Name = input.Name
	user.Phone = input.Phone
	user.Company = input.Company
	user.CompanyAddress = input.CompanyAddress

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

func UpdateNotificationSettings(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input struct {
		NotificationsEnabled bool `json:"notificationsEnabled"`
		EmailNotifications   bool `json:"emailNotifications"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	if err := config.DB.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"notifications_enabled": input.NotificationsEnabled,
			"email_notifications":   input.EmailNotifications,
		}).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification settings")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification settings updated"})
}

// UpdateFollowUpTemplate replaces the message sent when a quote goes
// unanswered
func UpdateFollowUpTemplate(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	var input struct {
		Message  string `json:"message" binding:"required"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var template models.FollowUpTemplate
	if err := config.DB.Where("user_id = ?", userUUID).First(&template).Error; err != nil {
		template = models.FollowUpTemplate{UserID: userUUID}
	}

	template.Message = input.Message
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update follow-up template")
		return
	}

	c.JSON(http.StatusOK, template)
}

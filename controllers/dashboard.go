// controllers/dashboard.go
package controllers

import (
	"net/http"
	"time"

	"retrofit-backend/config"
	"retrofit-backend/models"
	"retrofit-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalQuotes        int64            `json:"totalQuotes"`
	QuotesByStatus     map[string]int64 `json:"quotesByStatus"`
	PipelineValue      float64          `json:"pipelineValue"`
	MonthlyValue       float64          `json:"monthlyValue"`
	TotalSquareFootage float64          `json:"totalSquareFootage"`
	RecentQuotes       []RecentQuote    `json:"recentQuotes"`
}

type RecentQuote struct {
	ID          string  `json:"id"`
	ClientName  string  `json:"clientName"`
	ProjectName string  `json:"projectName"`
	Amount      float64 `json:"amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

func GetDashboardOverview(c *gin.Context) {
	userUUID, ok := userUUIDFromContext(c)
	if !ok {
		return
	}

	overview := DashboardOverview{
		QuotesByStatus: map[string]int64{},
	}

	// Total quotes
	config.DB.Model(&models.Quote{}).
		Where("user_id = ? AND deleted_at IS NULL", userUUID).
		Count(&overview.TotalQuotes)

	// Per-status counts
	for _, status := range []string{models.QuoteStatusDraft, models.QuoteStatusSent, models.QuoteStatusApproved} {
		var count int64
		config.DB.Model(&models.Quote{}).
			Where("user_id = ? AND status = ? AND deleted_at IS NULL", userUUID, status).
			Count(&count)
		overview.QuotesByStatus[status] = count
	}

	// Open pipeline: everything not yet approved
	config.DB.Model(&models.Quote{}).
		Where("user_id = ? AND status <> ? AND deleted_at IS NULL", userUUID, models.QuoteStatusApproved).
		Select("COALESCE(SUM(amount), 0)").Scan(&overview.PipelineValue)

	// This month's quoted value
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	config.DB.Model(&models.Quote{}).
		Where("user_id = ? AND created_at >= ? AND deleted_at IS NULL", userUUID, firstOfMonth).
		Select("COALESCE(SUM(amount), 0)").Scan(&overview.MonthlyValue)

	// Total area quoted
	config.DB.Model(&models.Quote{}).
		Where("user_id = ? AND deleted_at IS NULL", userUUID).
		Select("COALESCE(SUM(square_footage), 0)").Scan(&overview.TotalSquareFootage)

	// Recent quotes (last 5)
	var recent []models.Quote
	config.DB.
		Where("user_id = ?", userUUID).
		Order("created_at DESC").
		Limit(5).
		Find(&recent)

	for _, q := range recent {
		label := q.CreatedAt.Format("Jan 2, 2006")
		switch utils.DaysBetween(q.CreatedAt, now) {
		case 0:
			label = "Today"
		case 1:
			label = "Yesterday"
		}
		overview.RecentQuotes = append(overview.RecentQuotes, RecentQuote{
			ID:          q.ID.String(),
			ClientName:  q.ClientName,
			ProjectName: q.ProjectName,
			Amount:      q.Amount,
			Status:      q.Status,
			CreatedAt:   label,
		})
	}

	c.JSON(http.StatusOK, overview)
}

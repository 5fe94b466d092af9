// services/followup_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"retrofit-backend/models"
	"retrofit-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// Days a sent quote may sit unanswered before the client gets a follow-up.
const followUpAfterDays = 7

type FollowUpService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewFollowUpService(db *gorm.DB) *FollowUpService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &FollowUpService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *FollowUpService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyFollowUps)

	c.Start()
	log.Println("Follow-up scheduler started")
}

func (s *FollowUpService) SendDailyFollowUps() {
	log.Println("Starting daily follow-up processing...")

	var users []models.User
	if err := s.db.Find(&users, "is_active = ? AND notifications_enabled = ?", true, true).Error; err != nil {
		log.Printf("Failed to fetch users: %v", err)
		return
	}

	for _, user := range users {
		s.ProcessUserFollowUps(user.ID)
	}

	log.Println("Daily follow-up processing completed")
}

func (s *FollowUpService) ProcessUserFollowUps(userID uuid.UUID) {
	quotes, err := s.staleQuotes(userID)
	if err != nil {
		log.Printf("User %s: Failed to get stale quotes: %v", userID, err)
		return
	}
	if len(quotes) == 0 {
		return
	}
	s.sendFollowUps(userID, quotes)
}

// staleQuotes returns sent quotes that have gone unanswered long enough to
// chase, have a client phone, and were not chased before.
func (s *FollowUpService) staleQuotes(userID uuid.UUID) ([]models.Quote, error) {
	cutoff := utils.BeginningOfDay(time.Now()).AddDate(0, 0, -followUpAfterDays)

	var quotes []models.Quote
	err := s.db.
		Where("user_id = ? AND status = ? AND follow_up_sent = ? AND client_phone <> '' AND updated_at <= ?",
			userID, models.QuoteStatusSent, false, cutoff).
		Find(&quotes).Error
	return quotes, err
}

func (s *FollowUpService) sendFollowUps(userID uuid.UUID, quotes []models.Quote) {
	// Get the user's active follow-up template
	var template models.FollowUpTemplate
	if err := s.db.Where("user_id = ? AND is_active = true", userID).
		First(&template).Error; err != nil {
		log.Printf("User %s: No active follow-up template: %v", userID, err)
		return
	}

	for _, quote := range quotes {
		// Replace placeholders in the template
		message := strings.ReplaceAll(template.Message, "[ClientName]", quote.ClientName)
		message = strings.ReplaceAll(message, "[ProjectName]", quote.ProjectName)

		// Determine channel (WhatsApp if available, else SMS)
		channel := "sms"
		var to string

		// Use WhatsApp if phone is in E.164 format and starts with '+'
		if strings.HasPrefix(quote.ClientPhone, "+") {
			to = "whatsapp:" + quote.ClientPhone
			channel = "whatsapp"
		} else {
			to = quote.ClientPhone
		}

		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)

		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send follow-up to %s: %v", quote.ClientPhone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Follow-up sent to %s, SID: %s", quote.ClientPhone, *resp.Sid)
		} else {
			log.Printf("Follow-up sent to %s, but no SID returned", quote.ClientPhone)
		}

		followUpLog := models.FollowUpLog{
			UserID:       userID,
			QuoteID:      quote.ID,
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&followUpLog).Error; err != nil {
			log.Printf("Failed to log follow-up for quote %s: %v", quote.ID, err)
		}

		if status == "sent" {
			if err := s.db.Model(&models.Quote{}).Where("id = ?", quote.ID).
				Update("follow_up_sent", true).Error; err != nil {
				log.Printf("Failed to mark quote %s as followed up: %v", quote.ID, err)
			}
		}
	}
}

// DefaultFollowUpMessage is seeded for new accounts.
const DefaultFollowUpMessage = "Hi [ClientName], just following up on the insulation quote for [ProjectName]. Happy to answer any questions - let us know how you'd like to proceed!"

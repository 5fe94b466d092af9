package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Statuses a saved quote moves through.
const (
	QuoteStatusDraft    = "draft"
	QuoteStatusSent     = "sent"
	QuoteStatusApproved = "approved"
)

type Quote struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null"`

	ClientName  string `gorm:"not null"`
	ClientEmail string
	ClientPhone string
	ProjectName string `gorm:"not null"`
	Address     string
	PostalCode  string

	SquareFootage float64 `gorm:"type:decimal(10,2);default:0.0"`
	MaterialCost  float64 `gorm:"type:decimal(10,2);default:0.0"`
	LaborCost     float64 `gorm:"type:decimal(10,2);default:0.0"`
	RebateAmount  float64 `gorm:"type:decimal(10,2);default:0.0"`
	Amount        float64 `gorm:"type:decimal(10,2);not null"`

	Status string `gorm:"type:varchar(20);default:'draft'"`
	Notes  string

	// Set once the follow-up scheduler has messaged the client.
	FollowUpSent bool `gorm:"default:false"`

	gorm.Model
}

func (q *Quote) BeforeCreate(tx *gorm.DB) (err error) {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return
}

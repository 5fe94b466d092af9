package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FollowUpTemplate holds the message sent to clients when a sent quote goes
// a week without an answer. [ClientName] and [ProjectName] are replaced at
// send time.
type FollowUpTemplate struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Message  string    `gorm:"type:text;not null"`
	IsActive bool      `gorm:"default:true"`

	gorm.Model
}

func (t *FollowUpTemplate) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

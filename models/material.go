package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Material is one entry of a user's insulation material library. Its cost
// feeds the preset price options on the wizard's cost step.
type Material struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"not null"`
	CostPerSqft float64   `gorm:"type:decimal(10,2);not null"`
	IsActive    bool      `gorm:"default:true"`

	gorm.Model
}

func (m *Material) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// DefaultMaterials returns the starter material library seeded for new
// accounts.
func DefaultMaterials() []Material {
	return []Material{
		{Name: "Fiberglass Batt", CostPerSqft: 1.25},
		{Name: "Spray Foam", CostPerSqft: 3.50},
		{Name: "Cellulose", CostPerSqft: 0.85},
	}
}

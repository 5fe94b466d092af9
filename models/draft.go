package models

import (
	"github.com/google/uuid"
)

// Wizard steps, in order. A draft sits on exactly one step at a time.
const (
	StepDetails = 1
	StepPhotos  = 2
	StepItems   = 3
	StepCosts   = 4
	StepSummary = 5
)

// Line item types. The type decides which dimension fields apply and how a
// per-unit rate turns into a price.
const (
	ItemTypeRoom     = "Room"
	ItemTypeLabor    = "Labor"
	ItemTypeMaterial = "Material"
	ItemTypeService  = "Service"
	ItemTypeCustom   = "Custom"
)

func ValidItemType(t string) bool {
	switch t {
	case ItemTypeRoom, ItemTypeLabor, ItemTypeMaterial, ItemTypeService, ItemTypeCustom:
		return true
	}
	return false
}

// LineItem is one billable entry on a draft quote. The ID is a stable
// identity: validation messages and removals are keyed by it, never by the
// item's position in the list.
type LineItem struct {
	ID             uuid.UUID `json:"id"`
	Type           string    `json:"type"`
	Name           string    `json:"name"`
	Length         float64   `json:"length,omitempty"`
	Width          float64   `json:"width,omitempty"`
	Quantity       float64   `json:"quantity,omitempty"`
	CalculatedArea float64   `json:"calculatedArea,omitempty"`
	CostPerUnit    float64   `json:"costPerUnit,omitempty"`
	Price          float64   `json:"price,omitempty"`
	PriceOption    string    `json:"priceOption,omitempty"`
}

// QuoteDraft is the in-progress quote assembled by the wizard. It lives in
// memory only; saving converts it to a Quote row and discards it.
type QuoteDraft struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"-"`

	Step int `json:"step"`

	ClientName     string     `json:"client_name"`
	ClientEmail    string     `json:"client_email,omitempty"`
	ClientPhone    string     `json:"client_phone,omitempty"`
	ProjectAddress string     `json:"project_address,omitempty"`
	PostalCode     string     `json:"postal_code"`
	ProjectName    string     `json:"project_name,omitempty"`
	Photos         []string   `json:"photos"`
	Items          []LineItem `json:"items"`
	Notes          string     `json:"notes,omitempty"`
}

// EffectiveProjectName falls back to the client name when no project name
// was entered.
func (d *QuoteDraft) EffectiveProjectName() string {
	if d.ProjectName != "" {
		return d.ProjectName
	}
	return d.ClientName
}

// Item returns a pointer to the item with the given id, or nil.
func (d *QuoteDraft) Item(id uuid.UUID) *LineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

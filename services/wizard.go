package services

import (
	"strings"

	"retrofit-backend/models"

	"github.com/google/uuid"
)

// FieldErrors maps a field name, or a line item id, to a validation
// message. An empty map means the step is valid.
type FieldErrors map[string]string

// AdvanceInput carries whatever the current step collected. Absent fields
// leave the draft untouched.
type AdvanceInput struct {
	ClientName     *string   `json:"client_name"`
	ClientEmail    *string   `json:"client_email"`
	ClientPhone    *string   `json:"client_phone"`
	ProjectAddress *string   `json:"project_address"`
	PostalCode     *string   `json:"postal_code"`
	ProjectName    *string   `json:"project_name"`
	Photos         *[]string `json:"photos"`
	Notes          *string   `json:"notes"`
}

// Merge applies the provided fields to the draft.
func Merge(draft *models.QuoteDraft, input AdvanceInput) {
	if input.ClientName != nil {
		draft.ClientName = strings.TrimSpace(*input.ClientName)
	}
	if input.ClientEmail != nil {
		draft.ClientEmail = strings.TrimSpace(*input.ClientEmail)
	}
	if input.ClientPhone != nil {
		draft.ClientPhone = strings.TrimSpace(*input.ClientPhone)
	}
	if input.ProjectAddress != nil {
		draft.ProjectAddress = strings.TrimSpace(*input.ProjectAddress)
	}
	if input.PostalCode != nil {
		draft.PostalCode = strings.TrimSpace(*input.PostalCode)
	}
	if input.ProjectName != nil {
		draft.ProjectName = strings.TrimSpace(*input.ProjectName)
	}
	if input.Photos != nil {
		draft.Photos = *input.Photos
	}
	if input.Notes != nil {
		draft.Notes = *input.Notes
	}
}

// Advance merges the step data into the draft, validates the current step
// and moves one step forward. On validation failure the merged data is
// kept, the step does not change, and the field errors are returned.
// Advancing past the final step is a no-op.
func Advance(draft *models.QuoteDraft, input AdvanceInput) FieldErrors {
	Merge(draft, input)
	if errs := ValidateStep(draft, draft.Step); len(errs) > 0 {
		return errs
	}
	if draft.Step < models.StepSummary {
		draft.Step++
	}
	return nil
}

// Retreat moves one step back. It reports true when the wizard backs out of
// the first step, meaning the draft should be discarded.
func Retreat(draft *models.QuoteDraft) (exit bool) {
	if draft.Step > models.StepDetails {
		draft.Step--
		return false
	}
	return true
}

// ValidateStep runs the validator belonging to the given step.
func ValidateStep(draft *models.QuoteDraft, step int) FieldErrors {
	switch step {
	case models.StepDetails:
		return validateDetails(draft)
	case models.StepPhotos:
		return validatePhotos(draft)
	case models.StepItems:
		return ValidateItems(draft.Items)
	case models.StepCosts:
		return validateCosts(draft.Items)
	case models.StepSummary:
		return validateSummary(draft)
	}
	return nil
}

func validateDetails(draft *models.QuoteDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(draft.ClientName) == "" {
		errs["client_name"] = "Required"
	}
	if strings.TrimSpace(draft.PostalCode) == "" {
		errs["postal_code"] = "Required for rebate lookup"
	}
	return errs
}

func validatePhotos(draft *models.QuoteDraft) FieldErrors {
	errs := FieldErrors{}
	if len(draft.Photos) == 0 {
		errs["photos"] = "At least one photo is required"
	}
	return errs
}

// ValidateItems checks every item's type-specific required fields. Messages
// are keyed by item id.
func ValidateItems(items []models.LineItem) FieldErrors {
	errs := FieldErrors{}
	if len(items) == 0 {
		errs["items"] = "At least one item is required"
		return errs
	}
	for _, item := range items {
		key := item.ID.String()
		if strings.TrimSpace(item.Name) == "" {
			errs[key] = "Name is required"
			continue
		}
		switch item.Type {
		case models.ItemTypeRoom:
			if item.Length <= 0 {
				errs[key] = "Length is required"
			} else if item.Width <= 0 {
				errs[key] = "Width is required"
			}
		case models.ItemTypeLabor, models.ItemTypeMaterial:
			if item.Quantity <= 0 {
				errs[key] = "Quantity is required"
			}
		}
	}
	return errs
}

func validateCosts(items []models.LineItem) FieldErrors {
	errs := FieldErrors{}
	if len(items) == 0 {
		errs["items"] = "At least one item is required"
		return errs
	}
	for _, item := range items {
		if item.Price <= 0 {
			errs[item.ID.String()] = "Price is required"
		}
	}
	return errs
}

// ValidateSave gates the terminal save. The wizard must have reached the
// summary step, and the item and cost gates must still hold for the current
// item list.
func ValidateSave(draft *models.QuoteDraft) FieldErrors {
	if draft.Step != models.StepSummary {
		return FieldErrors{"step": "Complete all steps before saving"}
	}
	if errs := ValidateItems(draft.Items); len(errs) > 0 {
		return errs
	}
	if errs := validateCosts(draft.Items); len(errs) > 0 {
		return errs
	}
	return validateSummary(draft)
}

func validateSummary(draft *models.QuoteDraft) FieldErrors {
	errs := FieldErrors{}
	if strings.TrimSpace(draft.ClientName) == "" {
		errs["client_name"] = "Required"
	}
	if strings.TrimSpace(draft.EffectiveProjectName()) == "" {
		errs["project_name"] = "Required"
	}
	return errs
}

// ItemUpdateInput carries field changes for one line item.
type ItemUpdateInput struct {
	Type     *string  `json:"type"`
	Name     *string  `json:"name"`
	Length   *float64 `json:"length"`
	Width    *float64 `json:"width"`
	Quantity *float64 `json:"quantity"`
}

// AddItem appends a new default item (Room, unnamed) and returns it.
func AddItem(draft *models.QuoteDraft) models.LineItem {
	item := models.LineItem{ID: uuid.New(), Type: models.ItemTypeRoom}
	draft.Items = append(draft.Items, item)
	return item
}

// UpdateItem applies field changes to the item with the given id and keeps
// the derived area in sync. It reports false when no such item exists.
func UpdateItem(draft *models.QuoteDraft, itemID uuid.UUID, input ItemUpdateInput) (models.LineItem, bool) {
	item := draft.Item(itemID)
	if item == nil {
		return models.LineItem{}, false
	}
	if input.Type != nil && models.ValidItemType(*input.Type) {
		item.Type = *input.Type
	}
	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Length != nil {
		item.Length = *input.Length
	}
	if input.Width != nil {
		item.Width = *input.Width
	}
	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	recalcArea(item)
	return *item, true
}

// RemoveItem deletes the item with the given id. Validation state is keyed
// by the same id, so removal can never strand a message on the wrong item.
func RemoveItem(draft *models.QuoteDraft, itemID uuid.UUID) bool {
	for i := range draft.Items {
		if draft.Items[i].ID == itemID {
			draft.Items = append(draft.Items[:i], draft.Items[i+1:]...)
			return true
		}
	}
	return false
}

// recalcArea keeps CalculatedArea consistent with the item type: rooms with
// both dimensions get length x width, everything else has no area.
func recalcArea(item *models.LineItem) {
	if item.Type == models.ItemTypeRoom && item.Length > 0 && item.Width > 0 {
		item.CalculatedArea = item.Length * item.Width
		return
	}
	item.CalculatedArea = 0
}

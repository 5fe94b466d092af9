package services

import (
	"testing"

	"retrofit-backend/models"

	"github.com/google/uuid"
)

func strPtr(s string) *string        { return &s }
func floatPtr(f float64) *float64    { return &f }
func photosPtr(p []string) *[]string { return &p }

func validDraft() *models.QuoteDraft {
	return &models.QuoteDraft{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Step:       models.StepDetails,
		ClientName: "Jane Doe",
		PostalCode: "90210",
		Photos:     []string{"attic.jpg"},
		Items: []models.LineItem{
			{ID: uuid.New(), Type: models.ItemTypeRoom, Name: "Attic", Length: 10, Width: 12, CalculatedArea: 120, Price: 150},
		},
	}
}

func TestAdvanceValidSteps(t *testing.T) {
	draft := validDraft()

	for expected := models.StepPhotos; expected <= models.StepSummary; expected++ {
		if errs := Advance(draft, AdvanceInput{}); len(errs) > 0 {
			t.Fatalf("step %d: unexpected errors %v", draft.Step, errs)
		}
		if draft.Step != expected {
			t.Fatalf("Step = %d, want %d", draft.Step, expected)
		}
	}

	// Advancing past the final step must not move or fail.
	if errs := Advance(draft, AdvanceInput{}); len(errs) > 0 {
		t.Fatalf("final step: unexpected errors %v", errs)
	}
	if draft.Step != models.StepSummary {
		t.Errorf("Step = %d, want %d", draft.Step, models.StepSummary)
	}
}

func TestAdvanceDetailsValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     AdvanceInput
		wantField string
	}{
		{"missing client name", AdvanceInput{PostalCode: strPtr("90210")}, "client_name"},
		{"whitespace client name", AdvanceInput{ClientName: strPtr("   "), PostalCode: strPtr("90210")}, "client_name"},
		{"missing postal code", AdvanceInput{ClientName: strPtr("Jane Doe")}, "postal_code"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := &models.QuoteDraft{Step: models.StepDetails}
			errs := Advance(draft, tt.input)
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("errors = %v, want key %q", errs, tt.wantField)
			}
			if draft.Step != models.StepDetails {
				t.Errorf("Step advanced to %d on invalid input", draft.Step)
			}
		})
	}
}

func TestAdvanceKeepsMergedDataOnFailure(t *testing.T) {
	draft := &models.QuoteDraft{Step: models.StepDetails}

	errs := Advance(draft, AdvanceInput{ClientName: strPtr("  Jane Doe  ")})
	if len(errs) == 0 {
		t.Fatal("expected validation errors")
	}
	if draft.ClientName != "Jane Doe" {
		t.Errorf("ClientName = %q, want trimmed merge to survive", draft.ClientName)
	}
}

func TestAdvancePhotosRequired(t *testing.T) {
	draft := validDraft()
	draft.Step = models.StepPhotos
	draft.Photos = nil

	errs := Advance(draft, AdvanceInput{})
	if _, ok := errs["photos"]; !ok {
		t.Fatalf("errors = %v, want photos key", errs)
	}

	errs = Advance(draft, AdvanceInput{Photos: photosPtr([]string{"attic.jpg"})})
	if len(errs) > 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	if draft.Step != models.StepItems {
		t.Errorf("Step = %d, want %d", draft.Step, models.StepItems)
	}
}

func TestRetreat(t *testing.T) {
	draft := validDraft()
	draft.Step = models.StepItems

	if exit := Retreat(draft); exit {
		t.Fatal("Retreat from step 3 reported exit")
	}
	if draft.Step != models.StepPhotos {
		t.Errorf("Step = %d, want %d", draft.Step, models.StepPhotos)
	}

	draft.Step = models.StepDetails
	if exit := Retreat(draft); !exit {
		t.Error("Retreat from step 1 should report exit")
	}
	if draft.Step != models.StepDetails {
		t.Errorf("Step = %d, want unchanged", draft.Step)
	}
}

func TestValidateItems(t *testing.T) {
	tests := []struct {
		name        string
		item        models.LineItem
		wantMessage string
	}{
		{"room missing name", models.LineItem{Type: models.ItemTypeRoom, Length: 10, Width: 12}, "Name is required"},
		{"room missing length", models.LineItem{Type: models.ItemTypeRoom, Name: "Attic", Width: 12}, "Length is required"},
		{"room missing width", models.LineItem{Type: models.ItemTypeRoom, Name: "Attic", Length: 10}, "Width is required"},
		{"labor missing quantity", models.LineItem{Type: models.ItemTypeLabor, Name: "Install"}, "Quantity is required"},
		{"material missing quantity", models.LineItem{Type: models.ItemTypeMaterial, Name: "Batts"}, "Quantity is required"},
		{"service needs only a name", models.LineItem{Type: models.ItemTypeService, Name: "Inspection"}, ""},
		{"custom needs only a name", models.LineItem{Type: models.ItemTypeCustom, Name: "Disposal"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.item.ID = uuid.New()
			errs := ValidateItems([]models.LineItem{tt.item})
			got := errs[tt.item.ID.String()]
			if got != tt.wantMessage {
				t.Errorf("message = %q, want %q", got, tt.wantMessage)
			}
		})
	}
}

func TestValidateItemsEmpty(t *testing.T) {
	errs := ValidateItems(nil)
	if _, ok := errs["items"]; !ok {
		t.Errorf("errors = %v, want items key", errs)
	}
}

func TestValidateItemsKeysSurviveRemoval(t *testing.T) {
	draft := validDraft()
	good := draft.Items[0]
	bad := models.LineItem{ID: uuid.New(), Type: models.ItemTypeRoom, Name: "Basement"}
	extra := models.LineItem{ID: uuid.New(), Type: models.ItemTypeService, Name: "Inspection"}
	draft.Items = append(draft.Items, bad, extra)

	errs := ValidateItems(draft.Items)
	if errs[bad.ID.String()] != "Length is required" {
		t.Fatalf("errors = %v, want length message on %s", errs, bad.ID)
	}

	// Removing an unrelated item must not shift the error onto another item.
	if !RemoveItem(draft, extra.ID) {
		t.Fatal("RemoveItem failed")
	}
	errs = ValidateItems(draft.Items)
	if errs[bad.ID.String()] != "Length is required" {
		t.Errorf("errors = %v, message moved after removal", errs)
	}
	if _, ok := errs[good.ID.String()]; ok {
		t.Errorf("valid item %s picked up an error after removal", good.ID)
	}
}

func TestValidateCosts(t *testing.T) {
	priced := models.LineItem{ID: uuid.New(), Type: models.ItemTypeRoom, Name: "Attic", Price: 150}
	unpriced := models.LineItem{ID: uuid.New(), Type: models.ItemTypeService, Name: "Inspection"}

	errs := validateCosts([]models.LineItem{priced, unpriced})
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[unpriced.ID.String()] != "Price is required" {
		t.Errorf("errors = %v", errs)
	}
}

func TestValidateSummaryProjectNameFallsBackToClient(t *testing.T) {
	draft := &models.QuoteDraft{ClientName: "Jane Doe"}
	if errs := validateSummary(draft); len(errs) > 0 {
		t.Errorf("errors = %v, want project name to default to client name", errs)
	}
}

func TestValidateSave(t *testing.T) {
	ready := func() *models.QuoteDraft {
		d := validDraft()
		d.Step = models.StepSummary
		return d
	}

	t.Run("complete draft saves", func(t *testing.T) {
		if errs := ValidateSave(ready()); len(errs) > 0 {
			t.Errorf("errors = %v, want none", errs)
		}
	})

	t.Run("draft still mid-wizard is rejected", func(t *testing.T) {
		draft := validDraft()
		draft.Items[0].Price = 0

		errs := ValidateSave(draft)
		if _, ok := errs["step"]; !ok {
			t.Errorf("errors = %v, want step key for a step-1 draft", errs)
		}
	})

	t.Run("unpriced item is rejected on the final step", func(t *testing.T) {
		draft := ready()
		draft.Items[0].Price = 0

		errs := ValidateSave(draft)
		if errs[draft.Items[0].ID.String()] != "Price is required" {
			t.Errorf("errors = %v, want price message", errs)
		}
	})

	t.Run("incomplete item is rejected on the final step", func(t *testing.T) {
		draft := ready()
		draft.Items[0].Length = 0

		errs := ValidateSave(draft)
		if errs[draft.Items[0].ID.String()] != "Length is required" {
			t.Errorf("errors = %v, want length message", errs)
		}
	})

	t.Run("empty item list is rejected", func(t *testing.T) {
		draft := ready()
		draft.Items = nil

		errs := ValidateSave(draft)
		if _, ok := errs["items"]; !ok {
			t.Errorf("errors = %v, want items key", errs)
		}
	})
}

func TestAddItemDefaults(t *testing.T) {
	draft := &models.QuoteDraft{}
	item := AddItem(draft)

	if item.ID == uuid.Nil {
		t.Error("new item has no id")
	}
	if item.Type != models.ItemTypeRoom {
		t.Errorf("Type = %q, want room", item.Type)
	}
	if len(draft.Items) != 1 {
		t.Errorf("draft has %d items, want 1", len(draft.Items))
	}
}

func TestUpdateItemRecalculatesArea(t *testing.T) {
	draft := validDraft()
	id := draft.Items[0].ID

	item, ok := UpdateItem(draft, id, ItemUpdateInput{Length: floatPtr(8), Width: floatPtr(5)})
	if !ok {
		t.Fatal("UpdateItem failed")
	}
	if item.CalculatedArea != 40 {
		t.Errorf("CalculatedArea = %v, want 40", item.CalculatedArea)
	}

	// Clearing a dimension clears the derived area.
	item, _ = UpdateItem(draft, id, ItemUpdateInput{Width: floatPtr(0)})
	if item.CalculatedArea != 0 {
		t.Errorf("CalculatedArea = %v, want 0 with missing width", item.CalculatedArea)
	}

	// Non-room items never carry an area, even with dimensions set.
	item, _ = UpdateItem(draft, id, ItemUpdateInput{Type: strPtr(models.ItemTypeLabor), Width: floatPtr(5)})
	if item.CalculatedArea != 0 {
		t.Errorf("CalculatedArea = %v, want 0 for labor", item.CalculatedArea)
	}

	// Switching back recomputes from the kept dimensions.
	item, _ = UpdateItem(draft, id, ItemUpdateInput{Type: strPtr(models.ItemTypeRoom)})
	if item.CalculatedArea != 40 {
		t.Errorf("CalculatedArea = %v, want 40 after switching back to room", item.CalculatedArea)
	}
}

func TestUpdateItemRejectsUnknownType(t *testing.T) {
	draft := validDraft()
	id := draft.Items[0].ID

	item, ok := UpdateItem(draft, id, ItemUpdateInput{Type: strPtr("garage")})
	if !ok {
		t.Fatal("UpdateItem failed")
	}
	if item.Type != models.ItemTypeRoom {
		t.Errorf("Type = %q, unknown type should be ignored", item.Type)
	}
}

func TestUpdateItemMissing(t *testing.T) {
	draft := validDraft()
	if _, ok := UpdateItem(draft, uuid.New(), ItemUpdateInput{}); ok {
		t.Error("UpdateItem reported success for unknown id")
	}
}

func TestRemoveItem(t *testing.T) {
	draft := validDraft()
	second := AddItem(draft)

	if !RemoveItem(draft, second.ID) {
		t.Fatal("RemoveItem failed")
	}
	if len(draft.Items) != 1 {
		t.Fatalf("draft has %d items, want 1", len(draft.Items))
	}
	if RemoveItem(draft, second.ID) {
		t.Error("RemoveItem reported success twice for the same id")
	}
}

// Package services holds the quote core: pricing, wizard step validation,
// invoice rendering and the in-memory draft store. Everything here is pure
// or self-contained so it can be tested without a database.
package services

import (
	"fmt"

	"retrofit-backend/models"
)

// Program rates. The rebate is a mocked flat percentage: any non-empty
// postal code qualifies, no lookup service is integrated.
const (
	RebateRate = 0.15
	TaxRate    = 0.08

	InstallationHourlyRate = 50.0
)

// Units a preset rate can be expressed in.
const (
	UnitSqft = "sqft"
	UnitHour = "hour"
	UnitUnit = "unit"
)

// PriceOption is one quick-select pricing entry on the cost step.
type PriceOption struct {
	Label string  `json:"label"`
	Rate  float64 `json:"rate"`
	Unit  string  `json:"unit"`
}

// PriceOptions builds the quick-select list from a material catalog plus
// the installation labor rate. The catalog is injected so callers (and
// tests) can substitute arbitrary libraries.
func PriceOptions(materials []models.Material) []PriceOption {
	opts := make([]PriceOption, 0, len(materials)+1)
	for _, m := range materials {
		opts = append(opts, PriceOption{
			Label: fmt.Sprintf("%s $%.2f/sqft", m.Name, m.CostPerSqft),
			Rate:  m.CostPerSqft,
			Unit:  UnitSqft,
		})
	}
	opts = append(opts, PriceOption{
		Label: fmt.Sprintf("Installation rate $%.0f/hour", InstallationHourlyRate),
		Rate:  InstallationHourlyRate,
		Unit:  UnitHour,
	})
	return opts
}

// PriceFromPreset prices an item from a preset rate. Square-foot presets
// use the item's derived area (zero when the item has none); hourly and
// per-unit presets use the quantity, defaulting to 1 when absent.
func PriceFromPreset(item models.LineItem, rate float64, unit string) float64 {
	switch unit {
	case UnitSqft:
		return rate * item.CalculatedArea
	case UnitHour, UnitUnit:
		qty := item.Quantity
		if qty == 0 {
			qty = 1
		}
		return rate * qty
	default:
		return rate
	}
}

// PriceFromManualRate prices an item from a user-entered rate: rooms by
// area, items with a quantity by quantity, anything else takes the rate as
// a flat price.
func PriceFromManualRate(item models.LineItem, rate float64) float64 {
	if item.Type == models.ItemTypeRoom && item.CalculatedArea > 0 {
		return rate * item.CalculatedArea
	}
	if item.Quantity > 0 {
		return rate * item.Quantity
	}
	return rate
}

// ApplyPreset sets the item's price from a quick-select option.
func ApplyPreset(item *models.LineItem, opt PriceOption) {
	item.CostPerUnit = opt.Rate
	item.Price = PriceFromPreset(*item, opt.Rate, opt.Unit)
	item.PriceOption = opt.Label
}

// ApplyCustomRate sets the item's price from the "Custom..." rate entry.
func ApplyCustomRate(item *models.LineItem, rate float64) {
	item.CostPerUnit = rate
	item.Price = PriceFromManualRate(*item, rate)
	unit := "unit"
	if item.Type == models.ItemTypeRoom {
		unit = "sqft"
	}
	item.PriceOption = fmt.Sprintf("Custom: $%.2f/%s", rate, unit)
}

// ApplyDirectCost sets the item's price from the always-visible cost field.
func ApplyDirectCost(item *models.LineItem, costPerUnit float64) {
	item.CostPerUnit = costPerUnit
	item.Price = PriceFromManualRate(*item, costPerUnit)
	unit := "item"
	switch {
	case item.Type == models.ItemTypeRoom:
		unit = "sqft"
	case item.Quantity > 0:
		unit = "unit"
	}
	item.PriceOption = fmt.Sprintf("Manual: $%.2f/%s", costPerUnit, unit)
}

// QuoteTotals is fully derived from the items and the postal code flag.
// Values are kept unrounded; rounding to cents happens at render time.
type QuoteTotals struct {
	Subtotal   float64 `json:"subtotal"`
	TotalArea  float64 `json:"totalArea"`
	Rebate     float64 `json:"rebate"`
	Tax        float64 `json:"tax"`
	FinalTotal float64 `json:"finalTotal"`
}

// ComputeTotals aggregates item prices into the quote totals. The rebate
// applies iff a postal code is present.
func ComputeTotals(items []models.LineItem, hasPostalCode bool) QuoteTotals {
	var t QuoteTotals
	for _, item := range items {
		t.Subtotal += item.Price
		if item.Type == models.ItemTypeRoom {
			t.TotalArea += item.CalculatedArea
		}
	}
	if hasPostalCode {
		t.Rebate = t.Subtotal * RebateRate
	}
	t.Tax = (t.Subtotal - t.Rebate) * TaxRate
	t.FinalTotal = t.Subtotal - t.Rebate + t.Tax
	return t
}

// SplitCosts separates the subtotal into the labor and material components
// stored on the saved quote record. Labor items count as labor, everything
// else as material.
func SplitCosts(items []models.LineItem) (materialCost, laborCost float64) {
	for _, item := range items {
		if item.Type == models.ItemTypeLabor {
			laborCost += item.Price
		} else {
			materialCost += item.Price
		}
	}
	return
}

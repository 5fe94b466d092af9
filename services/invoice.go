package services

import (
	"fmt"
	"strings"

	"retrofit-backend/models"
)

// CompanyProfile is the issuing-company block printed on an invoice.
type CompanyProfile struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// InvoiceLine is one printable row of the invoice item table.
type InvoiceLine struct {
	Description string
	Qty         string
	UnitPrice   float64
	Total       float64
}

// Invoice is a fully resolved, printable quote. Every field is filled: the
// builder substitutes placeholders for anything the draft left blank.
type Invoice struct {
	Number      string
	Date        string
	Company     CompanyProfile
	ClientName  string
	ProjectName string
	Address     string
	ClientPhone string
	Lines       []InvoiceLine
	Totals      QuoteTotals
	Notes       string
}

func fallback(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// BuildInvoice resolves a draft and its totals into a printable invoice.
// Deterministic: the invoice number and date are supplied by the caller.
func BuildInvoice(draft models.QuoteDraft, totals QuoteTotals, company CompanyProfile, number, date string) Invoice {
	inv := Invoice{
		Number: number,
		Date:   date,
		Company: CompanyProfile{
			Name:    fallback(company.Name, "Your Company Name"),
			Address: fallback(company.Address, "Your Address"),
			Phone:   fallback(company.Phone, "Your Phone"),
			Email:   fallback(company.Email, "Your Email"),
		},
		ClientName:  fallback(draft.ClientName, "Client Name"),
		ProjectName: fallback(draft.EffectiveProjectName(), "Project Name"),
		Address:     fallback(draft.ProjectAddress, "Address"),
		ClientPhone: fallback(draft.ClientPhone, "Phone"),
		Totals:      totals,
		Notes:       draft.Notes,
	}

	for i, item := range draft.Items {
		inv.Lines = append(inv.Lines, buildLine(item, i))
	}
	return inv
}

// buildLine derives the printable quantity and unit price for one item:
// rooms are billed by area in sqft, labor by hours, materials by units,
// everything else as a single flat line.
func buildLine(item models.LineItem, index int) InvoiceLine {
	qty := "1"
	unit := ""
	basis := 1.0

	switch {
	case item.Type == models.ItemTypeRoom && item.CalculatedArea > 0:
		qty = fmt.Sprintf("%.2f", item.CalculatedArea)
		unit = "sqft"
		basis = item.CalculatedArea
	case item.Quantity > 0:
		qty = fmt.Sprintf("%g", item.Quantity)
		if item.Type == models.ItemTypeLabor {
			unit = "hours"
		} else {
			unit = "units"
		}
		basis = item.Quantity
	}

	unitPrice := item.CostPerUnit
	if unitPrice == 0 && basis > 0 {
		unitPrice = item.Price / basis
	}

	if unit != "" {
		qty = qty + " " + unit
	}

	return InvoiceLine{
		Description: fallback(item.Name, fmt.Sprintf("Item %d", index+1)),
		Qty:         qty,
		UnitPrice:   unitPrice,
		Total:       item.Price,
	}
}

// RenderShareText returns the short share-sheet summary for a quote.
func RenderShareText(draft models.QuoteDraft, totals QuoteTotals) string {
	return fmt.Sprintf("Quote for %s\nProject: %s\nTotal: $%.2f\n\nView full quote details in the Retrofit app.",
		fallback(draft.ClientName, "Client"),
		fallback(draft.EffectiveProjectName(), "Project"),
		totals.FinalTotal)
}

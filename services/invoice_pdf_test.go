package services

import (
	"bytes"
	"testing"

	"retrofit-backend/models"
)

func TestGenerateInvoicePDF(t *testing.T) {
	draft := models.QuoteDraft{
		ClientName:     "Jane Doe",
		ProjectName:    "Attic Retrofit",
		ProjectAddress: "12 Main St",
		PostalCode:     "90210",
		Items: []models.LineItem{
			{Type: models.ItemTypeRoom, Name: "Attic", CalculatedArea: 120, CostPerUnit: 1.25, Price: 150},
			{Type: models.ItemTypeLabor, Name: "Install", Quantity: 4, CostPerUnit: 50, Price: 200},
		},
		Notes: "Net 30.",
	}
	totals := ComputeTotals(draft.Items, true)
	inv := BuildInvoice(draft, totals, CompanyProfile{Name: "Acme Insulation"}, "INV-20260829-ABC123", "Aug 29, 2026")

	pdf, err := GenerateInvoicePDF(inv)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF(): %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("empty PDF output")
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Errorf("output does not start with PDF header, got %q", pdf[:8])
	}
}

func TestGenerateInvoicePDFNoItems(t *testing.T) {
	inv := BuildInvoice(models.QuoteDraft{}, QuoteTotals{}, CompanyProfile{}, "INV-1", "Aug 29, 2026")

	pdf, err := GenerateInvoicePDF(inv)
	if err != nil {
		t.Fatalf("GenerateInvoicePDF(): %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with PDF header")
	}
}

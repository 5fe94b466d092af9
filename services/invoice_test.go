package services

import (
	"reflect"
	"testing"

	"retrofit-backend/models"

	"github.com/google/uuid"
)

func TestBuildInvoicePlaceholders(t *testing.T) {
	inv := BuildInvoice(models.QuoteDraft{}, QuoteTotals{}, CompanyProfile{}, "INV-1", "Aug 29, 2026")

	if inv.Company.Name != "Your Company Name" {
		t.Errorf("Company.Name = %q", inv.Company.Name)
	}
	if inv.ClientName != "Client Name" {
		t.Errorf("ClientName = %q", inv.ClientName)
	}
	if inv.ProjectName != "Project Name" {
		t.Errorf("ProjectName = %q", inv.ProjectName)
	}
	if inv.Address != "Address" {
		t.Errorf("Address = %q", inv.Address)
	}
	if inv.ClientPhone != "Phone" {
		t.Errorf("ClientPhone = %q", inv.ClientPhone)
	}
}

func TestBuildInvoiceProjectNameFallsBackToClient(t *testing.T) {
	draft := models.QuoteDraft{ClientName: "Jane Doe"}
	inv := BuildInvoice(draft, QuoteTotals{}, CompanyProfile{}, "INV-1", "Aug 29, 2026")
	if inv.ProjectName != "Jane Doe" {
		t.Errorf("ProjectName = %q, want client name fallback", inv.ProjectName)
	}
}

func TestBuildInvoiceLines(t *testing.T) {
	tests := []struct {
		name   string
		item   models.LineItem
		expect InvoiceLine
	}{
		{
			"room billed by area",
			models.LineItem{Type: models.ItemTypeRoom, Name: "Attic", CalculatedArea: 120, CostPerUnit: 1.25, Price: 150},
			InvoiceLine{Description: "Attic", Qty: "120.00 sqft", UnitPrice: 1.25, Total: 150},
		},
		{
			"labor billed by hours",
			models.LineItem{Type: models.ItemTypeLabor, Name: "Install", Quantity: 4, CostPerUnit: 50, Price: 200},
			InvoiceLine{Description: "Install", Qty: "4 hours", UnitPrice: 50, Total: 200},
		},
		{
			"material billed by units",
			models.LineItem{Type: models.ItemTypeMaterial, Name: "Batts", Quantity: 3, CostPerUnit: 10, Price: 30},
			InvoiceLine{Description: "Batts", Qty: "3 units", UnitPrice: 10, Total: 30},
		},
		{
			"flat service line",
			models.LineItem{Type: models.ItemTypeService, Name: "Inspection", Price: 99},
			InvoiceLine{Description: "Inspection", Qty: "1", UnitPrice: 99, Total: 99},
		},
		{
			"unit price derived when absent",
			models.LineItem{Type: models.ItemTypeRoom, Name: "Basement", CalculatedArea: 100, Price: 250},
			InvoiceLine{Description: "Basement", Qty: "100.00 sqft", UnitPrice: 2.5, Total: 250},
		},
		{
			"unnamed item gets a numbered label",
			models.LineItem{Type: models.ItemTypeCustom, Price: 50},
			InvoiceLine{Description: "Item 1", Qty: "1", UnitPrice: 50, Total: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := models.QuoteDraft{Items: []models.LineItem{tt.item}}
			inv := BuildInvoice(draft, QuoteTotals{}, CompanyProfile{}, "INV-1", "Aug 29, 2026")
			if len(inv.Lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(inv.Lines))
			}
			if !reflect.DeepEqual(inv.Lines[0], tt.expect) {
				t.Errorf("line = %+v, want %+v", inv.Lines[0], tt.expect)
			}
		})
	}
}

func TestBuildInvoiceDeterministic(t *testing.T) {
	draft := models.QuoteDraft{
		ClientName: "Jane Doe",
		Items: []models.LineItem{
			{ID: uuid.New(), Type: models.ItemTypeRoom, Name: "Attic", CalculatedArea: 120, CostPerUnit: 1.25, Price: 150},
		},
	}
	totals := ComputeTotals(draft.Items, true)

	first := BuildInvoice(draft, totals, CompanyProfile{Name: "Acme Insulation"}, "INV-1", "Aug 29, 2026")
	second := BuildInvoice(draft, totals, CompanyProfile{Name: "Acme Insulation"}, "INV-1", "Aug 29, 2026")
	if !reflect.DeepEqual(first, second) {
		t.Error("BuildInvoice not deterministic for identical input")
	}
}

func TestRenderShareText(t *testing.T) {
	draft := models.QuoteDraft{ClientName: "Jane Doe", ProjectName: "Attic Retrofit"}
	totals := QuoteTotals{FinalTotal: 137.7}

	got := RenderShareText(draft, totals)
	want := "Quote for Jane Doe\nProject: Attic Retrofit\nTotal: $137.70\n\nView full quote details in the Retrofit app."
	if got != want {
		t.Errorf("RenderShareText() = %q, want %q", got, want)
	}
}

func TestRenderShareTextPlaceholders(t *testing.T) {
	got := RenderShareText(models.QuoteDraft{}, QuoteTotals{})
	want := "Quote for Client\nProject: Project\nTotal: $0.00\n\nView full quote details in the Retrofit app."
	if got != want {
		t.Errorf("RenderShareText() = %q, want %q", got, want)
	}
}

package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

var (
	brandColor  = &props.Color{Red: 124, Green: 211, Blue: 92}
	mutedColor  = &props.Color{Red: 107, Green: 114, Blue: 128}
	headerWhite = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// GenerateInvoicePDF renders the resolved invoice as an A4 PDF and returns
// the raw bytes.
func GenerateInvoicePDF(inv Invoice) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	addInvoiceHeader(m, inv)
	addInfoColumns(m, inv)
	addItemsTable(m, inv)
	addSummary(m, inv)
	addRemarks(m, inv)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addInvoiceHeader(m core.Maroto, inv Invoice) {
	headerCell := props.Cell{BackgroundColor: brandColor}

	m.AddRows(
		row.New(16).Add(
			col.New(8).Add(
				text.New("INVOICE", props.Text{
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: headerWhite,
					Top:   3,
				}),
			).WithStyle(&headerCell),
			col.New(4).Add(
				text.New(inv.Number, props.Text{
					Size:  11,
					Align: align.Right,
					Color: headerWhite,
					Top:   6,
				}),
			).WithStyle(&headerCell),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("DATE: %s", inv.Date), props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Right,
					Top:   2,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Payment terms (due on receipt, due in 30 days)", props.Text{
					Size:  8,
					Align: align.Center,
					Color: mutedColor,
				}),
			),
		),
	)
}

func addInfoColumns(m core.Maroto, inv Invoice) {
	heading := props.Text{Size: 9, Style: fontstyle.Bold, Color: brandColor}
	line := props.Text{Size: 9}

	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(text.New("COMPANY NAME", heading)),
			col.New(6).Add(text.New("BILL TO", heading)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(inv.Company.Name, line)),
			col.New(6).Add(text.New(inv.ClientName, line)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(inv.Company.Address, line)),
			col.New(6).Add(text.New(inv.ProjectName, line)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(inv.Company.Phone, line)),
			col.New(6).Add(text.New(inv.Address, line)),
		),
		row.New(5).Add(
			col.New(6).Add(text.New(inv.Company.Email, line)),
			col.New(6).Add(text.New(inv.ClientPhone, line)),
		),
		row.New(4),
	)
}

func addItemsTable(m core.Maroto, inv Invoice) {
	headerCell := props.Cell{BackgroundColor: brandColor}
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Color: headerWhite,
		Top:   1.5,
	}
	headerTextRight := headerText
	headerTextRight.Align = align.Right
	headerTextCenter := headerText
	headerTextCenter.Align = align.Center

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(text.New("DESCRIPTION", headerText)).WithStyle(&headerCell),
			col.New(3).Add(text.New("QTY", headerTextCenter)).WithStyle(&headerCell),
			col.New(2).Add(text.New("UNIT PRICE", headerTextRight)).WithStyle(&headerCell),
			col.New(2).Add(text.New("TOTAL", headerTextRight)).WithStyle(&headerCell),
		),
	)

	cell := props.Text{Size: 9, Top: 1.5}
	cellRight := cell
	cellRight.Align = align.Right
	cellCenter := cell
	cellCenter.Align = align.Center

	for _, l := range inv.Lines {
		m.AddRows(
			row.New(7).Add(
				col.New(5).Add(text.New(l.Description, cell)),
				col.New(3).Add(text.New(l.Qty, cellCenter)),
				col.New(2).Add(text.New(fmt.Sprintf("$ %.2f", l.UnitPrice), cellRight)),
				col.New(2).Add(text.New(fmt.Sprintf("$ %.2f", l.Total), cellRight)),
			),
		)
	}
}

func addSummary(m core.Maroto, inv Invoice) {
	label := props.Text{Size: 9, Align: align.Right, Style: fontstyle.Bold}
	value := props.Text{Size: 9, Align: align.Right}

	summaryRow := func(name, amount string) core.Row {
		return row.New(6).Add(
			col.New(8),
			col.New(2).Add(text.New(name, label)),
			col.New(2).Add(text.New(amount, value)),
		)
	}

	m.AddRows(row.New(4))
	m.AddRows(summaryRow("SUBTOTAL:", fmt.Sprintf("$ %.2f", inv.Totals.Subtotal)))

	if inv.Totals.Rebate > 0 {
		m.AddRows(summaryRow("DISCOUNT:", fmt.Sprintf("$ %.2f", inv.Totals.Rebate)))
		m.AddRows(summaryRow("LESS DISCOUNT:", fmt.Sprintf("$ %.2f", inv.Totals.Subtotal-inv.Totals.Rebate)))
	}

	m.AddRows(summaryRow("TAX RATE:", fmt.Sprintf("%.0f%%", TaxRate*100)))
	m.AddRows(summaryRow("TOTAL TAX:", fmt.Sprintf("$ %.2f", inv.Totals.Tax)))

	totalCell := props.Cell{BackgroundColor: brandColor}
	totalLabel := props.Text{Size: 11, Align: align.Right, Style: fontstyle.Bold, Color: headerWhite, Top: 2}
	m.AddRows(
		row.New(9).Add(
			col.New(8),
			col.New(2).Add(text.New("INVOICE TOTAL", totalLabel)).WithStyle(&totalCell),
			col.New(2).Add(text.New(fmt.Sprintf("$ %.2f", inv.Totals.FinalTotal), totalLabel)).WithStyle(&totalCell),
		),
	)
}

func addRemarks(m core.Maroto, inv Invoice) {
	m.AddRows(
		row.New(8),
		row.New(6).Add(
			col.New(12).Add(
				text.New("Remarks / Payment Instructions:", props.Text{Size: 9, Style: fontstyle.Bold}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New(inv.Notes, props.Text{Size: 9}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Make all checks payable to %s.", inv.Company.Name), props.Text{
					Size:  8,
					Color: mutedColor,
				}),
			),
		),
		row.New(10).Add(
			col.New(12).Add(
				text.New("Thank you for your business!", props.Text{
					Size:  11,
					Style: fontstyle.BoldItalic,
					Align: align.Center,
					Color: brandColor,
					Top:   4,
				}),
			),
		),
	)
}

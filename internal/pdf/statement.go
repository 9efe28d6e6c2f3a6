package pdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/revertpixels/CardReminder/internal/cycle"
	"github.com/revertpixels/CardReminder/internal/models"
)

// StatementGenerator renders a user's card list to a PDF.
type StatementGenerator struct{}

func NewStatementGenerator() *StatementGenerator {
	return &StatementGenerator{}
}

func (g *StatementGenerator) Generate(cards []*models.Card, now time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Card Statement Overview")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s", now.Format("02 Jan 2006")))
	pdf.Ln(12)

	header := []struct {
		label string
		width float64
	}{
		{"Bank", 50}, {"Ending", 20}, {"Network", 30},
		{"Billing Day", 25}, {"Due Day", 20}, {"Due In", 20}, {"Paid", 15},
	}
	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range header {
		pdf.CellFormat(h.width, 8, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	today := now.Day()
	pdf.SetFont("Helvetica", "", 10)
	for _, card := range cards {
		paid := "no"
		if card.PaidThisCycle {
			paid = "yes"
		}
		cells := []struct {
			text  string
			width float64
		}{
			{card.BankName, 50},
			{card.LastFour, 20},
			{card.Network, 30},
			{fmt.Sprintf("%d", card.BillingDay), 25},
			{fmt.Sprintf("%d", card.DueDay), 20},
			{fmt.Sprintf("%d days", cycle.DaysUntil(today, card.DueDay)), 20},
			{paid, 15},
		}
		for _, cell := range cells {
			pdf.CellFormat(cell.width, 8, cell.text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render statement pdf: %w", err)
	}
	return buf.Bytes(), nil
}

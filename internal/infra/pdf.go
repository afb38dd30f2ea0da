package infra

// pdf.go renders a daily report as a single A4 page with go-pdf/fpdf:
//   - Store and date header
//   - Sales breakdown (cash, card, total)
//   - Expenses and signed cash difference
//   - Raw anomalies payload, if any

import (
	"bytes"
	"fmt"

	"gestorcash/internal/model"

	"github.com/go-pdf/fpdf"
)

// RenderReportPDF returns the PDF bytes for report.
func RenderReportPDF(report *model.DailyReport) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "GestorCash - Daily report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Store %s  |  %s", report.StoreID, report.Date), "", 1, "L", false, 0, "")
	pdf.CellFormat(contentW, 6, "Generated "+report.GeneratedAt.Format("2006-01-02 15:04 MST"), "", 1, "L", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Figures ──────────────────────────────────────────────────────────────
	labelW := contentW * 0.6
	valueW := contentW * 0.4
	row := func(label, value string, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(labelW, 7, label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 7, value, "", 1, "R", false, 0, "")
	}

	row("Customers", fmt.Sprintf("%d", report.Customers), false)
	row("Cash sales", "$"+report.SalesCash.StringFixed(2), false)
	row("Card sales", "$"+report.SalesCard.StringFixed(2), false)
	row("Total sales", "$"+report.SalesCash.Add(report.SalesCard).StringFixed(2), true)
	pdf.Ln(2)
	row("Expenses", "$"+report.TotalExpenses.StringFixed(2), false)
	row("Cash difference", signed(report), true)

	// ── Anomalies ────────────────────────────────────────────────────────────
	if report.Anomalies != nil && *report.Anomalies != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(contentW, 7, "Anomalies", "", 1, "L", false, 0, "")
		pdf.SetFont("Courier", "", 8)
		pdf.MultiCell(contentW, 4, *report.Anomalies, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}

func signed(report *model.DailyReport) string {
	d := report.TotalDifference
	if d.IsPositive() {
		return "+$" + d.StringFixed(2)
	}
	if d.IsNegative() {
		return "-$" + d.Abs().StringFixed(2)
	}
	return "$0.00"
}

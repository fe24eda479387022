package infra

// pdf.go — monthly summary sheet using go-pdf/fpdf:
//   - Income / expense / net totals for the month
//   - Low-stock table (product, stock, minimum)

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/model"
)

// BuildMonthlySummaryPDF renders the month's financial totals and the current
// low-stock list. The caller decides the month; transactions outside it are
// ignored.
func BuildMonthlySummaryPDF(st *model.AppState, month time.Time) ([]byte, error) {
	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range st.Transactions {
		if t.Date.Year() != month.Year() || t.Date.Month() != month.Month() {
			continue
		}
		switch t.Type {
		case model.TransactionIncome:
			income = income.Add(t.Amount)
		case model.TransactionExpense:
			expense = expense.Add(t.Amount)
		}
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Evolution Beauty Center", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Reporte Mensual — %02d/%d", month.Month(), month.Year()), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── Totals ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Finanzas", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW/2, 6, "Ingresos", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "$"+income.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "Egresos", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 6, "$"+expense.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW/2, 7, "Balance", "T", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 7, "$"+income.Sub(expense).StringFixed(2), "T", 1, "R", false, 0, "")
	pdf.Ln(6)

	// ── Low-stock table ──────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Stock Bajo", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.5, 6, "Producto", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Stock", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Mínimo", "", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)

	low := 0
	for _, p := range st.Products {
		item, ok := st.Inventory[p.ID]
		if !ok || !item.LowStock() {
			continue
		}
		low++
		pdf.CellFormat(contentW*0.5, 5, p.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, fmt.Sprintf("%d", item.CurrentStock), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, fmt.Sprintf("%d", item.MinStock), "", 1, "R", false, 0, "")
	}
	if low == 0 {
		pdf.CellFormat(contentW, 5, "Sin alertas de stock", "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: %w", err)
	}
	return buf.Bytes(), nil
}

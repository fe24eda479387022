package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/spreadsheet"
)

func TestExportedProductsReimportCleanly(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	exp := NewExportService(st)
	imp := NewImportService(st)

	data, name, err := exp.Collection(ctx, TargetProducts)
	require.NoError(t, err)
	assert.Equal(t, "products.xlsx", name)

	rows, err := spreadsheet.ReadRows(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "P001", rows[0]["SKU"])
	assert.Equal(t, "Shampoo Reparador 500ml", rows[0]["Nombre"])

	// round trip: every exported row matches an existing entity
	report, err := imp.Run(ctx, TargetProducts, bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, report.Updated)
	assert.Equal(t, 0, report.Created)
	assert.Len(t, st.Current().Products, 2)
}

func TestExportUnknownCollection(t *testing.T) {
	exp := NewExportService(newTestStore(t))
	_, _, err := exp.Collection(context.Background(), "users")
	var unknown *ErrUnknownTarget
	assert.ErrorAs(t, err, &unknown)
}

func TestMonthlyReportSheets(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	exp := NewExportService(st)

	data, err := exp.MonthlyReport(ctx, time.Now())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	// seeded transaction t1 falls in the current month; no movements yet
	assert.Contains(t, sheets, "Finanzas")
	assert.Contains(t, sheets, "Inventario Actual")
	assert.NotContains(t, sheets, "Movimientos")

	rows, err := f.GetRows("Inventario Actual")
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + p1 + p2
	assert.Equal(t, "Stock Bajo", rows[2][5])
}

func TestMonthlyReportPDF(t *testing.T) {
	exp := NewExportService(newTestStore(t))

	data, err := exp.MonthlyReportPDF(context.Background(), time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

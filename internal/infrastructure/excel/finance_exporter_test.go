package excel_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/excel"
)

func sampleReport() *dto.FinanceReport {
	return &dto.FinanceReport{
		Invoices: []dto.InvoiceResponse{
			{ID: "inv-1", CaseCode: "G8835", TotalEGP: decimal.NewFromInt(2500), IssuedAt: "2026-01-09"},
			{ID: "inv-2", CaseCode: "E6514", TotalEGP: decimal.NewFromInt(1250), IssuedAt: "2026-01-06"},
		},
		Expenses: []dto.ExpenseResponse{
			{ID: "exp-1", Category: "Materials", AmountEGP: decimal.NewFromInt(12000), Vendor: "Zirconia World", Method: "Bank Transfer", Date: "2026-01-02"},
		},
		Monthly: []dto.MonthlyPoint{
			{Month: "Jan", Revenue: decimal.NewFromInt(3750), Expenses: decimal.NewFromInt(20000)},
		},
		TotalRevenue:  decimal.NewFromInt(3750),
		TotalExpenses: decimal.NewFromInt(20000),
		Profit:        decimal.NewFromInt(-16250),
	}
}

func TestExport_LibroLegibleConTresHojas(t *testing.T) {
	book, err := excel.NewFinanceExporter().Export(sampleReport())
	require.NoError(t, err)
	require.NotEmpty(t, book)

	f, err := excelize.OpenReader(bytes.NewReader(book))
	require.NoError(t, err, "el resultado debe ser un XLSX válido")
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Invoices")
	assert.Contains(t, sheets, "Expenses")
	assert.Contains(t, sheets, "Summary")

	caseCode, err := f.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "G8835", caseCode)

	vendor, err := f.GetCellValue("Expenses", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Zirconia World", vendor)

	month, err := f.GetCellValue("Summary", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Jan", month)
}

func TestExport_ReporteVacio(t *testing.T) {
	report := &dto.FinanceReport{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		Profit:        decimal.Zero,
	}
	book, err := excel.NewFinanceExporter().Export(report)
	require.NoError(t, err, "un reporte sin filas exporta solo cabeceras y totales")
	assert.NotEmpty(t, book)
}

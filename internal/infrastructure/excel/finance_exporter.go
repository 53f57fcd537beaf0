// Package excel genera el libro XLSX de la vista de finanzas.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
)

const (
	sheetInvoices = "Invoices"
	sheetExpenses = "Expenses"
	sheetSummary  = "Summary"
)

// FinanceExporter exportador del reporte financiero a XLSX.
// Tres hojas: facturas, gastos y un resumen con los mismos totales que
// muestra el panel (todo en EGP).
type FinanceExporter struct{}

// NewFinanceExporter construye el exportador.
func NewFinanceExporter() *FinanceExporter {
	return &FinanceExporter{}
}

// Export serializa el reporte como libro XLSX en memoria.
func (e *FinanceExporter) Export(report *dto.FinanceReport) ([]byte, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("crear estilo de cabecera: %w", err)
	}

	if err := e.writeInvoices(f, headerStyle, report.Invoices); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.writeExpenses(f, headerStyle, report.Expenses); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.writeSummary(f, headerStyle, report); err != nil {
		f.Close()
		return nil, err
	}

	// La primera hoja reemplaza a la Sheet1 por defecto.
	f.DeleteSheet("Sheet1")
	idx, err := f.GetSheetIndex(sheetInvoices)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("localizar hoja de facturas: %w", err)
	}
	f.SetActiveSheet(idx)

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("serializar libro: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("cerrar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *FinanceExporter) writeInvoices(f *excelize.File, style int, invoices []dto.InvoiceResponse) error {
	if _, err := f.NewSheet(sheetInvoices); err != nil {
		return fmt.Errorf("crear hoja de facturas: %w", err)
	}
	headers := []string{"Invoice ID", "Case Code", "Total (EGP)", "Issued At"}
	if err := writeHeader(f, sheetInvoices, style, headers); err != nil {
		return err
	}
	for i, inv := range invoices {
		row := i + 2
		cells := []any{inv.ID, inv.CaseCode, inv.TotalEGP.InexactFloat64(), inv.IssuedAt}
		if err := writeRow(f, sheetInvoices, row, cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetInvoices, "A", "D", 20)
}

func (e *FinanceExporter) writeExpenses(f *excelize.File, style int, expenses []dto.ExpenseResponse) error {
	if _, err := f.NewSheet(sheetExpenses); err != nil {
		return fmt.Errorf("crear hoja de gastos: %w", err)
	}
	headers := []string{"Expense ID", "Category", "Amount (EGP)", "Vendor", "Method", "Notes", "Date"}
	if err := writeHeader(f, sheetExpenses, style, headers); err != nil {
		return err
	}
	for i, exp := range expenses {
		row := i + 2
		cells := []any{exp.ID, exp.Category, exp.AmountEGP.InexactFloat64(), exp.Vendor, exp.Method, exp.Notes, exp.Date}
		if err := writeRow(f, sheetExpenses, row, cells); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheetExpenses, "A", "G", 20)
}

func (e *FinanceExporter) writeSummary(f *excelize.File, style int, report *dto.FinanceReport) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("crear hoja de resumen: %w", err)
	}
	headers := []string{"Month", "Revenue (EGP)", "Expenses (EGP)"}
	if err := writeHeader(f, sheetSummary, style, headers); err != nil {
		return err
	}
	row := 2
	for _, p := range report.Monthly {
		cells := []any{p.Month, p.Revenue.InexactFloat64(), p.Expenses.InexactFloat64()}
		if err := writeRow(f, sheetSummary, row, cells); err != nil {
			return err
		}
		row++
	}
	row++
	totals := [][2]any{
		{"Total Revenue", report.TotalRevenue.InexactFloat64()},
		{"Total Expenses", report.TotalExpenses.InexactFloat64()},
		{"Profit", report.Profit.InexactFloat64()},
	}
	for _, t := range totals {
		if err := writeRow(f, sheetSummary, row, []any{t[0], t[1]}); err != nil {
			return err
		}
		row++
	}
	return f.SetColWidth(sheetSummary, "A", "C", 20)
}

func writeHeader(f *excelize.File, sheet string, style int, headers []string) error {
	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("coordenadas de cabecera: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("escribir cabecera %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("estilo de cabecera %s: %w", cell, err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []any) error {
	for col, v := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("coordenadas de celda: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("escribir celda %s: %w", cell, err)
		}
	}
	return nil
}

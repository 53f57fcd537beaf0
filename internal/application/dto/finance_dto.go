package dto

import (
	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// ExpenseResponse gasto para el panel.
type ExpenseResponse struct {
	ID        string          `json:"id"`
	Category  string          `json:"category"`
	AmountEGP decimal.Decimal `json:"amountEgp"`
	Vendor    string          `json:"vendor"`
	Method    string          `json:"method"`
	Notes     string          `json:"notes,omitempty"`
	Date      string          `json:"date"`
}

// InvoiceResponse factura para el panel.
type InvoiceResponse struct {
	ID       string          `json:"id"`
	CaseID   string          `json:"caseId"`
	CaseCode string          `json:"caseCode"`
	TotalEGP decimal.Decimal `json:"totalEgp"`
	IssuedAt string          `json:"issuedAt"`
}

// MonthlyPoint punto de la serie mensual ingresos-vs-gastos del gráfico de barras.
type MonthlyPoint struct {
	Month    string          `json:"month"` // label corto: Jan, Feb, ...
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

// FinanceReport resumen financiero de la vista de finanzas.
type FinanceReport struct {
	Invoices      []InvoiceResponse `json:"invoices"`
	Expenses      []ExpenseResponse `json:"expenses"`
	Monthly       []MonthlyPoint    `json:"monthly"`
	TotalRevenue  decimal.Decimal   `json:"totalRevenue"`
	TotalExpenses decimal.Decimal   `json:"totalExpenses"`
	Profit        decimal.Decimal   `json:"profit"`
}

// ToExpenseResponse convierte la entidad al shape del panel.
func ToExpenseResponse(e entity.Expense) ExpenseResponse {
	date := ""
	if !e.Date.IsZero() {
		date = e.Date.Format(dateOnly)
	}
	return ExpenseResponse{
		ID:        e.ID,
		Category:  e.Category,
		AmountEGP: e.AmountEGP,
		Vendor:    e.Vendor,
		Method:    e.Method,
		Notes:     e.Notes,
		Date:      date,
	}
}

// ToInvoiceResponse convierte la entidad al shape del panel.
func ToInvoiceResponse(inv entity.Invoice) InvoiceResponse {
	issued := ""
	if !inv.IssuedAt.IsZero() {
		issued = inv.IssuedAt.Format(dateOnly)
	}
	return InvoiceResponse{
		ID:       inv.ID,
		CaseID:   inv.CaseID,
		CaseCode: inv.CaseCode,
		TotalEGP: inv.TotalEGP,
		IssuedAt: issued,
	}
}

// DashboardSummary tarjetas de la página de inicio del panel.
type DashboardSummary struct {
	TotalCases    int             `json:"totalCases"`
	OpenCases     int             `json:"openCases"`
	CasesByStage  []StageCount    `json:"casesByStage"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	Profit        decimal.Decimal `json:"profit"`
}

// StageCount casos por etapa, en el orden del flujo de producción.
type StageCount struct {
	Stage string `json:"stage"`
	Count int    `json:"count"`
}

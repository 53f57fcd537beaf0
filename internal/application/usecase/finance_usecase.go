package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// FinanceFilter filtros de la vista de finanzas. Los strings vacíos y las
// fechas nil significan "todos".
type FinanceFilter struct {
	From     *time.Time
	To       *time.Time
	DoctorID string
	CaseType string
	Material string
}

// FinanceUseCase agregación financiera: facturas unidas a su caso (por id),
// filtrado, serie mensual ingresos-vs-gastos y totales.
type FinanceUseCase struct {
	finance repository.FinanceRepository
	cases   repository.CaseRepository
}

// NewFinanceUseCase construye el caso de uso.
func NewFinanceUseCase(finance repository.FinanceRepository, cases repository.CaseRepository) *FinanceUseCase {
	return &FinanceUseCase{finance: finance, cases: cases}
}

// Report arma el reporte de la vista de finanzas.
//
// Las facturas sin caso asociado se descartan (no hay a qué doctor/material
// atribuirlas); los filtros de fecha acotan facturas por issuedAt y gastos por
// su fecha. profit = totalRevenue − totalExpenses.
func (uc *FinanceUseCase) Report(ctx context.Context, filter FinanceFilter) (*dto.FinanceReport, error) {
	invoices, err := uc.finance.ListInvoices(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := uc.finance.ListExpenses(ctx)
	if err != nil {
		return nil, err
	}
	cases, err := uc.cases.List(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]entity.LabCase, len(cases))
	for _, c := range cases {
		byID[c.ID] = c
	}

	var kept []entity.Invoice
	for _, inv := range invoices {
		related, ok := byID[inv.CaseID]
		if !ok {
			continue
		}
		if !inRange(inv.IssuedAt, filter.From, filter.To) {
			continue
		}
		if filter.DoctorID != "" && related.DoctorID != filter.DoctorID {
			continue
		}
		if filter.CaseType != "" && related.CaseType != filter.CaseType {
			continue
		}
		if filter.Material != "" && related.Material != filter.Material {
			continue
		}
		kept = append(kept, inv)
	}

	var keptExpenses []entity.Expense
	for _, exp := range expenses {
		if inRange(exp.Date, filter.From, filter.To) {
			keptExpenses = append(keptExpenses, exp)
		}
	}

	report := &dto.FinanceReport{
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	// Serie mensual: primero los ingresos en orden de emisión, luego los
	// gastos se acumulan sobre el mes existente o abren uno nuevo.
	monthIdx := make(map[string]int)
	for _, inv := range kept {
		report.TotalRevenue = report.TotalRevenue.Add(inv.TotalEGP)
		label := inv.IssuedAt.Format("Jan")
		if i, ok := monthIdx[label]; ok {
			report.Monthly[i].Revenue = report.Monthly[i].Revenue.Add(inv.TotalEGP)
		} else {
			monthIdx[label] = len(report.Monthly)
			report.Monthly = append(report.Monthly, dto.MonthlyPoint{
				Month:    label,
				Revenue:  inv.TotalEGP,
				Expenses: decimal.Zero,
			})
		}
		report.Invoices = append(report.Invoices, dto.ToInvoiceResponse(inv))
	}
	for _, exp := range keptExpenses {
		report.TotalExpenses = report.TotalExpenses.Add(exp.AmountEGP)
		label := exp.Date.Format("Jan")
		if i, ok := monthIdx[label]; ok {
			report.Monthly[i].Expenses = report.Monthly[i].Expenses.Add(exp.AmountEGP)
		} else {
			monthIdx[label] = len(report.Monthly)
			report.Monthly = append(report.Monthly, dto.MonthlyPoint{
				Month:    label,
				Revenue:  decimal.Zero,
				Expenses: exp.AmountEGP,
			})
		}
		report.Expenses = append(report.Expenses, dto.ToExpenseResponse(exp))
	}

	report.Profit = report.TotalRevenue.Sub(report.TotalExpenses)
	return report, nil
}

func inRange(t time.Time, from, to *time.Time) bool {
	if from != nil && t.Before(*from) {
		return false
	}
	if to != nil && t.After(*to) {
		return false
	}
	return true
}

package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// DashboardUseCase resumen para las tarjetas de la página de inicio:
// conteos de casos por etapa y totales financieros.
type DashboardUseCase struct {
	cases   repository.CaseRepository
	finance repository.FinanceRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(cases repository.CaseRepository, finance repository.FinanceRepository) *DashboardUseCase {
	return &DashboardUseCase{cases: cases, finance: finance}
}

// GetSummary arma el resumen. Un caso cuenta como abierto mientras no esté
// en "Final Delivered". Las tres consultas corren en paralelo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummary, error) {
	type casesResult struct {
		list []entity.LabCase
		err  error
	}
	type invoicesResult struct {
		list []entity.Invoice
		err  error
	}
	type expensesResult struct {
		list []entity.Expense
		err  error
	}

	casesCh := make(chan casesResult, 1)
	invoicesCh := make(chan invoicesResult, 1)
	expensesCh := make(chan expensesResult, 1)

	go func() {
		list, err := uc.cases.List(ctx)
		casesCh <- casesResult{list, err}
	}()
	go func() {
		list, err := uc.finance.ListInvoices(ctx)
		invoicesCh <- invoicesResult{list, err}
	}()
	go func() {
		list, err := uc.finance.ListExpenses(ctx)
		expensesCh <- expensesResult{list, err}
	}()

	cases := <-casesCh
	invoices := <-invoicesCh
	expenses := <-expensesCh
	if cases.err != nil {
		return nil, cases.err
	}
	if invoices.err != nil {
		return nil, invoices.err
	}
	if expenses.err != nil {
		return nil, expenses.err
	}

	summary := &dto.DashboardSummary{
		TotalCases:    len(cases.list),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	byStage := make(map[entity.Stage]int)
	for _, c := range cases.list {
		byStage[c.Stage]++
		if c.Stage != entity.StageFinalDelivered {
			summary.OpenCases++
		}
	}
	for _, st := range entity.CaseStages {
		summary.CasesByStage = append(summary.CasesByStage, dto.StageCount{
			Stage: string(st),
			Count: byStage[st],
		})
	}

	for _, inv := range invoices.list {
		summary.TotalRevenue = summary.TotalRevenue.Add(inv.TotalEGP)
	}
	for _, exp := range expenses.list {
		summary.TotalExpenses = summary.TotalExpenses.Add(exp.AmountEGP)
	}
	summary.Profit = summary.TotalRevenue.Sub(summary.TotalExpenses)

	return summary, nil
}

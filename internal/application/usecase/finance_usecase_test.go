package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/memory"
)

func newFinanceUC(store *memory.Store) *usecase.FinanceUseCase {
	return usecase.NewFinanceUseCase(store.Finance(), store.Cases())
}

// El escenario de referencia del panel: facturas 2500 + 1250 contra gastos
// 12000 + 8000 en enero.
func TestFinanceReport_EscenarioDeReferencia(t *testing.T) {
	store := memory.NewStore(memory.DefaultSeed())
	uc := newFinanceUC(store)

	report, err := uc.Report(context.Background(), usecase.FinanceFilter{})
	require.NoError(t, err)

	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(3750)),
		"ingresos 2500+1250, fue %s", report.TotalRevenue)
	assert.True(t, report.TotalExpenses.Equal(decimal.NewFromInt(20000)),
		"gastos 12000+8000, fue %s", report.TotalExpenses)
	assert.True(t, report.Profit.Equal(decimal.NewFromInt(-16250)),
		"profit = 3750-20000 = -16250, fue %s", report.Profit)

	assert.Len(t, report.Invoices, 2)
	assert.Len(t, report.Expenses, 2)

	require.Len(t, report.Monthly, 1, "todo cae en enero")
	jan := report.Monthly[0]
	assert.Equal(t, "Jan", jan.Month)
	assert.True(t, jan.Revenue.Equal(decimal.NewFromInt(3750)))
	assert.True(t, jan.Expenses.Equal(decimal.NewFromInt(20000)))
}

func TestFinanceReport_FacturaSinCasoSeDescarta(t *testing.T) {
	seed := memory.DefaultSeed()
	seed.Invoices = append(seed.Invoices, entity.Invoice{
		ID:       "inv-huerfana",
		CaseID:   "case-borrado",
		TotalEGP: decimal.NewFromInt(9999),
		IssuedAt: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	uc := newFinanceUC(memory.NewStore(seed))

	report, err := uc.Report(context.Background(), usecase.FinanceFilter{})
	require.NoError(t, err)
	assert.Len(t, report.Invoices, 2, "la factura sin caso no entra al reporte")
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(3750)),
		"la factura huérfana no suma ingresos")
}

func TestFinanceReport_FiltroPorDoctor(t *testing.T) {
	uc := newFinanceUC(memory.NewStore(memory.DefaultSeed()))

	report, err := uc.Report(context.Background(), usecase.FinanceFilter{DoctorID: "doc-1"})
	require.NoError(t, err)

	require.Len(t, report.Invoices, 1)
	assert.Equal(t, "G8835", report.Invoices[0].CaseCode)
	assert.True(t, report.TotalRevenue.Equal(decimal.NewFromInt(2500)))
	assert.Len(t, report.Expenses, 2, "el filtro de doctor no acota los gastos")
}

func TestFinanceReport_FiltroPorRangoDeFechas(t *testing.T) {
	uc := newFinanceUC(memory.NewStore(memory.DefaultSeed()))

	from := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)
	report, err := uc.Report(context.Background(), usecase.FinanceFilter{From: &from})
	require.NoError(t, err)

	// Solo inv-1 (9 ene) queda dentro; los dos gastos (2 y 5 ene) quedan fuera.
	require.Len(t, report.Invoices, 1)
	assert.Equal(t, "inv-1", report.Invoices[0].ID)
	assert.Empty(t, report.Expenses)
	assert.True(t, report.Profit.Equal(decimal.NewFromInt(2500)))
}

func TestFinanceReport_FiltroPorMaterial(t *testing.T) {
	uc := newFinanceUC(memory.NewStore(memory.DefaultSeed()))

	report, err := uc.Report(context.Background(), usecase.FinanceFilter{Material: "Veneer"})
	require.NoError(t, err)
	assert.Empty(t, report.Invoices, "ningún caso del seed usa Veneer")
	assert.True(t, report.TotalRevenue.IsZero())
}

func TestFinanceReport_SerieMensualMultiMes(t *testing.T) {
	seed := memory.DefaultSeed()
	seed.Expenses = append(seed.Expenses, entity.Expense{
		ID:        "exp-feb",
		Category:  "Rent",
		AmountEGP: decimal.NewFromInt(5000),
		Date:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	uc := newFinanceUC(memory.NewStore(seed))

	report, err := uc.Report(context.Background(), usecase.FinanceFilter{})
	require.NoError(t, err)

	require.Len(t, report.Monthly, 2)
	assert.Equal(t, "Jan", report.Monthly[0].Month, "los meses con ingresos van primero, en orden de emisión")
	assert.Equal(t, "Feb", report.Monthly[1].Month)
	assert.True(t, report.Monthly[1].Revenue.IsZero())
	assert.True(t, report.Monthly[1].Expenses.Equal(decimal.NewFromInt(5000)))
}

func TestFinanceReport_PropagaFalloDelGateway(t *testing.T) {
	store := memory.NewStore(memory.DefaultSeed())
	boom := errors.New("timeout remoto")
	store.FailWith("ListInvoices", boom)
	uc := newFinanceUC(store)

	_, err := uc.Report(context.Background(), usecase.FinanceFilter{})
	assert.ErrorIs(t, err, boom)
}

package repository

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// FinanceRepository puerto de lectura de gastos y facturas.
type FinanceRepository interface {
	ListExpenses(ctx context.Context) ([]entity.Expense, error)
	ListInvoices(ctx context.Context) ([]entity.Invoice, error)
	// GetInvoiceByID alimenta la exportación PDF; (nil, nil) si no existe.
	GetInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error)
}

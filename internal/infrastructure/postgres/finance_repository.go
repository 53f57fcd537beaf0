package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

var _ repository.FinanceRepository = (*FinanceRepo)(nil)

// FinanceRepo gateway de gastos y facturas sobre PostgreSQL.
// Las facturas se unen a su caso por case_id (clave foránea); el código del
// caso es solo un campo de display que sale del join.
type FinanceRepo struct {
	q   Querier
	log *logger.Logger
}

// NewFinanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFinanceRepository(q Querier, log *logger.Logger) *FinanceRepo {
	return &FinanceRepo{q: q, log: log}
}

// ListExpenses devuelve los gastos con su categoría, más recientes primero.
func (r *FinanceRepo) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	query := `
		SELECT e.id, c.name, e.category, e.amount_egp, e.vendor, e.method,
		       e.notes, e.expense_date
		FROM fin_expenses e
		LEFT JOIN fin_expense_categories c ON c.id = e.category_id
		ORDER BY e.expense_date DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch expenses")
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}
	defer rows.Close()

	var list []entity.Expense
	for rows.Next() {
		var raw mapper.ExpenseRow
		if err := rows.Scan(
			&raw.ID, &raw.CategoryName, &raw.Category, &raw.AmountEGP,
			&raw.Vendor, &raw.Method, &raw.Notes, &raw.ExpenseDate,
		); err != nil {
			return nil, fmt.Errorf("fetch expenses: scan: %w", err)
		}
		list = append(list, mapper.Expense(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch expenses")
		return nil, fmt.Errorf("fetch expenses: %w", err)
	}
	return list, nil
}

// ListInvoices devuelve las facturas con el código de su caso, más recientes primero.
func (r *FinanceRepo) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	query := `
		SELECT i.id, i.case_id, c.case_code, i.total_egp, i.issued_at
		FROM invoices i
		LEFT JOIN cases c ON c.id = i.case_id
		ORDER BY i.issued_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch invoices")
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	defer rows.Close()

	var list []entity.Invoice
	for rows.Next() {
		raw, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("fetch invoices: scan: %w", err)
		}
		list = append(list, mapper.Invoice(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch invoices")
		return nil, fmt.Errorf("fetch invoices: %w", err)
	}
	return list, nil
}

// GetInvoiceByID obtiene una factura. (nil, nil) si no existe.
func (r *FinanceRepo) GetInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error) {
	query := `
		SELECT i.id, i.case_id, c.case_code, i.total_egp, i.issued_at
		FROM invoices i
		LEFT JOIN cases c ON c.id = i.case_id
		WHERE i.id = $1`
	raw, err := scanInvoice(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Str("invoice_id", id).Msg("fetch invoice")
		return nil, fmt.Errorf("fetch invoice: %w", err)
	}
	inv := mapper.Invoice(raw)
	return &inv, nil
}

func scanInvoice(row pgx.Row) (mapper.InvoiceRow, error) {
	var raw mapper.InvoiceRow
	err := row.Scan(&raw.ID, &raw.CaseID, &raw.CaseCode, &raw.TotalEGP, &raw.IssuedAt)
	return raw, err
}

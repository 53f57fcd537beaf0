package postgres

import (
	"context"
	"fmt"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

var _ repository.StaffRepository = (*StaffRepo)(nil)

// StaffRepo gateway de empleados y nómina sobre PostgreSQL.
type StaffRepo struct {
	q   Querier
	log *logger.Logger
}

// NewStaffRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStaffRepository(q Querier, log *logger.Logger) *StaffRepo {
	return &StaffRepo{q: q, log: log}
}

// ListEmployees devuelve los empleados ordenados por nombre.
func (r *StaffRepo) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	query := `
		SELECT id, full_name, role, salary_type, active
		FROM hr_employees
		ORDER BY full_name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch employees")
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	defer rows.Close()

	var list []entity.Employee
	for rows.Next() {
		var raw mapper.EmployeeRow
		if err := rows.Scan(&raw.ID, &raw.FullName, &raw.Role, &raw.SalaryType, &raw.Active); err != nil {
			return nil, fmt.Errorf("fetch employees: scan: %w", err)
		}
		list = append(list, mapper.Employee(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch employees")
		return nil, fmt.Errorf("fetch employees: %w", err)
	}
	return list, nil
}

// ListPayrollRecords devuelve los pagos de nómina, más recientes primero.
func (r *StaffRepo) ListPayrollRecords(ctx context.Context) ([]entity.PayrollRecord, error) {
	query := `
		SELECT id, employee_id, period_start, period_end, amount_egp, method, paid_at
		FROM hr_payroll_payments
		ORDER BY paid_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch payroll records")
		return nil, fmt.Errorf("fetch payroll records: %w", err)
	}
	defer rows.Close()

	var list []entity.PayrollRecord
	for rows.Next() {
		var raw mapper.PayrollRow
		if err := rows.Scan(
			&raw.ID, &raw.EmployeeID, &raw.PeriodStart, &raw.PeriodEnd,
			&raw.AmountEGP, &raw.Method, &raw.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("fetch payroll records: scan: %w", err)
		}
		list = append(list, mapper.Payroll(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch payroll records")
		return nil, fmt.Errorf("fetch payroll records: %w", err)
	}
	return list, nil
}

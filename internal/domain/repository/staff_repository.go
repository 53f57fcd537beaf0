package repository

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// StaffRepository puerto de lectura de empleados y nómina.
type StaffRepository interface {
	ListEmployees(ctx context.Context) ([]entity.Employee, error)
	ListPayrollRecords(ctx context.Context) ([]entity.PayrollRecord, error)
}

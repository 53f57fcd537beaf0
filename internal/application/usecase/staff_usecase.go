package usecase

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// StaffUseCase lectura de empleados y nómina para la página del panel.
type StaffUseCase struct {
	repo repository.StaffRepository
}

// NewStaffUseCase construye el caso de uso.
func NewStaffUseCase(repo repository.StaffRepository) *StaffUseCase {
	return &StaffUseCase{repo: repo}
}

// Overview arma la respuesta combinada de empleados y pagos de nómina.
func (uc *StaffUseCase) Overview(ctx context.Context) (*dto.StaffOverview, error) {
	employees, err := uc.repo.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	payroll, err := uc.repo.ListPayrollRecords(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StaffOverview{
		Employees: dto.ToEmployeeResponses(employees),
		Payroll:   dto.ToPayrollResponses(payroll),
	}, nil
}

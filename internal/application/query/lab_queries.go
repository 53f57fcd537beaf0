package query

import (
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// LabQueries fábrica de recursos atados al gateway. Cada llamada construye un
// recurso nuevo e independiente (una "instancia de vista"): no hay estado
// compartido entre recursos.
type LabQueries struct {
	cases     repository.CaseRepository
	doctors   repository.DoctorRepository
	finance   repository.FinanceRepository
	inventory repository.InventoryRepository
	staff     repository.StaffRepository
}

// NewLabQueries construye la fábrica con los puertos del gateway.
func NewLabQueries(
	cases repository.CaseRepository,
	doctors repository.DoctorRepository,
	finance repository.FinanceRepository,
	inventory repository.InventoryRepository,
	staff repository.StaffRepository,
) *LabQueries {
	return &LabQueries{
		cases:     cases,
		doctors:   doctors,
		finance:   finance,
		inventory: inventory,
		staff:     staff,
	}
}

// Cases recurso del listado de casos.
func (q *LabQueries) Cases() *Resource[[]entity.LabCase] {
	return New(q.cases.List)
}

// CaseByID recurso parametrizado de un caso; (nil, nil) del gateway significa no encontrado.
func (q *LabQueries) CaseByID() *KeyedResource[*entity.LabCase] {
	return NewKeyed(q.cases.GetByID)
}

// Doctors recurso del listado de doctores.
func (q *LabQueries) Doctors() *Resource[[]entity.Doctor] {
	return New(q.doctors.List)
}

// DoctorByID recurso parametrizado de un doctor.
func (q *LabQueries) DoctorByID() *KeyedResource[*entity.Doctor] {
	return NewKeyed(q.doctors.GetByID)
}

// DoctorCases recurso parametrizado de los casos de un doctor.
func (q *LabQueries) DoctorCases() *KeyedResource[[]entity.LabCase] {
	return NewKeyed(q.cases.ListByDoctor)
}

// FinanceQueries par de recursos hermanos para la vista de finanzas.
// Los estados son independientes: el llamador combina Loading/Err con OR lógico.
type FinanceQueries struct {
	Expenses *Resource[[]entity.Expense]
	Invoices *Resource[[]entity.Invoice]
}

// Finance construye el par de recursos de finanzas.
func (q *LabQueries) Finance() FinanceQueries {
	return FinanceQueries{
		Expenses: New(q.finance.ListExpenses),
		Invoices: New(q.finance.ListInvoices),
	}
}

// InventoryQueries par de recursos hermanos para la vista de inventario.
type InventoryQueries struct {
	Products  *Resource[[]entity.InventoryProduct]
	Movements *Resource[[]entity.InventoryMovement]
}

// Inventory construye el par de recursos de inventario.
func (q *LabQueries) Inventory() InventoryQueries {
	return InventoryQueries{
		Products:  New(q.inventory.ListProducts),
		Movements: New(q.inventory.ListMovements),
	}
}

// StaffQueries par de recursos hermanos para la vista de empleados.
type StaffQueries struct {
	Employees *Resource[[]entity.Employee]
	Payroll   *Resource[[]entity.PayrollRecord]
}

// Staff construye el par de recursos de personal.
func (q *LabQueries) Staff() StaffQueries {
	return StaffQueries{
		Employees: New(q.staff.ListEmployees),
		Payroll:   New(q.staff.ListPayrollRecords),
	}
}

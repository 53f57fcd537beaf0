package memory

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// Vistas por puerto sobre el mismo Store. Un solo tipo no puede implementar
// CaseRepository y DoctorRepository a la vez (List colisiona), así que cada
// puerto se expone con su propio adaptador.

type caseGateway struct{ s *Store }
type doctorGateway struct{ s *Store }
type financeGateway struct{ s *Store }
type inventoryGateway struct{ s *Store }
type staffGateway struct{ s *Store }

var (
	_ repository.CaseRepository      = (*caseGateway)(nil)
	_ repository.DoctorRepository    = (*doctorGateway)(nil)
	_ repository.FinanceRepository   = (*financeGateway)(nil)
	_ repository.InventoryRepository = (*inventoryGateway)(nil)
	_ repository.StaffRepository     = (*staffGateway)(nil)
)

// Cases devuelve la vista del store como puerto de casos.
func (s *Store) Cases() repository.CaseRepository { return &caseGateway{s} }

// Doctors devuelve la vista del store como puerto de doctores.
func (s *Store) Doctors() repository.DoctorRepository { return &doctorGateway{s} }

// Finance devuelve la vista del store como puerto de finanzas.
func (s *Store) Finance() repository.FinanceRepository { return &financeGateway{s} }

// Inventory devuelve la vista del store como puerto de inventario.
func (s *Store) Inventory() repository.InventoryRepository { return &inventoryGateway{s} }

// Staff devuelve la vista del store como puerto de personal.
func (s *Store) Staff() repository.StaffRepository { return &staffGateway{s} }

func (g *caseGateway) List(ctx context.Context) ([]entity.LabCase, error) {
	return g.s.listCases()
}

func (g *caseGateway) GetByID(ctx context.Context, id string) (*entity.LabCase, error) {
	return g.s.caseByID(id)
}

func (g *caseGateway) ListByDoctor(ctx context.Context, doctorID string) ([]entity.LabCase, error) {
	return g.s.casesByDoctor(doctorID)
}

func (g *caseGateway) Update(ctx context.Context, id string, upd entity.CaseUpdate) (*entity.LabCase, error) {
	return g.s.updateCase(id, upd)
}

func (g *doctorGateway) List(ctx context.Context) ([]entity.Doctor, error) {
	return g.s.listDoctors()
}

func (g *doctorGateway) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return g.s.doctorByID(id)
}

func (g *financeGateway) ListExpenses(ctx context.Context) ([]entity.Expense, error) {
	return g.s.listExpenses()
}

func (g *financeGateway) ListInvoices(ctx context.Context) ([]entity.Invoice, error) {
	return g.s.listInvoices()
}

func (g *financeGateway) GetInvoiceByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return g.s.invoiceByID(id)
}

func (g *inventoryGateway) ListProducts(ctx context.Context) ([]entity.InventoryProduct, error) {
	return g.s.listProducts()
}

func (g *inventoryGateway) ListMovements(ctx context.Context) ([]entity.InventoryMovement, error) {
	return g.s.listMovements()
}

func (g *staffGateway) ListEmployees(ctx context.Context) ([]entity.Employee, error) {
	return g.s.listEmployees()
}

func (g *staffGateway) ListPayrollRecords(ctx context.Context) ([]entity.PayrollRecord, error) {
	return g.s.listPayroll()
}

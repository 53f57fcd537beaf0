// Package memory implementa los puertos del gateway sobre fixtures en
// memoria. El seed se inyecta por constructor y vive lo que vive el Store
// (uno por test o por proceso demo): nada de arrays globales mutables
// compartidos entre corridas.
package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// Variant variante de inventario del seed; el stock no se declara, se deriva
// del libro de movimientos igual que en el almacén real.
type Variant struct {
	ID           string
	Name         string
	Category     string
	UnitPriceEGP decimal.Decimal
	Location     string
}

// Seed fixtures con los que se construye un Store.
type Seed struct {
	Doctors   []entity.Doctor
	Cases     []entity.LabCase
	Expenses  []entity.Expense
	Invoices  []entity.Invoice
	Variants  []Variant
	Movements []entity.InventoryMovement
	Employees []entity.Employee
	Payroll   []entity.PayrollRecord
}

// Store gateway en memoria. Seguro para uso concurrente. Los puertos se
// obtienen con Cases(), Doctors(), Finance(), Inventory() y Staff().
type Store struct {
	mu       sync.RWMutex
	seed     Seed
	failures map[string]error
	now      func() time.Time
}

// NewStore construye el store con el seed dado.
func NewStore(seed Seed) *Store {
	return &Store{
		seed:     seed,
		failures: make(map[string]error),
		now:      time.Now,
	}
}

// FailWith hace que la operación indicada (p.ej. "ListCases", "GetCaseByID")
// devuelva err hasta que se llame con err nil. Simula fallos de transporte en tests.
func (s *Store) FailWith(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

// SetClock fija el reloj usado para estampar updated_at (tests).
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// failure se lee bajo el lock del llamador.
func (s *Store) failure(op string) error {
	return s.failures[op]
}

// ── Casos ─────────────────────────────────────────────────────────────────────

func (s *Store) listCases() ([]entity.LabCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListCases"); err != nil {
		return nil, err
	}
	out := make([]entity.LabCase, len(s.seed.Cases))
	copy(out, s.seed.Cases)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) caseByID(id string) (*entity.LabCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetCaseByID"); err != nil {
		return nil, err
	}
	for _, c := range s.seed.Cases {
		if c.ID == id {
			cc := c
			return &cc, nil
		}
	}
	return nil, nil
}

func (s *Store) casesByDoctor(doctorID string) ([]entity.LabCase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListDoctorCases"); err != nil {
		return nil, err
	}
	var out []entity.LabCase
	for _, c := range s.seed.Cases {
		if c.DoctorID == doctorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) updateCase(id string, upd entity.CaseUpdate) (*entity.LabCase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failure("UpdateCase"); err != nil {
		return nil, err
	}
	for i := range s.seed.Cases {
		if s.seed.Cases[i].ID != id {
			continue
		}
		c := &s.seed.Cases[i]
		if upd.Material != nil {
			c.Material = *upd.Material
		}
		if upd.Units != nil {
			c.Units = *upd.Units
		}
		if upd.PriceEGP != nil {
			c.PriceEGP = *upd.PriceEGP
		}
		if upd.DueDate != nil {
			c.DueDate = *upd.DueDate
		}
		if upd.Stage != nil {
			c.Stage = *upd.Stage
		}
		if upd.Shade != nil {
			c.Shade = *upd.Shade
		}
		if upd.Notes != nil {
			c.Notes = *upd.Notes
		}
		c.UpdatedAt = s.now()
		cc := *c
		return &cc, nil
	}
	return nil, nil
}

// ── Doctores ──────────────────────────────────────────────────────────────────

func (s *Store) listDoctors() ([]entity.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListDoctors"); err != nil {
		return nil, err
	}
	out := make([]entity.Doctor, len(s.seed.Doctors))
	copy(out, s.seed.Doctors)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (s *Store) doctorByID(id string) (*entity.Doctor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetDoctorByID"); err != nil {
		return nil, err
	}
	for _, d := range s.seed.Doctors {
		if d.ID == id {
			dd := d
			return &dd, nil
		}
	}
	return nil, nil
}

// ── Finanzas ──────────────────────────────────────────────────────────────────

func (s *Store) listExpenses() ([]entity.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListExpenses"); err != nil {
		return nil, err
	}
	out := make([]entity.Expense, len(s.seed.Expenses))
	copy(out, s.seed.Expenses)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *Store) listInvoices() ([]entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListInvoices"); err != nil {
		return nil, err
	}
	out := make([]entity.Invoice, len(s.seed.Invoices))
	copy(out, s.seed.Invoices)
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssuedAt.After(out[j].IssuedAt) })
	return out, nil
}

func (s *Store) invoiceByID(id string) (*entity.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("GetInvoiceByID"); err != nil {
		return nil, err
	}
	for _, inv := range s.seed.Invoices {
		if inv.ID == id {
			cc := inv
			return &cc, nil
		}
	}
	return nil, nil
}

// ── Inventario ────────────────────────────────────────────────────────────────

// listProducts deriva el stock de cada variante sumando su libro de
// movimientos; cero movimientos es stock 0, no un error.
func (s *Store) listProducts() ([]entity.InventoryProduct, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListInventoryProducts"); err != nil {
		return nil, err
	}
	sums := make(map[string]int)
	for _, m := range s.seed.Movements {
		sums[m.ProductID] += m.Quantity
	}
	out := make([]entity.InventoryProduct, 0, len(s.seed.Variants))
	for _, v := range s.seed.Variants {
		out = append(out, entity.InventoryProduct{
			ID:              v.ID,
			Name:            v.Name,
			Category:        v.Category,
			UnitPriceEGP:    v.UnitPriceEGP,
			QuantityInStock: sums[v.ID],
			Location:        v.Location,
		})
	}
	return out, nil
}

func (s *Store) listMovements() ([]entity.InventoryMovement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListInventoryMovements"); err != nil {
		return nil, err
	}
	out := make([]entity.InventoryMovement, len(s.seed.Movements))
	copy(out, s.seed.Movements)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > repository.MovementPageSize {
		out = out[:repository.MovementPageSize]
	}
	return out, nil
}

// ── Personal ──────────────────────────────────────────────────────────────────

func (s *Store) listEmployees() ([]entity.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListEmployees"); err != nil {
		return nil, err
	}
	out := make([]entity.Employee, len(s.seed.Employees))
	copy(out, s.seed.Employees)
	sort.SliceStable(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

func (s *Store) listPayroll() ([]entity.PayrollRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failure("ListPayrollRecords"); err != nil {
		return nil, err
	}
	out := make([]entity.PayrollRecord, len(s.seed.Payroll))
	copy(out, s.seed.Payroll)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PaidAt.After(out[j].PaidAt) })
	return out, nil
}

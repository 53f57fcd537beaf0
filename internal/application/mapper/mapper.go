// Package mapper traduce los registros crudos del almacén (snake_case, joins
// anidables y por tanto opcionales) a las entidades desnormalizadas del panel.
//
// Todas las funciones son puras y totales: un campo opcional ausente produce
// el fallback documentado (string vacío, cero, "general", "Private Clinic",
// "Main Storage", "N/A", "Unknown"), nunca un error ni un panic. Los tipos
// *Row declaran explícitamente qué columnas pueden venir en NULL — la forma
// cruda de cada consulta queda tipada en la frontera del gateway.
package mapper

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// ── Casos ─────────────────────────────────────────────────────────────────────

// CaseRow registro crudo de la consulta de casos con join a doctors.
// Los punteros son columnas nullable o campos del join que puede no resolver.
type CaseRow struct {
	ID            string
	CaseCode      *string
	PatientName   *string
	PatientID     *string
	DoctorID      *string
	DoctorName    *string // doctors.full_name (join)
	DoctorCode    *string // doctors.doctor_code (join)
	CaseType      *string
	Material      *string
	Shade         *string
	Units         *int
	PriceEGP      *decimal.Decimal
	DueDate       *time.Time
	Stage         *string
	Notes         *string
	StatusHistory []byte
	CreatedAt     *time.Time
	UpdatedAt     *time.Time
}

// Case mapea un registro crudo de caso a la entidad del panel.
// Un join de doctor sin resolver deja nombre y código vacíos.
func Case(row CaseRow) entity.LabCase {
	return entity.LabCase{
		ID:            row.ID,
		CaseCode:      str(row.CaseCode),
		PatientName:   str(row.PatientName),
		PatientID:     str(row.PatientID),
		DoctorID:      str(row.DoctorID),
		DoctorName:    str(row.DoctorName),
		DoctorCode:    str(row.DoctorCode),
		CaseType:      str(row.CaseType),
		Material:      str(row.Material),
		Shade:         str(row.Shade),
		Units:         num(row.Units),
		PriceEGP:      money(row.PriceEGP),
		DueDate:       date(row.DueDate),
		Stage:         entity.Stage(str(row.Stage)),
		Notes:         str(row.Notes),
		StatusHistory: json.RawMessage(row.StatusHistory),
		CreatedAt:     date(row.CreatedAt),
		UpdatedAt:     date(row.UpdatedAt),
	}
}

// ── Doctores ──────────────────────────────────────────────────────────────────

// DoctorRow registro crudo de doctors.
type DoctorRow struct {
	ID            string
	FullName      *string
	DoctorCode    *string
	Email         *string
	PrimaryPhone  *string
	Phone         *string // columna legada; se usa si primary_phone viene en NULL
	WorkplaceType *string
	WorkplaceName *string
}

// Doctor mapea un doctor crudo. El descriptor de lugar de trabajo se deriva:
// con nombre presente -> "{tipo|Clinic} - {nombre}"; sin nombre -> el tipo;
// sin nada -> "Private Clinic".
func Doctor(row DoctorRow) entity.Doctor {
	workplace := "Private Clinic"
	switch {
	case str(row.WorkplaceName) != "":
		wtype := str(row.WorkplaceType)
		if wtype == "" {
			wtype = "Clinic"
		}
		workplace = wtype + " - " + str(row.WorkplaceName)
	case str(row.WorkplaceType) != "":
		workplace = str(row.WorkplaceType)
	}

	phone := str(row.PrimaryPhone)
	if phone == "" {
		phone = str(row.Phone)
	}

	return entity.Doctor{
		ID:         row.ID,
		FullName:   str(row.FullName),
		DoctorCode: str(row.DoctorCode),
		Email:      str(row.Email),
		Phone:      phone,
		Workplace:  workplace,
	}
}

// ── Finanzas ──────────────────────────────────────────────────────────────────

// ExpenseRow registro crudo de fin_expenses con join al catálogo de categorías.
type ExpenseRow struct {
	ID           string
	CategoryName *string // fin_expense_categories.name (join)
	Category     *string // columna inline legada
	AmountEGP    *decimal.Decimal
	Vendor       *string
	Method       *string
	Notes        *string
	ExpenseDate  *time.Time
}

// Expense mapea un gasto crudo. Categoría: join, si no la columna inline,
// si no "Uncategorized".
func Expense(row ExpenseRow) entity.Expense {
	category := str(row.CategoryName)
	if category == "" {
		category = str(row.Category)
	}
	if category == "" {
		category = "Uncategorized"
	}
	return entity.Expense{
		ID:        row.ID,
		Category:  category,
		AmountEGP: money(row.AmountEGP),
		Vendor:    str(row.Vendor),
		Method:    str(row.Method),
		Notes:     str(row.Notes),
		Date:      date(row.ExpenseDate),
	}
}

// InvoiceRow registro crudo de invoices con join a cases por case_id.
type InvoiceRow struct {
	ID       string
	CaseID   *string
	CaseCode *string // cases.case_code (join)
	TotalEGP *decimal.Decimal
	IssuedAt *time.Time
}

// Invoice mapea una factura cruda; un join de caso sin resolver deja el código vacío.
func Invoice(row InvoiceRow) entity.Invoice {
	return entity.Invoice{
		ID:       row.ID,
		CaseID:   str(row.CaseID),
		CaseCode: str(row.CaseCode),
		TotalEGP: money(row.TotalEGP),
		IssuedAt: date(row.IssuedAt),
	}
}

// ── Inventario ────────────────────────────────────────────────────────────────

// VariantRow registro crudo de inv_variants con join al producto padre y la
// suma agrupada del libro de movimientos.
type VariantRow struct {
	ID           string
	VariantName  *string
	ProductName  *string // inv_products.name (join)
	Category     *string // inv_products.category (join)
	UnitPriceEGP *decimal.Decimal
	Location     *string
	QuantitySum  *int // COALESCE(SUM(qty), 0); nil solo si la consulta no agregó
}

// InventoryProduct mapea una variante cruda. Nombre: el de la variante, si no
// el del producto padre, si no "Unknown"; categoría -> "general"; ubicación ->
// "Main Storage"; sin movimientos el stock es 0, no un error.
func InventoryProduct(row VariantRow) entity.InventoryProduct {
	name := str(row.VariantName)
	if name == "" {
		name = str(row.ProductName)
	}
	if name == "" {
		name = "Unknown"
	}
	category := str(row.Category)
	if category == "" {
		category = "general"
	}
	location := str(row.Location)
	if location == "" {
		location = "Main Storage"
	}
	return entity.InventoryProduct{
		ID:              row.ID,
		Name:            name,
		Category:        category,
		UnitPriceEGP:    money(row.UnitPriceEGP),
		QuantityInStock: num(row.QuantitySum),
		Location:        location,
	}
}

// MovementRow registro crudo de inv_stock_moves con join a la variante.
type MovementRow struct {
	ID          string
	VariantID   *string
	VariantName *string // inv_variants.variant_name (join)
	ProductName *string // columna legada de respaldo
	Quantity    *int
	MoveType    *string
	MovedAt     *time.Time
}

// InventoryMovement mapea un asiento crudo del libro de stock.
func InventoryMovement(row MovementRow) entity.InventoryMovement {
	name := str(row.VariantName)
	if name == "" {
		name = str(row.ProductName)
	}
	return entity.InventoryMovement{
		ID:          row.ID,
		ProductID:   str(row.VariantID),
		ProductName: name,
		Quantity:    num(row.Quantity),
		MoveType:    str(row.MoveType),
		Date:        date(row.MovedAt),
	}
}

// ── Personal ──────────────────────────────────────────────────────────────────

// EmployeeRow registro crudo de hr_employees.
type EmployeeRow struct {
	ID         string
	FullName   *string
	Role       *string
	SalaryType *string
	Active     *bool
}

// Employee mapea un empleado crudo; active en NULL cuenta como inactivo.
func Employee(row EmployeeRow) entity.Employee {
	status := entity.EmployeeInactive
	if row.Active != nil && *row.Active {
		status = entity.EmployeeActive
	}
	return entity.Employee{
		ID:         row.ID,
		FullName:   str(row.FullName),
		Role:       str(row.Role),
		SalaryType: str(row.SalaryType),
		Status:     status,
	}
}

// PayrollRow registro crudo de hr_payroll_payments.
type PayrollRow struct {
	ID          string
	EmployeeID  *string
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	AmountEGP   *decimal.Decimal
	Method      *string
	PaidAt      *time.Time
}

// Payroll mapea un pago de nómina crudo. El label del período se formatea
// desde period_start como "{MonthShort} {Year}"; si falta cualquiera de los
// dos límites es el literal "N/A".
func Payroll(row PayrollRow) entity.PayrollRecord {
	label := "N/A"
	if row.PeriodStart != nil && row.PeriodEnd != nil {
		label = row.PeriodStart.Format("Jan 2006")
	}
	return entity.PayrollRecord{
		ID:          row.ID,
		EmployeeID:  str(row.EmployeeID),
		PeriodLabel: label,
		AmountEGP:   money(row.AmountEGP),
		Method:      str(row.Method),
		PaidAt:      date(row.PaidAt),
	}
}

// ── Helpers de fallback ───────────────────────────────────────────────────────

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func money(p *decimal.Decimal) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	return *p
}

func date(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}

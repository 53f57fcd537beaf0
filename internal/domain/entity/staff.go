package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados y tipos de salario de empleados.
const (
	EmployeeActive   = "Active"
	EmployeeInactive = "Inactive"

	SalaryMonthly = "Monthly"
	SalaryDaily   = "Daily"
	SalaryPerCase = "Per Case"
	SalaryOther   = "Other"
)

// Employee empleado del laboratorio.
type Employee struct {
	ID         string
	FullName   string
	Role       string
	SalaryType string
	Status     string // Active | Inactive
}

// PayrollRecord pago de nómina. PeriodLabel se deriva de period_start
// ("Ene 2026" estilo "{MonthShort} {Year}"); si falta alguno de los límites
// del período, el label es el literal "N/A".
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	PeriodLabel string
	AmountEGP   decimal.Decimal
	Method      string
	PaidAt      time.Time
}

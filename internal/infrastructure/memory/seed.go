package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

func mustDate(v string) time.Time {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultSeed fixtures de demo del laboratorio: dos doctores, dos casos ya
// entregados, el mes de enero de finanzas (ingresos 3750 contra gastos 20000),
// dos variantes de inventario y la nómina de enero. Útil para el modo demo
// y como base de los tests de los casos de uso.
func DefaultSeed() Seed {
	return Seed{
		Doctors: []entity.Doctor{
			{
				ID:         "doc-1",
				FullName:   "Mohamed Eldemellawy",
				DoctorCode: "DR-54",
				Email:      "m.eldemellawy@clinic.example",
				Phone:      "+20 100 555 0154",
				Workplace:  "Clinic - Smile Care Center",
			},
			{
				ID:         "doc-2",
				FullName:   "Ahmed Awni",
				DoctorCode: "DR-52",
				Email:      "a.awni@clinic.example",
				Phone:      "+20 100 555 0152",
				Workplace:  "Private Clinic",
			},
		},
		Cases: []entity.LabCase{
			{
				ID:          "case-1",
				CaseCode:    "G8835",
				PatientName: "Hassan Mostafa",
				PatientID:   "PT-1101",
				DoctorID:    "doc-1",
				DoctorName:  "Mohamed Eldemellawy",
				DoctorCode:  "DR-54",
				CaseType:    entity.CaseTypeFinal,
				Material:    "Monolithic Zirconia",
				Shade:       "A2",
				Units:       2,
				PriceEGP:    decimal.NewFromInt(2500),
				DueDate:     mustDate("2026-01-08"),
				Stage:       entity.StageFinalDelivered,
				CreatedAt:   mustDate("2025-12-30"),
				UpdatedAt:   mustDate("2026-01-08"),
			},
			{
				ID:          "case-2",
				CaseCode:    "E6514",
				PatientName: "Laila Fathy",
				PatientID:   "PT-1102",
				DoctorID:    "doc-2",
				DoctorName:  "Ahmed Awni",
				DoctorCode:  "DR-52",
				CaseType:    entity.CaseTypeFinal,
				Material:    "Monolithic Zirconia",
				Shade:       "B1",
				Units:       1,
				PriceEGP:    decimal.NewFromInt(1250),
				DueDate:     mustDate("2026-01-05"),
				Stage:       entity.StageFinalDelivered,
				CreatedAt:   mustDate("2025-12-28"),
				UpdatedAt:   mustDate("2026-01-05"),
			},
		},
		Expenses: []entity.Expense{
			{
				ID:        "exp-1",
				Category:  "Materials",
				AmountEGP: decimal.NewFromInt(12000),
				Vendor:    "Zirconia World",
				Method:    "Bank Transfer",
				Notes:     "Blocks A2/A3",
				Date:      mustDate("2026-01-02"),
			},
			{
				ID:        "exp-2",
				Category:  "Labour",
				AmountEGP: decimal.NewFromInt(8000),
				Vendor:    "Technicians Payroll",
				Method:    "Cash",
				Date:      mustDate("2026-01-05"),
			},
		},
		Invoices: []entity.Invoice{
			{
				ID:       "inv-1",
				CaseID:   "case-1",
				CaseCode: "G8835",
				TotalEGP: decimal.NewFromInt(2500),
				IssuedAt: mustDate("2026-01-09"),
			},
			{
				ID:       "inv-2",
				CaseID:   "case-2",
				CaseCode: "E6514",
				TotalEGP: decimal.NewFromInt(1250),
				IssuedAt: mustDate("2026-01-06"),
			},
		},
		Variants: []Variant{
			{
				ID:           "prod-1",
				Name:         "Zirconia Blocks A2",
				Category:     "Zirconia",
				UnitPriceEGP: decimal.NewFromInt(650),
				Location:     "Cabinet A / Shelf 2",
			},
			{
				ID:           "prod-2",
				Name:         "Temporary PMMA",
				Category:     "PMMA",
				UnitPriceEGP: decimal.NewFromInt(220),
				Location:     "Cabinet B / Shelf 1",
			},
		},
		Movements: []entity.InventoryMovement{
			{
				ID:          "mov-1",
				ProductID:   "prod-1",
				ProductName: "Zirconia Blocks A2",
				Quantity:    10,
				MoveType:    entity.MoveTypePurchase,
				Date:        mustDate("2026-01-01"),
			},
			{
				ID:          "mov-2",
				ProductID:   "prod-1",
				ProductName: "Zirconia Blocks A2",
				Quantity:    -4,
				MoveType:    entity.MoveTypeConsumption,
				Date:        mustDate("2026-01-04"),
			},
		},
		Employees: []entity.Employee{
			{
				ID:         "emp-1",
				FullName:   "Omar Hassan",
				Role:       "Senior Technician",
				SalaryType: entity.SalaryMonthly,
				Status:     entity.EmployeeActive,
			},
			{
				ID:         "emp-2",
				FullName:   "Sara Ali",
				Role:       "Ceramist",
				SalaryType: entity.SalaryPerCase,
				Status:     entity.EmployeeActive,
			},
		},
		Payroll: []entity.PayrollRecord{
			{
				ID:          "pay-1",
				EmployeeID:  "emp-1",
				PeriodLabel: "Jan 2026",
				AmountEGP:   decimal.NewFromInt(18000),
				Method:      "Bank Transfer",
				PaidAt:      mustDate("2026-01-30"),
			},
			{
				ID:          "pay-2",
				EmployeeID:  "emp-2",
				PeriodLabel: "Jan 2026",
				AmountEGP:   decimal.NewFromInt(9200),
				Method:      "Cash",
				PaidAt:      mustDate("2026-01-29"),
			},
		},
	}
}

package dto

import (
	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// InventoryProductResponse variante con stock derivado para el panel.
type InventoryProductResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Category        string          `json:"category"`
	UnitPriceEGP    decimal.Decimal `json:"unitPriceEgp"`
	QuantityInStock int             `json:"quantityInStock"`
	Location        string          `json:"location"`
}

// InventoryMovementResponse asiento del libro de stock para el panel.
type InventoryMovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	MoveType    string `json:"moveType"`
	Date        string `json:"date"`
}

// EmployeeResponse empleado para el panel.
type EmployeeResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	Role       string `json:"role"`
	SalaryType string `json:"salaryType"`
	Status     string `json:"status"`
}

// PayrollResponse pago de nómina para el panel.
type PayrollResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employeeId"`
	PeriodLabel string          `json:"periodLabel"`
	AmountEGP   decimal.Decimal `json:"amountEgp"`
	Method      string          `json:"method"`
	PaidAt      string          `json:"paidAt"`
}

// InventoryOverview respuesta combinada de la página de inventario.
type InventoryOverview struct {
	Products  []InventoryProductResponse  `json:"products"`
	Movements []InventoryMovementResponse `json:"movements"`
}

// StaffOverview respuesta combinada de la página de personal.
type StaffOverview struct {
	Employees []EmployeeResponse `json:"employees"`
	Payroll   []PayrollResponse  `json:"payroll"`
}

// ToInventoryProductResponses convierte el listado de variantes.
func ToInventoryProductResponses(list []entity.InventoryProduct) []InventoryProductResponse {
	out := make([]InventoryProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, InventoryProductResponse{
			ID:              p.ID,
			Name:            p.Name,
			Category:        p.Category,
			UnitPriceEGP:    p.UnitPriceEGP,
			QuantityInStock: p.QuantityInStock,
			Location:        p.Location,
		})
	}
	return out
}

// ToInventoryMovementResponses convierte el listado de movimientos.
func ToInventoryMovementResponses(list []entity.InventoryMovement) []InventoryMovementResponse {
	out := make([]InventoryMovementResponse, 0, len(list))
	for _, m := range list {
		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format(dateOnly)
		}
		out = append(out, InventoryMovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Quantity:    m.Quantity,
			MoveType:    m.MoveType,
			Date:        date,
		})
	}
	return out
}

// ToEmployeeResponses convierte el listado de empleados.
func ToEmployeeResponses(list []entity.Employee) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, EmployeeResponse{
			ID:         e.ID,
			FullName:   e.FullName,
			Role:       e.Role,
			SalaryType: e.SalaryType,
			Status:     e.Status,
		})
	}
	return out
}

// ToPayrollResponses convierte el listado de nómina.
func ToPayrollResponses(list []entity.PayrollRecord) []PayrollResponse {
	out := make([]PayrollResponse, 0, len(list))
	for _, p := range list {
		paid := ""
		if !p.PaidAt.IsZero() {
			paid = p.PaidAt.Format(dateOnly)
		}
		out = append(out, PayrollResponse{
			ID:          p.ID,
			EmployeeID:  p.EmployeeID,
			PeriodLabel: p.PeriodLabel,
			AmountEGP:   p.AmountEGP,
			Method:      p.Method,
			PaidAt:      paid,
		})
	}
	return out
}

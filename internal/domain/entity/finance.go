package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense gasto del laboratorio. Category llega desnormalizada desde el
// catálogo fin_expense_categories; no guarda relación con los casos.
type Expense struct {
	ID        string
	Category  string
	AmountEGP decimal.Decimal
	Vendor    string
	Method    string
	Notes     string
	Date      time.Time
}

// Invoice factura emitida por un caso. La relación con el caso es por
// case_id (clave foránea); CaseCode es solo el campo de display que sale del join.
type Invoice struct {
	ID       string
	CaseID   string
	CaseCode string
	TotalEGP decimal.Decimal
	IssuedAt time.Time
}

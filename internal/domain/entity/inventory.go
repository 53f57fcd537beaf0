package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento del libro de stock.
const (
	MoveTypePurchase    = "Purchase"
	MoveTypeConsumption = "Consumption"
	MoveTypeAdjustment  = "Adjustment"
)

// InventoryProduct agregado a nivel de variante: el stock nunca se almacena,
// siempre es la suma con signo de todos los movimientos de la variante.
type InventoryProduct struct {
	ID              string
	Name            string
	Category        string
	UnitPriceEGP    decimal.Decimal
	QuantityInStock int
	Location        string
}

// InventoryMovement asiento del libro de stock (append-only).
// Quantity lleva signo: positivo entra, negativo sale.
type InventoryMovement struct {
	ID          string
	ProductID   string // id de la variante
	ProductName string
	Quantity    int
	MoveType    string
	Date        time.Time
}

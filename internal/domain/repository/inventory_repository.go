package repository

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// MovementPageSize tope fijo del listado de movimientos (los más recientes).
const MovementPageSize = 100

// InventoryRepository puerto de lectura del inventario.
// ListProducts devuelve variantes con su stock derivado (suma con signo del
// libro de movimientos); cero movimientos es stock cero, no un error.
type InventoryRepository interface {
	ListProducts(ctx context.Context) ([]entity.InventoryProduct, error)
	ListMovements(ctx context.Context) ([]entity.InventoryMovement, error)
}

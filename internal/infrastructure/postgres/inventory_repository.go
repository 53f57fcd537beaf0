package postgres

import (
	"context"
	"fmt"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo gateway del inventario sobre PostgreSQL.
//
// El stock por variante es SIEMPRE derivado: suma con signo del libro de
// movimientos, nunca una columna. La suma se agrega en una sola consulta
// agrupada en lugar de un fan-out de una consulta por variante: el costo es
// una ronda, no O(variantes).
type InventoryRepo struct {
	q   Querier
	log *logger.Logger
}

// NewInventoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryRepository(q Querier, log *logger.Logger) *InventoryRepo {
	return &InventoryRepo{q: q, log: log}
}

// ListProducts devuelve las variantes con el producto padre y su stock agregado.
// Una variante sin movimientos aparece con stock 0.
func (r *InventoryRepo) ListProducts(ctx context.Context) ([]entity.InventoryProduct, error) {
	query := `
		SELECT v.id, v.variant_name, p.name, p.category, v.unit_price_egp,
		       v.location, COALESCE(SUM(m.qty), 0)::INT AS quantity_in_stock
		FROM inv_variants v
		LEFT JOIN inv_products p ON p.id = v.product_id
		LEFT JOIN inv_stock_moves m ON m.variant_id = v.id
		GROUP BY v.id, v.variant_name, p.name, p.category, v.unit_price_egp, v.location
		ORDER BY v.variant_name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch inventory products")
		return nil, fmt.Errorf("fetch inventory products: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryProduct
	for rows.Next() {
		var raw mapper.VariantRow
		if err := rows.Scan(
			&raw.ID, &raw.VariantName, &raw.ProductName, &raw.Category,
			&raw.UnitPriceEGP, &raw.Location, &raw.QuantitySum,
		); err != nil {
			return nil, fmt.Errorf("fetch inventory products: scan: %w", err)
		}
		list = append(list, mapper.InventoryProduct(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch inventory products")
		return nil, fmt.Errorf("fetch inventory products: %w", err)
	}
	return list, nil
}

// ListMovements devuelve los movimientos más recientes del libro de stock
// (tope fijo, descendente por fecha de movimiento).
func (r *InventoryRepo) ListMovements(ctx context.Context) ([]entity.InventoryMovement, error) {
	query := `
		SELECT m.id, m.variant_id, v.variant_name, m.qty, m.move_type, m.moved_at
		FROM inv_stock_moves m
		LEFT JOIN inv_variants v ON v.id = m.variant_id
		ORDER BY m.moved_at DESC
		LIMIT $1`
	rows, err := r.q.Query(ctx, query, repository.MovementPageSize)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch inventory movements")
		return nil, fmt.Errorf("fetch inventory movements: %w", err)
	}
	defer rows.Close()

	var list []entity.InventoryMovement
	for rows.Next() {
		var raw mapper.MovementRow
		if err := rows.Scan(
			&raw.ID, &raw.VariantID, &raw.VariantName,
			&raw.Quantity, &raw.MoveType, &raw.MovedAt,
		); err != nil {
			return nil, fmt.Errorf("fetch inventory movements: scan: %w", err)
		}
		list = append(list, mapper.InventoryMovement(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch inventory movements")
		return nil, fmt.Errorf("fetch inventory movements: %w", err)
	}
	return list, nil
}

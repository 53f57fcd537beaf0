package usecase

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// InventoryUseCase lectura del inventario para la página del panel.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Overview arma la respuesta combinada: variantes con stock derivado y los
// movimientos más recientes. Las dos consultas corren en paralelo.
func (uc *InventoryUseCase) Overview(ctx context.Context) (*dto.InventoryOverview, error) {
	type productsResult struct {
		list []dto.InventoryProductResponse
		err  error
	}
	type movementsResult struct {
		list []dto.InventoryMovementResponse
		err  error
	}

	productsCh := make(chan productsResult, 1)
	movementsCh := make(chan movementsResult, 1)

	go func() {
		list, err := uc.repo.ListProducts(ctx)
		if err != nil {
			productsCh <- productsResult{nil, err}
			return
		}
		productsCh <- productsResult{dto.ToInventoryProductResponses(list), nil}
	}()
	go func() {
		list, err := uc.repo.ListMovements(ctx)
		if err != nil {
			movementsCh <- movementsResult{nil, err}
			return
		}
		movementsCh <- movementsResult{dto.ToInventoryMovementResponses(list), nil}
	}()

	products := <-productsCh
	movements := <-movementsCh
	if products.err != nil {
		return nil, products.err
	}
	if movements.err != nil {
		return nil, movements.err
	}
	return &dto.InventoryOverview{
		Products:  products.list,
		Movements: movements.list,
	}, nil
}

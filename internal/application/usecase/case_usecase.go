package usecase

import (
	"context"
	"time"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// CaseUseCase lectura y edición de casos. Los casos nunca se eliminan desde
// esta capa; solo transicionan de etapa o se editan.
type CaseUseCase struct {
	repo repository.CaseRepository
}

// NewCaseUseCase construye el caso de uso.
func NewCaseUseCase(repo repository.CaseRepository) *CaseUseCase {
	return &CaseUseCase{repo: repo}
}

// List lista todos los casos (más recientes primero).
func (uc *CaseUseCase) List(ctx context.Context) ([]dto.CaseResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToCaseResponses(list), nil
}

// GetByID obtiene un caso; (nil, nil) si no existe.
func (uc *CaseUseCase) GetByID(ctx context.Context, id string) (*dto.CaseResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	resp := dto.ToCaseResponse(*c)
	return &resp, nil
}

// ListByDoctor lista los casos remitidos por un doctor.
func (uc *CaseUseCase) ListByDoctor(ctx context.Context, doctorID string) ([]dto.CaseResponse, error) {
	list, err := uc.repo.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return dto.ToCaseResponses(list), nil
}

// Update aplica una actualización parcial y devuelve el caso re-leído con join.
//
// Reglas de precio: precio = tarifa_unitaria(material) × unidades, salvo que
// la petición traiga un precio explícito (override manual). El override se
// conserva en ediciones posteriores hasta que material o unidades cambien de
// nuevo, momento en que el precio se recalcula.
func (uc *CaseUseCase) Update(ctx context.Context, id string, in dto.UpdateCaseRequest) (*dto.CaseResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	upd := entity.CaseUpdate{
		Material: in.Material,
		Units:    in.Units,
		PriceEGP: in.PriceEGP,
		Shade:    in.Shade,
		Notes:    in.Notes,
	}

	if in.Units != nil && *in.Units < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Stage != nil {
		st := entity.Stage(*in.Stage)
		if !st.IsValid() {
			return nil, domain.ErrInvalidStage
		}
		upd.Stage = &st
	}
	if in.DueDate != nil {
		d, perr := time.Parse("2006-01-02", *in.DueDate)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		upd.DueDate = &d
	}

	// Sin precio explícito y con material o unidades tocados: recalcular.
	if in.PriceEGP == nil && (in.Material != nil || in.Units != nil) {
		material := current.Material
		if in.Material != nil {
			material = *in.Material
		}
		units := current.Units
		if in.Units != nil {
			units = *in.Units
		}
		derived := entity.DerivePrice(material, units)
		upd.PriceEGP = &derived
	}

	updated, err := uc.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}
	resp := dto.ToCaseResponse(*updated)
	return &resp, nil
}

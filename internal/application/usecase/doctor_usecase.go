package usecase

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// DoctorUseCase lectura de doctores y de sus casos remitidos.
type DoctorUseCase struct {
	doctors repository.DoctorRepository
	cases   repository.CaseRepository
}

// NewDoctorUseCase construye el caso de uso.
func NewDoctorUseCase(doctors repository.DoctorRepository, cases repository.CaseRepository) *DoctorUseCase {
	return &DoctorUseCase{doctors: doctors, cases: cases}
}

// List lista todos los doctores.
func (uc *DoctorUseCase) List(ctx context.Context) ([]dto.DoctorResponse, error) {
	list, err := uc.doctors.List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.ToDoctorResponses(list), nil
}

// GetByID obtiene un doctor; (nil, nil) si no existe.
func (uc *DoctorUseCase) GetByID(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	d, err := uc.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	resp := dto.ToDoctorResponse(*d)
	return &resp, nil
}

// Cases lista los casos remitidos por el doctor. Un doctor sin casos devuelve
// lista vacía, no error.
func (uc *DoctorUseCase) Cases(ctx context.Context, doctorID string) ([]dto.CaseResponse, error) {
	list, err := uc.cases.ListByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return dto.ToCaseResponses(list), nil
}

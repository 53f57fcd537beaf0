package repository

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// CaseRepository puerto de lectura/edición de casos.
// GetByID devuelve (nil, nil) cuando el caso no existe; un error solo indica
// fallo de transporte/consulta — los dos desenlaces nunca se confunden.
type CaseRepository interface {
	List(ctx context.Context) ([]entity.LabCase, error)
	GetByID(ctx context.Context, id string) (*entity.LabCase, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]entity.LabCase, error)
	Update(ctx context.Context, id string, upd entity.CaseUpdate) (*entity.LabCase, error)
}

package repository

import (
	"context"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

// DoctorRepository puerto de lectura de doctores.
// GetByID devuelve (nil, nil) cuando el doctor no existe.
type DoctorRepository interface {
	List(ctx context.Context) ([]entity.Doctor, error)
	GetByID(ctx context.Context, id string) (*entity.Doctor, error)
}

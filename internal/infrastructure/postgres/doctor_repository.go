package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

var _ repository.DoctorRepository = (*DoctorRepo)(nil)

const doctorColumns = `
	id, full_name, doctor_code, email, primary_phone, phone,
	workplace_type, workplace_name`

// DoctorRepo gateway de doctores sobre PostgreSQL.
type DoctorRepo struct {
	q   Querier
	log *logger.Logger
}

// NewDoctorRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDoctorRepository(q Querier, log *logger.Logger) *DoctorRepo {
	return &DoctorRepo{q: q, log: log}
}

// List devuelve todos los doctores ordenados por nombre.
func (r *DoctorRepo) List(ctx context.Context) ([]entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors ORDER BY full_name ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch doctors")
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	defer rows.Close()

	var list []entity.Doctor
	for rows.Next() {
		raw, err := scanDoctor(rows)
		if err != nil {
			return nil, fmt.Errorf("fetch doctors: scan: %w", err)
		}
		list = append(list, mapper.Doctor(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg("fetch doctors")
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	return list, nil
}

// GetByID obtiene un doctor. (nil, nil) si no existe.
func (r *DoctorRepo) GetByID(ctx context.Context, id string) (*entity.Doctor, error) {
	query := `SELECT ` + doctorColumns + ` FROM doctors WHERE id = $1`
	raw, err := scanDoctor(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Str("doctor_id", id).Msg("fetch doctor")
		return nil, fmt.Errorf("fetch doctor: %w", err)
	}
	d := mapper.Doctor(raw)
	return &d, nil
}

func scanDoctor(row pgx.Row) (mapper.DoctorRow, error) {
	var raw mapper.DoctorRow
	err := row.Scan(
		&raw.ID, &raw.FullName, &raw.DoctorCode, &raw.Email,
		&raw.PrimaryPhone, &raw.Phone, &raw.WorkplaceType, &raw.WorkplaceName,
	)
	return raw, err
}

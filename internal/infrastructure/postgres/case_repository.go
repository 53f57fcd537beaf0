package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/pkg/logger"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

const caseColumns = `
	c.id, c.case_code, c.patient_name, c.patient_id, c.doctor_id,
	d.full_name, d.doctor_code,
	c.case_type, c.material, c.shade, c.units, c.price_egp, c.due_date,
	c.stage, c.notes, c.status_history, c.created_at, c.updated_at`

// CaseRepo gateway de casos sobre PostgreSQL. Cada fila cruda pasa por el
// mapper en la frontera; las vistas nunca ven snake_case ni joins anidados.
type CaseRepo struct {
	q   Querier
	log *logger.Logger
}

// NewCaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCaseRepository(q Querier, log *logger.Logger) *CaseRepo {
	return &CaseRepo{q: q, log: log}
}

// List devuelve todos los casos con su doctor, más recientes primero.
func (r *CaseRepo) List(ctx context.Context) ([]entity.LabCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases c
		LEFT JOIN doctors d ON d.id = c.doctor_id
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		r.log.Error().Err(err).Msg("fetch cases")
		return nil, fmt.Errorf("fetch cases: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, "fetch cases")
}

// GetByID obtiene un caso con join de doctor. (nil, nil) si no existe;
// un error siempre es fallo de transporte/consulta, nunca "no encontrado".
func (r *CaseRepo) GetByID(ctx context.Context, id string) (*entity.LabCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases c
		LEFT JOIN doctors d ON d.id = c.doctor_id
		WHERE c.id = $1`
	row, err := r.scanOne(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.log.Error().Err(err).Str("case_id", id).Msg("fetch case")
		return nil, fmt.Errorf("fetch case: %w", err)
	}
	c := mapper.Case(row)
	return &c, nil
}

// ListByDoctor devuelve los casos remitidos por un doctor, más recientes primero.
func (r *CaseRepo) ListByDoctor(ctx context.Context, doctorID string) ([]entity.LabCase, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases c
		LEFT JOIN doctors d ON d.id = c.doctor_id
		WHERE c.doctor_id = $1
		ORDER BY c.created_at DESC`
	rows, err := r.q.Query(ctx, query, doctorID)
	if err != nil {
		r.log.Error().Err(err).Str("doctor_id", doctorID).Msg("fetch doctor cases")
		return nil, fmt.Errorf("fetch doctor cases: %w", err)
	}
	defer rows.Close()
	return r.collect(rows, "fetch doctor cases")
}

// Update aplica la actualización parcial traduciendo a las columnas del
// almacén, estampa siempre updated_at y re-lee el registro con join.
// El UPDATE y el re-select no van en transacción: una edición concurrente
// entre ambos puede devolver campos del doctor más nuevos que el caso
// (ventana de inconsistencia aceptada).
func (r *CaseRepo) Update(ctx context.Context, id string, upd entity.CaseUpdate) (*entity.LabCase, error) {
	set := []string{"updated_at = $2"}
	args := []any{id, time.Now()}
	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Material != nil {
		add("material", *upd.Material)
	}
	if upd.Units != nil {
		add("units", *upd.Units)
	}
	if upd.PriceEGP != nil {
		add("price_egp", *upd.PriceEGP)
	}
	if upd.DueDate != nil {
		add("due_date", *upd.DueDate)
	}
	if upd.Stage != nil {
		add("stage", string(*upd.Stage))
	}
	if upd.Shade != nil {
		add("shade", *upd.Shade)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}

	query := "UPDATE cases SET " + strings.Join(set, ", ") + " WHERE id = $1"
	cmd, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error().Err(err).Str("case_id", id).Msg("update case")
		return nil, fmt.Errorf("update case: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil, nil
	}
	return r.GetByID(ctx, id)
}

func (r *CaseRepo) collect(rows pgx.Rows, op string) ([]entity.LabCase, error) {
	var list []entity.LabCase
	for rows.Next() {
		raw, err := r.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		list = append(list, mapper.Case(raw))
	}
	if err := rows.Err(); err != nil {
		r.log.Error().Err(err).Msg(op)
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return list, nil
}

func (r *CaseRepo) scanOne(row pgx.Row) (mapper.CaseRow, error) {
	var raw mapper.CaseRow
	err := row.Scan(
		&raw.ID, &raw.CaseCode, &raw.PatientName, &raw.PatientID, &raw.DoctorID,
		&raw.DoctorName, &raw.DoctorCode,
		&raw.CaseType, &raw.Material, &raw.Shade, &raw.Units, &raw.PriceEGP, &raw.DueDate,
		&raw.Stage, &raw.Notes, &raw.StatusHistory, &raw.CreatedAt, &raw.UpdatedAt,
	)
	return raw, err
}

package entity

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Stage etapa del caso dentro del flujo de producción del laboratorio.
// El orden del slice es el orden real del flujo; no se aceptan strings arbitrarios.
type Stage string

// Etapas del flujo de producción (tal como las muestra el panel).
const (
	StageSubmitted      Stage = "submitted"
	StagePouringScan    Stage = "Pouring/Scan"
	StageDesign         Stage = "Design"
	StageWaitingConfirm Stage = "Waiting for Confirmation"
	StageTryinPrinting  Stage = "Tryin Printing"
	StageTryinReady     Stage = "Tryin Ready to Deliver"
	StageTryinDelivered Stage = "Tryin Delivered"
	StageSintring       Stage = "Sintring"
	StageStainGlaze     Stage = "Stain&Glaze"
	StageFinalReady     Stage = "Final Ready to Deliver"
	StageFinalDelivered Stage = "Final Delivered"
)

// CaseStages lista ordenada de etapas, usada por el panel y por la validación.
var CaseStages = []Stage{
	StageSubmitted,
	StagePouringScan,
	StageDesign,
	StageWaitingConfirm,
	StageTryinPrinting,
	StageTryinReady,
	StageTryinDelivered,
	StageSintring,
	StageStainGlaze,
	StageFinalReady,
	StageFinalDelivered,
}

// IsValid indica si la etapa pertenece al conjunto fijo del flujo.
func (s Stage) IsValid() bool {
	for _, st := range CaseStages {
		if s == st {
			return true
		}
	}
	return false
}

// Tipos de caso.
const (
	CaseTypeTryIn = "try-in"
	CaseTypeFinal = "final"
)

// LabCase caso de laboratorio desnormalizado para las vistas del panel.
// DoctorName y DoctorCode vienen del join con doctors; el caso nunca se
// elimina físicamente desde esta capa.
type LabCase struct {
	ID            string
	CaseCode      string
	PatientName   string
	PatientID     string
	DoctorID      string
	DoctorName    string
	DoctorCode    string
	CaseType      string // try-in | final
	Material      string
	Shade         string
	Units         int
	PriceEGP      decimal.Decimal
	DueDate       time.Time
	Stage         Stage
	Notes         string
	StatusHistory json.RawMessage
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CaseUpdate actualización parcial de un caso; nil significa "sin cambio".
// El gateway traduce estos campos a las columnas del almacén y siempre
// estampa updated_at.
type CaseUpdate struct {
	Material *string
	Units    *int
	PriceEGP *decimal.Decimal
	DueDate  *time.Time
	Stage    *Stage
	Shade    *string
	Notes    *string
}

package dto

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

const dateOnly = "2006-01-02"

// CaseResponse caso desnormalizado tal como lo espera el panel (camelCase).
type CaseResponse struct {
	ID            string          `json:"id"`
	CaseCode      string          `json:"caseCode"`
	PatientName   string          `json:"patientName"`
	PatientID     string          `json:"patientId"`
	DoctorID      string          `json:"doctorId"`
	DoctorName    string          `json:"doctorName"`
	DoctorCode    string          `json:"doctorCode"`
	CaseType      string          `json:"caseType"`
	Material      string          `json:"material"`
	Shade         string          `json:"shade"`
	Units         int             `json:"units"`
	PriceEGP      decimal.Decimal `json:"priceEgp"`
	DueDate       string          `json:"dueDate"`
	Stage         string          `json:"stage"`
	Notes         string          `json:"notes"`
	StatusHistory json.RawMessage `json:"statusHistory,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToCaseResponse convierte la entidad al shape del panel.
func ToCaseResponse(c entity.LabCase) CaseResponse {
	due := ""
	if !c.DueDate.IsZero() {
		due = c.DueDate.Format(dateOnly)
	}
	return CaseResponse{
		ID:            c.ID,
		CaseCode:      c.CaseCode,
		PatientName:   c.PatientName,
		PatientID:     c.PatientID,
		DoctorID:      c.DoctorID,
		DoctorName:    c.DoctorName,
		DoctorCode:    c.DoctorCode,
		CaseType:      c.CaseType,
		Material:      c.Material,
		Shade:         c.Shade,
		Units:         c.Units,
		PriceEGP:      c.PriceEGP,
		DueDate:       due,
		Stage:         string(c.Stage),
		Notes:         c.Notes,
		StatusHistory: c.StatusHistory,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// ToCaseResponses convierte un listado completo.
func ToCaseResponses(cases []entity.LabCase) []CaseResponse {
	out := make([]CaseResponse, 0, len(cases))
	for _, c := range cases {
		out = append(out, ToCaseResponse(c))
	}
	return out
}

// UpdateCaseRequest actualización parcial; un campo ausente no se toca.
type UpdateCaseRequest struct {
	Material *string          `json:"material"`
	Units    *int             `json:"units"`
	PriceEGP *decimal.Decimal `json:"priceEgp"`
	DueDate  *string          `json:"dueDate"` // yyyy-mm-dd
	Stage    *string          `json:"stage"`
	Shade    *string          `json:"shade"`
	Notes    *string          `json:"notes"`
}

// DoctorResponse doctor para el panel.
type DoctorResponse struct {
	ID         string `json:"id"`
	FullName   string `json:"fullName"`
	DoctorCode string `json:"doctorCode"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Workplace  string `json:"workplace"`
}

// ToDoctorResponse convierte la entidad al shape del panel.
func ToDoctorResponse(d entity.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:         d.ID,
		FullName:   d.FullName,
		DoctorCode: d.DoctorCode,
		Email:      d.Email,
		Phone:      d.Phone,
		Workplace:  d.Workplace,
	}
}

// ToDoctorResponses convierte un listado completo.
func ToDoctorResponses(list []entity.Doctor) []DoctorResponse {
	out := make([]DoctorResponse, 0, len(list))
	for _, d := range list {
		out = append(out, ToDoctorResponse(d))
	}
	return out
}

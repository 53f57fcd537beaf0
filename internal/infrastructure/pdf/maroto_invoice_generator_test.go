package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/pdf"
)

func sampleInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:       "inv-1",
		CaseID:   "case-1",
		CaseCode: "G8835",
		TotalEGP: decimal.NewFromInt(2500),
		IssuedAt: time.Date(2026, 1, 9, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerate_ProduceUnPDF(t *testing.T) {
	labCase := &entity.LabCase{
		CaseCode:    "G8835",
		PatientName: "Hassan Mostafa",
		Material:    "Monolithic Zirconia",
		Units:       2,
	}
	doctor := &entity.Doctor{
		FullName:   "Mohamed Eldemellawy",
		DoctorCode: "DR-54",
		Workplace:  "Clinic - Smile Care Center",
	}

	got, err := pdf.NewMarotoInvoiceGenerator().Generate(context.Background(), sampleInvoice(), labCase, doctor)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	assert.Equal(t, "%PDF", string(got[:4]), "los bytes deben arrancar con la firma PDF")
}

func TestGenerate_SinCasoNiDoctor(t *testing.T) {
	got, err := pdf.NewMarotoInvoiceGenerator().Generate(context.Background(), sampleInvoice(), nil, nil)
	require.NoError(t, err, "la factura se imprime aunque el join no resuelva")
	assert.NotEmpty(t, got)
}

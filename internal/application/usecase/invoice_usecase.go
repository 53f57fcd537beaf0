package usecase

import (
	"context"
	"fmt"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/repository"
)

// InvoicePDFGenerator puerto de salida para la representación gráfica de una
// factura. labCase y doctor pueden llegar nil cuando el join no resolvió.
type InvoicePDFGenerator interface {
	Generate(ctx context.Context, invoice *entity.Invoice, labCase *entity.LabCase, doctor *entity.Doctor) ([]byte, error)
}

// InvoiceUseCase genera el estado de cuenta PDF de una factura.
type InvoiceUseCase struct {
	finance   repository.FinanceRepository
	cases     repository.CaseRepository
	doctors   repository.DoctorRepository
	generator InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso inyectando sus dependencias.
func NewInvoiceUseCase(
	finance repository.FinanceRepository,
	cases repository.CaseRepository,
	doctors repository.DoctorRepository,
	generator InvoicePDFGenerator,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		finance:   finance,
		cases:     cases,
		doctors:   doctors,
		generator: generator,
	}
}

// DownloadInvoicePDF recupera la factura, resuelve su caso y doctor y genera
// el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//
// El caso o el doctor ausentes no son un error: la factura se imprime igual
// con los campos del join en blanco.
func (uc *InvoiceUseCase) DownloadInvoicePDF(ctx context.Context, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.finance.GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}

	var labCase *entity.LabCase
	var doctor *entity.Doctor
	if inv.CaseID != "" {
		labCase, err = uc.cases.GetByID(ctx, inv.CaseID)
		if err != nil {
			return nil, "", fmt.Errorf("pdf: obtener caso: %w", err)
		}
		if labCase != nil && labCase.DoctorID != "" {
			doctor, err = uc.doctors.GetByID(ctx, labCase.DoctorID)
			if err != nil {
				return nil, "", fmt.Errorf("pdf: obtener doctor: %w", err)
			}
		}
	}

	bytes, err := uc.generator.Generate(ctx, inv, labCase, doctor)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar: %w", err)
	}
	return bytes, fmt.Sprintf("invoice_%s.pdf", inv.ID), nil
}

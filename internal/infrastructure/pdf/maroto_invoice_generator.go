// Package pdf genera el estado de cuenta PDF de una factura del laboratorio.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del laboratorio  │  N° Factura + Fecha      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DOCTOR: Nombre + código + contacto + clínica               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Caso | Paciente | Material | Unidades | Total       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL A PAGAR (EGP)                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

const labName = "Bdigital Dental Lab"

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 13, Green: 110, Blue: 99}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoInvoiceGenerator genera el PDF de una factura usando Maroto v2.
type MarotoInvoiceGenerator struct{}

// NewMarotoInvoiceGenerator construye el generador.
func NewMarotoInvoiceGenerator() *MarotoInvoiceGenerator { return &MarotoInvoiceGenerator{} }

// Generate genera el PDF y devuelve sus bytes. labCase y doctor pueden ser nil
// cuando el join no resolvió (la factura se imprime igual, con guiones).
func (g *MarotoInvoiceGenerator) Generate(
	_ context.Context,
	invoice *entity.Invoice,
	labCase *entity.LabCase,
	doctor *entity.Doctor,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.ID, true).
		WithAuthor(labName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(doctorRow(doctor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(caseDetailRow(invoice, labCase))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(invoice))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del laboratorio (izq) y N° factura + fecha (der).
func headerRow(invoice *entity.Invoice) core.Row {
	fecha := "—"
	if !invoice.IssuedAt.IsZero() {
		fecha = invoice.IssuedAt.Format("02/01/2006")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(labName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dental Lab Statement", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.ID, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Issued: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// doctorRow: datos del doctor remitente.
func doctorRow(doctor *entity.Doctor) core.Row {
	name, code, contact, workplace := "—", "—", "—", "—"
	if doctor != nil {
		name = nonEmpty(doctor.FullName, "—")
		code = nonEmpty(doctor.DoctorCode, "—")
		contact = fmt.Sprintf("%s   |   %s",
			nonEmpty(doctor.Email, "—"), nonEmpty(doctor.Phone, "—"))
		workplace = nonEmpty(doctor.Workplace, "Private Clinic")
	}
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILLED TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s (%s)", name, code), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s   |   %s", contact, workplace), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla del caso facturado.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Case", 2, align.Left),
		h("Patient", 3, align.Left),
		h("Material", 3, align.Left),
		h("Units", 1, align.Center),
		h("Total (EGP)", 3, align.Right),
	)
}

// caseDetailRow: la línea del caso facturado.
func caseDetailRow(invoice *entity.Invoice, labCase *entity.LabCase) core.Row {
	patient, material, units := "—", "—", "—"
	caseCode := nonEmpty(invoice.CaseCode, "—")
	if labCase != nil {
		caseCode = nonEmpty(labCase.CaseCode, caseCode)
		patient = nonEmpty(labCase.PatientName, "—")
		material = nonEmpty(labCase.Material, "—")
		units = fmt.Sprint(labCase.Units)
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(caseCode, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(3).Add(text.New(patient, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(3).Add(text.New(material, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
		col.New(1).Add(text.New(units, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(3).Add(text.New(
			formatMoney(invoice.TotalEGP.StringFixed(0)),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		)),
	)
}

// totalRow: total a pagar alineado a la derecha.
func totalRow(invoice *entity.Invoice) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL DUE (EGP):", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(formatMoney(invoice.TotalEGP.StringFixed(0)), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta separadores de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}

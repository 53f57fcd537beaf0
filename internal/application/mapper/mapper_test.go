package mapper_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/mapper"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain/entity"
)

func strPtr(s string) *string         { return &s }
func intPtr(n int) *int               { return &n }
func boolPtr(b bool) *bool            { return &b }
func decPtr(n int64) *decimal.Decimal { d := decimal.NewFromInt(n); return &d }
func timePtr(v string) *time.Time     { t, _ := time.Parse("2006-01-02", v); return &t }

// ── Totalidad: registros con todo en NULL menos el id ────────────────────────

func TestCase_TodoNuloProduceEntidadConFallbacks(t *testing.T) {
	got := mapper.Case(mapper.CaseRow{ID: "case-9"})

	assert.Equal(t, "case-9", got.ID)
	assert.Empty(t, got.CaseCode)
	assert.Empty(t, got.PatientName)
	assert.Empty(t, got.DoctorName, "join de doctor sin resolver deja el nombre vacío")
	assert.Zero(t, got.Units)
	assert.True(t, got.PriceEGP.IsZero())
	assert.True(t, got.DueDate.IsZero())
	assert.Empty(t, string(got.Stage))
}

func TestDoctor_SinLugarDeTrabajoEsPrivateClinic(t *testing.T) {
	got := mapper.Doctor(mapper.DoctorRow{ID: "doc-9"})
	assert.Equal(t, "Private Clinic", got.Workplace)
	assert.Empty(t, got.Phone)
}

func TestDoctor_DescriptorDeLugarDeTrabajo(t *testing.T) {
	cases := []struct {
		name  string
		wtype *string
		wname *string
		want  string
	}{
		{"tipo y nombre", strPtr("Hospital"), strPtr("Cairo Dental"), "Hospital - Cairo Dental"},
		{"solo nombre: tipo default Clinic", nil, strPtr("Cairo Dental"), "Clinic - Cairo Dental"},
		{"solo tipo", strPtr("Hospital"), nil, "Hospital"},
		{"nada", nil, nil, "Private Clinic"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapper.Doctor(mapper.DoctorRow{
				ID:            "doc-1",
				WorkplaceType: tc.wtype,
				WorkplaceName: tc.wname,
			})
			assert.Equal(t, tc.want, got.Workplace)
		})
	}
}

func TestDoctor_TelefonoPrimarioConRespaldoLegado(t *testing.T) {
	got := mapper.Doctor(mapper.DoctorRow{
		ID:           "doc-1",
		PrimaryPhone: strPtr("+20 100 1"),
		Phone:        strPtr("+20 100 2"),
	})
	assert.Equal(t, "+20 100 1", got.Phone, "primary_phone tiene prioridad")

	got = mapper.Doctor(mapper.DoctorRow{ID: "doc-1", Phone: strPtr("+20 100 2")})
	assert.Equal(t, "+20 100 2", got.Phone, "sin primary_phone cae a la columna legada")
}

func TestExpense_CategoriaConFallbacks(t *testing.T) {
	got := mapper.Expense(mapper.ExpenseRow{ID: "exp-9"})
	assert.Equal(t, "Uncategorized", got.Category)
	assert.True(t, got.AmountEGP.IsZero())

	got = mapper.Expense(mapper.ExpenseRow{ID: "exp-9", Category: strPtr("Rent")})
	assert.Equal(t, "Rent", got.Category, "columna inline legada cuando el join no resolvió")

	got = mapper.Expense(mapper.ExpenseRow{
		ID:           "exp-9",
		CategoryName: strPtr("Materials"),
		Category:     strPtr("Rent"),
	})
	assert.Equal(t, "Materials", got.Category, "el join al catálogo tiene prioridad")
}

func TestInvoice_TodoNulo(t *testing.T) {
	got := mapper.Invoice(mapper.InvoiceRow{ID: "inv-9"})
	assert.Equal(t, "inv-9", got.ID)
	assert.Empty(t, got.CaseID)
	assert.Empty(t, got.CaseCode)
	assert.True(t, got.TotalEGP.IsZero())
	assert.True(t, got.IssuedAt.IsZero())
}

func TestInventoryProduct_Fallbacks(t *testing.T) {
	got := mapper.InventoryProduct(mapper.VariantRow{ID: "prod-9"})
	assert.Equal(t, "Unknown", got.Name)
	assert.Equal(t, "general", got.Category)
	assert.Equal(t, "Main Storage", got.Location)
	assert.Zero(t, got.QuantityInStock, "sin movimientos el stock es 0, no un error")
}

func TestInventoryProduct_NombreDeVarianteSobreProducto(t *testing.T) {
	got := mapper.InventoryProduct(mapper.VariantRow{
		ID:          "prod-1",
		VariantName: strPtr("Zirconia Blocks A2"),
		ProductName: strPtr("Zirconia Blocks"),
	})
	assert.Equal(t, "Zirconia Blocks A2", got.Name)

	got = mapper.InventoryProduct(mapper.VariantRow{
		ID:          "prod-1",
		ProductName: strPtr("Zirconia Blocks"),
	})
	assert.Equal(t, "Zirconia Blocks", got.Name, "sin nombre de variante cae al producto padre")
}

func TestInventoryMovement_TodoNulo(t *testing.T) {
	got := mapper.InventoryMovement(mapper.MovementRow{ID: "mov-9"})
	assert.Equal(t, "mov-9", got.ID)
	assert.Empty(t, got.ProductName)
	assert.Zero(t, got.Quantity)
}

func TestEmployee_ActiveNuloEsInactivo(t *testing.T) {
	got := mapper.Employee(mapper.EmployeeRow{ID: "emp-9"})
	assert.Equal(t, entity.EmployeeInactive, got.Status)

	got = mapper.Employee(mapper.EmployeeRow{ID: "emp-9", Active: boolPtr(true)})
	assert.Equal(t, entity.EmployeeActive, got.Status)

	got = mapper.Employee(mapper.EmployeeRow{ID: "emp-9", Active: boolPtr(false)})
	assert.Equal(t, entity.EmployeeInactive, got.Status)
}

func TestPayroll_LabelDelPeriodo(t *testing.T) {
	got := mapper.Payroll(mapper.PayrollRow{ID: "pay-9"})
	assert.Equal(t, "N/A", got.PeriodLabel, "sin límites de período el label es N/A")

	got = mapper.Payroll(mapper.PayrollRow{
		ID:          "pay-9",
		PeriodStart: timePtr("2026-01-01"),
	})
	assert.Equal(t, "N/A", got.PeriodLabel, "falta period_end")

	got = mapper.Payroll(mapper.PayrollRow{
		ID:          "pay-9",
		PeriodStart: timePtr("2026-01-01"),
		PeriodEnd:   timePtr("2026-01-31"),
	})
	assert.Equal(t, "Jan 2026", got.PeriodLabel)
}

// ── Mapeo completo: registro con todas las columnas pobladas ─────────────────

func TestCase_RegistroCompleto(t *testing.T) {
	row := mapper.CaseRow{
		ID:          "case-1",
		CaseCode:    strPtr("G8835"),
		PatientName: strPtr("Hassan Mostafa"),
		PatientID:   strPtr("PT-1101"),
		DoctorID:    strPtr("doc-1"),
		DoctorName:  strPtr("Mohamed Eldemellawy"),
		DoctorCode:  strPtr("DR-54"),
		CaseType:    strPtr("final"),
		Material:    strPtr("Monolithic Zirconia"),
		Shade:       strPtr("A2"),
		Units:       intPtr(2),
		PriceEGP:    decPtr(2500),
		DueDate:     timePtr("2026-01-08"),
		Stage:       strPtr("Final Delivered"),
		Notes:       strPtr("rush"),
	}
	got := mapper.Case(row)

	assert.Equal(t, "G8835", got.CaseCode)
	assert.Equal(t, "Mohamed Eldemellawy", got.DoctorName)
	assert.Equal(t, entity.StageFinalDelivered, got.Stage)
	assert.Equal(t, 2, got.Units)
	assert.True(t, got.PriceEGP.Equal(decimal.NewFromInt(2500)))
	assert.Equal(t, "2026-01-08", got.DueDate.Format("2006-01-02"))
}

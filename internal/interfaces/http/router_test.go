package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/excel"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/memory"
	infrapdf "github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/pdf"
	apphttp "github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/interfaces/http"
)

// buildAPIApp aplicación completa sobre el store en memoria (el mismo cableado
// que cmd/api con DATA_BACKEND=memory).
func buildAPIApp(store *memory.Store) *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CaseUC:      usecase.NewCaseUseCase(store.Cases()),
		DoctorUC:    usecase.NewDoctorUseCase(store.Doctors(), store.Cases()),
		FinanceUC:   usecase.NewFinanceUseCase(store.Finance(), store.Cases()),
		DashboardUC: usecase.NewDashboardUseCase(store.Cases(), store.Finance()),
		InventoryUC: usecase.NewInventoryUseCase(store.Inventory()),
		StaffUC:     usecase.NewStaffUseCase(store.Staff()),
		InvoiceUC: usecase.NewInvoiceUseCase(
			store.Finance(), store.Cases(), store.Doctors(),
			infrapdf.NewMarotoInvoiceGenerator(),
		),
		Exporter:  excel.NewFinanceExporter(),
		JWTSecret: testJWTSecret,
	})
	return app
}

func apiGet(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", validToken(t))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestAPI_RutasProtegidasSinToken(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	req := httptest.NewRequest(http.MethodGet, "/api/cases", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAPI_ListarCasos(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/cases")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cases []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cases))
	require.Len(t, cases, 2)
	assert.Equal(t, "G8835", cases[0]["caseCode"])
	assert.Equal(t, "Final Delivered", cases[0]["stage"])
}

func TestAPI_CasoNoEncontradoEs404(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/cases/case-999")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_FalloDeTransporteEs500(t *testing.T) {
	store := memory.NewStore(memory.DefaultSeed())
	store.FailWith("GetCaseByID", errors.New("conexión rechazada"))
	app := buildAPIApp(store)

	resp := apiGet(t, app, "/api/cases/case-1")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode,
		"no encontrado es 404; un fallo del gateway es 500")
}

func TestAPI_ActualizarCaso(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	body := strings.NewReader(`{"units": 3}`)
	req := httptest.NewRequest(http.MethodPut, "/api/cases/case-1", body)
	req.Header.Set("Authorization", validToken(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(3), out["units"])
	assert.Equal(t, "3750", out["priceEgp"], "el precio se recalcula: 1250 × 3")
}

func TestAPI_ActualizarCasoConEtapaInvalida(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	body := strings.NewReader(`{"stage": "Shipped"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/cases/case-1", body)
	req.Header.Set("Authorization", validToken(t))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_CasosDeUnDoctor(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/doctors/doc-1/cases")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cases []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cases))
	require.Len(t, cases, 1)
	assert.Equal(t, "G8835", cases[0]["caseCode"])
}

func TestAPI_ReporteFinanciero(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/finance")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "3750", report["totalRevenue"])
	assert.Equal(t, "20000", report["totalExpenses"])
	assert.Equal(t, "-16250", report["profit"])
}

func TestAPI_ReporteFinancieroConFechaMalformada(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/finance?from=01-01-2026")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAPI_ExportarFinanzasXLSX(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/finance/export")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "finance_report.xlsx")
}

func TestAPI_DescargarFacturaPDF(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/invoices/inv-1/pdf")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAPI_FacturaInexistenteEs404(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/invoices/inv-999/pdf")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Inventario(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/inventory")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Products  []map[string]any `json:"products"`
		Movements []map[string]any `json:"movements"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Products, 2)
	require.Len(t, out.Movements, 2)
}

func TestAPI_Personal(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/staff")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Employees []map[string]any `json:"employees"`
		Payroll   []map[string]any `json:"payroll"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Employees, 2)
	require.Len(t, out.Payroll, 2)
	assert.Equal(t, "Jan 2026", out.Payroll[0]["periodLabel"])
}

func TestAPI_ResumenDelPanel(t *testing.T) {
	app := buildAPIApp(memory.NewStore(memory.DefaultSeed()))

	resp := apiGet(t, app, "/api/dashboard")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, float64(2), out["totalCases"])
	assert.Equal(t, float64(0), out["openCases"])
}

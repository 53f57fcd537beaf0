package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/infrastructure/excel"
)

// FinanceHandler maneja las peticiones HTTP de la vista de finanzas (protegido).
type FinanceHandler struct {
	uc       *usecase.FinanceUseCase
	exporter *excel.FinanceExporter
}

// NewFinanceHandler construye el handler.
func NewFinanceHandler(uc *usecase.FinanceUseCase, exporter *excel.FinanceExporter) *FinanceHandler {
	return &FinanceHandler{uc: uc, exporter: exporter}
}

// parseFilter lee los filtros opcionales del query string. Fechas en
// yyyy-mm-dd; un valor malformado es 400, no un filtro ignorado.
func parseFilter(c *fiber.Ctx) (usecase.FinanceFilter, error) {
	var filter usecase.FinanceFilter
	if v := c.Query("from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if v := c.Query("to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	filter.DoctorID = c.Query("doctorId")
	filter.CaseType = c.Query("caseType")
	filter.Material = c.Query("material")
	return filter, nil
}

// Report godoc
// @Summary      Reporte financiero (facturas, gastos, serie mensual y totales)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "Fecha inicial yyyy-mm-dd"
// @Param        to        query  string  false  "Fecha final yyyy-mm-dd"
// @Param        doctorId  query  string  false  "Filtrar por doctor"
// @Param        caseType  query  string  false  "try-in | final"
// @Param        material  query  string  false  "Filtrar por material"
// @Success      200  {object}  dto.FinanceReport
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/finance [get]
func (h *FinanceHandler) Report(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "fechas en formato yyyy-mm-dd"})
	}
	out, err := h.uc.Report(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar reporte financiero como XLSX
// @Tags         finance
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        from      query  string  false  "Fecha inicial yyyy-mm-dd"
// @Param        to        query  string  false  "Fecha final yyyy-mm-dd"
// @Param        doctorId  query  string  false  "Filtrar por doctor"
// @Param        caseType  query  string  false  "try-in | final"
// @Param        material  query  string  false  "Filtrar por material"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/finance/export [get]
func (h *FinanceHandler) Export(c *fiber.Ctx) error {
	filter, err := parseFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILTER", Message: "fechas en formato yyyy-mm-dd"})
	}
	report, err := h.uc.Report(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	book, err := h.exporter.Export(report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "EXPORT_FAILED", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="finance_report.xlsx"`)
	return c.Send(book)
}

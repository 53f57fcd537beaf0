package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
)

// StaffHandler maneja la página de personal (protegido).
type StaffHandler struct {
	uc *usecase.StaffUseCase
}

// NewStaffHandler construye el handler.
func NewStaffHandler(uc *usecase.StaffUseCase) *StaffHandler {
	return &StaffHandler{uc: uc}
}

// Overview godoc
// @Summary      Personal: empleados + pagos de nómina
// @Tags         staff
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StaffOverview
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) Overview(c *fiber.Ctx) error {
	out, err := h.uc.Overview(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

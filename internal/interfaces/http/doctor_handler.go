package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
)

// DoctorHandler maneja las peticiones HTTP para los doctores (protegido).
type DoctorHandler struct {
	uc *usecase.DoctorUseCase
}

// NewDoctorHandler construye el handler.
func NewDoctorHandler(uc *usecase.DoctorUseCase) *DoctorHandler {
	return &DoctorHandler{uc: uc}
}

// List godoc
// @Summary      Listar doctores
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.DoctorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/doctors [get]
func (h *DoctorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener doctor por ID
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del doctor"
// @Success      200  {object}  dto.DoctorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id} [get]
func (h *DoctorHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "doctor no encontrado"})
	}
	return c.JSON(out)
}

// Cases godoc
// @Summary      Listar casos remitidos por un doctor
// @Tags         doctors
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del doctor"
// @Success      200  {array}   dto.CaseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/doctors/{id}/cases [get]
func (h *DoctorHandler) Cases(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Cases(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

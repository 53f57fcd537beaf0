package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/dto"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/application/usecase"
	"github.com/DrAhmedAwni/BdigitalDentalDashboard/internal/domain"
)

// CaseHandler maneja las peticiones HTTP para los casos (protegido).
type CaseHandler struct {
	uc *usecase.CaseUseCase
}

// NewCaseHandler construye el handler.
func NewCaseHandler(uc *usecase.CaseUseCase) *CaseHandler {
	return &CaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar casos
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.CaseResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener caso por ID
// @Tags         cases
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del caso"
// @Success      200  {object}  dto.CaseResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [get]
func (h *CaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar caso (parcial)
// @Tags         cases
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del caso"
// @Param        body  body  dto.UpdateCaseRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cases/{id} [put]
func (h *CaseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateCaseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStage) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STAGE", Message: "etapa fuera del flujo de producción"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "caso no encontrado"})
	}
	return c.JSON(out)
}

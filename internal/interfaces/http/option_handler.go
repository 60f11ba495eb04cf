package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain"
)

// OptionHandler maneja el CRUD de addons y sizes; label distingue los
// mensajes ("Addon" / "Size"), el resto es idéntico.
type OptionHandler struct {
	uc    *usecase.OptionUseCase
	label string
}

// NewOptionHandler construye el handler para el kind indicado.
func NewOptionHandler(uc *usecase.OptionUseCase, label string) *OptionHandler {
	return &OptionHandler{uc: uc, label: label}
}

// List devuelve todas las opciones ordenadas por nombre.
func (h *OptionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list "+h.label, err)
	}
	return c.JSON(out)
}

// Create crea una opción. name, price y category son requeridos; price puede
// ser cero pero no faltar.
func (h *OptionHandler) Create(c *fiber.Ctx) error {
	var in dto.OptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Missing required fields")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Missing required fields")
		}
		return internalError(c, "create "+h.label, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza la fila completa por id.
func (h *OptionHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var in dto.OptionRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Missing required fields")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Missing required fields")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, h.label+" not found")
		}
		return internalError(c, "update "+h.label, err)
	}
	return c.JSON(out)
}

// Delete borra por id; 404 si no existía.
func (h *OptionHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, h.label+" not found")
		}
		return internalError(c, "delete "+h.label, err)
	}
	return c.JSON(dto.MessageResponse{Message: h.label + " deleted"})
}

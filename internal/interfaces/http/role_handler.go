package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain"
)

// RoleHandler maneja el CRUD de los registros de rol (Settings).
type RoleHandler struct {
	uc *usecase.RoleUseCase
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

// List devuelve todos los roles ordenados por id.
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list roles", err)
	}
	return c.JSON(out)
}

// Create crea un rol con su lista de permisos.
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Missing required fields")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Missing required fields")
		}
		return internalError(c, "create role", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update reemplaza la fila completa por id.
func (h *RoleHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	var in dto.RoleRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "Missing required fields")
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "Missing required fields")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Role not found")
		}
		return internalError(c, "update role", err)
	}
	return c.JSON(out)
}

// Delete borra por id; 404 si no existía.
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFound(c, "Role not found")
		}
		return internalError(c, "delete role", err)
	}
	return c.JSON(dto.MessageResponse{Message: "Role deleted"})
}

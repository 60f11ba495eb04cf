package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/auth"
	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
)

// UserHandler maneja la administración de cuentas (rutas privilegiadas:
// el router las protege con RequireRole admin/manager).
type UserHandler struct {
	uc *auth.UseCase
}

// NewUserHandler construye el handler de administración de usuarios.
func NewUserHandler(uc *auth.UseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list users", err)
	}
	return c.JSON(out)
}

// ToggleActive godoc
// @Summary      Activar o desactivar una cuenta
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  int  true  "ID del usuario"
// @Param        body  body  dto.ToggleActiveRequest  true  "active"
// @Success      200   {object}  dto.ToggleActiveResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/active [patch]
func (h *UserHandler) ToggleActive(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	var in dto.ToggleActiveRequest
	if err := c.BodyParser(&in); err != nil || in.Active == nil {
		return badRequest(c, "Missing 'active' field")
	}
	out, err := h.uc.SetActive(c.Context(), id, *in.Active)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "toggle active", err)
	}
	return c.JSON(out)
}

// ResetPassword godoc
// @Summary      Resetear la contraseña de una cuenta
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  int  true  "ID del usuario"
// @Success      200  {object}  dto.ResetPasswordResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/reset-password [patch]
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return badRequest(c, "Invalid user id")
	}
	out, err := h.uc.ResetPassword(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "User not found")
		}
		return internalError(c, "reset password", err)
	}
	return c.JSON(out)
}

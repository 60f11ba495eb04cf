package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain"
)

// CategoryHandler maneja el CRUD de categorías.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// List godoc
// @Summary      Listar categorías
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list categories", err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "name required")
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "name required")
		}
		return internalError(c, "create category", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Rename godoc
// @Summary      Renombrar categoría (por nombre actual, no por id)
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre actual"
// @Param        body  body  dto.RenameCategoryRequest  true  "newName"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/categories/{name} [put]
func (h *CategoryHandler) Rename(c *fiber.Ctx) error {
	var in dto.RenameCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "New category name required")
	}
	out, err := h.uc.Rename(c.Context(), c.Params("name"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "New category name required")
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Category not found")
		}
		return internalError(c, "rename category", err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar categoría (bloqueado si addons o sizes la referencian)
// @Tags         catalog
// @Produce      json
// @Param        name  path  string  true  "Nombre de la categoría"
// @Success      200   {object}  dto.DeletedCategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/categories/{name} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	out, err := h.uc.Delete(c.Context(), c.Params("name"))
	if err != nil {
		var refErr *domain.CategoryReferencedError
		switch {
		case errors.As(err, &refErr):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: refErr.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return notFound(c, "Category not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return badRequest(c, "name required")
		}
		return internalError(c, "delete category", err)
	}
	return c.JSON(out)
}

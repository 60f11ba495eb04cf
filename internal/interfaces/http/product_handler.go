package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kape-pos-api/internal/application/usecase"
	"github.com/jhoicas/kape-pos-api/internal/domain"
)

// ProductHandler maneja el catálogo de productos (protegido por token).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// Create godoc
// @Summary      Crear producto (multipart con imagen opcional)
// @Tags         products
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        productName   formData  string  true   "Nombre"
// @Param        category      formData  string  true   "Categoría (por nombre)"
// @Param        size          formData  string  false  "Mapa de tamaños en JSON"
// @Param        addons        formData  string  false  "Lista de addons en JSON"
// @Param        productImage  formData  file    false  "Imagen"
// @Success      201  {object}  dto.CreateProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	in := usecase.CreateProductInput{
		Name:     c.FormValue("productName"),
		Category: c.FormValue("category"),
		Size:     c.FormValue("size"),
		Addons:   c.FormValue("addons"),
	}

	// La imagen es opcional: sin archivo en el form se persiste image = NULL.
	if fh, err := c.FormFile("productImage"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return internalError(c, "open upload", err)
		}
		defer f.Close()
		in.Image = f
		in.ImageName = fh.Filename
	}

	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return badRequest(c, "Missing required fields")
		}
		return internalError(c, "create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return internalError(c, "list products", err)
	}
	return c.JSON(out)
}

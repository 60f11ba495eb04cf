package usecase

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

// ImageSaver es el contrato mínimo del almacenamiento de imágenes que necesita
// el caso de uso (lo implementa *storage.ImageStore).
type ImageSaver interface {
	Save(src io.Reader, originalName string) (string, error)
}

// CreateProductInput entrada de creación desde el form multipart.
// Size y Addons llegan como texto JSON; se persisten como JSON estructurado y
// nunca se vuelve a exponer texto serializado a los consumidores de la API.
type CreateProductInput struct {
	Name      string
	Category  string
	Size      string // texto JSON; vacío -> "{}"
	Addons    string // texto JSON; vacío -> "[]"
	Image     io.Reader // nil si no se subió imagen
	ImageName string
}

// ProductUseCase casos de uso del catálogo de productos.
type ProductUseCase struct {
	repo   repository.ProductRepository
	images ImageSaver
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, images ImageSaver) *ProductUseCase {
	return &ProductUseCase{repo: repo, images: images}
}

// Create guarda la imagen (si la hay) bajo el directorio de uploads y persiste
// el producto con solo el nombre de archivo.
func (uc *ProductUseCase) Create(ctx context.Context, in CreateProductInput) (*dto.CreateProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" {
		return nil, domain.ErrInvalidInput
	}

	size := in.Size
	if strings.TrimSpace(size) == "" {
		size = "{}"
	}
	addons := in.Addons
	if strings.TrimSpace(addons) == "" {
		addons = "[]"
	}
	if !json.Valid([]byte(size)) || !json.Valid([]byte(addons)) {
		return nil, domain.ErrInvalidInput
	}

	var filename string
	if in.Image != nil {
		var err error
		filename, err = uc.images.Save(in.Image, in.ImageName)
		if err != nil {
			return nil, err
		}
	}

	product := &entity.Product{
		Name:     name,
		Category: category,
		Image:    filename,
		Size:     json.RawMessage(size),
		Addons:   json.RawMessage(addons),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &dto.CreateProductResponse{Message: "Product added successfully", ID: product.ID}, nil
}

// List devuelve todos los productos ordenados por id ascendente.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		var image *string
		if p.Image != "" {
			img := p.Image
			image = &img
		}
		out = append(out, dto.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Image:    image,
			Size:     p.Size,
			Addons:   p.Addons,
		})
	}
	return out, nil
}

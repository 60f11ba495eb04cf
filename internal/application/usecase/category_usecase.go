package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

// CategoryUseCase casos de uso CRUD para categorías.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// Create crea una categoría. El nombre se recorta y no puede quedar vacío.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, dto.CategoryResponse{ID: c.ID, Name: c.Name})
	}
	return out, nil
}

// Rename renombra la categoría encontrada por su nombre actual. Las
// referencias por nombre ya guardadas en addons/sizes/products no cambian
// (soft reference, sin cascada).
func (uc *CategoryUseCase) Rename(ctx context.Context, oldName string, in dto.RenameCategoryRequest) (*dto.CategoryResponse, error) {
	oldName = strings.TrimSpace(oldName)
	newName := strings.TrimSpace(in.NewName)
	if oldName == "" || newName == "" {
		return nil, domain.ErrInvalidInput
	}
	c, err := uc.repo.Rename(ctx, oldName, newName)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name}, nil
}

// Delete borra la categoría por nombre. Si todavía la referencia algún addon
// o size, el repo devuelve *domain.CategoryReferencedError y no se borra nada.
func (uc *CategoryUseCase) Delete(ctx context.Context, name string) (*dto.DeletedCategoryResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	id, err := uc.repo.Delete(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.DeletedCategoryResponse{ID: id, Message: "Category deleted"}, nil
}

package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

// OptionUseCase casos de uso CRUD para addons y sizes (mismas reglas, repo
// construido sobre la tabla que corresponda).
type OptionUseCase struct {
	repo repository.OptionRepository
}

// NewOptionUseCase construye el caso de uso.
func NewOptionUseCase(repo repository.OptionRepository) *OptionUseCase {
	return &OptionUseCase{repo: repo}
}

// validate normaliza y valida la entrada: name y category no vacíos, price
// presente y no negativo (cero es válido, ausente no).
func (uc *OptionUseCase) validate(in dto.OptionRequest) (*entity.Option, error) {
	name := strings.TrimSpace(in.Name)
	category := strings.TrimSpace(in.Category)
	if name == "" || category == "" || in.Price == nil {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	return &entity.Option{Name: name, Price: *in.Price, Category: category}, nil
}

// Create crea una opción nueva.
func (uc *OptionUseCase) Create(ctx context.Context, in dto.OptionRequest) (*dto.OptionResponse, error) {
	option, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, option); err != nil {
		return nil, err
	}
	return toOptionResponse(option), nil
}

// List devuelve todas las opciones ordenadas por nombre.
func (uc *OptionUseCase) List(ctx context.Context) ([]dto.OptionResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OptionResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOptionResponse(o))
	}
	return out, nil
}

// Update reemplaza la fila completa por id.
func (uc *OptionUseCase) Update(ctx context.Context, id int64, in dto.OptionRequest) (*dto.OptionResponse, error) {
	option, err := uc.validate(in)
	if err != nil {
		return nil, err
	}
	option.ID = id
	updated, err := uc.repo.Update(ctx, option)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toOptionResponse(updated), nil
}

// Delete borra por id; ErrNotFound si la fila no existía.
func (uc *OptionUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func toOptionResponse(o *entity.Option) *dto.OptionResponse {
	return &dto.OptionResponse{ID: o.ID, Name: o.Name, Price: o.Price, Category: o.Category}
}

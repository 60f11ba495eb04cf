package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/kape-pos-api/internal/application/dto"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

// RoleUseCase casos de uso CRUD para los registros de rol (Settings).
// Se relacionan con User.Role por nombre; borrarlos no toca las cuentas.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// Create crea un rol. Access puede ser vacío pero nunca null en la respuesta.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	role := &entity.Role{Name: name, Access: accessOrEmpty(in.Access)}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// List devuelve todos los roles ordenados por id ascendente.
func (uc *RoleUseCase) List(ctx context.Context) ([]dto.RoleResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RoleResponse, 0, len(list))
	for _, r := range list {
		out = append(out, *toRoleResponse(r))
	}
	return out, nil
}

// Update reemplaza la fila completa por id.
func (uc *RoleUseCase) Update(ctx context.Context, id int64, in dto.RoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	updated, err := uc.repo.Update(ctx, &entity.Role{ID: id, Name: name, Access: accessOrEmpty(in.Access)})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toRoleResponse(updated), nil
}

// Delete borra por id; ErrNotFound si la fila no existía.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	deleted, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func accessOrEmpty(access []string) []string {
	if access == nil {
		return []string{}
	}
	return access
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	return &dto.RoleResponse{ID: r.ID, Name: r.Name, Access: accessOrEmpty(r.Access)}
}

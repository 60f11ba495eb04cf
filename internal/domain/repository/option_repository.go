package repository

import (
	"context"

	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

// OptionRepository puerto de persistencia para addons y sizes (misma forma,
// tabla distinta según el kind con que se construya la implementación).
type OptionRepository interface {
	// Create persiste la opción y asigna option.ID.
	Create(ctx context.Context, option *entity.Option) error
	// List devuelve todas las opciones ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Option, error)
	// Update reemplaza la fila completa por id. Devuelve (nil, nil) si no existe.
	Update(ctx context.Context, option *entity.Option) (*entity.Option, error)
	// Delete borra por id. Devuelve false si no existía la fila.
	Delete(ctx context.Context, id int64) (bool, error)
}

// RoleRepository puerto de persistencia para los registros de rol (Settings).
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	// List devuelve todos los roles ordenados por id ascendente.
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) (*entity.Role, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

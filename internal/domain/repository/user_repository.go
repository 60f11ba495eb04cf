package repository

import (
	"context"

	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get* devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	// Create persiste el usuario y asigna user.ID. La unicidad del username la
	// garantiza el constraint de la DB; una violación se mapea a ErrUsernameExists.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// List devuelve todos los usuarios ordenados por id ascendente.
	List(ctx context.Context) ([]*entity.User, error)
	// SetActive actualiza el flag active y devuelve la fila actualizada.
	SetActive(ctx context.Context, id int64, active bool) (*entity.User, error)
	// UpdatePassword reemplaza el hash y devuelve la fila (id, username).
	UpdatePassword(ctx context.Context, id int64, passwordHash string) (*entity.User, error)
	// GetRoleByID devuelve solo el rol actual (para el gate de autorización).
	GetRoleByID(ctx context.Context, id int64) (string, error)
}

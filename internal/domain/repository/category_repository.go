package repository

import (
	"context"

	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

// CategoryRepository puerto de persistencia para Category.
// Las categorías se referencian por nombre desde addons, sizes y products.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (*entity.Category, error)
	// List devuelve todas las categorías ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Category, error)
	// Rename actualiza la fila encontrada por el nombre actual (la operación es
	// nombre→nombre, no por id). Devuelve (nil, nil) si no existe oldName.
	// No propaga el cambio a las referencias ya guardadas (soft reference).
	Rename(ctx context.Context, oldName, newName string) (*entity.Category, error)
	// Delete borra la categoría por nombre. Devuelve *domain.CategoryReferencedError
	// si algún addon o size la referencia, domain.ErrNotFound si no existe.
	// Verificación y borrado corren dentro de una misma transacción.
	Delete(ctx context.Context, name string) (int64, error)
}

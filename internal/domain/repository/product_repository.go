package repository

import (
	"context"

	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para Product.
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID.
	Create(ctx context.Context, product *entity.Product) error
	// List devuelve todos los productos ordenados por id ascendente, con Size y
	// Addons ya normalizados a JSON estructurado (filas legacy incluidas).
	List(ctx context.Context) ([]*entity.Product, error)
}

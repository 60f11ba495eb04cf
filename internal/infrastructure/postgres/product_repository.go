package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepo {
	return &ProductRepo{pool: pool}
}

// Create persiste un nuevo producto y asigna el ID generado.
// Size y Addons se guardan como JSON estructurado; la serialización ocurre
// solo en este borde de almacenamiento.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	var image *string
	if product.Image != "" {
		image = &product.Image
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO products (name, category, image, size, addons)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		product.Name, product.Category, image, []byte(product.Size), []byte(product.Addons),
	).Scan(&product.ID)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// List devuelve todos los productos ordenados por id ascendente. Las filas
// legacy pueden traer size/addons como texto JSON doblemente serializado;
// se normalizan al leer sin fallar la lectura completa.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, category, image, size, addons FROM products ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var (
			p      entity.Product
			image  *string
			size   []byte
			addons []byte
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &image, &size, &addons); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		if image != nil {
			p.Image = *image
		}
		p.Size = entity.NormalizeJSON(json.RawMessage(size))
		p.Addons = entity.NormalizeJSON(json.RawMessage(addons))
		list = append(list, &p)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/kape-pos-api/internal/domain"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository construye el adaptador de persistencia para categorías.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(ctx context.Context, name string) (*entity.Category, error) {
	var c entity.Category
	err := r.pool.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id, name`, name,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if isUniqueViolation(err, "categories_name_key") {
			return nil, domain.ErrInvalidInput
		}
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &c, nil
}

// List devuelve todas las categorías ordenadas por nombre.
func (r *CategoryRepo) List(ctx context.Context) ([]*entity.Category, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Category
	for rows.Next() {
		var c entity.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Rename actualiza la fila encontrada por su nombre actual (operación nombre→nombre).
// Las referencias por nombre ya guardadas en addons/sizes/products no se tocan.
func (r *CategoryRepo) Rename(ctx context.Context, oldName, newName string) (*entity.Category, error) {
	var c entity.Category
	err := r.pool.QueryRow(ctx,
		`UPDATE categories SET name = $1 WHERE name = $2 RETURNING id, name`, newName, oldName,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("rename category: %w", err)
	}
	return &c, nil
}

// Delete borra la categoría por nombre, dentro de una transacción: primero se
// verifica que ningún addon ni size la referencie y luego se borra. Un insert
// concurrente de una referencia entre el check y el delete es una carrera
// aceptada en este dominio (datos de catálogo, read committed alcanza).
func (r *CategoryRepo) Delete(ctx context.Context, name string) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, table := range []string{"addons", "sizes"} {
		var one int
		err := tx.QueryRow(ctx,
			fmt.Sprintf(`SELECT 1 FROM %s WHERE category = $1 LIMIT 1`, table), name,
		).Scan(&one)
		switch {
		case err == nil:
			return 0, &domain.CategoryReferencedError{By: table}
		case errors.Is(err, pgx.ErrNoRows):
			// sin referencias en esta tabla
		default:
			return 0, fmt.Errorf("check %s references: %w", table, err)
		}
	}

	var id int64
	err = tx.QueryRow(ctx, `DELETE FROM categories WHERE name = $1 RETURNING id`, name).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, fmt.Errorf("delete category: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction: %w", err)
	}
	return id, nil
}

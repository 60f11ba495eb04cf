package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/kape-pos-api/internal/domain/entity"
	"github.com/jhoicas/kape-pos-api/internal/domain/repository"
)

var _ repository.OptionRepository = (*OptionRepo)(nil)

// OptionRepo implementación del puerto OptionRepository sobre PostgreSQL.
// Addons y sizes comparten forma y reglas; el kind decide la tabla.
type OptionRepo struct {
	pool  *pgxpool.Pool
	table string
}

// NewOptionRepository construye el adaptador para la tabla del kind indicado.
func NewOptionRepository(pool *pgxpool.Pool, kind entity.OptionKind) *OptionRepo {
	return &OptionRepo{pool: pool, table: kind.Table()}
}

// Create persiste una nueva opción y asigna el ID generado.
func (r *OptionRepo) Create(ctx context.Context, option *entity.Option) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (name, price, category) VALUES ($1, $2, $3) RETURNING id`, r.table)
	err := r.pool.QueryRow(ctx, query, option.Name, option.Price, option.Category).Scan(&option.ID)
	if err != nil {
		return fmt.Errorf("insert %s: %w", r.table, err)
	}
	return nil
}

// List devuelve todas las opciones ordenadas por nombre.
func (r *OptionRepo) List(ctx context.Context) ([]*entity.Option, error) {
	query := fmt.Sprintf(`SELECT id, name, price, category FROM %s ORDER BY name`, r.table)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.table, err)
	}
	defer rows.Close()
	var list []*entity.Option
	for rows.Next() {
		var o entity.Option
		if err := rows.Scan(&o.ID, &o.Name, &o.Price, &o.Category); err != nil {
			return nil, fmt.Errorf("scan %s: %w", r.table, err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// Update reemplaza la fila completa por id. Devuelve (nil, nil) si no existe.
func (r *OptionRepo) Update(ctx context.Context, option *entity.Option) (*entity.Option, error) {
	query := fmt.Sprintf(`
		UPDATE %s SET name = $2, price = $3, category = $4
		WHERE id = $1
		RETURNING id, name, price, category`, r.table)
	var o entity.Option
	err := r.pool.QueryRow(ctx, query, option.ID, option.Name, option.Price, option.Category).
		Scan(&o.ID, &o.Name, &o.Price, &o.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update %s: %w", r.table, err)
	}
	return &o, nil
}

// Delete borra por id. Devuelve false si la fila no existía.
func (r *OptionRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table), id)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", r.table, err)
	}
	return tag.RowsAffected() > 0, nil
}

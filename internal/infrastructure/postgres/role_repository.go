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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación del puerto RoleRepository sobre PostgreSQL.
// La columna access es text[]; pgx la mapea directo a []string.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository construye el adaptador de persistencia para roles.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// Create persiste un nuevo rol y asigna el ID generado.
func (r *RoleRepo) Create(ctx context.Context, role *entity.Role) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO roles (name, access) VALUES ($1, $2) RETURNING id`,
		role.Name, role.Access,
	).Scan(&role.ID)
	if err != nil {
		return fmt.Errorf("insert role: %w", err)
	}
	return nil
}

// List devuelve todos los roles ordenados por id ascendente.
func (r *RoleRepo) List(ctx context.Context) ([]*entity.Role, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, access FROM roles ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var ro entity.Role
		if err := rows.Scan(&ro.ID, &ro.Name, &ro.Access); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &ro)
	}
	return list, rows.Err()
}

// Update reemplaza la fila completa por id. Devuelve (nil, nil) si no existe.
func (r *RoleRepo) Update(ctx context.Context, role *entity.Role) (*entity.Role, error) {
	var ro entity.Role
	err := r.pool.QueryRow(ctx,
		`UPDATE roles SET name = $2, access = $3 WHERE id = $1 RETURNING id, name, access`,
		role.ID, role.Name, role.Access,
	).Scan(&ro.ID, &ro.Name, &ro.Access)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update role: %w", err)
	}
	return &ro, nil
}

// Delete borra por id. Devuelve false si la fila no existía.
func (r *RoleRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

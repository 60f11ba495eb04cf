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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna el ID generado por la DB.
// La unicidad del username la resuelve el constraint, no un check previo:
// dos registros concurrentes nunca producen dos cuentas con el mismo username.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, name, role, password, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		user.Username, user.Name, user.Role, user.PasswordHash, user.Active,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err, "users_username_key") {
			return domain.ErrUsernameExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT id, username, name, role, password, active
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Username, &u.Name, &u.Role, &u.PasswordHash, &u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username (clave de login).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, name, role, password, active
		FROM users WHERE username = $1`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.Name, &u.Role, &u.PasswordHash, &u.Active,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// List devuelve todos los usuarios ordenados por id ascendente.
// Se selecciona el hash por consistencia de scan; los DTOs nunca lo exponen.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, name, role, password, active
		FROM users ORDER BY id ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Role, &u.PasswordHash, &u.Active); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// SetActive actualiza el flag active y devuelve la fila actualizada, o (nil, nil) si no existe.
func (r *UserRepo) SetActive(ctx context.Context, id int64, active bool) (*entity.User, error) {
	query := `UPDATE users SET active = $2 WHERE id = $1 RETURNING id, username, active`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id, active).Scan(&u.ID, &u.Username, &u.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("set user active: %w", err)
	}
	return &u, nil
}

// UpdatePassword reemplaza el hash almacenado y devuelve la fila, o (nil, nil) si no existe.
func (r *UserRepo) UpdatePassword(ctx context.Context, id int64, passwordHash string) (*entity.User, error) {
	query := `UPDATE users SET password = $2 WHERE id = $1 RETURNING id, username`
	var u entity.User
	err := r.pool.QueryRow(ctx, query, id, passwordHash).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("update user password: %w", err)
	}
	return &u, nil
}

// GetRoleByID devuelve el rol actual del usuario. Retorna domain.ErrUserNotFound
// si la cuenta ya no existe (el gate de autorización responde 404 en ese caso).
func (r *UserRepo) GetRoleByID(ctx context.Context, id int64) (string, error) {
	var role string
	err := r.pool.QueryRow(ctx, `SELECT role FROM users WHERE id = $1`, id).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrUserNotFound
		}
		return "", fmt.Errorf("get user role: %w", err)
	}
	return role, nil
}

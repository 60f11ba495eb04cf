package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation SQLSTATE de violación de constraint único.
const uniqueViolation = "23505"

// isUniqueViolation reporta si err es una violación de unique constraint.
// Con constraint no vacío exige además que sea ese constraint en particular,
// para no confundir el username duplicado con otra colisión de la misma tabla.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_username_key"}

	assert.True(t, isUniqueViolation(dup, "users_username_key"))
	assert.True(t, isUniqueViolation(dup, ""), "sin constraint acepta cualquier 23505")
	assert.True(t, isUniqueViolation(fmt.Errorf("insert user: %w", dup), "users_username_key"),
		"debe atravesar el wrapping con errors.As")

	assert.False(t, isUniqueViolation(dup, "categories_name_key"), "otro constraint no cuenta")
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23503"}, ""), "otro SQLSTATE no cuenta")
	assert.False(t, isUniqueViolation(errors.New("23505 de mentira"), ""),
		"texto suelto no es una violación de constraint")
}

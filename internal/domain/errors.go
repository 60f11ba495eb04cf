package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUsernameExists     = errors.New("el username ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInactiveAccount    = errors.New("cuenta inactiva")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// CategoryReferencedError indica que una categoría no puede borrarse porque
// todavía hay addons o sizes que la referencian por nombre.
type CategoryReferencedError struct {
	By string // "addons" | "sizes"
}

func (e *CategoryReferencedError) Error() string {
	return "category is referenced by " + e.By
}

package dto

import "github.com/shopspring/decimal"

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// RenameCategoryRequest entrada para renombrar una categoría (la actual va en la URL).
type RenameCategoryRequest struct {
	NewName string `json:"newName"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DeletedCategoryResponse salida del borrado: id de la fila eliminada.
type DeletedCategoryResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// OptionRequest entrada para crear o reemplazar un addon o size.
// Price es puntero para distinguir "ausente" (inválido) de cero (válido).
type OptionRequest struct {
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Category string           `json:"category"`
}

// OptionResponse salida de un addon o size.
type OptionResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

// RoleRequest entrada para crear o reemplazar un registro de rol.
type RoleRequest struct {
	Name   string   `json:"name"`
	Access []string `json:"access"`
}

// RoleResponse salida de un registro de rol.
type RoleResponse struct {
	ID     int64    `json:"id"`
	Name   string   `json:"name"`
	Access []string `json:"access"`
}

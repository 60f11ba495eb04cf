package dto

import "encoding/json"

// CreateProductResponse salida de la creación de un producto.
type CreateProductResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// ProductResponse salida de un producto. Size y Addons son siempre JSON
// estructurado (la normalización de filas legacy ocurre en el repositorio).
type ProductResponse struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Image    *string         `json:"image"`
	Size     json.RawMessage `json:"size"`
	Addons   json.RawMessage `json:"addons"`
}

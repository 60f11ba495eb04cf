package dto

// ErrorResponse cuerpo de error HTTP: {"error": "mensaje"}.
// Para fallas inesperadas de storage el mensaje es genérico; el detalle queda
// solo en el log del servidor.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

package dto

// RegisterRequest entrada para registrar un usuario (password en texto, se hashea en use case).
type RegisterRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Password string `json:"password"`
	Active   *bool  `json:"active"` // nil -> true
}

// RegisterResponse salida de registro. Nunca incluye la contraseña ni el hash.
type RegisterResponse struct {
	Message  string `json:"message"`
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserResponse salida de un usuario (sin password). Name se omite en las
// respuestas de login y /me, que exponen solo id/username/role/active.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// MeResponse salida de /me.
type MeResponse struct {
	User UserResponse `json:"user"`
}

// ToggleActiveRequest entrada para activar/desactivar una cuenta.
// Puntero para distinguir "campo ausente" de false.
type ToggleActiveRequest struct {
	Active *bool `json:"active"`
}

// ToggleActiveResponse salida del toggle.
type ToggleActiveResponse struct {
	ID     int64 `json:"id"`
	Active bool  `json:"active"`
}

// ResetPasswordResponse salida del reset: la contraseña temporal en texto se
// muestra esta única vez, después solo existe el hash.
type ResetPasswordResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
	Password string `json:"password"`
}

package entity

// Roles con permisos de administración de usuarios.
// User.Role es texto libre; la comparación es case-insensitive.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
)

// User representa una cuenta del personal del punto de venta.
type User struct {
	ID           int64
	Username     string // único, clave de login
	Name         string
	Role         string // texto libre: admin, manager, barista, ...
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Active       bool   // false bloquea el login aunque la contraseña sea correcta
}

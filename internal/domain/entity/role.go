package entity

// Role es el registro de autorización configurable desde Settings.
// Se relaciona con User.Role por nombre; no hay foreign key.
type Role struct {
	ID     int64
	Name   string
	Access []string // lista ordenada de permisos
}

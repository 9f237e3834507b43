package model

import "time"

// Usuario roles and account types.
// Rol: "admin" | "usuario" — only admin reaches user administration.
const (
	RolAdmin   = "admin"
	RolUsuario = "usuario"

	TipoEmpleado = "empleado"
	TipoVecino   = "vecino"
)

// Usuario stores a login account. Password holds a bcrypt hash, never
// plaintext. IntentosFallidos counts consecutive failed logins; once it
// reaches the lockout threshold BloqueadoHasta is set and attempts are
// rejected until that instant passes.
type Usuario struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Password         string     `json:"password"`
	Nombre           string     `json:"nombre"`
	Tipo             string     `json:"tipo"`
	Rol              string     `json:"rol"`
	Activo           bool       `json:"activo"`
	FechaInicio      time.Time  `json:"fechaInicio"`
	IntentosFallidos int        `json:"intentosFallidos"`
	BloqueadoHasta   *time.Time `json:"bloqueadoHasta,omitempty"`
}

// SinPassword returns a copy safe to hand to callers: the hash is blanked.
func (u Usuario) SinPassword() Usuario {
	u.Password = ""
	return u
}

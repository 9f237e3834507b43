package dto

import "time"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=4"`
}

type CrearUsuarioRequest struct {
	Username string `json:"username" validate:"required,min=1,max=150"`
	Nombre   string `json:"nombre"   validate:"required,min=2,max=100"`
	Password string `json:"password" validate:"required,min=8"`
	Tipo     string `json:"tipo"     validate:"required,oneof=empleado vecino"`
	Rol      string `json:"rol"      validate:"required,oneof=admin usuario"`
}

type ActualizarUsuarioRequest struct {
	Nombre   string `json:"nombre"   validate:"omitempty,min=2,max=100"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Tipo     string `json:"tipo"     validate:"omitempty,oneof=empleado vecino"`
	Rol      string `json:"rol"      validate:"omitempty,oneof=admin usuario"`
	Activo   *bool  `json:"activo"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// UsuarioResponse is the user record minus the password hash.
type UsuarioResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Nombre      string    `json:"nombre"`
	Tipo        string    `json:"tipo"`
	Rol         string    `json:"rol"`
	Activo      bool      `json:"activo"`
	FechaInicio time.Time `json:"fechaInicio"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}

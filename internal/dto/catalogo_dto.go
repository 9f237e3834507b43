package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ─── Proveedores ─────────────────────────────────────────────────────────────

type ProveedorRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=2"`
	Telefono string  `json:"telefono" validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
}

// ─── Cotizaciones ────────────────────────────────────────────────────────────

type CotizacionRequest struct {
	ProveedorID     string          `json:"proveedorId"     validate:"required"`
	FechaSuministro time.Time       `json:"fechaSuministro" validate:"required"`
	PrecioLitro     decimal.Decimal `json:"precioLitro"     validate:"min=0"`
	Observaciones   *string         `json:"observaciones"`
}

// PrecioResponse is the quote-selection result for a supplier and supply date.
type PrecioResponse struct {
	ProveedorID     string          `json:"proveedorId"`
	FechaSuministro time.Time       `json:"fechaSuministro"`
	PrecioLitro     decimal.Decimal `json:"precioLitro"`
}

// ─── Comunidades ─────────────────────────────────────────────────────────────

type ComunidadRequest struct {
	Nombre            string  `json:"nombre"            validate:"required,min=2"`
	Direccion         string  `json:"direccion"         validate:"required"`
	CapacidadDeposito int     `json:"capacidadDeposito" validate:"required,gt=0"`
	EmpleadoID        *string `json:"empleadoId"`
	VecinoID          *string `json:"vecinoId"`
}

// ─── Responsables ────────────────────────────────────────────────────────────

type EmpleadoRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=2"`
	Telefono string  `json:"telefono" validate:"required"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Activo   *bool   `json:"activo"`
}

type VecinoRequest struct {
	Nombre      string     `json:"nombre"      validate:"required,min=2"`
	Telefono    string     `json:"telefono"    validate:"required"`
	Email       *string    `json:"email"       validate:"omitempty,email"`
	Cargo       string     `json:"cargo"       validate:"required,oneof=presidente vicepresidente secretario tesorero vocal"`
	ComunidadID string     `json:"comunidadId" validate:"required"`
	FechaInicio time.Time  `json:"fechaInicio" validate:"required"`
	FechaFin    *time.Time `json:"fechaFin"`
}

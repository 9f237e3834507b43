package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearPedidoRequest creates a delivery order. The price per liter is derived
// from the supplier's quote history for the supply date; PrecioMejorado, when
// present, overrides it and the quoted price is kept as precioOriginal.
// Any caller-supplied total is ignored — the service always recomputes it.
type CrearPedidoRequest struct {
	ProveedorID     string           `json:"proveedorId"     validate:"required"`
	ComunidadID     string           `json:"comunidadId"     validate:"required"`
	ResponsableID   string           `json:"responsableId"   validate:"required"`
	Litros          decimal.Decimal  `json:"litros"          validate:"required,gt=0"`
	FechaSuministro time.Time        `json:"fechaSuministro" validate:"required"`
	PrecioMejorado  *decimal.Decimal `json:"precioMejorado"`
	Observaciones   *string          `json:"observaciones"`
}

type ActualizarPedidoRequest struct {
	Litros         *decimal.Decimal `json:"litros"         validate:"omitempty,gt=0"`
	Estado         string           `json:"estado"         validate:"omitempty,oneof=pendiente confirmado entregado"`
	PrecioMejorado *decimal.Decimal `json:"precioMejorado"`
	FechaEntrega   *time.Time       `json:"fechaEntrega"`
	HoraEntrega    *string          `json:"horaEntrega"`
	Observaciones  *string          `json:"observaciones"`
}

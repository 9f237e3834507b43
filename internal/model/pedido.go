package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estado lifecycle of a Pedido.
const (
	EstadoPendiente  = "pendiente"
	EstadoConfirmado = "confirmado"
	EstadoEntregado  = "entregado"
)

// Pedido is a concrete delivery order. Total is always recomputed as
// Litros × PrecioLitro — a caller-supplied total is never trusted.
// When the quoted price was manually improved, PrecioMejorado is set and
// PrecioOriginal keeps the quote price it replaced.
type Pedido struct {
	ID              string           `json:"id"`
	Fecha           time.Time        `json:"fecha"`
	ProveedorID     string           `json:"proveedorId"`
	ComunidadID     string           `json:"comunidadId"`
	ResponsableID   string           `json:"responsableId"`
	Litros          decimal.Decimal  `json:"litros"`
	PrecioLitro     decimal.Decimal  `json:"precioLitro"`
	PrecioMejorado  bool             `json:"precioMejorado,omitempty"`
	PrecioOriginal  *decimal.Decimal `json:"precioOriginal,omitempty"`
	Total           decimal.Decimal  `json:"total"`
	Estado          string           `json:"estado"`
	FechaSuministro time.Time        `json:"fechaSuministro"`
	FechaEntrega    *time.Time       `json:"fechaEntrega,omitempty"`
	HoraEntrega     *string          `json:"horaEntrega,omitempty"`
	Observaciones   *string          `json:"observaciones,omitempty"`
}

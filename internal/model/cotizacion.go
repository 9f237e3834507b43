package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cotizacion is a supplier's price-per-liter offer. Several cotizaciones per
// proveedor form its price history; Fecha is the issue timestamp and
// FechaSuministro the date the oil would be delivered at that price.
type Cotizacion struct {
	ID              string          `json:"id"`
	ProveedorID     string          `json:"proveedorId"`
	Fecha           time.Time       `json:"fecha"`
	FechaSuministro time.Time       `json:"fechaSuministro"`
	PrecioLitro     decimal.Decimal `json:"precioLitro"`
	Observaciones   *string         `json:"observaciones,omitempty"`
}

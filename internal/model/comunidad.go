package model

// Comunidad is a residential community receiving deliveries into its tank.
// EmpleadoID / VecinoID optionally assign a responsible employee and a
// resident representative; either may dangle after a delete (no cascade).
type Comunidad struct {
	ID                string  `json:"id"`
	Nombre            string  `json:"nombre"`
	Direccion         string  `json:"direccion"`
	CapacidadDeposito int     `json:"capacidadDeposito"` // liters
	EmpleadoID        *string `json:"empleadoId,omitempty"`
	VecinoID          *string `json:"vecinoId,omitempty"`
}

package model

// Documento is the full persisted dataset: every collection serialized as one
// JSON object under a single storage key. It is always read and written whole —
// there is no partial persistence.
type Documento struct {
	Proveedores  []Proveedor  `json:"proveedores"`
	Cotizaciones []Cotizacion `json:"cotizaciones"`
	Pedidos      []Pedido     `json:"pedidos"`
	Comunidades  []Comunidad  `json:"comunidades"`
	Empleados    []Empleado   `json:"empleados"`
	Vecinos      []Vecino     `json:"vecinos"`
	Usuarios     []Usuario    `json:"usuarios"`
}

package model

// Proveedor represents a heating-oil supplier with contact data.
type Proveedor struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono string  `json:"telefono"`
	Email    *string `json:"email,omitempty"`
}

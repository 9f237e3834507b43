package model

import "time"

// Empleado is a company employee who can be responsible for pickups.
type Empleado struct {
	ID       string  `json:"id"`
	Nombre   string  `json:"nombre"`
	Telefono string  `json:"telefono"`
	Email    *string `json:"email,omitempty"`
	Activo   bool    `json:"activo"`
}

// Cargo of a Vecino within its comunidad.
const (
	CargoPresidente     = "presidente"
	CargoVicepresidente = "vicepresidente"
	CargoSecretario     = "secretario"
	CargoTesorero       = "tesorero"
	CargoVocal          = "vocal"
)

// Vecino is a resident representative of a comunidad, holding a cargo for a
// term bounded by FechaInicio / FechaFin.
type Vecino struct {
	ID          string     `json:"id"`
	Nombre      string     `json:"nombre"`
	Telefono    string     `json:"telefono"`
	Email       *string    `json:"email,omitempty"`
	Cargo       string     `json:"cargo"`
	ComunidadID string     `json:"comunidadId"`
	FechaInicio time.Time  `json:"fechaInicio"`
	FechaFin    *time.Time `json:"fechaFin,omitempty"`
}

// Responsable discriminants.
const (
	ResponsableEmpleado    = "empleado"
	ResponsableVecino      = "vecino"
	ResponsableDesconocido = "desconocido"
)

// Responsable is the tagged union of Empleado and Vecino. It is resolved once
// at read time instead of re-scanning both collections on every use. A
// dangling id resolves to the Desconocido sentinel, never to an error.
type Responsable struct {
	Tipo     string    `json:"tipo"`
	Empleado *Empleado `json:"empleado,omitempty"`
	Vecino   *Vecino   `json:"vecino,omitempty"`
}

// Desconocido is the sentinel for references that no longer resolve.
func Desconocido() Responsable { return Responsable{Tipo: ResponsableDesconocido} }

func (r Responsable) ID() string {
	switch r.Tipo {
	case ResponsableEmpleado:
		return r.Empleado.ID
	case ResponsableVecino:
		return r.Vecino.ID
	}
	return ""
}

func (r Responsable) Nombre() string {
	switch r.Tipo {
	case ResponsableEmpleado:
		return r.Empleado.Nombre
	case ResponsableVecino:
		return r.Vecino.Nombre
	}
	return "Desconocido"
}

func (r Responsable) Telefono() string {
	switch r.Tipo {
	case ResponsableEmpleado:
		return r.Empleado.Telefono
	case ResponsableVecino:
		return r.Vecino.Telefono
	}
	return ""
}

// Package state holds the in-memory snapshot of the live collections and the
// pure reducer that is its sole writer. The Manager coordinator hydrates the
// snapshot from storage once at startup and persists it back after every
// dispatch; the reducer itself knows nothing about persistence.
package state

import "github.com/berts/gasoleo/internal/model"

// Snapshot is the reducer's state: the five live collections. Responsables is
// the tagged union of empleados and vecinos, resolved once at hydration time.
type Snapshot struct {
	Proveedores  []model.Proveedor   `json:"proveedores"`
	Cotizaciones []model.Cotizacion  `json:"cotizaciones"`
	Pedidos      []model.Pedido      `json:"pedidos"`
	Comunidades  []model.Comunidad   `json:"comunidades"`
	Responsables []model.Responsable `json:"responsables"`
}

// FromDocumento builds the live snapshot out of a persisted document,
// merging empleados and vecinos into the responsables union.
func FromDocumento(doc model.Documento) Snapshot {
	responsables := make([]model.Responsable, 0, len(doc.Empleados)+len(doc.Vecinos))
	for i := range doc.Empleados {
		responsables = append(responsables, model.Responsable{
			Tipo:     model.ResponsableEmpleado,
			Empleado: &doc.Empleados[i],
		})
	}
	for i := range doc.Vecinos {
		responsables = append(responsables, model.Responsable{
			Tipo:   model.ResponsableVecino,
			Vecino: &doc.Vecinos[i],
		})
	}
	return Snapshot{
		Proveedores:  doc.Proveedores,
		Cotizaciones: doc.Cotizaciones,
		Pedidos:      doc.Pedidos,
		Comunidades:  doc.Comunidades,
		Responsables: responsables,
	}
}

// aplicar writes the snapshot's collections back into the document, splitting
// the responsables union. Usuarios are left untouched — they belong to the
// auth layer, not the reducer.
func aplicar(doc *model.Documento, s Snapshot) {
	doc.Proveedores = s.Proveedores
	doc.Cotizaciones = s.Cotizaciones
	doc.Pedidos = s.Pedidos
	doc.Comunidades = s.Comunidades

	empleados := make([]model.Empleado, 0, len(s.Responsables))
	vecinos := make([]model.Vecino, 0, len(s.Responsables))
	for _, r := range s.Responsables {
		switch r.Tipo {
		case model.ResponsableEmpleado:
			empleados = append(empleados, *r.Empleado)
		case model.ResponsableVecino:
			vecinos = append(vecinos, *r.Vecino)
		}
	}
	doc.Empleados = empleados
	doc.Vecinos = vecinos
}

// Resolver looks a responsable up by id. Dangling references resolve to the
// Desconocido sentinel, never to an error.
func (s Snapshot) Resolver(id string) model.Responsable {
	for _, r := range s.Responsables {
		if r.ID() == id {
			return r
		}
	}
	return model.Desconocido()
}

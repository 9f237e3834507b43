package state

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/berts/gasoleo/internal/model"
)

func snapshotConProveedores() Snapshot {
	return Snapshot{
		Proveedores: []model.Proveedor{
			{ID: "repsol-1", Nombre: "Repsol", Telefono: "900 000 000"},
			{ID: "cepsa-1", Nombre: "Cepsa", Telefono: "900 111 111"},
		},
	}
}

func TestReduceAddProveedor(t *testing.T) {
	antes := snapshotConProveedores()
	nuevo := model.Proveedor{ID: "galp-1", Nombre: "Galp", Telefono: "900 222 222"}

	despues := Reduce(antes, Action{Type: AddProveedor, Payload: nuevo})

	assert.Len(t, despues.Proveedores, 3)
	assert.Equal(t, "galp-1", despues.Proveedores[2].ID)
	// the input slice is never mutated
	assert.Len(t, antes.Proveedores, 2)
}

func TestReduceUpdateProveedor(t *testing.T) {
	antes := snapshotConProveedores()
	editado := model.Proveedor{ID: "repsol-1", Nombre: "Repsol Energía", Telefono: "900 999 999"}

	despues := Reduce(antes, Action{Type: UpdateProveedor, Payload: editado})

	assert.Len(t, despues.Proveedores, 2)
	assert.Equal(t, "Repsol Energía", despues.Proveedores[0].Nombre)
	assert.Equal(t, "Repsol", antes.Proveedores[0].Nombre)
}

func TestReduceUpdateProveedorInexistenteNoCambiaNada(t *testing.T) {
	antes := snapshotConProveedores()
	fantasma := model.Proveedor{ID: "no-existe", Nombre: "Fantasma"}

	despues := Reduce(antes, Action{Type: UpdateProveedor, Payload: fantasma})

	assert.Equal(t, antes.Proveedores, despues.Proveedores)
}

func TestReduceDeleteProveedor(t *testing.T) {
	antes := snapshotConProveedores()

	despues := Reduce(antes, Eliminar(DeleteProveedor, "repsol-1"))

	assert.Len(t, despues.Proveedores, 1)
	assert.Equal(t, "cepsa-1", despues.Proveedores[0].ID)
	assert.Len(t, antes.Proveedores, 2)
}

func TestReduceDeleteIDInexistenteNoCambiaNada(t *testing.T) {
	antes := snapshotConProveedores()

	despues := Reduce(antes, Eliminar(DeleteProveedor, "no-existe"))

	assert.Equal(t, antes.Proveedores, despues.Proveedores)
}

func TestReduceAccionDesconocidaNoCambiaNada(t *testing.T) {
	antes := snapshotConProveedores()

	despues := Reduce(antes, Action{Type: "FORMATEAR_DISCO", Payload: "repsol-1"})

	assert.Equal(t, antes, despues)
}

func TestReducePayloadDeFormaIncorrectaNoCambiaNada(t *testing.T) {
	antes := snapshotConProveedores()

	// ADD_PROVEEDOR con una cotizacion dentro: se ignora
	despues := Reduce(antes, Action{Type: AddProveedor, Payload: model.Cotizacion{ID: "cot-9"}})

	assert.Equal(t, antes, despues)
}

func TestReduceLoadDataReemplazaElSnapshotEntero(t *testing.T) {
	antes := snapshotConProveedores()
	nuevo := Snapshot{
		Pedidos: []model.Pedido{{ID: "ped-1", Litros: decimal.NewFromInt(500)}},
	}

	despues := Reduce(antes, CargarDatos(nuevo))

	assert.Empty(t, despues.Proveedores)
	assert.Len(t, despues.Pedidos, 1)
}

func TestReduceResponsables(t *testing.T) {
	emp := model.Empleado{ID: "emp-1", Nombre: "Juan Pérez", Telefono: "600 000 000", Activo: true}
	vec := model.Vecino{ID: "vec-1", Nombre: "María López", Telefono: "611 111 111", Cargo: model.CargoPresidente, ComunidadID: "com-1", FechaInicio: time.Now()}

	s := Reduce(Snapshot{}, Action{Type: AddResponsable, Payload: model.Responsable{Tipo: model.ResponsableEmpleado, Empleado: &emp}})
	s = Reduce(s, Action{Type: AddResponsable, Payload: model.Responsable{Tipo: model.ResponsableVecino, Vecino: &vec}})
	assert.Len(t, s.Responsables, 2)

	editado := emp
	editado.Nombre = "Juan P. García"
	s = Reduce(s, Action{Type: UpdateResponsable, Payload: model.Responsable{Tipo: model.ResponsableEmpleado, Empleado: &editado}})
	assert.Equal(t, "Juan P. García", s.Resolver("emp-1").Nombre())

	s = Reduce(s, Eliminar(DeleteResponsable, "vec-1"))
	assert.Len(t, s.Responsables, 1)
	assert.Equal(t, model.ResponsableDesconocido, s.Resolver("vec-1").Tipo)
}

func TestFromDocumentoYAplicarSonInversos(t *testing.T) {
	doc := model.Documento{
		Proveedores: []model.Proveedor{{ID: "repsol-1", Nombre: "Repsol"}},
		Empleados:   []model.Empleado{{ID: "emp-1", Nombre: "Juan Pérez", Activo: true}},
		Vecinos:     []model.Vecino{{ID: "vec-1", Nombre: "María López", Cargo: model.CargoVocal, ComunidadID: "com-1"}},
		Usuarios:    []model.Usuario{{ID: "admin-1", Username: "admin"}},
	}

	s := FromDocumento(doc)
	assert.Len(t, s.Responsables, 2)

	var vuelta model.Documento
	vuelta.Usuarios = doc.Usuarios
	aplicar(&vuelta, s)

	assert.Equal(t, doc.Proveedores, vuelta.Proveedores)
	assert.Equal(t, doc.Empleados, vuelta.Empleados)
	assert.Equal(t, doc.Vecinos, vuelta.Vecinos)
	// los usuarios no pasan por el reducer
	assert.Equal(t, doc.Usuarios, vuelta.Usuarios)
}

func TestResolverDevuelveDesconocidoParaReferenciasColgantes(t *testing.T) {
	s := Snapshot{}
	r := s.Resolver("no-existe")
	assert.Equal(t, model.ResponsableDesconocido, r.Tipo)
	assert.Equal(t, "Desconocido", r.Nombre())
	assert.Empty(t, r.Telefono())
}

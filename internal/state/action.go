package state

// Action kinds. ADD expects a full record with its id already assigned,
// UPDATE a full replacement record, DELETE just the id. LOAD_DATA swaps the
// whole snapshot and is only dispatched by the Manager during hydration.
const (
	AddProveedor    = "ADD_PROVEEDOR"
	UpdateProveedor = "UPDATE_PROVEEDOR"
	DeleteProveedor = "DELETE_PROVEEDOR"

	AddCotizacion    = "ADD_COTIZACION"
	UpdateCotizacion = "UPDATE_COTIZACION"
	DeleteCotizacion = "DELETE_COTIZACION"

	AddPedido    = "ADD_PEDIDO"
	UpdatePedido = "UPDATE_PEDIDO"
	DeletePedido = "DELETE_PEDIDO"

	AddComunidad    = "ADD_COMUNIDAD"
	UpdateComunidad = "UPDATE_COMUNIDAD"
	DeleteComunidad = "DELETE_COMUNIDAD"

	AddResponsable    = "ADD_RESPONSABLE"
	UpdateResponsable = "UPDATE_RESPONSABLE"
	DeleteResponsable = "DELETE_RESPONSABLE"

	LoadData = "LOAD_DATA"
)

// Action is a dispatched state transition. Payload carries the record for
// ADD/UPDATE, the id string for DELETE, or a Snapshot for LOAD_DATA.
type Action struct {
	Type    string
	Payload any
}

func Eliminar(tipo, id string) Action { return Action{Type: tipo, Payload: id} }

func CargarDatos(s Snapshot) Action { return Action{Type: LoadData, Payload: s} }

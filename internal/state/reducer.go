package state

import "github.com/berts/gasoleo/internal/model"

// Reduce is the pure state-transition function. Input slices are never
// mutated; every branch builds fresh ones. Unknown action kinds — and
// payloads of the wrong shape — leave the snapshot unchanged, which is the
// explicit default, not an error.
func Reduce(s Snapshot, a Action) Snapshot {
	switch a.Type {
	case AddProveedor:
		if p, ok := a.Payload.(model.Proveedor); ok {
			s.Proveedores = agregar(s.Proveedores, p)
		}
	case UpdateProveedor:
		if p, ok := a.Payload.(model.Proveedor); ok {
			s.Proveedores = reemplazar(s.Proveedores, p, func(x model.Proveedor) string { return x.ID })
		}
	case DeleteProveedor:
		if id, ok := a.Payload.(string); ok {
			s.Proveedores = quitar(s.Proveedores, id, func(x model.Proveedor) string { return x.ID })
		}

	case AddCotizacion:
		if c, ok := a.Payload.(model.Cotizacion); ok {
			s.Cotizaciones = agregar(s.Cotizaciones, c)
		}
	case UpdateCotizacion:
		if c, ok := a.Payload.(model.Cotizacion); ok {
			s.Cotizaciones = reemplazar(s.Cotizaciones, c, func(x model.Cotizacion) string { return x.ID })
		}
	case DeleteCotizacion:
		if id, ok := a.Payload.(string); ok {
			s.Cotizaciones = quitar(s.Cotizaciones, id, func(x model.Cotizacion) string { return x.ID })
		}

	case AddPedido:
		if p, ok := a.Payload.(model.Pedido); ok {
			s.Pedidos = agregar(s.Pedidos, p)
		}
	case UpdatePedido:
		if p, ok := a.Payload.(model.Pedido); ok {
			s.Pedidos = reemplazar(s.Pedidos, p, func(x model.Pedido) string { return x.ID })
		}
	case DeletePedido:
		if id, ok := a.Payload.(string); ok {
			s.Pedidos = quitar(s.Pedidos, id, func(x model.Pedido) string { return x.ID })
		}

	case AddComunidad:
		if c, ok := a.Payload.(model.Comunidad); ok {
			s.Comunidades = agregar(s.Comunidades, c)
		}
	case UpdateComunidad:
		if c, ok := a.Payload.(model.Comunidad); ok {
			s.Comunidades = reemplazar(s.Comunidades, c, func(x model.Comunidad) string { return x.ID })
		}
	case DeleteComunidad:
		if id, ok := a.Payload.(string); ok {
			s.Comunidades = quitar(s.Comunidades, id, func(x model.Comunidad) string { return x.ID })
		}

	case AddResponsable:
		if r, ok := a.Payload.(model.Responsable); ok {
			s.Responsables = agregar(s.Responsables, r)
		}
	case UpdateResponsable:
		if r, ok := a.Payload.(model.Responsable); ok {
			s.Responsables = reemplazar(s.Responsables, r, model.Responsable.ID)
		}
	case DeleteResponsable:
		if id, ok := a.Payload.(string); ok {
			s.Responsables = quitar(s.Responsables, id, model.Responsable.ID)
		}

	case LoadData:
		if nuevo, ok := a.Payload.(Snapshot); ok {
			return nuevo
		}
	}
	return s
}

func agregar[T any](xs []T, x T) []T {
	out := make([]T, len(xs), len(xs)+1)
	copy(out, xs)
	return append(out, x)
}

// reemplazar swaps the record sharing x's id; records that do not match are
// carried over untouched, and a missing id makes the whole call a no-op.
func reemplazar[T any](xs []T, x T, id func(T) string) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	for i := range out {
		if id(out[i]) == id(x) {
			out[i] = x
		}
	}
	return out
}

func quitar[T any](xs []T, borrar string, id func(T) string) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if id(x) != borrar {
			out = append(out, x)
		}
	}
	return out
}

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/infra"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error)
	Listar(ctx context.Context) []model.Pedido
	ObtenerPorID(ctx context.Context, id string) (*model.Pedido, error)
	Actualizar(ctx context.Context, id string, req dto.ActualizarPedidoRequest) (*model.Pedido, error)
	Eliminar(ctx context.Context, id string) error
	DatosPDF(ctx context.Context, id string) (*infra.PedidoPDFData, error)
}

type pedidoService struct {
	mgr         *state.Manager
	cotizacione CotizacionService
}

func NewPedidoService(mgr *state.Manager, cotizaciones CotizacionService) PedidoService {
	return &pedidoService{mgr: mgr, cotizacione: cotizaciones}
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	precioCotizado, err := s.cotizacione.PrecioParaSuministro(ctx, req.ProveedorID, req.FechaSuministro)
	if err != nil && req.PrecioMejorado == nil {
		return nil, err
	}

	p := model.Pedido{
		ID:              uuid.NewString(),
		Fecha:           time.Now(),
		ProveedorID:     req.ProveedorID,
		ComunidadID:     req.ComunidadID,
		ResponsableID:   req.ResponsableID,
		Litros:          req.Litros,
		PrecioLitro:     precioCotizado,
		Estado:          model.EstadoPendiente,
		FechaSuministro: req.FechaSuministro,
		Observaciones:   req.Observaciones,
	}
	if req.PrecioMejorado != nil {
		p.PrecioLitro = *req.PrecioMejorado
		p.PrecioMejorado = true
		if err == nil {
			p.PrecioOriginal = &precioCotizado
		}
	}
	p.Total = p.Litros.Mul(p.PrecioLitro)

	if err := s.mgr.Dispatch(state.Action{Type: state.AddPedido, Payload: p}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *pedidoService) Listar(_ context.Context) []model.Pedido {
	return s.mgr.Snapshot().Pedidos
}

func (s *pedidoService) ObtenerPorID(_ context.Context, id string) (*model.Pedido, error) {
	for _, p := range s.mgr.Snapshot().Pedidos {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (s *pedidoService) Actualizar(ctx context.Context, id string, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Litros != nil && req.Litros.IsPositive() {
		p.Litros = *req.Litros
	}
	if req.PrecioMejorado != nil {
		if !p.PrecioMejorado {
			original := p.PrecioLitro
			p.PrecioOriginal = &original
		}
		p.PrecioLitro = *req.PrecioMejorado
		p.PrecioMejorado = true
	}
	if req.Estado != "" {
		p.Estado = req.Estado
	}
	if req.FechaEntrega != nil {
		p.FechaEntrega = req.FechaEntrega
	}
	if req.HoraEntrega != nil {
		p.HoraEntrega = req.HoraEntrega
	}
	if req.Observaciones != nil {
		p.Observaciones = req.Observaciones
	}
	// The total is never taken from the caller.
	p.Total = p.Litros.Mul(p.PrecioLitro)

	if err := s.mgr.Dispatch(state.Action{Type: state.UpdatePedido, Payload: *p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *pedidoService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeletePedido, id))
}

func (s *pedidoService) DatosPDF(ctx context.Context, id string) (*infra.PedidoPDFData, error) {
	p, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := s.mgr.Snapshot()

	datos := &infra.PedidoPDFData{
		Pedido:             *p,
		ComunidadNombre:    "Desconocida",
		ComunidadDireccion: "",
		ProveedorNombre:    "Desconocido",
	}
	for _, c := range snap.Comunidades {
		if c.ID == p.ComunidadID {
			datos.ComunidadNombre = c.Nombre
			datos.ComunidadDireccion = c.Direccion
		}
	}
	for _, prov := range snap.Proveedores {
		if prov.ID == p.ProveedorID {
			datos.ProveedorNombre = prov.Nombre
			datos.ProveedorTelefono = prov.Telefono
		}
	}
	responsable := snap.Resolver(p.ResponsableID)
	datos.ResponsableNombre = responsable.Nombre()
	datos.ResponsableTelefono = responsable.Telefono()
	return datos, nil
}

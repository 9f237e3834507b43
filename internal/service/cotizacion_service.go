package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

// ErrSinCotizaciones means the supplier has no quotes at all, so no price can
// be derived for an order.
var ErrSinCotizaciones = errors.New("el proveedor no tiene cotizaciones")

type CotizacionService interface {
	Crear(ctx context.Context, req dto.CotizacionRequest) (*model.Cotizacion, error)
	Listar(ctx context.Context) []model.Cotizacion
	ListarPorProveedor(ctx context.Context, proveedorID string) []model.Cotizacion
	ObtenerPorID(ctx context.Context, id string) (*model.Cotizacion, error)
	Actualizar(ctx context.Context, id string, req dto.CotizacionRequest) (*model.Cotizacion, error)
	Eliminar(ctx context.Context, id string) error
	PrecioParaSuministro(ctx context.Context, proveedorID string, fechaSuministro time.Time) (decimal.Decimal, error)
}

type cotizacionService struct{ mgr *state.Manager }

func NewCotizacionService(mgr *state.Manager) CotizacionService {
	return &cotizacionService{mgr: mgr}
}

func (s *cotizacionService) Crear(_ context.Context, req dto.CotizacionRequest) (*model.Cotizacion, error) {
	if req.PrecioLitro.IsNegative() {
		return nil, errors.New("el precio por litro no puede ser negativo")
	}
	c := model.Cotizacion{
		ID:              uuid.NewString(),
		ProveedorID:     req.ProveedorID,
		Fecha:           time.Now(),
		FechaSuministro: req.FechaSuministro,
		PrecioLitro:     req.PrecioLitro,
		Observaciones:   req.Observaciones,
	}
	if err := s.mgr.Dispatch(state.Action{Type: state.AddCotizacion, Payload: c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *cotizacionService) Listar(_ context.Context) []model.Cotizacion {
	return s.mgr.Snapshot().Cotizaciones
}

// ListarPorProveedor returns the supplier's price history, newest first.
func (s *cotizacionService) ListarPorProveedor(_ context.Context, proveedorID string) []model.Cotizacion {
	historial := delProveedor(s.mgr.Snapshot().Cotizaciones, proveedorID)
	sort.Slice(historial, func(i, j int) bool {
		return historial[i].Fecha.After(historial[j].Fecha)
	})
	return historial
}

func (s *cotizacionService) ObtenerPorID(_ context.Context, id string) (*model.Cotizacion, error) {
	for _, c := range s.mgr.Snapshot().Cotizaciones {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (s *cotizacionService) Actualizar(ctx context.Context, id string, req dto.CotizacionRequest) (*model.Cotizacion, error) {
	existente, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.PrecioLitro.IsNegative() {
		return nil, errors.New("el precio por litro no puede ser negativo")
	}
	existente.ProveedorID = req.ProveedorID
	existente.FechaSuministro = req.FechaSuministro
	existente.PrecioLitro = req.PrecioLitro
	existente.Observaciones = req.Observaciones
	if err := s.mgr.Dispatch(state.Action{Type: state.UpdateCotizacion, Payload: *existente}); err != nil {
		return nil, err
	}
	return existente, nil
}

func (s *cotizacionService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeleteCotizacion, id))
}

// PrecioParaSuministro selects the price an order should pay: the latest
// quote of the supplier issued on or before the supply date. When every quote
// is newer than the supply date, the earliest one is used instead.
func (s *cotizacionService) PrecioParaSuministro(_ context.Context, proveedorID string, fechaSuministro time.Time) (decimal.Decimal, error) {
	historial := delProveedor(s.mgr.Snapshot().Cotizaciones, proveedorID)
	if len(historial) == 0 {
		return decimal.Zero, ErrSinCotizaciones
	}

	sort.Slice(historial, func(i, j int) bool {
		return historial[i].Fecha.After(historial[j].Fecha)
	})
	for _, c := range historial {
		if !c.Fecha.After(fechaSuministro) {
			return c.PrecioLitro, nil
		}
	}
	// All quotes postdate the supply date: fall back to the earliest one.
	return historial[len(historial)-1].PrecioLitro, nil
}

func delProveedor(cotizaciones []model.Cotizacion, proveedorID string) []model.Cotizacion {
	out := make([]model.Cotizacion, 0, len(cotizaciones))
	for _, c := range cotizaciones {
		if c.ProveedorID == proveedorID {
			out = append(out, c)
		}
	}
	return out
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

// ErrNoEncontrado is shared by every entity service for id lookups that miss.
var ErrNoEncontrado = errors.New("registro no encontrado")

type ProveedorService interface {
	Crear(ctx context.Context, req dto.ProveedorRequest) (*model.Proveedor, error)
	Listar(ctx context.Context) []model.Proveedor
	ObtenerPorID(ctx context.Context, id string) (*model.Proveedor, error)
	Actualizar(ctx context.Context, id string, req dto.ProveedorRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, id string) error
}

type proveedorService struct{ mgr *state.Manager }

func NewProveedorService(mgr *state.Manager) ProveedorService {
	return &proveedorService{mgr: mgr}
}

func (s *proveedorService) Crear(_ context.Context, req dto.ProveedorRequest) (*model.Proveedor, error) {
	p := model.Proveedor{
		ID:       uuid.NewString(),
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Email:    req.Email,
	}
	if err := s.mgr.Dispatch(state.Action{Type: state.AddProveedor, Payload: p}); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *proveedorService) Listar(_ context.Context) []model.Proveedor {
	return s.mgr.Snapshot().Proveedores
}

func (s *proveedorService) ObtenerPorID(_ context.Context, id string) (*model.Proveedor, error) {
	for _, p := range s.mgr.Snapshot().Proveedores {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (s *proveedorService) Actualizar(ctx context.Context, id string, req dto.ProveedorRequest) (*model.Proveedor, error) {
	existente, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	existente.Nombre = req.Nombre
	existente.Telefono = req.Telefono
	existente.Email = req.Email
	if err := s.mgr.Dispatch(state.Action{Type: state.UpdateProveedor, Payload: *existente}); err != nil {
		return nil, err
	}
	return existente, nil
}

// Eliminar removes the supplier only. Quotes and orders that reference it are
// left in place and resolve to "unknown" in display logic — no cascade.
func (s *proveedorService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeleteProveedor, id))
}

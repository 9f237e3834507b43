package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

// ResponsableService manages the two halves of the responsable union —
// empleados and vecinos — and exposes the merged, already-resolved listing.
type ResponsableService interface {
	Listar(ctx context.Context) []model.Responsable
	Resolver(ctx context.Context, id string) model.Responsable

	CrearEmpleado(ctx context.Context, req dto.EmpleadoRequest) (*model.Empleado, error)
	ActualizarEmpleado(ctx context.Context, id string, req dto.EmpleadoRequest) (*model.Empleado, error)
	EliminarEmpleado(ctx context.Context, id string) error

	CrearVecino(ctx context.Context, req dto.VecinoRequest) (*model.Vecino, error)
	ActualizarVecino(ctx context.Context, id string, req dto.VecinoRequest) (*model.Vecino, error)
	EliminarVecino(ctx context.Context, id string) error
}

type responsableService struct{ mgr *state.Manager }

func NewResponsableService(mgr *state.Manager) ResponsableService {
	return &responsableService{mgr: mgr}
}

func (s *responsableService) Listar(_ context.Context) []model.Responsable {
	return s.mgr.Snapshot().Responsables
}

func (s *responsableService) Resolver(_ context.Context, id string) model.Responsable {
	return s.mgr.Snapshot().Resolver(id)
}

// ── Empleados ────────────────────────────────────────────────────────────────

func (s *responsableService) CrearEmpleado(_ context.Context, req dto.EmpleadoRequest) (*model.Empleado, error) {
	activo := true
	if req.Activo != nil {
		activo = *req.Activo
	}
	e := model.Empleado{
		ID:       uuid.NewString(),
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Email:    req.Email,
		Activo:   activo,
	}
	accion := state.Action{Type: state.AddResponsable, Payload: model.Responsable{Tipo: model.ResponsableEmpleado, Empleado: &e}}
	if err := s.mgr.Dispatch(accion); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *responsableService) ActualizarEmpleado(ctx context.Context, id string, req dto.EmpleadoRequest) (*model.Empleado, error) {
	actual := s.Resolver(ctx, id)
	if actual.Tipo != model.ResponsableEmpleado {
		return nil, ErrNoEncontrado
	}
	e := *actual.Empleado
	e.Nombre = req.Nombre
	e.Telefono = req.Telefono
	e.Email = req.Email
	if req.Activo != nil {
		e.Activo = *req.Activo
	}
	accion := state.Action{Type: state.UpdateResponsable, Payload: model.Responsable{Tipo: model.ResponsableEmpleado, Empleado: &e}}
	if err := s.mgr.Dispatch(accion); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *responsableService) EliminarEmpleado(ctx context.Context, id string) error {
	if s.Resolver(ctx, id).Tipo != model.ResponsableEmpleado {
		return ErrNoEncontrado
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeleteResponsable, id))
}

// ── Vecinos ──────────────────────────────────────────────────────────────────

func (s *responsableService) CrearVecino(_ context.Context, req dto.VecinoRequest) (*model.Vecino, error) {
	v := model.Vecino{
		ID:          uuid.NewString(),
		Nombre:      req.Nombre,
		Telefono:    req.Telefono,
		Email:       req.Email,
		Cargo:       req.Cargo,
		ComunidadID: req.ComunidadID,
		FechaInicio: req.FechaInicio,
		FechaFin:    req.FechaFin,
	}
	accion := state.Action{Type: state.AddResponsable, Payload: model.Responsable{Tipo: model.ResponsableVecino, Vecino: &v}}
	if err := s.mgr.Dispatch(accion); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *responsableService) ActualizarVecino(ctx context.Context, id string, req dto.VecinoRequest) (*model.Vecino, error) {
	actual := s.Resolver(ctx, id)
	if actual.Tipo != model.ResponsableVecino {
		return nil, ErrNoEncontrado
	}
	v := *actual.Vecino
	v.Nombre = req.Nombre
	v.Telefono = req.Telefono
	v.Email = req.Email
	v.Cargo = req.Cargo
	v.ComunidadID = req.ComunidadID
	v.FechaInicio = req.FechaInicio
	v.FechaFin = req.FechaFin
	accion := state.Action{Type: state.UpdateResponsable, Payload: model.Responsable{Tipo: model.ResponsableVecino, Vecino: &v}}
	if err := s.mgr.Dispatch(accion); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *responsableService) EliminarVecino(ctx context.Context, id string) error {
	if s.Resolver(ctx, id).Tipo != model.ResponsableVecino {
		return ErrNoEncontrado
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeleteResponsable, id))
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

type ComunidadService interface {
	Crear(ctx context.Context, req dto.ComunidadRequest) (*model.Comunidad, error)
	Listar(ctx context.Context) []model.Comunidad
	ObtenerPorID(ctx context.Context, id string) (*model.Comunidad, error)
	Actualizar(ctx context.Context, id string, req dto.ComunidadRequest) (*model.Comunidad, error)
	Eliminar(ctx context.Context, id string) error
}

type comunidadService struct{ mgr *state.Manager }

func NewComunidadService(mgr *state.Manager) ComunidadService {
	return &comunidadService{mgr: mgr}
}

func (s *comunidadService) Crear(_ context.Context, req dto.ComunidadRequest) (*model.Comunidad, error) {
	c := model.Comunidad{
		ID:                uuid.NewString(),
		Nombre:            req.Nombre,
		Direccion:         req.Direccion,
		CapacidadDeposito: req.CapacidadDeposito,
		EmpleadoID:        req.EmpleadoID,
		VecinoID:          req.VecinoID,
	}
	if err := s.mgr.Dispatch(state.Action{Type: state.AddComunidad, Payload: c}); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *comunidadService) Listar(_ context.Context) []model.Comunidad {
	return s.mgr.Snapshot().Comunidades
}

func (s *comunidadService) ObtenerPorID(_ context.Context, id string) (*model.Comunidad, error) {
	for _, c := range s.mgr.Snapshot().Comunidades {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, ErrNoEncontrado
}

func (s *comunidadService) Actualizar(ctx context.Context, id string, req dto.ComunidadRequest) (*model.Comunidad, error) {
	existente, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	existente.Nombre = req.Nombre
	existente.Direccion = req.Direccion
	existente.CapacidadDeposito = req.CapacidadDeposito
	existente.EmpleadoID = req.EmpleadoID
	existente.VecinoID = req.VecinoID
	if err := s.mgr.Dispatch(state.Action{Type: state.UpdateComunidad, Payload: *existente}); err != nil {
		return nil, err
	}
	return existente, nil
}

func (s *comunidadService) Eliminar(ctx context.Context, id string) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	return s.mgr.Dispatch(state.Eliminar(state.DeleteComunidad, id))
}

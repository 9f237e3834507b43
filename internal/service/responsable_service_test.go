package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
)

func TestListarMezclaEmpleadosYVecinos(t *testing.T) {
	mgr := newManagerConCotizaciones(t) // la siembra trae a emp-1
	svc := NewResponsableService(mgr)
	ctx := context.Background()

	_, err := svc.CrearVecino(ctx, dto.VecinoRequest{
		Nombre:      "María López",
		Telefono:    "611 111 111",
		Cargo:       model.CargoPresidente,
		ComunidadID: "com-1",
		FechaInicio: fecha("2024-01-01"),
	})
	require.NoError(t, err)

	lista := svc.Listar(ctx)
	require.Len(t, lista, 2)
	assert.Equal(t, model.ResponsableEmpleado, lista[0].Tipo)
	assert.Equal(t, model.ResponsableVecino, lista[1].Tipo)
}

func TestResolverDistingueTipos(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewResponsableService(mgr)
	ctx := context.Background()

	r := svc.Resolver(ctx, "emp-1")
	assert.Equal(t, model.ResponsableEmpleado, r.Tipo)
	assert.Equal(t, "Juan Pérez", r.Nombre())

	r = svc.Resolver(ctx, "no-existe")
	assert.Equal(t, model.ResponsableDesconocido, r.Tipo)
}

func TestActualizarEmpleadoNoAceptaIDDeVecino(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewResponsableService(mgr)
	ctx := context.Background()

	vecino, err := svc.CrearVecino(ctx, dto.VecinoRequest{
		Nombre:      "María López",
		Telefono:    "611 111 111",
		Cargo:       model.CargoVocal,
		ComunidadID: "com-1",
		FechaInicio: fecha("2024-01-01"),
	})
	require.NoError(t, err)

	// el id existe, pero en la otra mitad de la union
	_, err = svc.ActualizarEmpleado(ctx, vecino.ID, dto.EmpleadoRequest{
		Nombre: "Impostor", Telefono: "600 000 000",
	})
	assert.ErrorIs(t, err, ErrNoEncontrado)
	assert.ErrorIs(t, svc.EliminarVecino(ctx, "emp-1"), ErrNoEncontrado)
}

func TestCicloDeVidaDeUnEmpleado(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewResponsableService(mgr)
	ctx := context.Background()

	creado, err := svc.CrearEmpleado(ctx, dto.EmpleadoRequest{
		Nombre: "Pedro Ruiz", Telefono: "622 222 222",
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo) // activo por defecto

	inactivo := false
	actualizado, err := svc.ActualizarEmpleado(ctx, creado.ID, dto.EmpleadoRequest{
		Nombre: "Pedro Ruiz", Telefono: "622 222 222", Activo: &inactivo,
	})
	require.NoError(t, err)
	assert.False(t, actualizado.Activo)

	require.NoError(t, svc.EliminarEmpleado(ctx, creado.ID))
	assert.Equal(t, model.ResponsableDesconocido, svc.Resolver(ctx, creado.ID).Tipo)
}

func TestEliminarEmpleadoNoBorraAlVecinoHomonimo(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewResponsableService(mgr)
	ctx := context.Background()

	vecino, err := svc.CrearVecino(ctx, dto.VecinoRequest{
		Nombre:      "Ana Gil",
		Telefono:    "633 333 333",
		Cargo:       model.CargoTesorero,
		ComunidadID: "com-1",
		FechaInicio: fecha("2024-01-01"),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.EliminarEmpleado(ctx, vecino.ID), ErrNoEncontrado)
	assert.Equal(t, model.ResponsableVecino, svc.Resolver(ctx, vecino.ID).Tipo)
}

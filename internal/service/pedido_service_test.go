package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
)

func newPedidoFixture(t *testing.T) (PedidoService, *state.Manager) {
	t.Helper()
	mgr := newManagerConCotizaciones(t,
		cot("cot-a", "repsol-1", "2024-03-01", "1.092"),
	)
	return NewPedidoService(mgr, NewCotizacionService(mgr)), mgr
}

func crearPedidoBase(t *testing.T, svc PedidoService) *model.Pedido {
	t.Helper()
	p, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ProveedorID:     "repsol-1",
		ComunidadID:     "com-1",
		ResponsableID:   "emp-1",
		Litros:          precio("500"),
		FechaSuministro: fecha("2024-03-05"),
	})
	require.NoError(t, err)
	return p
}

func TestCrearPedidoDerivaPrecioYTotal(t *testing.T) {
	svc, _ := newPedidoFixture(t)

	p := crearPedidoBase(t, svc)

	assert.True(t, p.PrecioLitro.Equal(precio("1.092")), "got %s", p.PrecioLitro)
	// 500 × 1.092 = 546, exacto en decimal
	assert.True(t, p.Total.Equal(precio("546")), "got %s", p.Total)
	assert.Equal(t, model.EstadoPendiente, p.Estado)
	assert.False(t, p.PrecioMejorado)
	assert.Nil(t, p.PrecioOriginal)
}

func TestCrearPedidoConPrecioMejorado(t *testing.T) {
	svc, _ := newPedidoFixture(t)
	mejorado := precio("1.050")

	p, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ProveedorID:     "repsol-1",
		ComunidadID:     "com-1",
		ResponsableID:   "emp-1",
		Litros:          precio("1000"),
		FechaSuministro: fecha("2024-03-05"),
		PrecioMejorado:  &mejorado,
	})
	require.NoError(t, err)

	assert.True(t, p.PrecioMejorado)
	assert.True(t, p.PrecioLitro.Equal(mejorado))
	require.NotNil(t, p.PrecioOriginal)
	assert.True(t, p.PrecioOriginal.Equal(precio("1.092")))
	assert.True(t, p.Total.Equal(precio("1050")), "got %s", p.Total)
}

func TestCrearPedidoSinCotizacionesFalla(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewPedidoService(mgr, NewCotizacionService(mgr))

	_, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ProveedorID:     "repsol-1",
		ComunidadID:     "com-1",
		ResponsableID:   "emp-1",
		Litros:          precio("500"),
		FechaSuministro: fecha("2024-03-05"),
	})
	assert.ErrorIs(t, err, ErrSinCotizaciones)
}

func TestCrearPedidoSinCotizacionesPeroConPrecioMejorado(t *testing.T) {
	mgr := newManagerConCotizaciones(t)
	svc := NewPedidoService(mgr, NewCotizacionService(mgr))
	mejorado := precio("1.000")

	p, err := svc.Crear(context.Background(), dto.CrearPedidoRequest{
		ProveedorID:     "repsol-1",
		ComunidadID:     "com-1",
		ResponsableID:   "emp-1",
		Litros:          precio("500"),
		FechaSuministro: fecha("2024-03-05"),
		PrecioMejorado:  &mejorado,
	})
	require.NoError(t, err)
	assert.True(t, p.PrecioLitro.Equal(mejorado))
	// sin cotizacion no hay precio original que conservar
	assert.Nil(t, p.PrecioOriginal)
}

func TestActualizarPedidoRecalculaElTotal(t *testing.T) {
	svc, _ := newPedidoFixture(t)
	p := crearPedidoBase(t, svc)

	litros := precio("300")
	actualizado, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarPedidoRequest{
		Litros: &litros,
	})
	require.NoError(t, err)

	// 300 × 1.092 = 327.6
	assert.True(t, actualizado.Total.Equal(precio("327.6")), "got %s", actualizado.Total)
}

func TestActualizarPedidoMejoraElPrecioYConservaElOriginal(t *testing.T) {
	svc, _ := newPedidoFixture(t)
	p := crearPedidoBase(t, svc)

	mejorado := precio("1.080")
	actualizado, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarPedidoRequest{
		PrecioMejorado: &mejorado,
	})
	require.NoError(t, err)

	assert.True(t, actualizado.PrecioMejorado)
	require.NotNil(t, actualizado.PrecioOriginal)
	assert.True(t, actualizado.PrecioOriginal.Equal(precio("1.092")))
	assert.True(t, actualizado.Total.Equal(precio("540")), "got %s", actualizado.Total)

	// una segunda mejora no pisa el precio original
	otra := precio("1.070")
	actualizado, err = svc.Actualizar(context.Background(), p.ID, dto.ActualizarPedidoRequest{
		PrecioMejorado: &otra,
	})
	require.NoError(t, err)
	assert.True(t, actualizado.PrecioOriginal.Equal(precio("1.092")))
}

func TestActualizarPedidoCambiaEstadoYEntrega(t *testing.T) {
	svc, _ := newPedidoFixture(t)
	p := crearPedidoBase(t, svc)

	entrega := fecha("2024-03-06")
	hora := "09:30"
	actualizado, err := svc.Actualizar(context.Background(), p.ID, dto.ActualizarPedidoRequest{
		Estado:       model.EstadoEntregado,
		FechaEntrega: &entrega,
		HoraEntrega:  &hora,
	})
	require.NoError(t, err)

	assert.Equal(t, model.EstadoEntregado, actualizado.Estado)
	require.NotNil(t, actualizado.FechaEntrega)
	assert.True(t, entrega.Equal(*actualizado.FechaEntrega))
	assert.Equal(t, "09:30", *actualizado.HoraEntrega)
}

func TestEliminarPedidoInexistente(t *testing.T) {
	svc, _ := newPedidoFixture(t)

	err := svc.Eliminar(context.Background(), "no-existe")
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestDatosPDFDenormalizaNombres(t *testing.T) {
	svc, mgr := newPedidoFixture(t)
	ctx := context.Background()

	require.NoError(t, mgr.Dispatch(state.Action{Type: state.AddComunidad, Payload: model.Comunidad{
		ID: "com-1", Nombre: "Residencial El Pinar", Direccion: "Calle Mayor 1", CapacidadDeposito: 5000,
	}}))

	p := crearPedidoBase(t, svc)

	datos, err := svc.DatosPDF(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Residencial El Pinar", datos.ComunidadNombre)
	assert.Equal(t, "Repsol", datos.ProveedorNombre)
	// emp-1 viene de la siembra
	assert.Equal(t, "Juan Pérez", datos.ResponsableNombre)
}

func TestDatosPDFConReferenciasColgantes(t *testing.T) {
	svc, _ := newPedidoFixture(t)

	p := crearPedidoBase(t, svc) // com-1 no existe en este fixture

	datos, err := svc.DatosPDF(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Desconocida", datos.ComunidadNombre)
}

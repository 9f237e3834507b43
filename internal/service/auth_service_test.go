package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/berts/gasoleo/internal/config"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/state"
	"github.com/berts/gasoleo/internal/storage"
)

const testSecret = "secreto_de_test_de_32_caracteres!"

func newAuthFixture(t *testing.T) (AuthService, *storage.Store) {
	t.Helper()
	store := storage.NewStore(storage.NewMemoryBackend(), bcrypt.MinCost)
	store.Load() // siembra el admin
	cfg := &config.Config{
		JWTSecret:          testSecret,
		JWTExpirationHours: 8,
		BcryptCost:         bcrypt.MinCost,
	}
	return NewAuthService(store, cfg), store
}

func login(svc AuthService, username, password string) (*dto.LoginResponse, error) {
	return svc.Login(context.Background(), dto.LoginRequest{Username: username, Password: password})
}

func TestLoginAdminSembrado(t *testing.T) {
	svc, _ := newAuthFixture(t)

	resp, err := login(svc, "admin", "admin123")
	require.NoError(t, err)

	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, 8*3600, resp.ExpiresIn)
	assert.Equal(t, "admin", resp.User.Username)
	assert.Equal(t, model.RolAdmin, resp.User.Rol)

	tok, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims := tok.Claims.(jwt.MapClaims)
	assert.Equal(t, storage.AdminID, claims["user_id"])
	assert.Equal(t, model.RolAdmin, claims["rol"])
}

func TestLoginUsuarioDesconocido(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := login(svc, "nadie", "admin123")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLoginPasswordIncorrectaIncrementaElContador(t *testing.T) {
	svc, store := newAuthFixture(t)

	_, err := login(svc, "admin", "incorrecta")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)

	u, ok := store.GetUsuarioByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, 1, u.IntentosFallidos)
	assert.Nil(t, u.BloqueadoHasta)
}

func TestLoginBloqueaTrasCincoFallos(t *testing.T) {
	svc, store := newAuthFixture(t)

	for i := 0; i < MaxIntentosFallidos; i++ {
		_, err := login(svc, "admin", "incorrecta")
		assert.ErrorIs(t, err, ErrCredencialesInvalidas)
	}

	u, ok := store.GetUsuarioByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, MaxIntentosFallidos, u.IntentosFallidos)
	require.NotNil(t, u.BloqueadoHasta)
	assert.WithinDuration(t, time.Now().Add(DuracionBloqueo), *u.BloqueadoHasta, 5*time.Second)

	// con la cuenta bloqueada, ni la password correcta entra
	_, err := login(svc, "admin", "admin123")
	assert.ErrorIs(t, err, ErrUsuarioBloqueado)
}

func TestLoginBloqueoExpiradoPermiteEntrar(t *testing.T) {
	svc, store := newAuthFixture(t)

	u, ok := store.GetUsuarioByUsername("admin")
	require.True(t, ok)
	pasado := time.Now().Add(-time.Minute)
	u.IntentosFallidos = MaxIntentosFallidos
	u.BloqueadoHasta = &pasado
	require.NoError(t, store.UpdateUsuario(*u))

	resp, err := login(svc, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", resp.User.Username)

	// el login correcto reinicia contador y bloqueo
	u, _ = store.GetUsuarioByUsername("admin")
	assert.Zero(t, u.IntentosFallidos)
	assert.Nil(t, u.BloqueadoHasta)
}

func TestLoginUsuarioInactivo(t *testing.T) {
	svc, store := newAuthFixture(t)

	u, _ := store.GetUsuarioByUsername("admin")
	u.Activo = false
	require.NoError(t, store.UpdateUsuario(*u))

	_, err := login(svc, "admin", "admin123")
	assert.ErrorIs(t, err, ErrUsuarioInactivo)
}

func TestLoginGuardaLaSesionRestaurable(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := login(svc, "admin", "admin123")
	require.NoError(t, err)

	sesion, ok := svc.SesionActual(context.Background())
	require.True(t, ok)
	assert.Equal(t, "admin", sesion.Username)

	require.NoError(t, svc.Logout(context.Background()))
	_, ok = svc.SesionActual(context.Background())
	assert.False(t, ok)
}

func TestCrearUsuarioYLogin(t *testing.T) {
	svc, _ := newAuthFixture(t)

	creado, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "maria",
		Nombre:   "María López",
		Password: "secreta123",
		Tipo:     model.TipoVecino,
		Rol:      model.RolUsuario,
	})
	require.NoError(t, err)
	assert.True(t, creado.Activo)

	resp, err := login(svc, "maria", "secreta123")
	require.NoError(t, err)
	assert.Equal(t, model.RolUsuario, resp.User.Rol)
}

func TestCrearUsuarioUsernameDuplicado(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.CrearUsuario(context.Background(), dto.CrearUsuarioRequest{
		Username: "admin", Nombre: "Otro", Password: "secreta123",
		Tipo: model.TipoEmpleado, Rol: model.RolUsuario,
	})
	assert.Error(t, err)
}

func TestActualizarUsuarioCambiaPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ActualizarUsuario(context.Background(), storage.AdminID, dto.ActualizarUsuarioRequest{
		Password: "nueva-clave-1",
	})
	require.NoError(t, err)

	_, err = login(svc, "admin", "admin123")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
	_, err = login(svc, "admin", "nueva-clave-1")
	assert.NoError(t, err)
}

func TestEliminarUsuarioAdminProtegido(t *testing.T) {
	svc, _ := newAuthFixture(t)

	err := svc.EliminarUsuario(context.Background(), storage.AdminID)
	assert.ErrorIs(t, err, storage.ErrAdminProtegido)
}

func TestActualizarUsuarioInexistente(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.ActualizarUsuario(context.Background(), "no-existe", dto.ActualizarUsuarioRequest{
		Nombre: "Nadie",
	})
	assert.ErrorIs(t, err, ErrNoEncontrado)
}

func TestActualizarUsuarioFalloDePersistenciaNoEsNotFound(t *testing.T) {
	backend := &backendInestable{MemoryBackend: storage.NewMemoryBackend()}
	store := storage.NewStore(backend, bcrypt.MinCost)
	store.Load()
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8, BcryptCost: bcrypt.MinCost}
	svc := NewAuthService(store, cfg)

	backend.fallar = true
	_, err := svc.ActualizarUsuario(context.Background(), storage.AdminID, dto.ActualizarUsuarioRequest{
		Nombre: "Administrador General",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoEncontrado)
}

type backendInestable struct {
	*storage.MemoryBackend
	fallar bool
}

func (b *backendInestable) Set(clave, valor string) error {
	if b.fallar {
		return assert.AnError
	}
	return b.MemoryBackend.Set(clave, valor)
}

// Los incrementos del contador corren dentro de una seccion critica del
// Store, asi que ni los dispatches concurrentes ni otros logins fallidos
// pueden revertirlos.
func TestLoginFallidosConcurrentesNoPierdenIncrementos(t *testing.T) {
	store := storage.NewStore(storage.NewMemoryBackend(), bcrypt.MinCost)
	store.Load()
	cfg := &config.Config{JWTSecret: testSecret, JWTExpirationHours: 8, BcryptCost: bcrypt.MinCost}
	svc := NewAuthService(store, cfg)
	mgr := state.NewManager(store)

	const fallos = MaxIntentosFallidos - 1 // por debajo del umbral de bloqueo
	var wg sync.WaitGroup
	for i := 0; i < fallos; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := login(svc, "admin", "incorrecta")
			assert.ErrorIs(t, err, ErrCredencialesInvalidas)
		}()
		go func(n int) {
			defer wg.Done()
			p := model.Proveedor{ID: fmt.Sprintf("prov-%d", n), Nombre: "Transportes SA", Telefono: "900 333 333"}
			assert.NoError(t, mgr.Dispatch(state.Action{Type: state.AddProveedor, Payload: p}))
		}(i)
	}
	wg.Wait()

	u, ok := store.GetUsuarioByUsername("admin")
	require.True(t, ok)
	assert.Equal(t, fallos, u.IntentosFallidos)
	// y los dispatches tampoco se perdieron entre si
	assert.Len(t, store.Proveedores(), 2+fallos)
}

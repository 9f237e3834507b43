package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/berts/gasoleo/internal/config"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/storage"
)

// Lockout policy: 5 consecutive failures lock the account for 30 minutes.
// The lockout is purely time-based — expiry is checked at attempt time, no
// background timer ever re-enables an account.
const (
	MaxIntentosFallidos = 5
	DuracionBloqueo     = 30 * time.Minute
)

var (
	// ErrCredencialesInvalidas covers both unknown username and wrong
	// password, so the response never reveals which usernames exist.
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")
	ErrUsuarioBloqueado      = errors.New("usuario bloqueado temporalmente")
	ErrUsuarioInactivo       = errors.New("usuario inactivo")
)

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context) error
	SesionActual(ctx context.Context) (*dto.UsuarioResponse, bool)
	CrearUsuario(ctx context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error)
	ListarUsuarios(ctx context.Context) ([]dto.UsuarioResponse, error)
	ActualizarUsuario(ctx context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error)
	EliminarUsuario(ctx context.Context, id string) error
}

type authService struct {
	store *storage.Store
	cfg   *config.Config
}

func NewAuthService(store *storage.Store, cfg *config.Config) AuthService {
	return &authService{store: store, cfg: cfg}
}

func (s *authService) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, ok := s.store.GetUsuarioByUsername(req.Username)
	if !ok {
		return nil, ErrCredencialesInvalidas
	}

	if !user.Activo {
		return nil, ErrUsuarioInactivo
	}

	// A live lockout rejects the attempt without consuming one. Once the
	// expiry has passed the attempt is evaluated as if unlocked.
	if user.BloqueadoHasta != nil && time.Now().Before(*user.BloqueadoHasta) {
		return nil, ErrUsuarioBloqueado
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		// The increment runs inside one Store critical section so two
		// concurrent failures cannot read the same counter value.
		if err := s.registrarIntentoFallido(user.ID); err != nil {
			log.Error().Err(err).Msg("auth: no se pudo persistir el contador de intentos")
		}
		return nil, ErrCredencialesInvalidas
	}

	if user.IntentosFallidos > 0 || user.BloqueadoHasta != nil {
		user.IntentosFallidos = 0
		user.BloqueadoHasta = nil
		if err := s.reiniciarIntentos(user.ID); err != nil {
			log.Error().Err(err).Msg("auth: no se pudo reiniciar el contador de intentos")
		}
	}

	if err := s.store.GuardarSesion(*user); err != nil {
		log.Error().Err(err).Msg("auth: no se pudo persistir la sesion")
	}

	token, err := s.generateToken(user, time.Duration(s.cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   s.cfg.JWTExpirationHours * 3600,
		User:        usuarioResponse(*user),
	}, nil
}

func (s *authService) Logout(_ context.Context) error {
	return s.store.CerrarSesion()
}

func (s *authService) SesionActual(_ context.Context) (*dto.UsuarioResponse, bool) {
	u, ok := s.store.Sesion()
	if !ok {
		return nil, false
	}
	resp := usuarioResponse(*u)
	return &resp, true
}

func (s *authService) CrearUsuario(_ context.Context, req dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	if _, existe := s.store.GetUsuarioByUsername(req.Username); existe {
		return nil, errors.New("el username ya existe")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}
	user := model.Usuario{
		ID:          uuid.NewString(),
		Username:    req.Username,
		Password:    string(hash),
		Nombre:      req.Nombre,
		Tipo:        req.Tipo,
		Rol:         req.Rol,
		Activo:      true,
		FechaInicio: time.Now(),
	}
	if err := s.store.AddUsuario(user); err != nil {
		return nil, err
	}
	resp := usuarioResponse(user)
	return &resp, nil
}

func (s *authService) ListarUsuarios(_ context.Context) ([]dto.UsuarioResponse, error) {
	usuarios := s.store.Usuarios()
	resp := make([]dto.UsuarioResponse, len(usuarios))
	for i, u := range usuarios {
		resp[i] = usuarioResponse(u)
	}
	return resp, nil
}

func (s *authService) ActualizarUsuario(_ context.Context, id string, req dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	user, ok := s.buscarPorID(id)
	if !ok {
		return nil, ErrNoEncontrado
	}
	if req.Nombre != "" {
		user.Nombre = req.Nombre
	}
	if req.Tipo != "" {
		user.Tipo = req.Tipo
	}
	if req.Rol != "" {
		user.Rol = req.Rol
	}
	if req.Activo != nil {
		user.Activo = *req.Activo
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if err := s.store.UpdateUsuario(user); err != nil {
		return nil, err
	}
	resp := usuarioResponse(user)
	return &resp, nil
}

func (s *authService) EliminarUsuario(_ context.Context, id string) error {
	return s.store.DeleteUsuario(id)
}

// registrarIntentoFallido increments the counter against the freshly loaded
// record and sets the lockout once the threshold is reached.
func (s *authService) registrarIntentoFallido(id string) error {
	return s.store.Mutate(func(doc *model.Documento) {
		for i := range doc.Usuarios {
			if doc.Usuarios[i].ID != id {
				continue
			}
			doc.Usuarios[i].IntentosFallidos++
			if doc.Usuarios[i].IntentosFallidos >= MaxIntentosFallidos {
				hasta := time.Now().Add(DuracionBloqueo)
				doc.Usuarios[i].BloqueadoHasta = &hasta
				log.Warn().Str("username", doc.Usuarios[i].Username).Time("hasta", hasta).Msg("auth: usuario bloqueado por intentos fallidos")
			}
		}
	})
}

func (s *authService) reiniciarIntentos(id string) error {
	return s.store.Mutate(func(doc *model.Documento) {
		for i := range doc.Usuarios {
			if doc.Usuarios[i].ID == id {
				doc.Usuarios[i].IntentosFallidos = 0
				doc.Usuarios[i].BloqueadoHasta = nil
			}
		}
	})
}

func (s *authService) buscarPorID(id string) (model.Usuario, bool) {
	for _, u := range s.store.Usuarios() {
		if u.ID == id {
			return u, true
		}
	}
	return model.Usuario{}, false
}

func (s *authService) generateToken(user *model.Usuario, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"rol":      user.Rol,
		"exp":      time.Now().Add(duration).Unix(),
		"iat":      time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

func usuarioResponse(u model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:          u.ID,
		Username:    u.Username,
		Nombre:      u.Nombre,
		Tipo:        u.Tipo,
		Rol:         u.Rol,
		Activo:      u.Activo,
		FechaInicio: u.FechaInicio,
	}
}

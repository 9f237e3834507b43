package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/service"
	"github.com/berts/gasoleo/internal/storage"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		// Locked and inactive accounts are surfaced as such; everything
		// else collapses into the unified invalid-credentials message.
		switch {
		case errors.Is(err, service.ErrUsuarioBloqueado):
			c.JSON(http.StatusLocked, apierror.New(err.Error()))
		case errors.Is(err, service.ErrUsuarioInactivo):
			c.JSON(http.StatusForbidden, apierror.New(err.Error()))
		default:
			c.JSON(http.StatusUnauthorized, apierror.New(service.ErrCredencialesInvalidas.Error()))
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo cerrar la sesion"))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Sesion(c *gin.Context) {
	u, ok := h.svc.SesionActual(c.Request.Context())
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Sin sesion activa"))
		return
	}
	c.JSON(http.StatusOK, u)
}

// ── Usuarios Handler ─────────────────────────────────────────────────────────

type UsuariosHandler struct{ svc service.AuthService }

func NewUsuariosHandler(svc service.AuthService) *UsuariosHandler {
	return &UsuariosHandler{svc: svc}
}

func (h *UsuariosHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CrearUsuario(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UsuariosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarUsuarios(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al listar usuarios"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarUsuarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.ActualizarUsuario(c.Request.Context(), c.Param("id"), req)
	if errors.Is(err, service.ErrNoEncontrado) {
		c.JSON(http.StatusNotFound, apierror.New("Usuario no encontrado"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo actualizar el usuario"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UsuariosHandler) Eliminar(c *gin.Context) {
	err := h.svc.EliminarUsuario(c.Request.Context(), c.Param("id"))
	if errors.Is(err, storage.ErrAdminProtegido) {
		c.JSON(http.StatusConflict, apierror.New(err.Error()))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo eliminar el usuario"))
		return
	}
	c.Status(http.StatusNoContent)
}

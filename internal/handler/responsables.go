package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/model"
	"github.com/berts/gasoleo/internal/service"
)

type ResponsablesHandler struct{ svc service.ResponsableService }

func NewResponsablesHandler(svc service.ResponsableService) *ResponsablesHandler {
	return &ResponsablesHandler{svc: svc}
}

// Listar returns the merged empleado/vecino union.
func (h *ResponsablesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

// Resolver answers "who is responsible" for an id that may belong to either
// collection. Dangling ids come back as the desconocido sentinel, not a 404.
func (h *ResponsablesHandler) Resolver(c *gin.Context) {
	r := h.svc.Resolver(c.Request.Context(), c.Param("id"))
	if r.Tipo == model.ResponsableDesconocido {
		c.JSON(http.StatusOK, gin.H{"tipo": r.Tipo, "nombre": r.Nombre()})
		return
	}
	c.JSON(http.StatusOK, r)
}

// ── Empleados ────────────────────────────────────────────────────────────────

func (h *ResponsablesHandler) CrearEmpleado(c *gin.Context) {
	var req dto.EmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.CrearEmpleado(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar el empleado"))
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ResponsablesHandler) ActualizarEmpleado(c *gin.Context) {
	var req dto.EmpleadoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	e, err := h.svc.ActualizarEmpleado(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empleado no encontrado"))
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ResponsablesHandler) EliminarEmpleado(c *gin.Context) {
	if err := h.svc.EliminarEmpleado(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Empleado no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Vecinos ──────────────────────────────────────────────────────────────────

func (h *ResponsablesHandler) CrearVecino(c *gin.Context) {
	var req dto.VecinoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.CrearVecino(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar el vecino"))
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *ResponsablesHandler) ActualizarVecino(c *gin.Context) {
	var req dto.VecinoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	v, err := h.svc.ActualizarVecino(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Vecino no encontrado"))
		return
	}
	c.JSON(http.StatusOK, v)
}

func (h *ResponsablesHandler) EliminarVecino(c *gin.Context) {
	if err := h.svc.EliminarVecino(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Vecino no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

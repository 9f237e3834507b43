package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/service"
)

type ComunidadesHandler struct{ svc service.ComunidadService }

func NewComunidadesHandler(svc service.ComunidadService) *ComunidadesHandler {
	return &ComunidadesHandler{svc: svc}
}

func (h *ComunidadesHandler) Crear(c *gin.Context) {
	var req dto.ComunidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	com, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar la comunidad"))
		return
	}
	c.JSON(http.StatusCreated, com)
}

func (h *ComunidadesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *ComunidadesHandler) ObtenerPorID(c *gin.Context) {
	com, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Comunidad no encontrada"))
		return
	}
	c.JSON(http.StatusOK, com)
}

func (h *ComunidadesHandler) Actualizar(c *gin.Context) {
	var req dto.ComunidadRequest
	if !bindAndValidate(c, &req) {
		return
	}
	com, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Comunidad no encontrada"))
		return
	}
	c.JSON(http.StatusOK, com)
}

func (h *ComunidadesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Comunidad no encontrada"))
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/service"
)

type ProveedoresHandler struct{ svc service.ProveedorService }

func NewProveedoresHandler(svc service.ProveedorService) *ProveedoresHandler {
	return &ProveedoresHandler{svc: svc}
}

func (h *ProveedoresHandler) Crear(c *gin.Context) {
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar el proveedor"))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *ProveedoresHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *ProveedoresHandler) ObtenerPorID(c *gin.Context) {
	p, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proveedor no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProveedoresHandler) Actualizar(c *gin.Context) {
	var req dto.ProveedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proveedor no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProveedoresHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Proveedor no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

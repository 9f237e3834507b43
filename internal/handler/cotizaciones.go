package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/service"
)

type CotizacionesHandler struct{ svc service.CotizacionService }

func NewCotizacionesHandler(svc service.CotizacionService) *CotizacionesHandler {
	return &CotizacionesHandler{svc: svc}
}

func (h *CotizacionesHandler) Crear(c *gin.Context) {
	var req dto.CotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cot, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, cot)
}

// Listar returns every quote, or one supplier's history (newest first) when
// ?proveedor_id= is present.
func (h *CotizacionesHandler) Listar(c *gin.Context) {
	if proveedorID := c.Query("proveedor_id"); proveedorID != "" {
		c.JSON(http.StatusOK, h.svc.ListarPorProveedor(c.Request.Context(), proveedorID))
		return
	}
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *CotizacionesHandler) ObtenerPorID(c *gin.Context) {
	cot, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
		return
	}
	c.JSON(http.StatusOK, cot)
}

func (h *CotizacionesHandler) Actualizar(c *gin.Context) {
	var req dto.CotizacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cot, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrNoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, cot)
}

func (h *CotizacionesHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Cotizacion no encontrada"))
		return
	}
	c.Status(http.StatusNoContent)
}

// Precio answers the quote-selection query used when drafting an order:
// GET /v1/cotizaciones/precio?proveedor_id=...&fecha_suministro=2024-03-05
func (h *CotizacionesHandler) Precio(c *gin.Context) {
	proveedorID := c.Query("proveedor_id")
	fechaStr := c.Query("fecha_suministro")
	if proveedorID == "" || fechaStr == "" {
		c.JSON(http.StatusBadRequest, apierror.New("proveedor_id y fecha_suministro son obligatorios"))
		return
	}
	fecha, err := time.Parse("2006-01-02", fechaStr)
	if err != nil {
		if fecha, err = time.Parse(time.RFC3339, fechaStr); err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("fecha_suministro invalida"))
			return
		}
	}

	precio, err := h.svc.PrecioParaSuministro(c.Request.Context(), proveedorID, fecha)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, dto.PrecioResponse{
		ProveedorID:     proveedorID,
		FechaSuministro: fecha,
		PrecioLitro:     precio,
	})
}

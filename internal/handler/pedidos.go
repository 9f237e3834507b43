package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/berts/gasoleo/internal/apierror"
	"github.com/berts/gasoleo/internal/dto"
	"github.com/berts/gasoleo/internal/infra"
	"github.com/berts/gasoleo/internal/service"
)

type PedidosHandler struct {
	svc        service.PedidoService
	pdfStorage string
}

func NewPedidosHandler(svc service.PedidoService, pdfStorage string) *PedidosHandler {
	return &PedidosHandler{svc: svc, pdfStorage: pdfStorage}
}

func (h *PedidosHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrSinCotizaciones) {
			c.JSON(http.StatusUnprocessableEntity, apierror.New(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, apierror.New("No se pudo guardar el pedido"))
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *PedidosHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *PedidosHandler) ObtenerPorID(c *gin.Context) {
	p, err := h.svc.ObtenerPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PedidosHandler) Actualizar(c *gin.Context) {
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.Actualizar(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *PedidosHandler) Eliminar(c *gin.Context) {
	if err := h.svc.Eliminar(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	c.Status(http.StatusNoContent)
}

// DescargarPDF generates the printable order sheet and streams it back.
func (h *PedidosHandler) DescargarPDF(c *gin.Context) {
	datos, err := h.svc.DatosPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New("Pedido no encontrado"))
		return
	}
	path, err := infra.GeneratePedidoPDF(datos, h.pdfStorage)
	if err != nil {
		c.Error(err) //nolint:errcheck // collected by the ErrorHandler middleware
		return
	}
	c.FileAttachment(path, "pedido-"+datos.Pedido.ID+".pdf")
}

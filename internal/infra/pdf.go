package infra

// pdf.go — printable order sheet using go-pdf/fpdf, mirroring the layout the
// back office hands to drivers: order header, comunidad and proveedor blocks,
// delivery details with the improved-price line when present, responsable
// block and free-form notes.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/berts/gasoleo/internal/format"
	"github.com/berts/gasoleo/internal/model"
)

// PedidoPDFData carries already-resolved, denormalized values: the PDF never
// looks anything up, dangling references arrive here as "Desconocido".
type PedidoPDFData struct {
	Pedido              model.Pedido
	ComunidadNombre     string
	ComunidadDireccion  string
	ProveedorNombre     string
	ProveedorTelefono   string
	ResponsableNombre   string
	ResponsableTelefono string
}

// GeneratePedidoPDF writes the order sheet to storagePath/pedido_{id}.pdf and
// returns the absolute path of the generated file.
func GeneratePedidoPDF(datos *PedidoPDFData, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, fmt.Sprintf("pedido_%s.pdf", datos.Pedido.ID))

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	p := datos.Pedido

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 10, tr("Pedido de Gasóleo"), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Nº Pedido: %s", p.ID)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha: %s", p.Fecha.Format("02/01/2006")), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// ── Comunidad ────────────────────────────────────────────────────────────
	seccion(pdf, "Comunidad")
	pdf.CellFormat(0, 6, tr(datos.ComunidadNombre), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(datos.ComunidadDireccion), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// ── Proveedor ────────────────────────────────────────────────────────────
	seccion(pdf, "Proveedor")
	pdf.CellFormat(0, 6, tr(datos.ProveedorNombre), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Tel: "+format.Telefono(datos.ProveedorTelefono)), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// ── Detalles ─────────────────────────────────────────────────────────────
	seccion(pdf, "Detalles del Pedido")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Cantidad: %s litros", p.Litros.StringFixed(0))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Precio: %s €/L", format.Precio(p.PrecioLitro))), "", 1, "L", false, 0, "")
	if p.PrecioMejorado && p.PrecioOriginal != nil {
		pdf.CellFormat(0, 6, tr(fmt.Sprintf("Precio original: %s €/L", format.Precio(*p.PrecioOriginal))), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Total: %s €", p.Total.StringFixed(2))), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Fecha de suministro: %s", p.FechaSuministro.Format("02/01/2006")), "", 1, "L", false, 0, "")
	if p.FechaEntrega != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Fecha de entrega: %s", p.FechaEntrega.Format("02/01/2006")), "", 1, "L", false, 0, "")
	}
	if p.HoraEntrega != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Hora de entrega: %s", *p.HoraEntrega), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, tr("Estado: "+p.Estado), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	// ── Responsable ──────────────────────────────────────────────────────────
	if datos.ResponsableNombre != "" {
		seccion(pdf, "Responsable de Recogida")
		pdf.CellFormat(0, 6, tr(datos.ResponsableNombre), "", 1, "L", false, 0, "")
		if datos.ResponsableTelefono != "" {
			pdf.CellFormat(0, 6, tr("Tel: "+format.Telefono(datos.ResponsableTelefono)), "", 1, "L", false, 0, "")
		}
		pdf.Ln(5)
	}

	// ── Observaciones ────────────────────────────────────────────────────────
	if p.Observaciones != nil && *p.Observaciones != "" {
		seccion(pdf, "Observaciones")
		pdf.MultiCell(0, 6, tr(*p.Observaciones), "", "L", false)
	}

	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(0, 5, "Generado el "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}

func seccion(pdf *fpdf.Fpdf, titulo string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 7, titulo, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/application/reporting"
)

// ReportHandler reportes read-only de stock y ventas (protegido).
type ReportHandler struct {
	uc *reporting.ReportingUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportingUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// StockReport godoc
// @Summary      Reporte de stock agregado
// @Description  Agrega los buckets de los records que matchean el filtro y deriva
//               el cierre del agregado. Sin matches = buckets en cero (200, no 404).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        outlet_code  query  string  false  "Código de outlet"
// @Param        barcode      query  string  false  "Barcode de producto"
// @Param        from_period  query  string  false  "Período inicial YYYY-MM"
// @Param        to_period    query  string  false  "Período final YYYY-MM"
// @Success      200  {object}  dto.StockReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) StockReport(c *fiber.Ctx) error {
	var req dto.StockReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query params inválidos"})
	}
	out, err := h.uc.StockReport(c.Context(), req)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// OutletStock godoc
// @Summary      Posición de stock de un outlet
// @Description  Buckets y cierre del outlet en un período ("YYYY-MM", por defecto el
//               período actual). Opcionalmente restringido a un barcode.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        outlet   path   string  true   "Código de outlet"
// @Param        period   query  string  false  "Período YYYY-MM (default: actual)"
// @Param        barcode  query  string  false  "Barcode de producto"
// @Success      200  {object}  dto.StockReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock/{outlet} [get]
func (h *ReportHandler) OutletStock(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		period = time.Now().Format(dto.PeriodLayout)
	}
	out, err := h.uc.StockReport(c.Context(), dto.StockReportRequest{
		OutletCode: c.Params("outlet"),
		Barcode:    c.Query("barcode"),
		FromPeriod: period,
		ToPeriod:   period,
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SalesSummary godoc
// @Summary      Reporte de ventas secundarias
// @Description  Totales por producto y por categoría, derivados del log de auditoría
//               de movimientos SECONDARY en el rango [from, to].
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  true  "Fecha inicial YYYY-MM-DD"
// @Param        to    query  string  true  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	from, err := dto.ParseDate(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from inválido, formato YYYY-MM-DD"})
	}
	to, err := dto.ParseDate(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to inválido, formato YYYY-MM-DD"})
	}
	out, err := h.uc.SalesSummary(c.Context(), from, to)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Package reporting reportes de stock y ventas. Los agregados de stock se
// construyen sumando buckets y cerrando el agregado; nunca sumando cierres
// precalculados por record (ver internal/domain/ledger.Aggregate).
package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/ledger"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// ReportingUseCase reportes read-only sobre records y log de transacciones.
type ReportingUseCase struct {
	recordRepo  repository.StockRecordRepository
	txRepo      repository.TransactionRepository
	productRepo repository.ProductRepository
}

// NewReportingUseCase construye el caso de uso.
func NewReportingUseCase(
	recordRepo repository.StockRecordRepository,
	txRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
) *ReportingUseCase {
	return &ReportingUseCase{recordRepo: recordRepo, txRepo: txRepo, productRepo: productRepo}
}

// StockReport agrega los records del filtro y deriva el cierre del agregado.
// Filtro sin matches devuelve buckets en cero (no es error).
func (uc *ReportingUseCase) StockReport(ctx context.Context, req dto.StockReportRequest) (*dto.StockReportResponse, error) {
	records, err := uc.recordRepo.ListByFilter(repository.StockRecordFilter{
		OutletCode: req.OutletCode,
		Barcode:    req.Barcode,
		FromPeriod: req.FromPeriod,
		ToPeriod:   req.ToPeriod,
	})
	if err != nil {
		return nil, fmt.Errorf("reporte de stock: %w", err)
	}

	recs := make([]entity.StockMovementRecord, 0, len(records))
	for _, r := range records {
		recs = append(recs, *r)
	}
	agg := ledger.Aggregate(recs)
	closing := ledger.ComputeClosing(agg)

	return &dto.StockReportResponse{
		Records: len(recs),

		OpeningStock:        agg.OpeningStock,
		OpeningValueDP:      agg.OpeningValueDP,
		Primary:             agg.Primary,
		PrimaryValueDP:      agg.PrimaryValueDP,
		MarketReturn:        agg.MarketReturn,
		MarketReturnValueDP: agg.MarketReturnValueDP,
		OfficeReturn:        agg.OfficeReturn,
		OfficeReturnValueDP: agg.OfficeReturnValueDP,
		Secondary:           agg.Secondary,
		SecondaryValueDP:    agg.SecondaryValueDP,

		ClosingStock:   closing.Qty,
		ClosingValueDP: closing.ValueDP,
		ClosingValueTP: closing.ValueTP,
	}, nil
}

// SalesSummary ventas secundarias por producto y categoría en [from, to].
// Los totales por línea salen del log de auditoría (qty × tp/dp de cada entrada);
// nombre y categoría se enriquecen desde el catálogo.
func (uc *ReportingUseCase) SalesSummary(ctx context.Context, from, to time.Time) (*dto.SalesSummaryResponse, error) {
	entries, err := uc.txRepo.ListByType(entity.MovementTypeSecondary, from, to)
	if err != nil {
		return nil, fmt.Errorf("reporte de ventas: %w", err)
	}

	type totals struct {
		qty     int64
		totalTP decimal.Decimal
		totalDP decimal.Decimal
	}
	perBarcode := map[string]*totals{}
	order := []string{} // orden de primera aparición, estable para la respuesta
	for _, e := range entries {
		tt, ok := perBarcode[e.Barcode]
		if !ok {
			tt = &totals{}
			perBarcode[e.Barcode] = tt
			order = append(order, e.Barcode)
		}
		qty := decimal.NewFromInt(e.Quantity)
		tt.qty += e.Quantity
		tt.totalTP = tt.totalTP.Add(qty.Mul(e.TP))
		tt.totalDP = tt.totalDP.Add(qty.Mul(e.DP))
	}

	resp := &dto.SalesSummaryResponse{
		From:       from.Format(dto.DateLayout),
		To:         to.Format(dto.DateLayout),
		Lines:      make([]dto.SalesLineDTO, 0, len(order)),
		ByCategory: map[string]decimal.Decimal{},
	}
	for _, barcode := range order {
		tt := perBarcode[barcode]
		line := dto.SalesLineDTO{
			Barcode:  barcode,
			Quantity: tt.qty,
			TotalTP:  tt.totalTP,
			TotalDP:  tt.totalDP,
		}
		if p, err := uc.productRepo.GetByBarcode(barcode); err == nil && p != nil {
			line.ProductName = p.Name
			line.Category = p.Category
		}
		resp.Lines = append(resp.Lines, line)

		cat := line.Category
		resp.ByCategory[cat] = resp.ByCategory[cat].Add(tt.totalTP)
		resp.GrandTP = resp.GrandTP.Add(tt.totalTP)
	}
	return resp, nil
}

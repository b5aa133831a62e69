package dto

import "github.com/shopspring/decimal"

// StockReportRequest filtros del reporte de stock (query params).
type StockReportRequest struct {
	OutletCode string `query:"outlet_code"`
	Barcode    string `query:"barcode"`
	FromPeriod string `query:"from_period"` // "YYYY-MM"
	ToPeriod   string `query:"to_period"`   // "YYYY-MM"
}

// StockReportResponse buckets agregados del filtro + cierre calculado sobre el
// agregado (nunca suma de cierres por record).
type StockReportResponse struct {
	Records int `json:"records"` // cuántos records entraron al agregado

	OpeningStock        int64           `json:"opening_stock"`
	OpeningValueDP      decimal.Decimal `json:"opening_value_dp"`
	Primary             int64           `json:"primary"`
	PrimaryValueDP      decimal.Decimal `json:"primary_value_dp"`
	MarketReturn        int64           `json:"market_return"`
	MarketReturnValueDP decimal.Decimal `json:"market_return_value_dp"`
	OfficeReturn        int64           `json:"office_return"`
	OfficeReturnValueDP decimal.Decimal `json:"office_return_value_dp"`
	Secondary           int64           `json:"secondary"`
	SecondaryValueDP    decimal.Decimal `json:"secondary_value_dp"`

	ClosingStock   int64           `json:"closing_stock"`
	ClosingValueDP decimal.Decimal `json:"closing_value_dp"`
	ClosingValueTP decimal.Decimal `json:"closing_value_tp"`
}

// SalesLineDTO total de ventas secundarias de un producto en el rango.
type SalesLineDTO struct {
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"product_name"`
	Category    string          `json:"category"`
	Quantity    int64           `json:"quantity"`
	TotalTP     decimal.Decimal `json:"total_tp"`
	TotalDP     decimal.Decimal `json:"total_dp"`
}

// SalesSummaryResponse reporte de ventas por producto y categoría.
type SalesSummaryResponse struct {
	From       string                     `json:"from"`
	To         string                     `json:"to"`
	Lines      []SalesLineDTO             `json:"lines"`
	ByCategory map[string]decimal.Decimal `json:"by_category"` // total TP por categoría
	GrandTP    decimal.Decimal            `json:"grand_total_tp"`
}

package dto

import "github.com/shopspring/decimal"

// RegisterMovementRequest body para POST /api/movements.
//
// UnitDP/UnitTP opcionales: si vienen, son el override manual del operador; si no,
// el motor de promociones resuelve el precio efectivo para (producto, outlet, fecha).
// Credit solo aplica a PRIMARY: true = recepción a crédito (sube la deuda del outlet);
// false = entrada sin efecto en deuda (ej. saldo de apertura cargado por admin).
// AllowNegative deja pasar salidas que dejarían stock negativo (elección explícita
// del caller; por defecto se valida y se responde 409).
type RegisterMovementRequest struct {
	OutletCode    string           `json:"outlet_code"`
	Barcode       string           `json:"barcode"`
	Type          string           `json:"type"` // PRIMARY, MARKET_RETURN, OFFICE_RETURN, SECONDARY
	Quantity      int64            `json:"quantity"`
	Date          string           `json:"date"` // "YYYY-MM-DD" o "YYYY-MM-DD HH:mm:ss"
	UnitDP        *decimal.Decimal `json:"unit_dp,omitempty"`
	UnitTP        *decimal.Decimal `json:"unit_tp,omitempty"`
	Credit        bool             `json:"credit,omitempty"`
	AllowNegative bool             `json:"allow_negative,omitempty"`
}

// StockRecordResponse un record de movimientos con su cierre derivado.
type StockRecordResponse struct {
	OutletCode string `json:"outlet_code"`
	Barcode    string `json:"barcode"`
	Period     string `json:"period"`

	OpeningStock   int64           `json:"opening_stock"`
	OpeningValueDP decimal.Decimal `json:"opening_value_dp"`
	Primary        int64           `json:"primary"`
	PrimaryValueDP decimal.Decimal `json:"primary_value_dp"`
	MarketReturn   int64           `json:"market_return"`
	MarketRetValDP decimal.Decimal `json:"market_return_value_dp"`
	OfficeReturn   int64           `json:"office_return"`
	OfficeRetValDP decimal.Decimal `json:"office_return_value_dp"`
	Secondary      int64           `json:"secondary"`
	SecondaryValDP decimal.Decimal `json:"secondary_value_dp"`

	ClosingStock   int64           `json:"closing_stock"`
	ClosingValueDP decimal.Decimal `json:"closing_value_dp"`
	ClosingValueTP decimal.Decimal `json:"closing_value_tp"`
}

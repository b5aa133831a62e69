package dto

import "github.com/shopspring/decimal"

// AddCartLineRequest body para POST /api/cart/lines.
type AddCartLineRequest struct {
	OutletCode string `json:"outlet_code"`
	Barcode    string `json:"barcode"`
	Quantity   int64  `json:"quantity"`
	Date       string `json:"date,omitempty"` // fecha de pricing; vacío = hoy
}

// OverridePriceRequest body para PUT /api/cart/lines/:barcode.
// El operador puede pisar el precio resuelto por el motor antes de enviar.
type OverridePriceRequest struct {
	DP *decimal.Decimal `json:"dp,omitempty"`
	TP *decimal.Decimal `json:"tp,omitempty"`
}

// CartLineDTO línea del carrito con el precio resuelto (editable).
type CartLineDTO struct {
	Barcode     string          `json:"barcode"`
	ProductName string          `json:"product_name"`
	Quantity    int64           `json:"quantity"`
	EditableDP  decimal.Decimal `json:"editable_dp"` // redondeado a 2 para display
	EditableTP  decimal.Decimal `json:"editable_tp"`
}

// CartResponse carrito de la sesión.
type CartResponse struct {
	OutletCode string          `json:"outlet_code"`
	Lines      []CartLineDTO   `json:"lines"`
	TotalTP    decimal.Decimal `json:"total_tp"`
}

// SubmitCartRequest body para POST /api/cart/submit.
type SubmitCartRequest struct {
	Date string `json:"date,omitempty"`
}

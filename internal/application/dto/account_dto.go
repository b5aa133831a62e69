package dto

import "github.com/shopspring/decimal"

// PaymentRequest body para POST /api/accounts/:outlet/payments.
type PaymentRequest struct {
	Amount  decimal.Decimal `json:"amount"` // positivo; reduce la deuda
	Date    string          `json:"date,omitempty"`
	Remarks string          `json:"remarks,omitempty"`
}

// AdjustDueRequest body para POST /api/accounts/:outlet/adjustments.
// Delta con signo; Remarks obligatorios (auditoría).
type AdjustDueRequest struct {
	Delta   decimal.Decimal `json:"delta"`
	Date    string          `json:"date,omitempty"`
	Remarks string          `json:"remarks"`
}

// DueResponse deuda actual de un outlet.
type DueResponse struct {
	OutletCode string          `json:"outlet_code"`
	CurrentDue decimal.Decimal `json:"current_due"`
}

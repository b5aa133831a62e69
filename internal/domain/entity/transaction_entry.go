package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionEntry registro de auditoría: exactamente uno por movimiento aplicado.
type TransactionEntry struct {
	ID         string
	OutletCode string
	Barcode    string
	Type       string // PRIMARY, MARKET_RETURN, OFFICE_RETURN, SECONDARY
	Quantity   int64
	DP         decimal.Decimal // precio unitario DP aplicado
	TP         decimal.Decimal // precio unitario TP aplicado
	Date       time.Time
	CreatedBy  string // UserID
	CreatedAt  time.Time
}

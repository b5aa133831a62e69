package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento monetario sobre la deuda de un outlet.
const (
	TransferTypePrimaryCredit = "PRIMARY_CREDIT" // recepción primary a crédito (sube la deuda)
	TransferTypePayment       = "PAYMENT"        // pago del outlet (baja la deuda)
	TransferTypeAdjustment    = "ADJUSTMENT"     // ajuste manual con remarks obligatorios
)

// MoneyTransfer registro de auditoría monetaria. La deuda de un outlet nunca cambia
// sin un MoneyTransfer emparejado.
type MoneyTransfer struct {
	ID         string
	OutletCode string
	Amount     decimal.Decimal // delta aplicado a CurrentDue (con signo)
	Type       string
	Date       time.Time
	CreatedBy  string
	Remarks    string
}

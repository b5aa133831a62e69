package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de stock.
const (
	MovementTypePrimary      = "PRIMARY"       // recepción desde la compañía (entrada, normalmente a crédito)
	MovementTypeMarketReturn = "MARKET_RETURN" // devolución desde el mercado (entrada)
	MovementTypeOfficeReturn = "OFFICE_RETURN" // devolución hacia la compañía (salida)
	MovementTypeSecondary    = "SECONDARY"     // venta secundaria (salida)
)

// StockMovementRecord acumula los movimientos de un producto en un outlet durante
// un período (YYYY-MM). Cada bucket guarda cantidad y valoración DP/TP.
//
// El cierre nunca se guarda: se deriva siempre con la identidad
//
//	closing = opening + primary + marketReturn − secondary − officeReturn
//
// (primary y marketReturn acreditan stock; secondary y officeReturn lo debitan).
// Ver internal/domain/ledger.
type StockMovementRecord struct {
	OutletCode string
	Barcode    string
	Period     string // "2006-01"

	OpeningStock   int64
	OpeningValueDP decimal.Decimal
	OpeningValueTP decimal.Decimal

	Primary        int64
	PrimaryValueDP decimal.Decimal
	PrimaryValueTP decimal.Decimal

	MarketReturn        int64
	MarketReturnValueDP decimal.Decimal
	MarketReturnValueTP decimal.Decimal

	OfficeReturn        int64
	OfficeReturnValueDP decimal.Decimal
	OfficeReturnValueTP decimal.Decimal

	Secondary        int64
	SecondaryValueDP decimal.Decimal
	SecondaryValueTP decimal.Decimal

	UpdatedAt time.Time
}

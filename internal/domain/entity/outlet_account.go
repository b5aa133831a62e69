package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OutletAccount libro de deuda de un outlet con la compañía.
// CurrentDue positivo = el outlet debe a la compañía. Se crea implícitamente con la
// primera transacción y nunca se elimina, solo se ajusta.
type OutletAccount struct {
	OutletCode string
	CurrentDue decimal.Decimal
	UpdatedAt  time.Time
}

package repository

import (
	"time"

	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// TransactionRepository puerto del log de auditoría de movimientos
// (exactamente una entrada por movimiento aplicado).
type TransactionRepository interface {
	Create(e *entity.TransactionEntry) error
	ListByOutlet(outletCode string, from, to *time.Time, limit, offset int) ([]*entity.TransactionEntry, error)
	// ListByType entradas de un tipo en un rango, para reportes de ventas.
	ListByType(movementType string, from, to time.Time) ([]*entity.TransactionEntry, error)
}

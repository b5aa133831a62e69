package repository

import "github.com/tu-usuario/distribution-pos/internal/domain/entity"

// StockRecordFilter filtro de records para reporting. Strings vacíos = sin filtro.
type StockRecordFilter struct {
	OutletCode string
	Barcode    string
	FromPeriod string // "2006-01", inclusive
	ToPeriod   string // "2006-01", inclusive
}

// StockRecordRepository puerto para los records de movimientos por
// (outlet, barcode, período). Get/GetForUpdate devuelven un record en cero si no
// existe fila (la cuenta se crea implícitamente con la primera transacción).
type StockRecordRepository interface {
	Get(outletCode, barcode, period string) (*entity.StockMovementRecord, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(outletCode, barcode, period string) (*entity.StockMovementRecord, error)
	Upsert(rec *entity.StockMovementRecord) error
	ListByFilter(f StockRecordFilter) ([]*entity.StockMovementRecord, error)
}

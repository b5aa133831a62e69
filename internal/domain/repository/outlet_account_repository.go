package repository

import "github.com/tu-usuario/distribution-pos/internal/domain/entity"

// OutletAccountRepository puerto del libro de deuda por outlet.
// Get/GetForUpdate devuelven una cuenta en cero si el outlet aún no tiene fila
// (creación implícita en la primera transacción; nunca se borra).
type OutletAccountRepository interface {
	Get(outletCode string) (*entity.OutletAccount, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) dentro de una tx.
	GetForUpdate(outletCode string) (*entity.OutletAccount, error)
	Upsert(acc *entity.OutletAccount) error
}

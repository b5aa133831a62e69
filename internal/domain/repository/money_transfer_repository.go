package repository

import (
	"time"

	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// MoneyTransferRepository puerto del log de auditoría monetaria.
type MoneyTransferRepository interface {
	Create(mt *entity.MoneyTransfer) error
	ListByOutlet(outletCode string, from, to *time.Time, limit, offset int) ([]*entity.MoneyTransfer, error)
}

package movements

import (
	"context"

	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que record de stock, entrada de
// auditoría y actualización de deuda se persisten atómicamente (cierra el gap
// read-then-write de las pantallas originales).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		recordRepo repository.StockRecordRepository,
		accountRepo repository.OutletAccountRepository,
		txRepo repository.TransactionRepository,
		transferRepo repository.MoneyTransferRepository,
	) error) error
}

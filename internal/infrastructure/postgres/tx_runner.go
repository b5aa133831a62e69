package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/distribution-pos/internal/application/accounts"
	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// Ensure TxRunner implements movements.TxRunner and accounts.AccountsTxRunner.
var _ movements.TxRunner = (*TxRunner)(nil)
var _ accounts.AccountsTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
// Es la garantía de atomicidad del registro de movimientos: record de stock, entrada de
// auditoría y (si aplica) deuda + MoneyTransfer se confirman juntos o ninguno.
func (r *TxRunner) Run(ctx context.Context, fn func(
	recordRepo repository.StockRecordRepository,
	accountRepo repository.OutletAccountRepository,
	txRepo repository.TransactionRepository,
	transferRepo repository.MoneyTransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	recordRepo := NewStockRecordRepository(tx)
	accountRepo := NewOutletAccountRepository(tx)
	txRepo := NewTransactionRepository(tx)
	transferRepo := NewMoneyTransferRepository(tx)

	if err := fn(recordRepo, accountRepo, txRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunAccounts inicia una transacción con los repos del libro de deuda
// (para pagos y ajustes manuales).
func (r *TxRunner) RunAccounts(ctx context.Context, fn func(
	accountRepo repository.OutletAccountRepository,
	transferRepo repository.MoneyTransferRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	accountRepo := NewOutletAccountRepository(tx)
	transferRepo := NewMoneyTransferRepository(tx)

	if err := fn(accountRepo, transferRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

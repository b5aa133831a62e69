package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

var _ repository.OutletAccountRepository = (*OutletAccountRepo)(nil)

// OutletAccountRepo implementación del libro de deuda sobre PostgreSQL (usable con pool o tx).
type OutletAccountRepo struct {
	q Querier
}

// NewOutletAccountRepository construye el adaptador de cuentas. Pasar pool o tx (Querier).
func NewOutletAccountRepository(q Querier) *OutletAccountRepo {
	return &OutletAccountRepo{q: q}
}

// Get obtiene la cuenta de un outlet. Devuelve cuenta en cero si no hay fila.
func (r *OutletAccountRepo) Get(outletCode string) (*entity.OutletAccount, error) {
	query := `
		SELECT outlet_code, current_due, updated_at
		FROM outlet_accounts WHERE outlet_code = $1`
	return r.get(query, outletCode)
}

// GetForUpdate obtiene la cuenta y bloquea la fila (SELECT FOR UPDATE).
func (r *OutletAccountRepo) GetForUpdate(outletCode string) (*entity.OutletAccount, error) {
	query := `
		SELECT outlet_code, current_due, updated_at
		FROM outlet_accounts WHERE outlet_code = $1
		FOR UPDATE`
	return r.get(query, outletCode)
}

func (r *OutletAccountRepo) get(query, outletCode string) (*entity.OutletAccount, error) {
	var acc entity.OutletAccount
	err := r.q.QueryRow(context.Background(), query, outletCode).Scan(
		&acc.OutletCode, &acc.CurrentDue, &acc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.OutletAccount{OutletCode: outletCode, CurrentDue: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get outlet account: %w", err)
	}
	return &acc, nil
}

// Upsert inserta o actualiza la deuda actual del outlet.
func (r *OutletAccountRepo) Upsert(acc *entity.OutletAccount) error {
	query := `
		INSERT INTO outlet_accounts (outlet_code, current_due, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (outlet_code)
		DO UPDATE SET current_due = EXCLUDED.current_due, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, acc.OutletCode, acc.CurrentDue)
	if err != nil {
		return fmt.Errorf("upsert outlet account: %w", err)
	}
	return nil
}

// Package accounts casos de uso del libro de deuda por outlet: pagos y ajustes,
// siempre emparejados con su MoneyTransfer de auditoría en la misma transacción.
package accounts

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/ledger"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// AccountsTxRunner transacción con los repos de cuentas.
type AccountsTxRunner interface {
	RunAccounts(ctx context.Context, fn func(
		accountRepo repository.OutletAccountRepository,
		transferRepo repository.MoneyTransferRepository,
	) error) error
}

// AccountsUseCase pagos, ajustes y consulta de deuda.
type AccountsUseCase struct {
	txRunner    AccountsTxRunner
	accountRepo repository.OutletAccountRepository
	outletRepo  repository.OutletRepository
}

// NewAccountsUseCase construye el caso de uso.
func NewAccountsUseCase(
	txRunner AccountsTxRunner,
	accountRepo repository.OutletAccountRepository,
	outletRepo repository.OutletRepository,
) *AccountsUseCase {
	return &AccountsUseCase{txRunner: txRunner, accountRepo: accountRepo, outletRepo: outletRepo}
}

// GetDue deuda actual del outlet (cuenta en cero si nunca transó).
func (uc *AccountsUseCase) GetDue(outletCode string) (*entity.OutletAccount, error) {
	if outletCode == "" {
		return nil, domain.ErrInvalidInput
	}
	outlet, err := uc.outletRepo.GetByCode(outletCode)
	if err != nil || outlet == nil {
		return nil, domain.ErrNotFound
	}
	return uc.accountRepo.Get(outletCode)
}

// RecordPayment registra un pago del outlet: baja la deuda por amount y deja su
// MoneyTransfer tipo PAYMENT, atómicamente.
func (uc *AccountsUseCase) RecordPayment(
	ctx context.Context,
	outletCode string,
	amount decimal.Decimal,
	at time.Time,
	userID, remarks string,
) error {
	if outletCode == "" || !amount.IsPositive() {
		return domain.ErrInvalidInput
	}
	return uc.applyDelta(ctx, outletCode, amount.Neg(), entity.TransferTypePayment, at, userID, remarks)
}

// AdjustDue aplica un delta con signo a la deuda. Remarks obligatorios: la deuda
// nunca cambia sin registro de auditoría que explique el porqué.
func (uc *AccountsUseCase) AdjustDue(
	ctx context.Context,
	outletCode string,
	delta decimal.Decimal,
	at time.Time,
	userID, remarks string,
) error {
	if outletCode == "" || delta.IsZero() {
		return domain.ErrInvalidInput
	}
	if remarks == "" {
		return domain.ErrRemarksRequired
	}
	return uc.applyDelta(ctx, outletCode, delta, entity.TransferTypeAdjustment, at, userID, remarks)
}

func (uc *AccountsUseCase) applyDelta(
	ctx context.Context,
	outletCode string,
	delta decimal.Decimal,
	transferType string,
	at time.Time,
	userID, remarks string,
) error {
	outlet, err := uc.outletRepo.GetByCode(outletCode)
	if err != nil || outlet == nil {
		return domain.ErrNotFound
	}
	if at.IsZero() {
		at = time.Now()
	}
	return uc.txRunner.RunAccounts(ctx, func(
		accountRepo repository.OutletAccountRepository,
		transferRepo repository.MoneyTransferRepository,
	) error {
		acc, err := accountRepo.GetForUpdate(outletCode)
		if err != nil {
			return err
		}
		updated, mt := ledger.AdjustDue(*acc, delta, transferType, at, userID, remarks)
		if err := accountRepo.Upsert(&updated); err != nil {
			return err
		}
		mt.ID = uuid.New().String()
		return transferRepo.Create(&mt)
	})
}

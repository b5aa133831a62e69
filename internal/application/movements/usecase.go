package movements

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/ledger"
	"github.com/tu-usuario/distribution-pos/internal/domain/pricing"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// RegisterMovementUseCase registra movimientos de stock de forma transaccional
// (PRIMARY, MARKET_RETURN, OFFICE_RETURN, SECONDARY) con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback.
type RegisterMovementUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	outletRepo  repository.OutletRepository
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	outletRepo repository.OutletRepository,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		outletRepo:  outletRepo,
	}
}

// MovementInput entrada para registrar un movimiento.
//
// UnitDP/UnitTP nil → el motor de promociones resuelve el precio efectivo para
// (producto, outlet, Date); no nil → override manual del operador (carrito).
// Credit solo tiene efecto en PRIMARY: acopla la actualización de deuda como paso
// separado dentro de la misma tx. Las entradas de apertura de admin van con
// Credit=false y NO tocan la deuda.
// AllowNegative elige la variante sin verificar del ledger (decisión explícita
// del caller, nunca un clamp silencioso).
type MovementInput struct {
	OutletCode    string
	Barcode       string
	Type          string
	Quantity      int64
	Date          time.Time
	UnitDP        *decimal.Decimal
	UnitTP        *decimal.Decimal
	Credit        bool
	AllowNegative bool
	UserID        string
}

// RegisterMovement valida, resuelve precios, y dentro de una transacción:
// bloquea el record del período, aplica el movimiento (variante verificada salvo
// AllowNegative), persiste el record, añade exactamente una entrada de auditoría
// y — solo para PRIMARY a crédito — actualiza la deuda con su MoneyTransfer
// emparejado.
func (uc *RegisterMovementUseCase) RegisterMovement(ctx context.Context, input MovementInput) error {
	switch input.Type {
	case entity.MovementTypePrimary, entity.MovementTypeMarketReturn,
		entity.MovementTypeOfficeReturn, entity.MovementTypeSecondary:
	default:
		return domain.ErrInvalidInput
	}
	if input.OutletCode == "" || input.Barcode == "" || input.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	if input.Credit && input.Type != entity.MovementTypePrimary {
		return domain.ErrInvalidInput
	}
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	product, err := uc.productRepo.GetByBarcode(input.Barcode)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	outlet, err := uc.outletRepo.GetByCode(input.OutletCode)
	if err != nil || outlet == nil {
		return domain.ErrNotFound
	}

	// Precio efectivo: override del operador si viene, si no el motor con la
	// precedencia de price list por outlet. Precisión completa hasta persistir.
	unitDP, unitTP := pricing.ResolveProductPrice(product, input.OutletCode, input.Date)
	if input.UnitDP != nil {
		unitDP = *input.UnitDP
	}
	if input.UnitTP != nil {
		unitTP = *input.UnitTP
	}
	if unitDP.IsNegative() || unitTP.IsNegative() {
		return domain.ErrInvalidInput
	}

	period := input.Date.Format("2006-01")
	now := time.Now()
	txID := uuid.New().String()

	return uc.txRunner.Run(ctx, func(
		recordRepo repository.StockRecordRepository,
		accountRepo repository.OutletAccountRepository,
		txRepo repository.TransactionRepository,
		transferRepo repository.MoneyTransferRepository,
	) error {
		// Bloquea la fila del record (SELECT FOR UPDATE); fila ausente = record en cero.
		rec, err := recordRepo.GetForUpdate(input.OutletCode, input.Barcode, period)
		if err != nil {
			return err
		}

		delta := ledger.MovementDelta{
			Kind: input.Type, Qty: input.Quantity,
			UnitDP: unitDP, UnitTP: unitTP,
		}
		var updated entity.StockMovementRecord
		if input.AllowNegative {
			updated = ledger.ApplyMovement(*rec, delta)
		} else {
			var res ledger.Result
			updated, res = ledger.TryApplyMovement(*rec, delta)
			switch res {
			case ledger.ResultInsufficientStock:
				return domain.ErrInsufficientStock
			case ledger.ResultUnknownKind:
				return domain.ErrInvalidInput
			}
		}
		updated.UpdatedAt = now
		if err := recordRepo.Upsert(&updated); err != nil {
			return err
		}

		// Exactamente una entrada de auditoría por movimiento aplicado.
		entry := &entity.TransactionEntry{
			ID:         txID,
			OutletCode: input.OutletCode,
			Barcode:    input.Barcode,
			Type:       input.Type,
			Quantity:   input.Quantity,
			DP:         unitDP,
			TP:         unitTP,
			Date:       input.Date,
			CreatedBy:  input.UserID,
			CreatedAt:  now,
		}
		if err := txRepo.Create(entry); err != nil {
			return err
		}

		// Acople de deuda: paso separado y explícito, solo PRIMARY a crédito.
		if input.Type == entity.MovementTypePrimary && input.Credit {
			acc, err := accountRepo.GetForUpdate(input.OutletCode)
			if err != nil {
				return err
			}
			due := ledger.PrimaryDue(input.Quantity, unitDP)
			updatedAcc, mt := ledger.AdjustDue(
				*acc, due, entity.TransferTypePrimaryCredit,
				input.Date, input.UserID, "primary a crédito "+txID,
			)
			if err := accountRepo.Upsert(&updatedAcc); err != nil {
				return err
			}
			mt.ID = uuid.New().String()
			if err := transferRepo.Create(&mt); err != nil {
				return err
			}
		}
		return nil
	})
}

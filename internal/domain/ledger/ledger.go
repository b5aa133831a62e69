// Package ledger implementa el modelo de reconciliación de stock y el libro de
// deuda por outlet (servicio de dominio, puro: valores entran, valores salen).
//
// Identidad de cierre, siempre con esta convención de signos:
//
//	closing = opening + primary + marketReturn − secondary − officeReturn
//
// y las identidades paralelas para las valoraciones DP y TP. El cierre jamás se
// almacena ni se deriva de otra fórmula.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// MovementDelta un movimiento a aplicar sobre un StockMovementRecord.
// Qty debe ser ≥ 0; el signo lo aporta el Kind (la convención de buckets).
type MovementDelta struct {
	Kind   string // entity.MovementTypePrimary | MarketReturn | OfficeReturn | Secondary
	Qty    int64
	UnitDP decimal.Decimal
	UnitTP decimal.Decimal
}

// Closing cantidad y valoraciones de cierre derivadas de un record.
type Closing struct {
	Qty     int64
	ValueDP decimal.Decimal
	ValueTP decimal.Decimal
}

// Result resultado de TryApplyMovement.
type Result int

const (
	ResultOK Result = iota
	ResultInsufficientStock
	ResultUnknownKind
)

// ApplyMovement devuelve una copia del record con el movimiento sumado a su bucket:
// qty al contador y qty×unitDP / qty×unitTP a las valoraciones. No toca ningún otro
// bucket y no valida stock disponible: para SECONDARY y OFFICE_RETURN es
// precondición del caller que el cierre no quede negativo (usar TryApplyMovement
// para la variante verificada). Kind desconocido deja el record intacto.
func ApplyMovement(rec entity.StockMovementRecord, d MovementDelta) entity.StockMovementRecord {
	qty := decimal.NewFromInt(d.Qty)
	valDP := qty.Mul(d.UnitDP)
	valTP := qty.Mul(d.UnitTP)

	switch d.Kind {
	case entity.MovementTypePrimary:
		rec.Primary += d.Qty
		rec.PrimaryValueDP = rec.PrimaryValueDP.Add(valDP)
		rec.PrimaryValueTP = rec.PrimaryValueTP.Add(valTP)
	case entity.MovementTypeMarketReturn:
		rec.MarketReturn += d.Qty
		rec.MarketReturnValueDP = rec.MarketReturnValueDP.Add(valDP)
		rec.MarketReturnValueTP = rec.MarketReturnValueTP.Add(valTP)
	case entity.MovementTypeOfficeReturn:
		rec.OfficeReturn += d.Qty
		rec.OfficeReturnValueDP = rec.OfficeReturnValueDP.Add(valDP)
		rec.OfficeReturnValueTP = rec.OfficeReturnValueTP.Add(valTP)
	case entity.MovementTypeSecondary:
		rec.Secondary += d.Qty
		rec.SecondaryValueDP = rec.SecondaryValueDP.Add(valDP)
		rec.SecondaryValueTP = rec.SecondaryValueTP.Add(valTP)
	}
	return rec
}

// TryApplyMovement variante verificada: si el movimiento es una salida (SECONDARY u
// OFFICE_RETURN) que dejaría el cierre negativo, devuelve el record SIN tocar y
// ResultInsufficientStock. Kind inválido devuelve ResultUnknownKind.
func TryApplyMovement(rec entity.StockMovementRecord, d MovementDelta) (entity.StockMovementRecord, Result) {
	switch d.Kind {
	case entity.MovementTypePrimary, entity.MovementTypeMarketReturn:
		// entradas: siempre aplican
	case entity.MovementTypeSecondary, entity.MovementTypeOfficeReturn:
		if AvailableStock(rec) < d.Qty {
			return rec, ResultInsufficientStock
		}
	default:
		return rec, ResultUnknownKind
	}
	return ApplyMovement(rec, d), ResultOK
}

// ComputeClosing deriva el cierre del record con la identidad canónica. Pura e
// idempotente; sin redondeo (presentación redondea aparte).
func ComputeClosing(rec entity.StockMovementRecord) Closing {
	return Closing{
		Qty: rec.OpeningStock + rec.Primary + rec.MarketReturn - rec.Secondary - rec.OfficeReturn,
		ValueDP: rec.OpeningValueDP.
			Add(rec.PrimaryValueDP).
			Add(rec.MarketReturnValueDP).
			Sub(rec.SecondaryValueDP).
			Sub(rec.OfficeReturnValueDP),
		ValueTP: rec.OpeningValueTP.
			Add(rec.PrimaryValueTP).
			Add(rec.MarketReturnValueTP).
			Sub(rec.SecondaryValueTP).
			Sub(rec.OfficeReturnValueTP),
	}
}

// AvailableStock stock disponible antes de un movimiento prospectivo (el total
// corriente del record, misma identidad que el cierre).
func AvailableStock(rec entity.StockMovementRecord) int64 {
	return ComputeClosing(rec).Qty
}

// PrimaryDue delta de deuda que genera una recepción primary a crédito:
// qty × unitDP. Aplicarlo al OutletAccount es un paso separado y explícito del
// caller (las entradas de apertura hechas por admin NO tocan la deuda).
func PrimaryDue(qty int64, unitDP decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(qty).Mul(unitDP)
}

// AdjustDue aplica un delta (con signo) a la deuda del outlet y produce el
// MoneyTransfer de auditoría emparejado. La deuda nunca cambia sin su registro:
// esta función es la única forma de mutarla.
func AdjustDue(
	acc entity.OutletAccount,
	delta decimal.Decimal,
	transferType string,
	at time.Time,
	createdBy, remarks string,
) (entity.OutletAccount, entity.MoneyTransfer) {
	acc.CurrentDue = acc.CurrentDue.Add(delta)
	acc.UpdatedAt = at
	mt := entity.MoneyTransfer{
		OutletCode: acc.OutletCode,
		Amount:     delta,
		Type:       transferType,
		Date:       at,
		CreatedBy:  createdBy,
		Remarks:    remarks,
	}
	return acc, mt
}

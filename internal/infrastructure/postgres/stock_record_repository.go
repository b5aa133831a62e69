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

var _ repository.StockRecordRepository = (*StockRecordRepo)(nil)

// StockRecordRepo implementación de StockRecordRepository sobre PostgreSQL
// (usable con pool o tx). Una fila por (outlet, barcode, período); el cierre
// nunca se persiste, se deriva en dominio.
type StockRecordRepo struct {
	q Querier
}

// NewStockRecordRepository construye el adaptador de records. Pasar pool o tx (Querier).
func NewStockRecordRepository(q Querier) *StockRecordRepo {
	return &StockRecordRepo{q: q}
}

const stockRecordColumns = `outlet_code, barcode, period,
		opening_qty, opening_dp, opening_tp,
		primary_qty, primary_dp, primary_tp,
		market_return_qty, market_return_dp, market_return_tp,
		office_return_qty, office_return_dp, office_return_tp,
		secondary_qty, secondary_dp, secondary_tp,
		updated_at`

// Get obtiene el record de un producto en un outlet y período.
// Devuelve un record en cero si no hay fila (la cuenta se crea con la primera transacción).
func (r *StockRecordRepo) Get(outletCode, barcode, period string) (*entity.StockMovementRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_movement_records
		WHERE outlet_code = $1 AND barcode = $2 AND period = $3`
	return r.get(query, outletCode, barcode, period)
}

// GetForUpdate obtiene el record y bloquea la fila (SELECT FOR UPDATE).
func (r *StockRecordRepo) GetForUpdate(outletCode, barcode, period string) (*entity.StockMovementRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_movement_records
		WHERE outlet_code = $1 AND barcode = $2 AND period = $3
		FOR UPDATE`
	return r.get(query, outletCode, barcode, period)
}

func (r *StockRecordRepo) get(query, outletCode, barcode, period string) (*entity.StockMovementRecord, error) {
	rec, err := scanStockRecord(r.q.QueryRow(context.Background(), query, outletCode, barcode, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroRecord(outletCode, barcode, period), nil
		}
		return nil, fmt.Errorf("get stock record: %w", err)
	}
	return rec, nil
}

// Upsert inserta o actualiza todos los buckets del record.
func (r *StockRecordRepo) Upsert(rec *entity.StockMovementRecord) error {
	query := `
		INSERT INTO stock_movement_records (` + stockRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, now())
		ON CONFLICT (outlet_code, barcode, period) DO UPDATE SET
			opening_qty = EXCLUDED.opening_qty, opening_dp = EXCLUDED.opening_dp, opening_tp = EXCLUDED.opening_tp,
			primary_qty = EXCLUDED.primary_qty, primary_dp = EXCLUDED.primary_dp, primary_tp = EXCLUDED.primary_tp,
			market_return_qty = EXCLUDED.market_return_qty, market_return_dp = EXCLUDED.market_return_dp, market_return_tp = EXCLUDED.market_return_tp,
			office_return_qty = EXCLUDED.office_return_qty, office_return_dp = EXCLUDED.office_return_dp, office_return_tp = EXCLUDED.office_return_tp,
			secondary_qty = EXCLUDED.secondary_qty, secondary_dp = EXCLUDED.secondary_dp, secondary_tp = EXCLUDED.secondary_tp,
			updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		rec.OutletCode, rec.Barcode, rec.Period,
		rec.OpeningStock, rec.OpeningValueDP, rec.OpeningValueTP,
		rec.Primary, rec.PrimaryValueDP, rec.PrimaryValueTP,
		rec.MarketReturn, rec.MarketReturnValueDP, rec.MarketReturnValueTP,
		rec.OfficeReturn, rec.OfficeReturnValueDP, rec.OfficeReturnValueTP,
		rec.Secondary, rec.SecondaryValueDP, rec.SecondaryValueTP,
	)
	if err != nil {
		return fmt.Errorf("upsert stock record: %w", err)
	}
	return nil
}

// ListByFilter lista records para reporting. Strings vacíos en el filtro = sin restricción.
// Los períodos son lexicográficamente ordenables ("2006-01"), así que los rangos
// funcionan con comparación de strings.
func (r *StockRecordRepo) ListByFilter(f repository.StockRecordFilter) ([]*entity.StockMovementRecord, error) {
	query := `
		SELECT ` + stockRecordColumns + `
		FROM stock_movement_records WHERE 1=1`
	args := []any{}
	pos := 1
	if f.OutletCode != "" {
		query += fmt.Sprintf(" AND outlet_code = $%d", pos)
		args = append(args, f.OutletCode)
		pos++
	}
	if f.Barcode != "" {
		query += fmt.Sprintf(" AND barcode = $%d", pos)
		args = append(args, f.Barcode)
		pos++
	}
	if f.FromPeriod != "" {
		query += fmt.Sprintf(" AND period >= $%d", pos)
		args = append(args, f.FromPeriod)
		pos++
	}
	if f.ToPeriod != "" {
		query += fmt.Sprintf(" AND period <= $%d", pos)
		args = append(args, f.ToPeriod)
		pos++
	}
	query += " ORDER BY outlet_code, barcode, period"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock records: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovementRecord
	for rows.Next() {
		rec, err := scanStockRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock record: %w", err)
		}
		list = append(list, rec)
	}
	return list, rows.Err()
}

func scanStockRecord(row pgx.Row) (*entity.StockMovementRecord, error) {
	var rec entity.StockMovementRecord
	err := row.Scan(
		&rec.OutletCode, &rec.Barcode, &rec.Period,
		&rec.OpeningStock, &rec.OpeningValueDP, &rec.OpeningValueTP,
		&rec.Primary, &rec.PrimaryValueDP, &rec.PrimaryValueTP,
		&rec.MarketReturn, &rec.MarketReturnValueDP, &rec.MarketReturnValueTP,
		&rec.OfficeReturn, &rec.OfficeReturnValueDP, &rec.OfficeReturnValueTP,
		&rec.Secondary, &rec.SecondaryValueDP, &rec.SecondaryValueTP,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func zeroRecord(outletCode, barcode, period string) *entity.StockMovementRecord {
	return &entity.StockMovementRecord{
		OutletCode:          outletCode,
		Barcode:             barcode,
		Period:              period,
		OpeningValueDP:      decimal.Zero,
		OpeningValueTP:      decimal.Zero,
		PrimaryValueDP:      decimal.Zero,
		PrimaryValueTP:      decimal.Zero,
		MarketReturnValueDP: decimal.Zero,
		MarketReturnValueTP: decimal.Zero,
		OfficeReturnValueDP: decimal.Zero,
		OfficeReturnValueTP: decimal.Zero,
		SecondaryValueDP:    decimal.Zero,
		SecondaryValueTP:    decimal.Zero,
	}
}

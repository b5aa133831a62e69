package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del log de auditoría de movimientos sobre
// PostgreSQL (usable con pool o tx). Solo inserta y lista: las entradas nunca
// se modifican ni se borran.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una entrada de auditoría.
func (r *TransactionRepo) Create(e *entity.TransactionEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transaction_entries (id, outlet_code, barcode, type, quantity, dp, tp, date, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.OutletCode, e.Barcode, e.Type, e.Quantity, e.DP, e.TP,
		e.Date, e.CreatedBy, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction entry: %w", err)
	}
	return nil
}

// ListByOutlet lista entradas de un outlet en un rango de fechas.
func (r *TransactionRepo) ListByOutlet(outletCode string, from, to *time.Time, limit, offset int) ([]*entity.TransactionEntry, error) {
	query := `
		SELECT id, outlet_code, barcode, type, quantity, dp, tp, date, created_by, created_at
		FROM transaction_entries WHERE outlet_code = $1`
	args := []any{outletCode}
	pos := 2
	if from != nil {
		query += fmt.Sprintf(" AND date >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND date <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY date DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	return r.list(query, args)
}

// ListByType lista entradas de un tipo de movimiento en un rango (para reportes de ventas).
func (r *TransactionRepo) ListByType(movementType string, from, to time.Time) ([]*entity.TransactionEntry, error) {
	query := `
		SELECT id, outlet_code, barcode, type, quantity, dp, tp, date, created_by, created_at
		FROM transaction_entries
		WHERE type = $1 AND date >= $2 AND date <= $3
		ORDER BY date`
	return r.list(query, []any{movementType, from, to})
}

func (r *TransactionRepo) list(query string, args []any) ([]*entity.TransactionEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transaction entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.TransactionEntry
	for rows.Next() {
		var e entity.TransactionEntry
		if err := rows.Scan(&e.ID, &e.OutletCode, &e.Barcode, &e.Type, &e.Quantity,
			&e.DP, &e.TP, &e.Date, &e.CreatedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

var _ repository.MoneyTransferRepository = (*MoneyTransferRepo)(nil)

// MoneyTransferRepo implementación del log de auditoría monetaria sobre
// PostgreSQL (usable con pool o tx). Append-only.
type MoneyTransferRepo struct {
	q Querier
}

// NewMoneyTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoneyTransferRepository(q Querier) *MoneyTransferRepo {
	return &MoneyTransferRepo{q: q}
}

// Create persiste un movimiento monetario.
func (r *MoneyTransferRepo) Create(mt *entity.MoneyTransfer) error {
	if mt.ID == "" {
		mt.ID = uuid.New().String()
	}
	query := `
		INSERT INTO money_transfers (id, outlet_code, amount, type, date, created_by, remarks)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		mt.ID, mt.OutletCode, mt.Amount, mt.Type, mt.Date, mt.CreatedBy, mt.Remarks,
	)
	if err != nil {
		return fmt.Errorf("create money transfer: %w", err)
	}
	return nil
}

// ListByOutlet lista movimientos monetarios de un outlet en un rango de fechas.
func (r *MoneyTransferRepo) ListByOutlet(outletCode string, from, to *time.Time, limit, offset int) ([]*entity.MoneyTransfer, error) {
	query := `
		SELECT id, outlet_code, amount, type, date, created_by, remarks
		FROM money_transfers WHERE outlet_code = $1`
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

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list money transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.MoneyTransfer
	for rows.Next() {
		var mt entity.MoneyTransfer
		if err := rows.Scan(&mt.ID, &mt.OutletCode, &mt.Amount, &mt.Type, &mt.Date, &mt.CreatedBy, &mt.Remarks); err != nil {
			return nil, fmt.Errorf("scan money transfer: %w", err)
		}
		list = append(list, &mt)
	}
	return list, rows.Err()
}

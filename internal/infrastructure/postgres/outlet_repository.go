package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

var _ repository.OutletRepository = (*OutletRepo)(nil)

// OutletRepo implementación de OutletRepository sobre PostgreSQL (usable con pool o tx).
type OutletRepo struct {
	q Querier
}

// NewOutletRepository construye el adaptador de outlets. Pasar pool o tx (Querier).
func NewOutletRepository(q Querier) *OutletRepo {
	return &OutletRepo{q: q}
}

// Create persiste un nuevo outlet.
func (r *OutletRepo) Create(o *entity.Outlet) error {
	query := `
		INSERT INTO outlets (code, name, area, proprietor, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		o.Code, o.Name, o.Area, o.Proprietor, o.Phone, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert outlet: %w", err)
	}
	return nil
}

// GetByCode obtiene un outlet por código. nil, nil si no existe.
func (r *OutletRepo) GetByCode(code string) (*entity.Outlet, error) {
	query := `
		SELECT code, name, area, proprietor, phone, created_at, updated_at
		FROM outlets WHERE code = $1`
	var o entity.Outlet
	err := r.q.QueryRow(context.Background(), query, code).Scan(
		&o.Code, &o.Name, &o.Area, &o.Proprietor, &o.Phone, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get outlet: %w", err)
	}
	return &o, nil
}

// List lista outlets con paginación.
func (r *OutletRepo) List(limit, offset int) ([]*entity.Outlet, error) {
	query := `
		SELECT code, name, area, proprietor, phone, created_at, updated_at
		FROM outlets ORDER BY code LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list outlets: %w", err)
	}
	defer rows.Close()
	var list []*entity.Outlet
	for rows.Next() {
		var o entity.Outlet
		if err := rows.Scan(&o.Code, &o.Name, &o.Area, &o.Proprietor, &o.Phone, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan outlet: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
// PriceList y PromoPriceList se persisten como JSONB: son mapas pequeños keyed por
// código de outlet y siempre se leen/escriben completos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia del catálogo. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `barcode, name, category, dp, tp, promo_type, promo_plan, promo_percentage,
		promo_start_date, promo_end_date, price_list, promo_price_list, created_at, updated_at`

// Create persiste un nuevo producto. Barcode es la identidad.
func (r *ProductRepo) Create(product *entity.Product) error {
	priceList, promoPriceList, err := marshalPriceLists(product)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err = r.q.Exec(context.Background(), query,
		product.Barcode, product.Name, product.Category, product.DP, product.TP,
		product.PromoType, product.PromoPlan, product.PromoPercentage,
		product.PromoStartDate, product.PromoEndDate,
		priceList, promoPriceList,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Update actualiza un producto existente (precios base, promo y price lists).
func (r *ProductRepo) Update(product *entity.Product) error {
	priceList, promoPriceList, err := marshalPriceLists(product)
	if err != nil {
		return err
	}
	query := `
		UPDATE products SET name = $2, category = $3, dp = $4, tp = $5,
			promo_type = $6, promo_plan = $7, promo_percentage = $8,
			promo_start_date = $9, promo_end_date = $10,
			price_list = $11, promo_price_list = $12, updated_at = $13
		WHERE barcode = $1`
	_, err = r.q.Exec(context.Background(), query,
		product.Barcode, product.Name, product.Category, product.DP, product.TP,
		product.PromoType, product.PromoPlan, product.PromoPercentage,
		product.PromoStartDate, product.PromoEndDate,
		priceList, promoPriceList, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// GetByBarcode obtiene un producto por barcode. nil, nil si no existe.
func (r *ProductRepo) GetByBarcode(barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE barcode = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List lista productos (filtro opcional por categoría) con paginación.
func (r *ProductRepo) List(category string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	pos := 1
	if category != "" {
		query += fmt.Sprintf(" WHERE category = $%d", pos)
		args = append(args, category)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func marshalPriceLists(product *entity.Product) (priceList, promoPriceList []byte, err error) {
	if product.PriceList != nil {
		priceList, err = json.Marshal(product.PriceList)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal price_list: %w", err)
		}
	}
	if product.PromoPriceList != nil {
		promoPriceList, err = json.Marshal(product.PromoPriceList)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal promo_price_list: %w", err)
		}
	}
	return priceList, promoPriceList, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var priceList, promoPriceList []byte
	err := row.Scan(
		&p.Barcode, &p.Name, &p.Category, &p.DP, &p.TP,
		&p.PromoType, &p.PromoPlan, &p.PromoPercentage,
		&p.PromoStartDate, &p.PromoEndDate,
		&priceList, &promoPriceList,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(priceList) > 0 {
		if err := json.Unmarshal(priceList, &p.PriceList); err != nil {
			return nil, fmt.Errorf("unmarshal price_list: %w", err)
		}
	}
	if len(promoPriceList) > 0 {
		if err := json.Unmarshal(promoPriceList, &p.PromoPriceList); err != nil {
			return nil, fmt.Errorf("unmarshal promo_price_list: %w", err)
		}
	}
	return &p, nil
}

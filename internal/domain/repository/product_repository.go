package repository

import "github.com/tu-usuario/distribution-pos/internal/domain/entity"

// ProductRepository define el puerto de persistencia del catálogo (DIP).
type ProductRepository interface {
	Create(p *entity.Product) error
	Update(p *entity.Product) error
	GetByBarcode(barcode string) (*entity.Product, error)
	List(category string, limit, offset int) ([]*entity.Product, error)
}

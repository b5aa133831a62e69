package repository

import "github.com/tu-usuario/distribution-pos/internal/domain/entity"

// OutletRepository puerto de persistencia de outlets.
type OutletRepository interface {
	Create(o *entity.Outlet) error
	GetByCode(code string) (*entity.Outlet, error)
	List(limit, offset int) ([]*entity.Outlet, error)
}

package usecase

import (
	"time"

	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// OutletUseCase casos de uso CRUD para outlets.
type OutletUseCase struct {
	repo repository.OutletRepository
}

// NewOutletUseCase construye el caso de uso.
func NewOutletUseCase(repo repository.OutletRepository) *OutletUseCase {
	return &OutletUseCase{repo: repo}
}

// Create crea un outlet; el código es la identidad y la key en price lists.
func (uc *OutletUseCase) Create(in dto.CreateOutletRequest) (*dto.OutletResponse, error) {
	if in.Code == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByCode(in.Code)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	outlet := &entity.Outlet{
		Code:       in.Code,
		Name:       in.Name,
		Area:       in.Area,
		Proprietor: in.Proprietor,
		Phone:      in.Phone,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(outlet); err != nil {
		return nil, err
	}
	return toOutletResponse(outlet), nil
}

// GetByCode obtiene un outlet.
func (uc *OutletUseCase) GetByCode(code string) (*dto.OutletResponse, error) {
	outlet, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if outlet == nil {
		return nil, nil
	}
	return toOutletResponse(outlet), nil
}

// List lista outlets con paginación.
func (uc *OutletUseCase) List(limit, offset int) (*dto.OutletListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OutletResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOutletResponse(o))
	}
	return &dto.OutletListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}, nil
}

func toOutletResponse(o *entity.Outlet) *dto.OutletResponse {
	return &dto.OutletResponse{
		Code:       o.Code,
		Name:       o.Name,
		Area:       o.Area,
		Proprietor: o.Proprietor,
		Phone:      o.Phone,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

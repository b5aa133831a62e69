package usecase

import (
	"time"

	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/pricing"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// ProductUseCase CRUD del catálogo. Los metadatos de promoción se guardan tal
// cual llegan: si están malformados degradan a "sin promoción" en el motor de
// pricing, nunca rompen la captura (§ manejo de errores).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto; el barcode es la identidad.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Barcode == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.DP.IsNegative() || in.TP.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByBarcode(in.Barcode)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Barcode:   in.Barcode,
		Name:      in.Name,
		Category:  in.Category,
		DP:        in.DP,
		TP:        in.TP,
		PromoType: entity.PromoTypeNone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyPromo(product, in.Promo)
	applyPriceLists(product, in.PriceList, in.PromoPriceList)
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByBarcode obtiene un producto.
func (uc *ProductUseCase) GetByBarcode(barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza campos del producto (precios base, promo, price lists).
func (uc *ProductUseCase) Update(barcode string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.DP != nil {
		if in.DP.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.DP = *in.DP
	}
	if in.TP != nil {
		if in.TP.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.TP = *in.TP
	}
	applyPromo(product, in.Promo)
	applyPriceLists(product, in.PriceList, in.PromoPriceList)
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos (filtro opcional por categoría) con paginación.
func (uc *ProductUseCase) List(category string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(category, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: len(items)},
	}, nil
}

// EffectivePrice resuelve el precio efectivo (dp, tp) del producto para un outlet
// y fecha, en precisión completa y en display.
func (uc *ProductUseCase) EffectivePrice(barcode, outletCode string, asOf time.Time) (*dto.EffectivePriceResponse, error) {
	product, err := uc.repo.GetByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	dp, tp := pricing.ResolveProductPrice(product, outletCode, asOf)
	return &dto.EffectivePriceResponse{
		Barcode:    barcode,
		OutletCode: outletCode,
		AsOf:       asOf.Format(dto.DateLayout),
		DP:         dp,
		TP:         tp,
		DisplayDP:  pricing.Display(dp),
		DisplayTP:  pricing.Display(tp),
	}, nil
}

func applyPromo(product *entity.Product, promo *dto.PromoDTO) {
	if promo == nil {
		return
	}
	op := promo.ToOutletPromo()
	product.PromoType = op.PromoType
	if product.PromoType == "" {
		product.PromoType = entity.PromoTypeNone
	}
	product.PromoPlan = op.PromoPlan
	product.PromoPercentage = op.PromoPercentage
	product.PromoStartDate = op.PromoStartDate
	product.PromoEndDate = op.PromoEndDate
}

func applyPriceLists(product *entity.Product, prices map[string]dto.OutletPriceDTO, promos map[string]dto.PromoDTO) {
	if prices != nil {
		product.PriceList = make(map[string]entity.OutletPrice, len(prices))
		for code, p := range prices {
			product.PriceList[code] = entity.OutletPrice{DP: p.DP, TP: p.TP}
		}
	}
	if promos != nil {
		product.PromoPriceList = make(map[string]entity.OutletPromo, len(promos))
		for code, p := range promos {
			product.PromoPriceList[code] = p.ToOutletPromo()
		}
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	resp := &dto.ProductResponse{
		Barcode:  p.Barcode,
		Name:     p.Name,
		Category: p.Category,
		DP:       p.DP,
		TP:       p.TP,
		Promo: dto.ToPromoDTO(
			p.PromoType, p.PromoPlan, p.PromoPercentage,
			p.PromoStartDate, p.PromoEndDate,
		),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.PriceList != nil {
		resp.PriceList = make(map[string]dto.OutletPriceDTO, len(p.PriceList))
		for code, e := range p.PriceList {
			resp.PriceList[code] = dto.OutletPriceDTO{DP: e.DP, TP: e.TP}
		}
	}
	if p.PromoPriceList != nil {
		resp.PromoPriceList = make(map[string]dto.PromoDTO, len(p.PromoPriceList))
		for code, e := range p.PromoPriceList {
			resp.PromoPriceList[code] = dto.ToPromoDTO(
				e.PromoType, e.PromoPlan, e.PromoPercentage,
				e.PromoStartDate, e.PromoEndDate,
			)
		}
	}
	return resp
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// PromoDTO los cinco campos de promoción (globales o por outlet).
// Las fechas viajan como "YYYY-MM-DD"; metadatos malformados no se rechazan aquí:
// degradan a "sin promoción" en el motor de pricing.
type PromoDTO struct {
	PromoType       string          `json:"promo_type"`       // quantity | percentage | none
	PromoPlan       string          `json:"promo_plan"`       // "10+1" o "None"
	PromoPercentage decimal.Decimal `json:"promo_percentage"` // (0,100]
	PromoStartDate  string          `json:"promo_start_date,omitempty"`
	PromoEndDate    string          `json:"promo_end_date,omitempty"`
}

// OutletPriceDTO override de precio por outlet.
type OutletPriceDTO struct {
	DP decimal.Decimal `json:"dp"`
	TP decimal.Decimal `json:"tp"`
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Barcode  string          `json:"barcode" validate:"required,min=1,max=100"`
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category"`
	DP       decimal.Decimal `json:"dp"`
	TP       decimal.Decimal `json:"tp"`

	Promo          *PromoDTO                 `json:"promo,omitempty"`
	PriceList      map[string]OutletPriceDTO `json:"price_list,omitempty"`
	PromoPriceList map[string]PromoDTO       `json:"promo_price_list,omitempty"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name     *string          `json:"name,omitempty"`
	Category *string          `json:"category,omitempty"`
	DP       *decimal.Decimal `json:"dp,omitempty"`
	TP       *decimal.Decimal `json:"tp,omitempty"`

	Promo          *PromoDTO                 `json:"promo,omitempty"`
	PriceList      map[string]OutletPriceDTO `json:"price_list,omitempty"`
	PromoPriceList map[string]PromoDTO       `json:"promo_price_list,omitempty"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	Barcode  string          `json:"barcode"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	DP       decimal.Decimal `json:"dp"`
	TP       decimal.Decimal `json:"tp"`

	Promo          PromoDTO                  `json:"promo"`
	PriceList      map[string]OutletPriceDTO `json:"price_list,omitempty"`
	PromoPriceList map[string]PromoDTO       `json:"promo_price_list,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// EffectivePriceResponse precio efectivo de un producto para un outlet y fecha.
type EffectivePriceResponse struct {
	Barcode    string          `json:"barcode"`
	OutletCode string          `json:"outlet_code"`
	AsOf       string          `json:"as_of"`
	DP         decimal.Decimal `json:"dp"` // precisión completa
	TP         decimal.Decimal `json:"tp"`
	DisplayDP  decimal.Decimal `json:"display_dp"` // redondeado a 2
	DisplayTP  decimal.Decimal `json:"display_tp"`
}

// ToPromoDTO convierte los campos de promoción de la entidad al DTO.
func ToPromoDTO(promoType, plan string, pct decimal.Decimal, start, end *time.Time) PromoDTO {
	out := PromoDTO{PromoType: promoType, PromoPlan: plan, PromoPercentage: pct}
	if start != nil {
		out.PromoStartDate = start.Format(DateLayout)
	}
	if end != nil {
		out.PromoEndDate = end.Format(DateLayout)
	}
	return out
}

// ToOutletPromo convierte un PromoDTO a la entidad de promoción por outlet.
// Fechas inválidas quedan en nil: promoción inactiva, nunca error.
func (p PromoDTO) ToOutletPromo() entity.OutletPromo {
	start, _ := ParseOptionalDate(p.PromoStartDate)
	end, _ := ParseOptionalDate(p.PromoEndDate)
	return entity.OutletPromo{
		PromoType:       p.PromoType,
		PromoPlan:       p.PromoPlan,
		PromoPercentage: p.PromoPercentage,
		PromoStartDate:  start,
		PromoEndDate:    end,
	}
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de promoción soportados por producto u outlet.
const (
	PromoTypeQuantity   = "quantity"   // "pagas X, llevas X+Y" (plan "10+1")
	PromoTypePercentage = "percentage" // descuento porcentual sobre el precio base
	PromoTypeNone       = "none"       // sin promoción
)

// OutletPrice precio DP/TP específico de un outlet (override del precio base).
type OutletPrice struct {
	DP decimal.Decimal `json:"dp"`
	TP decimal.Decimal `json:"tp"`
}

// OutletPromo promoción específica de un outlet. Refleja los mismos cinco campos
// de promoción del producto base.
type OutletPromo struct {
	PromoType       string          `json:"promo_type"`
	PromoPlan       string          `json:"promo_plan"`       // "paid+free", ej. "10+1", o "None"
	PromoPercentage decimal.Decimal `json:"promo_percentage"` // (0,100] para tener efecto
	PromoStartDate  *time.Time      `json:"promo_start_date"`
	PromoEndDate    *time.Time      `json:"promo_end_date"`
}

// Product representa un producto del catálogo de distribución.
//
// DP (dealer price) es la base de valoración de stock y de deuda; TP (trade price)
// es el precio del lado de ventas. PriceList y PromoPriceList guardan overrides por
// outlet: si un outlet tiene entrada en PriceList, TODO el pricing de ese outlet se
// resuelve contra esa entrada y su OutletPromo, nunca contra el precio/promoción
// global (ver internal/domain/pricing).
type Product struct {
	Barcode  string // código de barras, único
	Name     string
	Category string

	DP decimal.Decimal
	TP decimal.Decimal

	PromoType       string
	PromoPlan       string
	PromoPercentage decimal.Decimal
	PromoStartDate  *time.Time
	PromoEndDate    *time.Time

	PriceList      map[string]OutletPrice // key: código de outlet
	PromoPriceList map[string]OutletPromo // key: código de outlet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Package pricing implementa el motor de precios promocionales (servicio de
// dominio, puro: sin I/O ni estado).
//
// Nota para revisión de producto: la ventana de validez usa límites EXCLUSIVOS en
// ambos extremos (una promoción no aplica en su fecha exacta de inicio ni de fin).
// Es el comportamiento histórico de las pantallas y se conserva tal cual.
package pricing

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

var oneHundred = decimal.NewFromInt(100)

// PromoDescriptor describe una promoción (global o por outlet) ya desacoplada del
// producto. Un descriptor nil equivale a "sin promoción".
type PromoDescriptor struct {
	Type       string // entity.PromoTypeQuantity | PromoTypePercentage | PromoTypeNone
	Plan       string // "paid+free", ej. "10+1"; cualquier cosa no parseable es no-op
	Percentage decimal.Decimal
	StartDate  *time.Time
	EndDate    *time.Time
}

// Active indica si la promoción aplica en asOf: estrictamente después de StartDate
// Y estrictamente antes de EndDate. Si falta cualquiera de las dos fechas, inactiva.
func (p *PromoDescriptor) Active(asOf time.Time) bool {
	if p == nil || p.StartDate == nil || p.EndDate == nil {
		return false
	}
	return asOf.After(*p.StartDate) && asOf.Before(*p.EndDate)
}

// ParsePlan parsea un plan "paid+free" ("10+1" → 10, 1). Cualquier formato
// inválido degrada a (0, 0), que el motor trata como promoción sin efecto;
// parsear nunca falla (los metadatos de promoción malformados no pueden tumbar
// el pricing).
func ParsePlan(plan string) (paid, free int64) {
	parts := strings.SplitN(strings.TrimSpace(plan), "+", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	p, err1 := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
	f, err2 := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err1 != nil || err2 != nil || p < 0 || f < 0 {
		return 0, 0
	}
	return p, f
}

// ResolvePrice calcula el precio unitario efectivo de basePrice bajo promo en asOf.
//
//   - promo nil o inactiva        → basePrice sin cambios.
//   - percentage                  → basePrice × (1 − pct/100); pct fuera de (0,100] es no-op.
//   - quantity con plan "paid+free" → basePrice × paid / (paid+free): el precio se
//     diluye por unidad dentro del bundle; las cantidades del carrito no se tocan.
//     paid = 0 o paid+free = 0 → basePrice (promoción degenerada).
//
// Devuelve precisión completa; redondear solo en presentación (Display).
func ResolvePrice(basePrice decimal.Decimal, promo *PromoDescriptor, asOf time.Time) decimal.Decimal {
	if !promo.Active(asOf) {
		return basePrice
	}
	switch promo.Type {
	case entity.PromoTypePercentage:
		pct := promo.Percentage
		if pct.LessThanOrEqual(decimal.Zero) || pct.GreaterThan(oneHundred) {
			return basePrice
		}
		return basePrice.Mul(oneHundred.Sub(pct)).Div(oneHundred)
	case entity.PromoTypeQuantity:
		paid, free := ParsePlan(promo.Plan)
		total := paid + free
		if paid == 0 || total == 0 {
			return basePrice
		}
		return basePrice.Mul(decimal.NewFromInt(paid)).Div(decimal.NewFromInt(total))
	default:
		return basePrice
	}
}

// Display redondea un precio a 2 decimales para presentación. Siempre derivar del
// valor sin redondear: nunca re-redondear un intermedio ya redondeado.
func Display(v decimal.Decimal) decimal.Decimal {
	return v.Round(2)
}

// GlobalDescriptor construye el descriptor de la promoción global del producto.
func GlobalDescriptor(p *entity.Product) *PromoDescriptor {
	if p == nil {
		return nil
	}
	return &PromoDescriptor{
		Type:       p.PromoType,
		Plan:       p.PromoPlan,
		Percentage: p.PromoPercentage,
		StartDate:  p.PromoStartDate,
		EndDate:    p.PromoEndDate,
	}
}

// OutletDescriptor construye el descriptor de una promoción por outlet.
func OutletDescriptor(op *entity.OutletPromo) *PromoDescriptor {
	if op == nil {
		return nil
	}
	return &PromoDescriptor{
		Type:       op.PromoType,
		Plan:       op.PromoPlan,
		Percentage: op.PromoPercentage,
		StartDate:  op.PromoStartDate,
		EndDate:    op.PromoEndDate,
	}
}

// ResolveProductPrice resuelve el par (dp, tp) efectivo de un producto para un
// outlet en asOf, aplicando la precedencia de overrides:
//
// Si existe entrada en PriceList para el outlet, el pricing COMPLETO se resuelve
// contra el dp/tp del outlet y su promoción propia (PromoPriceList); el precio y
// la promoción globales nunca se mezclan. Esto aplica incluso si la promoción del
// outlet expiró: se cae al precio del outlet sin promocionar, no al global.
func ResolveProductPrice(p *entity.Product, outletCode string, asOf time.Time) (dp, tp decimal.Decimal) {
	if entry, ok := p.PriceList[outletCode]; ok {
		var promo *PromoDescriptor
		if op, ok := p.PromoPriceList[outletCode]; ok {
			promo = OutletDescriptor(&op)
		}
		return ResolvePrice(entry.DP, promo, asOf), ResolvePrice(entry.TP, promo, asOf)
	}
	promo := GlobalDescriptor(p)
	return ResolvePrice(p.DP, promo, asOf), ResolvePrice(p.TP, promo, asOf)
}

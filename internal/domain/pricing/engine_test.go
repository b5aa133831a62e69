package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Promoción vigente alrededor del 15 de junio (límites exclusivos: 1 y 30).
func activeWindow() (*time.Time, *time.Time, time.Time) {
	return datePtr(2026, time.June, 1), datePtr(2026, time.June, 30), date(2026, time.June, 15)
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolvePrice — identidad sin promoción
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePrice_SinPromo_DevuelveBase(t *testing.T) {
	base := decimal.RequireFromString("123.45")
	got := pricing.ResolvePrice(base, nil, date(2026, time.June, 15))
	assert.True(t, base.Equal(got), "sin promo el precio base no cambia")
}

func TestResolvePrice_PromoTypeNone_DevuelveBase(t *testing.T) {
	start, end, asOf := activeWindow()
	promo := &pricing.PromoDescriptor{Type: entity.PromoTypeNone, StartDate: start, EndDate: end}
	base := decimal.NewFromInt(80)
	assert.True(t, base.Equal(pricing.ResolvePrice(base, promo, asOf)),
		"promoType none debe comportarse igual que promo ausente")
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolvePrice — promoción por cantidad ("paid+free")
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePrice_Cantidad_DiluyePrecio(t *testing.T) {
	start, end, asOf := activeWindow()
	promo := &pricing.PromoDescriptor{
		Type: entity.PromoTypeQuantity, Plan: "10+1",
		StartDate: start, EndDate: end,
	}
	base := decimal.NewFromInt(100)

	full := pricing.ResolvePrice(base, promo, asOf)

	// 100 × 10/11 = 90.9090... el valor completo NO debe venir redondeado
	expected := base.Mul(decimal.NewFromInt(10)).Div(decimal.NewFromInt(11))
	require.True(t, expected.Equal(full), "esperado %s, got %s", expected, full)

	// La vista redondeada a 2 decimales se deriva del MISMO intermedio sin redondear
	display := pricing.Display(full)
	assert.Equal(t, "90.91", display.StringFixed(2))
	assert.False(t, full.Equal(display), "full precision y display deben diferir para 10+1")
}

func TestResolvePrice_Cantidad_PlanDegenerado_NoOp(t *testing.T) {
	start, end, asOf := activeWindow()
	base := decimal.NewFromInt(100)

	for _, plan := range []string{"0+5", "0+0", "None", "", "abc", "10-1", "1+x", "+"} {
		promo := &pricing.PromoDescriptor{
			Type: entity.PromoTypeQuantity, Plan: plan,
			StartDate: start, EndDate: end,
		}
		got := pricing.ResolvePrice(base, promo, asOf)
		assert.True(t, base.Equal(got), "plan %q debe ser no-op", plan)
	}
}

func TestParsePlan(t *testing.T) {
	cases := []struct {
		plan       string
		paid, free int64
	}{
		{"10+1", 10, 1},
		{" 12 + 2 ", 12, 2},
		{"5+0", 5, 0},
		{"None", 0, 0},
		{"", 0, 0},
		{"-3+1", 0, 0}, // negativos degradan a no-op
		{"3+-1", 0, 0},
		{"3", 0, 0},
	}
	for _, c := range cases {
		paid, free := pricing.ParsePlan(c.plan)
		assert.Equal(t, c.paid, paid, "paid de %q", c.plan)
		assert.Equal(t, c.free, free, "free de %q", c.plan)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ResolvePrice — promoción porcentual
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePrice_Porcentaje(t *testing.T) {
	start, end, asOf := activeWindow()
	promo := &pricing.PromoDescriptor{
		Type: entity.PromoTypePercentage, Percentage: decimal.NewFromInt(15),
		StartDate: start, EndDate: end,
	}
	got := pricing.ResolvePrice(decimal.NewFromInt(200), promo, asOf)
	assert.True(t, decimal.NewFromInt(170).Equal(got), "200 al 15%% = 170, got %s", got)
}

func TestResolvePrice_PorcentajeFueraDeRango_NoOp(t *testing.T) {
	start, end, asOf := activeWindow()
	base := decimal.NewFromInt(200)
	for _, pct := range []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromInt(-5),
		decimal.NewFromInt(101),
	} {
		promo := &pricing.PromoDescriptor{
			Type: entity.PromoTypePercentage, Percentage: pct,
			StartDate: start, EndDate: end,
		}
		got := pricing.ResolvePrice(base, promo, asOf)
		assert.True(t, base.Equal(got), "pct %s debe ser no-op", pct)
	}
}

func TestResolvePrice_PorcentajeCien_PrecioCero(t *testing.T) {
	start, end, asOf := activeWindow()
	promo := &pricing.PromoDescriptor{
		Type: entity.PromoTypePercentage, Percentage: decimal.NewFromInt(100),
		StartDate: start, EndDate: end,
	}
	got := pricing.ResolvePrice(decimal.NewFromInt(50), promo, asOf)
	assert.True(t, got.IsZero(), "100%% de descuento deja el precio en 0")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de validez — límites exclusivos en ambos extremos
// ──────────────────────────────────────────────────────────────────────────────

func TestResolvePrice_VentanaExclusiva(t *testing.T) {
	start, end, _ := activeWindow()
	promo := &pricing.PromoDescriptor{
		Type: entity.PromoTypePercentage, Percentage: decimal.NewFromInt(10),
		StartDate: start, EndDate: end,
	}
	base := decimal.NewFromInt(100)

	cases := []struct {
		name   string
		asOf   time.Time
		active bool
	}{
		{"antes del inicio", date(2026, time.May, 20), false},
		{"fecha exacta de inicio", *start, false}, // límite exclusivo
		{"dentro de la ventana", date(2026, time.June, 15), true},
		{"fecha exacta de fin", *end, false}, // límite exclusivo
		{"después del fin", date(2026, time.July, 5), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := pricing.ResolvePrice(base, promo, c.asOf)
			if c.active {
				assert.True(t, decimal.NewFromInt(90).Equal(got))
			} else {
				assert.True(t, base.Equal(got), "fuera de ventana debe devolver el base")
			}
		})
	}
}

func TestResolvePrice_FechasFaltantes_Inactiva(t *testing.T) {
	_, end, asOf := activeWindow()
	base := decimal.NewFromInt(100)

	sinInicio := &pricing.PromoDescriptor{
		Type: entity.PromoTypePercentage, Percentage: decimal.NewFromInt(10), EndDate: end,
	}
	sinFin := &pricing.PromoDescriptor{
		Type: entity.PromoTypePercentage, Percentage: decimal.NewFromInt(10), StartDate: end,
	}
	assert.True(t, base.Equal(pricing.ResolvePrice(base, sinInicio, asOf)))
	assert.True(t, base.Equal(pricing.ResolvePrice(base, sinFin, asOf)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia de overrides por outlet
// ──────────────────────────────────────────────────────────────────────────────

func TestResolveProductPrice_OutletGanaAunConPromoExpirada(t *testing.T) {
	// Producto con promo GLOBAL activa y entrada de price list para el outlet
	// cuya promo propia ya expiró: debe resolver al precio del outlet SIN
	// promocionar, nunca al precio global promocionado.
	start, end, asOf := activeWindow()
	p := &entity.Product{
		Barcode: "800123", Name: "Jabón 100g", Category: "cuidado personal",
		DP: decimal.NewFromInt(100), TP: decimal.NewFromInt(110),
		PromoType: entity.PromoTypePercentage, PromoPercentage: decimal.NewFromInt(20),
		PromoStartDate: start, PromoEndDate: end,
		PriceList: map[string]entity.OutletPrice{
			"OUT-7": {DP: decimal.NewFromInt(95), TP: decimal.NewFromInt(105)},
		},
		PromoPriceList: map[string]entity.OutletPromo{
			"OUT-7": {
				PromoType: entity.PromoTypePercentage, PromoPercentage: decimal.NewFromInt(50),
				PromoStartDate: datePtr(2026, time.January, 1), PromoEndDate: datePtr(2026, time.February, 1),
			},
		},
	}

	dp, tp := pricing.ResolveProductPrice(p, "OUT-7", asOf)
	assert.True(t, decimal.NewFromInt(95).Equal(dp), "DP del outlet sin promo, got %s", dp)
	assert.True(t, decimal.NewFromInt(105).Equal(tp), "TP del outlet sin promo, got %s", tp)

	// El mismo producto sin entrada de outlet sí aplica la promo global.
	dpGlobal, tpGlobal := pricing.ResolveProductPrice(p, "OUT-OTRO", asOf)
	assert.True(t, decimal.NewFromInt(80).Equal(dpGlobal), "DP global promocionado, got %s", dpGlobal)
	assert.True(t, decimal.NewFromInt(88).Equal(tpGlobal), "TP global promocionado, got %s", tpGlobal)
}

func TestResolveProductPrice_OutletConPromoActiva(t *testing.T) {
	start, end, asOf := activeWindow()
	p := &entity.Product{
		Barcode: "800124",
		DP:      decimal.NewFromInt(100), TP: decimal.NewFromInt(110),
		PriceList: map[string]entity.OutletPrice{
			"OUT-7": {DP: decimal.NewFromInt(90), TP: decimal.NewFromInt(99)},
		},
		PromoPriceList: map[string]entity.OutletPromo{
			"OUT-7": {
				PromoType: entity.PromoTypeQuantity, PromoPlan: "9+1",
				PromoStartDate: start, PromoEndDate: end,
			},
		},
	}
	dp, tp := pricing.ResolveProductPrice(p, "OUT-7", asOf)
	assert.True(t, decimal.NewFromInt(81).Equal(dp), "90 × 9/10 = 81, got %s", dp)
	assert.Equal(t, "89.10", pricing.Display(tp).StringFixed(2), "99 × 9/10 = 89.1")
}

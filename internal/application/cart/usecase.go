// Package cart carrito efímero con scope de sesión de operador. Las líneas viven
// solo en memoria: se crean al añadir un producto, se destruyen al enviar o quitar,
// y nunca se persisten por fuera de la transacción que generan al enviar.
package cart

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
	"github.com/tu-usuario/distribution-pos/internal/domain/pricing"
	"github.com/tu-usuario/distribution-pos/internal/domain/repository"
)

// CartUseCase gestiona el carrito por sesión y lo convierte en movimientos
// SECONDARY al enviar.
type CartUseCase struct {
	store       *sessionStore
	productRepo repository.ProductRepository
	movements   *movements.RegisterMovementUseCase
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(productRepo repository.ProductRepository, mov *movements.RegisterMovementUseCase) *CartUseCase {
	return &CartUseCase{
		store:       newSessionStore(),
		productRepo: productRepo,
		movements:   mov,
	}
}

// AddLine añade (o acumula) una línea: el par (EditableDP, EditableTP) arranca como
// salida del motor de promociones con la precedencia por outlet, a precisión
// completa. El operador puede pisarlo después con OverridePrice.
func (uc *CartUseCase) AddLine(ctx context.Context, sessionID, outletCode, barcode string, qty int64, asOf time.Time) error {
	if sessionID == "" || outletCode == "" || barcode == "" || qty <= 0 {
		return domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByBarcode(barcode)
	if err != nil || product == nil {
		return domain.ErrNotFound
	}
	if asOf.IsZero() {
		asOf = time.Now()
	}
	dp, tp := pricing.ResolveProductPrice(product, outletCode, asOf)
	uc.store.addLine(sessionID, outletCode, entity.CartLine{
		Barcode:     barcode,
		ProductName: product.Name,
		Quantity:    qty,
		EditableDP:  dp,
		EditableTP:  tp,
	})
	return nil
}

// OverridePrice pisa el precio resuelto de una línea (dp y/o tp).
func (uc *CartUseCase) OverridePrice(sessionID, barcode string, dp, tp *decimal.Decimal) error {
	if dp != nil && dp.IsNegative() || tp != nil && tp.IsNegative() {
		return domain.ErrInvalidInput
	}
	if !uc.store.overridePrice(sessionID, barcode, dp, tp) {
		return domain.ErrNotFound
	}
	return nil
}

// RemoveLine elimina una línea del carrito.
func (uc *CartUseCase) RemoveLine(sessionID, barcode string) error {
	if !uc.store.removeLine(sessionID, barcode) {
		return domain.ErrNotFound
	}
	return nil
}

// Clear vacía el carrito de la sesión.
func (uc *CartUseCase) Clear(sessionID string) {
	uc.store.clear(sessionID)
}

// Get devuelve el carrito con precios de display (redondeo solo aquí, en la
// presentación; internamente las líneas guardan precisión completa).
func (uc *CartUseCase) Get(sessionID string) *dto.CartResponse {
	outletCode, lines := uc.store.snapshot(sessionID)
	resp := &dto.CartResponse{OutletCode: outletCode, Lines: make([]dto.CartLineDTO, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, dto.CartLineDTO{
			Barcode:     l.Barcode,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			EditableDP:  pricing.Display(l.EditableDP),
			EditableTP:  pricing.Display(l.EditableTP),
		})
		resp.TotalTP = resp.TotalTP.Add(decimal.NewFromInt(l.Quantity).Mul(l.EditableTP))
	}
	resp.TotalTP = pricing.Display(resp.TotalTP)
	return resp
}

// Submit convierte cada línea en un movimiento SECONDARY (precio = el editable de
// la línea, a precisión completa) y destruye el carrito. Si un movimiento falla
// (ej. stock insuficiente) se corta ahí: las líneas ya registradas quedan
// aplicadas y las restantes siguen en el carrito para corrección.
func (uc *CartUseCase) Submit(ctx context.Context, sessionID, userID string, date time.Time) error {
	outletCode, lines := uc.store.snapshot(sessionID)
	if len(lines) == 0 {
		return domain.ErrEmptyCart
	}
	if date.IsZero() {
		date = time.Now()
	}
	for _, l := range lines {
		dp, tp := l.EditableDP, l.EditableTP
		err := uc.movements.RegisterMovement(ctx, movements.MovementInput{
			OutletCode: outletCode,
			Barcode:    l.Barcode,
			Type:       entity.MovementTypeSecondary,
			Quantity:   l.Quantity,
			Date:       date,
			UnitDP:     &dp,
			UnitTP:     &tp,
			UserID:     userID,
		})
		if err != nil {
			return err
		}
		uc.store.removeLine(sessionID, l.Barcode)
	}
	uc.store.clear(sessionID)
	return nil
}

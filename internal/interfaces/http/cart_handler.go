package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/cart"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/domain"
)

// CartHandler carrito de captura de ventas por sesión de operador (protegido).
// La sesión es el UserID del token: un carrito vivo por operador.
type CartHandler struct {
	uc *cart.CartUseCase
}

// NewCartHandler construye el handler.
func NewCartHandler(uc *cart.CartUseCase) *CartHandler {
	return &CartHandler{uc: uc}
}

// AddLine godoc
// @Summary      Añadir línea al carrito
// @Description  El precio de la línea arranca como la salida del motor de
//               promociones para (producto, outlet, fecha) y queda editable.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddCartLineRequest  true  "outlet_code, barcode, quantity"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines [post]
func (h *CartHandler) AddLine(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.AddCartLineRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	asOf := time.Now()
	if in.Date != "" {
		t, err := dto.ParseDate(in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido, formato YYYY-MM-DD"})
		}
		asOf = t
	}
	err := h.uc.AddLine(c.Context(), userID, in.OutletCode, in.Barcode, in.Quantity, asOf)
	if err != nil {
		return cartError(c, err)
	}
	return c.JSON(h.uc.Get(userID))
}

// OverridePrice godoc
// @Summary      Pisar el precio de una línea
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        barcode  path  string  true  "Barcode de la línea"
// @Param        body     body  dto.OverridePriceRequest  true  "dp y/o tp"
// @Success      200   {object}  dto.CartResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cart/lines/{barcode} [put]
func (h *CartHandler) OverridePrice(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.OverridePriceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.OverridePrice(userID, c.Params("barcode"), in.DP, in.TP); err != nil {
		return cartError(c, err)
	}
	return c.JSON(h.uc.Get(userID))
}

// RemoveLine godoc
// @Summary      Quitar línea del carrito
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Param        barcode  path  string  true  "Barcode de la línea"
// @Success      200  {object}  dto.CartResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cart/lines/{barcode} [delete]
func (h *CartHandler) RemoveLine(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if err := h.uc.RemoveLine(userID, c.Params("barcode")); err != nil {
		return cartError(c, err)
	}
	return c.JSON(h.uc.Get(userID))
}

// Get godoc
// @Summary      Ver el carrito de la sesión
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CartResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get(GetUserID(c)))
}

// Clear godoc
// @Summary      Vaciar el carrito de la sesión
// @Tags         cart
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.uc.Clear(GetUserID(c))
	return c.JSON(fiber.Map{"message": "carrito vacío"})
}

// Submit godoc
// @Summary      Enviar el carrito
// @Description  Convierte cada línea en un movimiento SECONDARY con el precio
//               editable de la línea y destruye el carrito. Si una línea falla
//               (ej. 409 stock), las anteriores quedan aplicadas y las restantes
//               siguen en el carrito para corrección.
// @Tags         cart
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitCartRequest  false  "date opcional"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cart/submit [post]
func (h *CartHandler) Submit(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.SubmitCartRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
	}
	date := time.Time{}
	if in.Date != "" {
		t, err := dto.ParseDate(in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido, formato YYYY-MM-DD"})
		}
		date = t
	}
	if err := h.uc.Submit(c.Context(), userID, userID, date); err != nil {
		return cartError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "venta registrada"})
}

func cartError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o línea no encontrada"})
	case domain.ErrEmptyCart:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "el carrito está vacío"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/domain"
)

// MovementHandler maneja el registro de movimientos de stock (protegido).
type MovementHandler struct {
	uc *movements.RegisterMovementUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(uc *movements.RegisterMovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

// Register godoc
// @Summary      Registrar movimiento de stock
// @Description  PRIMARY y MARKET_RETURN acreditan stock; SECONDARY y OFFICE_RETURN
//               lo debitan con verificación de disponible (409 si no alcanza, salvo
//               allow_negative). PRIMARY con credit=true sube la deuda del outlet
//               y deja su MoneyTransfer emparejado en la misma transacción.
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "outlet_code, barcode, type, quantity, date"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Register(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date := time.Now()
	if in.Date != "" {
		t, err := dto.ParseDate(in.Date)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido, formato YYYY-MM-DD"})
		}
		date = t
	}
	err := h.uc.RegisterMovement(c.Context(), movements.MovementInput{
		OutletCode:    in.OutletCode,
		Barcode:       in.Barcode,
		Type:          in.Type,
		Quantity:      in.Quantity,
		Date:          date,
		UnitDP:        in.UnitDP,
		UnitTP:        in.UnitTP,
		Credit:        in.Credit,
		AllowNegative: in.AllowNegative,
		UserID:        userID,
	})
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto u outlet no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

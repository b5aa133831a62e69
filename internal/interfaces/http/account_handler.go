package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/accounts"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/domain"
	"github.com/tu-usuario/distribution-pos/internal/domain/pricing"
)

// AccountHandler maneja el libro de deuda por outlet (protegido).
type AccountHandler struct {
	uc *accounts.AccountsUseCase
}

// NewAccountHandler construye el handler.
func NewAccountHandler(uc *accounts.AccountsUseCase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// GetDue godoc
// @Summary      Deuda actual de un outlet
// @Tags         accounts
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del outlet"
// @Success      200  {object}  dto.DueResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/accounts/{code}/due [get]
func (h *AccountHandler) GetDue(c *fiber.Ctx) error {
	acc, err := h.uc.GetDue(c.Params("code"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet no encontrado"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.DueResponse{
		OutletCode: acc.OutletCode,
		CurrentDue: pricing.Display(acc.CurrentDue),
	})
}

// RecordPayment godoc
// @Summary      Registrar pago de un outlet
// @Description  Reduce la deuda por amount y deja el MoneyTransfer PAYMENT
//               emparejado en la misma transacción.
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del outlet"
// @Param        body  body  dto.PaymentRequest  true  "amount positivo, date y remarks opcionales"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{code}/payments [post]
func (h *AccountHandler) RecordPayment(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.PaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	at, badDate := paymentDate(in.Date)
	if badDate {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido, formato YYYY-MM-DD"})
	}
	err := h.uc.RecordPayment(c.Context(), c.Params("code"), in.Amount, at, userID, in.Remarks)
	if err != nil {
		return accountError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "pago registrado"})
}

// AdjustDue godoc
// @Summary      Ajustar deuda de un outlet
// @Description  Aplica un delta con signo a la deuda. Remarks obligatorios: todo
//               ajuste queda explicado en su MoneyTransfer ADJUSTMENT.
// @Tags         accounts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Código del outlet"
// @Param        body  body  dto.AdjustDueRequest  true  "delta con signo, remarks obligatorios"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/accounts/{code}/adjustments [post]
func (h *AccountHandler) AdjustDue(c *fiber.Ctx) error {
	userID := GetUserID(c)
	var in dto.AdjustDueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	at, badDate := paymentDate(in.Date)
	if badDate {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date inválido, formato YYYY-MM-DD"})
	}
	err := h.uc.AdjustDue(c.Context(), c.Params("code"), in.Delta, at, userID, in.Remarks)
	if err != nil {
		return accountError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "ajuste aplicado"})
}

func paymentDate(s string) (at time.Time, bad bool) {
	if s == "" {
		return time.Time{}, false // el use case usa time.Now()
	}
	t, err := dto.ParseDate(s)
	if err != nil {
		return time.Time{}, true
	}
	return t, false
}

func accountError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrRemarksRequired:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "REMARKS_REQUIRED", Message: "remarks son obligatorios para ajustes"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/dto"
	"github.com/tu-usuario/distribution-pos/internal/application/usecase"
	"github.com/tu-usuario/distribution-pos/internal/domain"
)

// OutletHandler maneja las peticiones HTTP de outlets (protegido).
type OutletHandler struct {
	uc *usecase.OutletUseCase
}

// NewOutletHandler construye el handler.
func NewOutletHandler(uc *usecase.OutletUseCase) *OutletHandler {
	return &OutletHandler{uc: uc}
}

// Create godoc
// @Summary      Crear outlet
// @Tags         outlets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOutletRequest  true  "code, name, area, proprietor, phone"
// @Success      201   {object}  dto.OutletResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/outlets [post]
func (h *OutletHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOutletRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código de outlet ya existe"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "code y name son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener outlet por código
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Código del outlet"
// @Success      200  {object}  dto.OutletResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/outlets/{code} [get]
func (h *OutletHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_CODE", Message: "code es requerido"})
	}
	out, err := h.uc.GetByCode(code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "outlet no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar outlets
// @Tags         outlets
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.OutletListResponse
// @Router       /api/outlets [get]
func (h *OutletHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

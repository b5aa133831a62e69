package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/distribution-pos/internal/application/accounts"
	"github.com/tu-usuario/distribution-pos/internal/application/auth"
	"github.com/tu-usuario/distribution-pos/internal/application/cart"
	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/application/reporting"
	"github.com/tu-usuario/distribution-pos/internal/application/usecase"
	"github.com/tu-usuario/distribution-pos/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	OutletUC         *usecase.OutletUseCase
	RegisterMovement *movements.RegisterMovementUseCase
	AccountsUC       *accounts.AccountsUseCase
	ReportingUC      *reporting.ReportingUseCase
	CartUC           *cart.CartUseCase
	AuthUC           *auth.AuthUseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RoleOperator)

	// Catálogo: lectura para todos, escritura solo admin
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", anyRole, productHandler.List)
	products.Get("/:barcode", anyRole, productHandler.GetByBarcode)
	products.Put("/:barcode", adminOnly, productHandler.Update)
	products.Get("/:barcode/effective-price", anyRole, productHandler.EffectivePrice)

	// Outlets: alta solo admin
	outlets := protected.Group("/outlets")
	outletHandler := NewOutletHandler(deps.OutletUC)
	outlets.Post("/", adminOnly, outletHandler.Create)
	outlets.Get("/", anyRole, outletHandler.List)
	outlets.Get("/:code", anyRole, outletHandler.GetByCode)

	// Movimientos de stock
	movementHandler := NewMovementHandler(deps.RegisterMovement)
	protected.Post("/movements", anyRole, movementHandler.Register)

	// Libro de deuda: ajustes manuales solo admin
	accountsGroup := protected.Group("/accounts")
	accountHandler := NewAccountHandler(deps.AccountsUC)
	accountsGroup.Get("/:code/due", anyRole, accountHandler.GetDue)
	accountsGroup.Post("/:code/payments", anyRole, accountHandler.RecordPayment)
	accountsGroup.Post("/:code/adjustments", adminOnly, accountHandler.AdjustDue)

	// Reportes
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportingUC)
	reports.Get("/stock", anyRole, reportHandler.StockReport)
	reports.Get("/sales", anyRole, reportHandler.SalesSummary)

	// Posición de stock por outlet (período actual por defecto)
	protected.Get("/stock/:outlet", anyRole, reportHandler.OutletStock)

	// Carrito de captura de ventas (una sesión por operador)
	cartGroup := protected.Group("/cart", anyRole)
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/lines", cartHandler.AddLine)
	cartGroup.Put("/lines/:barcode", cartHandler.OverridePrice)
	cartGroup.Delete("/lines/:barcode", cartHandler.RemoveLine)
	cartGroup.Post("/submit", cartHandler.Submit)
}

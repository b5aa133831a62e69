package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/distribution-pos/internal/application/accounts"
	"github.com/tu-usuario/distribution-pos/internal/application/auth"
	"github.com/tu-usuario/distribution-pos/internal/application/cart"
	"github.com/tu-usuario/distribution-pos/internal/application/movements"
	"github.com/tu-usuario/distribution-pos/internal/application/reporting"
	"github.com/tu-usuario/distribution-pos/internal/application/usecase"
	"github.com/tu-usuario/distribution-pos/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/distribution-pos/internal/interfaces/http"
	"github.com/tu-usuario/distribution-pos/pkg/config"
	"github.com/tu-usuario/distribution-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	outletRepo := postgres.NewOutletRepository(pool)
	recordRepo := postgres.NewStockRecordRepository(pool)
	accountRepo := postgres.NewOutletAccountRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := movements.NewRegisterMovementUseCase(txRunner, productRepo, outletRepo)
	accountsUC := accounts.NewAccountsUseCase(txRunner, accountRepo, outletRepo)
	reportingUC := reporting.NewReportingUseCase(recordRepo, txRepo, productRepo)
	cartUC := cart.NewCartUseCase(productRepo, registerMovementUC)
	productUC := usecase.NewProductUseCase(productRepo)
	outletUC := usecase.NewOutletUseCase(outletRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		OutletUC:         outletUC,
		RegisterMovement: registerMovementUC,
		AccountsUC:       accountsUC,
		ReportingUC:      reportingUC,
		CartUC:           cartUC,
		AuthUC:           authUC,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

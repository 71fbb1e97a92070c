package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/jcastro/pedidos-api/internal/application/analytics"
	"github.com/jcastro/pedidos-api/internal/application/auth"
	appledger "github.com/jcastro/pedidos-api/internal/application/ledger"
	"github.com/jcastro/pedidos-api/internal/application/orders"
	"github.com/jcastro/pedidos-api/internal/application/usecase"
	"github.com/jcastro/pedidos-api/internal/infrastructure/excel"
	infrapdf "github.com/jcastro/pedidos-api/internal/infrastructure/pdf"
	"github.com/jcastro/pedidos-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/pedidos-api/internal/interfaces/http"
	"github.com/jcastro/pedidos-api/pkg/config"
	"github.com/jcastro/pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
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
	itemRepo := postgres.NewItemRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	purchaseRepo := postgres.NewPurchaseOrderRepository(pool)
	salesRepo := postgres.NewSalesOrderRepository(pool)
	returnRepo := postgres.NewReturnRepository(pool)
	snapshotRepo := postgres.NewSnapshotRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recordMovementUC := appledger.NewRecordMovementUseCase(txRunner, txnRepo, itemRepo, locationRepo)
	ledgerAuditUC := appledger.NewAuditUseCase(snapshotRepo)
	orderCreateUC := orders.NewCreateUseCase(purchaseRepo, salesRepo, returnRepo, supplierRepo, customerRepo, itemRepo, userRepo)
	orderLifecycleUC := orders.NewLifecycleUseCase(txRunner, purchaseRepo, salesRepo, returnRepo, locationRepo)
	orderQueryUC := orders.NewQueryUseCase(purchaseRepo, salesRepo, returnRepo, userRepo)

	pdfGenerator := infrapdf.NewMarotoOrderPDFGenerator()
	orderDocumentsUC := orders.NewDocumentUseCase(purchaseRepo, salesRepo, supplierRepo, customerRepo, itemRepo, pdfGenerator)

	itemUC := usecase.NewItemUseCase(itemRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	locationUC := usecase.NewLocationUseCase(locationRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(snapshotRepo)
	authUC := auth.NewAuthUseCase(userRepo, supplierRepo, customerRepo, auth.JWTConfig{
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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pedidos Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ItemUC:         itemUC,
		SupplierUC:     supplierUC,
		CustomerUC:     customerUC,
		LocationUC:     locationUC,
		RecordMovement: recordMovementUC,
		LedgerAudit:    ledgerAuditUC,
		OrderCreate:    orderCreateUC,
		OrderLifecycle: orderLifecycleUC,
		OrderQueries:   orderQueryUC,
		OrderDocuments: orderDocumentsUC,
		DashboardUC:    dashboardUC,
		ItemExporter:   excel.NewItemExporter(),
		JWTSecret:      cfg.JWT.Secret,
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

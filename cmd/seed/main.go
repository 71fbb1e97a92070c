// seed puebla una base de datos vacía con datos de demostración: un admin,
// un proveedor con su seller, un cliente con su buyer, la bodega por defecto
// y un catálogo corto con stock inicial vía ledger.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/application/auth"
	"github.com/jcastro/pedidos-api/internal/application/dto"
	appledger "github.com/jcastro/pedidos-api/internal/application/ledger"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/infrastructure/postgres"
	"github.com/jcastro/pedidos-api/pkg/config"
	"github.com/jcastro/pedidos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	itemRepo := postgres.NewItemRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	now := time.Now()

	supplier := &entity.Supplier{
		ID: uuid.New().String(), Name: "Distribuciones El Tornillo",
		TaxID: "900123456-7", Email: "ventas@eltornillo.example",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := supplierRepo.Create(supplier); err != nil {
		log.Fatal().Err(err).Msg("seed proveedor")
	}

	customer := &entity.Customer{
		ID: uuid.New().String(), Name: "Ferretería La Esquina",
		TaxID: "901987654-3", Email: "compras@laesquina.example",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := customerRepo.Create(customer); err != nil {
		log.Fatal().Err(err).Msg("seed cliente")
	}

	if err := locationRepo.Create(&entity.Location{
		ID: uuid.New().String(), Name: "Bodega principal",
		IsDefault: true, CreatedAt: now, UpdatedAt: now,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed bodega")
	}

	authUC := auth.NewAuthUseCase(userRepo, supplierRepo, customerRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	admin, err := authUC.Register(dto.RegisterRequest{
		Email: "admin@pedidos.example", Password: "admin1234",
		Name: "Administrador", Role: entity.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	if _, err := authUC.Register(dto.RegisterRequest{
		Email: "seller@eltornillo.example", Password: "seller1234",
		Name: "Vendedor El Tornillo", Role: entity.RoleSeller, PartnerID: supplier.ID,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed seller")
	}
	if _, err := authUC.Register(dto.RegisterRequest{
		Email: "buyer@laesquina.example", Password: "buyer1234",
		Name: "Comprador La Esquina", Role: entity.RoleBuyer, PartnerID: customer.ID,
	}); err != nil {
		log.Fatal().Err(err).Msg("seed buyer")
	}

	items := []*entity.Item{
		{ID: uuid.New().String(), SKU: "TOR-01", Name: "Tornillo autoperforante 1\"",
			Cost: decimal.NewFromInt(50), Price: decimal.NewFromInt(120),
			MinStock: 100, Category: "fijación", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), SKU: "MAR-01", Name: "Martillo de uña 16oz",
			Cost: decimal.NewFromInt(18000), Price: decimal.NewFromInt(32000),
			MinStock: 5, Category: "herramientas", CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), SKU: "PIN-01", Name: "Pintura látex blanca 1gal",
			Cost: decimal.NewFromInt(45000), Price: decimal.NewFromInt(78000),
			MinStock: 10, Category: "pinturas", CreatedAt: now, UpdatedAt: now},
	}
	for _, it := range items {
		if err := itemRepo.Create(it); err != nil {
			log.Fatal().Err(err).Str("sku", it.SKU).Msg("seed artículo")
		}
	}

	// Stock inicial: entra por el ledger, nunca por la caché.
	recordUC := appledger.NewRecordMovementUseCase(txRunner, txnRepo, itemRepo, locationRepo)
	initial := []int64{500, 20, 35}
	for i, it := range items {
		if _, err := recordUC.RecordMovement(ctx, admin.ID, dto.RegisterMovementRequest{
			ItemID:   it.ID,
			Kind:     "receive",
			Quantity: initial[i],
			Reason:   "inventario inicial",
		}); err != nil {
			log.Fatal().Err(err).Str("sku", it.SKU).Msg("seed stock inicial")
		}
	}

	log.Info().
		Int("items", len(items)).
		Str("admin", "admin@pedidos.example").
		Msg("datos de demostración cargados")
}

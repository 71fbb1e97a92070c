package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jcastro/pedidos-api/internal/application/analytics"
	"github.com/jcastro/pedidos-api/internal/application/auth"
	appledger "github.com/jcastro/pedidos-api/internal/application/ledger"
	"github.com/jcastro/pedidos-api/internal/application/orders"
	"github.com/jcastro/pedidos-api/internal/application/usecase"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/infrastructure/excel"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ItemUC         *usecase.ItemUseCase
	SupplierUC     *usecase.SupplierUseCase
	CustomerUC     *usecase.CustomerUseCase
	LocationUC     *usecase.LocationUseCase
	RecordMovement *appledger.RecordMovementUseCase
	LedgerAudit    *appledger.AuditUseCase
	OrderCreate    *orders.CreateUseCase
	OrderLifecycle *orders.LifecycleUseCase
	OrderQueries   *orders.QueryUseCase
	OrderDocuments *orders.DocumentUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	ItemExporter   *excel.ItemExporter
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (lectura para todos los roles, mutación solo admin)
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.ItemExporter)
	items.Get("/", itemHandler.List)
	items.Get("/export", itemHandler.Export)
	items.Get("/:id", itemHandler.GetByID)
	items.Post("/", adminOnly, itemHandler.Create)
	items.Put("/:id", adminOnly, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Suppliers (solo admin)
	suppliers := protected.Group("/suppliers", adminOnly)
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Customers (solo admin)
	customers := protected.Group("/customers", adminOnly)
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Locations (solo admin)
	locations := protected.Group("/locations", adminOnly)
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)
	locations.Delete("/:id", locationHandler.Delete)

	// Ledger: movimiento manual y verificación solo admin; consultas para todos
	ledgerGroup := protected.Group("/ledger")
	ledgerHandler := NewLedgerHandler(deps.RecordMovement, deps.LedgerAudit)
	ledgerGroup.Post("/movements", adminOnly, ledgerHandler.RegisterMovement)
	ledgerGroup.Get("/verify", adminOnly, ledgerHandler.Verify)
	ledgerGroup.Get("/items/:item_id/movements", ledgerHandler.ListMovements)
	ledgerGroup.Get("/items/:item_id/quantity", ledgerHandler.CurrentQuantity)

	// Purchase orders (permisos por transición en el dominio)
	purchases := protected.Group("/purchase-orders")
	purchaseHandler := NewPurchaseOrderHandler(deps.OrderCreate, deps.OrderLifecycle, deps.OrderQueries, deps.OrderDocuments)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Get("/:id", purchaseHandler.GetByID)
	purchases.Get("/:id/pdf", purchaseHandler.PDF)
	purchases.Patch("/:id/status", purchaseHandler.Transition)
	purchases.Delete("/:id", purchaseHandler.Delete)

	// Sales orders
	sales := protected.Group("/sales-orders")
	salesHandler := NewSalesOrderHandler(deps.OrderCreate, deps.OrderLifecycle, deps.OrderQueries, deps.OrderDocuments)
	sales.Post("/", salesHandler.Create)
	sales.Get("/", salesHandler.List)
	sales.Get("/:id", salesHandler.GetByID)
	sales.Get("/:id/pdf", salesHandler.PDF)
	sales.Patch("/:id/status", salesHandler.Transition)
	sales.Delete("/:id", salesHandler.Delete)

	// Returns
	returns := protected.Group("/returns")
	returnHandler := NewReturnHandler(deps.OrderCreate, deps.OrderLifecycle, deps.OrderQueries)
	returns.Post("/", returnHandler.Create)
	returns.Get("/", returnHandler.List)
	returns.Get("/:id", returnHandler.GetByID)
	returns.Patch("/:id/status", returnHandler.Transition)
	returns.Delete("/:id", returnHandler.Delete)

	// Dashboard (todos los roles autenticados)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)
}

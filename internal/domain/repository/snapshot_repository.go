package repository

import (
	"context"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// SnapshotRepository es el proveedor de fotos para el agregador del
// dashboard: lecturas puntuales y consistentes, sin bloqueos. No requiere
// ver la última escritura (consistencia eventual aceptable para dashboard).
type SnapshotRepository interface {
	LoadItems(ctx context.Context, limit, offset int) ([]entity.Item, error)
	LoadPurchaseOrders(ctx context.Context, limit, offset int) ([]entity.PurchaseOrder, error)
	LoadSalesOrders(ctx context.Context, limit, offset int) ([]entity.SalesOrder, error)
	LoadReturns(ctx context.Context, limit, offset int) ([]entity.ReturnEntry, error)
	LoadTransactions(ctx context.Context, limit, offset int) ([]entity.StockTransaction, error)
}

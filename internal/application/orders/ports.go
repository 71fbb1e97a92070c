package orders

import (
	"context"

	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Una transición que emite efectos de stock
// escribe pedido, ledger y caché de cantidad en la misma transacción:
// todo o nada.
type TxRunner interface {
	RunOrders(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseOrderRepository,
		salesRepo repository.SalesOrderRepository,
		returnRepo repository.ReturnRepository,
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

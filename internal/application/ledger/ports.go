package ledger

import (
	"context"

	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la entrada del ledger y la
// caché de cantidad se escriban juntas o no se escriban.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error) error
}

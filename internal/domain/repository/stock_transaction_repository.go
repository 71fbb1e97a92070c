package repository

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// StockTransactionRepository define el puerto del ledger. Las transacciones
// son inmutables: solo se insertan y se leen, nunca se actualizan ni borran.
type StockTransactionRepository interface {
	Create(txn *entity.StockTransaction) error
	ListByItem(itemID string, limit, offset int) ([]*entity.StockTransaction, error)
	List(limit, offset int) ([]*entity.StockTransaction, error)
	// SumDeltas devuelve la cantidad autoritativa: suma de todos los deltas
	// del artículo. locationID vacío suma todas las ubicaciones.
	SumDeltas(itemID, locationID string) (int64, error)
}

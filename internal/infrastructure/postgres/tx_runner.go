package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	appledger "github.com/jcastro/pedidos-api/internal/application/ledger"
	"github.com/jcastro/pedidos-api/internal/application/orders"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// Ensure TxRunner implements ledger.TxRunner y orders.TxRunner.
var _ appledger.TxRunner = (*TxRunner)(nil)
var _ orders.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción con repos de ledger y catálogo, ejecuta fn y
// hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewStockTransactionRepository(tx), NewItemRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrders inicia una transacción con los repos que necesita una transición
// de pedido (pedido + ledger + catálogo).
func (r *TxRunner) RunOrders(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	returnRepo repository.ReturnRepository,
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewPurchaseOrderRepository(tx),
		NewSalesOrderRepository(tx),
		NewReturnRepository(tx),
		NewStockTransactionRepository(tx),
		NewItemRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

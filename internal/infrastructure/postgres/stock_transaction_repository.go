package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

var _ repository.StockTransactionRepository = (*StockTransactionRepo)(nil)

// StockTransactionRepo implementación del ledger sobre PostgreSQL. La tabla
// es append-only: no hay UPDATE ni DELETE aquí y la BD tampoco los permite
// (trigger de inmutabilidad en el esquema).
type StockTransactionRepo struct {
	q Querier
}

// NewStockTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockTransactionRepository(q Querier) *StockTransactionRepo {
	return &StockTransactionRepo{q: q}
}

const txnColumns = `id, item_id, location_id, kind, delta, reason, created_at, created_by`

// Create inserta una entrada del ledger.
func (r *StockTransactionRepo) Create(txn *entity.StockTransaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_transactions (id, item_id, location_id, kind, delta, reason, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.ItemID, nullIfEmpty(txn.LocationID), txn.Kind, txn.Delta,
		txn.Reason, txn.CreatedAt, txn.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// ListByItem lista las entradas de un artículo, más recientes primero.
func (r *StockTransactionRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions
		WHERE item_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	return r.queryList(query, itemID, limit, offset)
}

// List lista todas las entradas, más recientes primero.
func (r *StockTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := `SELECT ` + txnColumns + ` FROM stock_transactions
		ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// SumDeltas devuelve la cantidad autoritativa: suma de todos los deltas del
// artículo. locationID vacío suma todas las ubicaciones.
func (r *StockTransactionRepo) SumDeltas(itemID, locationID string) (int64, error) {
	var sum int64
	var err error
	if locationID == "" {
		err = r.q.QueryRow(context.Background(),
			`SELECT COALESCE(SUM(delta), 0) FROM stock_transactions WHERE item_id = $1`,
			itemID,
		).Scan(&sum)
	} else {
		err = r.q.QueryRow(context.Background(),
			`SELECT COALESCE(SUM(delta), 0) FROM stock_transactions WHERE item_id = $1 AND location_id = $2`,
			itemID, locationID,
		).Scan(&sum)
	}
	if err != nil {
		return 0, fmt.Errorf("sum deltas: %w", err)
	}
	return sum, nil
}

func (r *StockTransactionRepo) queryList(sql string, args ...any) ([]*entity.StockTransaction, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var locationID *string
		if err := rows.Scan(&t.ID, &t.ItemID, &locationID, &t.Kind, &t.Delta,
			&t.Reason, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		if locationID != nil {
			t.LocationID = *locationID
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

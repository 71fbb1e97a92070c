package postgres

import (
	"context"
	"fmt"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo provee las lecturas masivas del dashboard y de la auditoría
// del ledger. Lecturas simples sobre el pool, sin bloqueos: el dashboard
// tolera consistencia eventual.
type SnapshotRepo struct {
	q Querier
}

// NewSnapshotRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSnapshotRepository(q Querier) *SnapshotRepo {
	return &SnapshotRepo{q: q}
}

// LoadItems carga una página de artículos por valor.
func (r *SnapshotRepo) LoadItems(ctx context.Context, limit, offset int) ([]entity.Item, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("snapshot items: %w", err)
	}
	defer rows.Close()
	var list []entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.Description, &it.Quantity,
			&it.Cost, &it.Price, &it.MinStock, &it.Category, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// LoadPurchaseOrders carga una página de pedidos de compra con líneas.
func (r *SnapshotRepo) LoadPurchaseOrders(ctx context.Context, limit, offset int) ([]entity.PurchaseOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+purchaseColumns+` FROM purchase_orders ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("snapshot purchase orders: %w", err)
	}
	defer rows.Close()
	var list []entity.PurchaseOrder
	var ids []string
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.Status, &o.ExpectedDate, &o.DeliveryDate,
			&o.ReceivedDate, &o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes,
			&o.Version, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan purchase order: %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	byOrder, err := loadLinesFor(r.q, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Lines = byOrder[list[i].ID]
	}
	return list, nil
}

// LoadSalesOrders carga una página de pedidos de venta con líneas.
func (r *SnapshotRepo) LoadSalesOrders(ctx context.Context, limit, offset int) ([]entity.SalesOrder, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+salesColumns+` FROM sales_orders ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("snapshot sales orders: %w", err)
	}
	defer rows.Close()
	var list []entity.SalesOrder
	var ids []string
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.DeliveryDate, &o.ApprovedDate,
			&o.ReceivedDate, &o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes,
			&o.Version, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan sales order: %w", err)
		}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	byOrder, err := loadLinesFor(r.q, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Lines = byOrder[list[i].ID]
	}
	return list, nil
}

// LoadReturns carga una página de devoluciones con líneas.
func (r *SnapshotRepo) LoadReturns(ctx context.Context, limit, offset int) ([]entity.ReturnEntry, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+returnColumns+` FROM returns ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("snapshot returns: %w", err)
	}
	defer rows.Close()
	var list []entity.ReturnEntry
	var ids []string
	for rows.Next() {
		var ret entity.ReturnEntry
		if err := rows.Scan(&ret.ID, &ret.Type, &ret.PartnerID, &ret.Status, &ret.Notes,
			&ret.Version, &ret.CreatedBy, &ret.CreatedAt, &ret.UpdatedAt); err != nil {
			return nil, fmt.Errorf("snapshot scan return: %w", err)
		}
		list = append(list, ret)
		ids = append(ids, ret.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	byOrder, err := loadLinesFor(r.q, ids)
	if err != nil {
		return nil, err
	}
	for i := range list {
		list[i].Lines = byOrder[list[i].ID]
	}
	return list, nil
}

// LoadTransactions carga una página del ledger por valor, en orden estable.
func (r *SnapshotRepo) LoadTransactions(ctx context.Context, limit, offset int) ([]entity.StockTransaction, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+txnColumns+` FROM stock_transactions ORDER BY created_at, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("snapshot transactions: %w", err)
	}
	defer rows.Close()
	var list []entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		var locationID *string
		if err := rows.Scan(&t.ID, &t.ItemID, &locationID, &t.Kind, &t.Delta,
			&t.Reason, &t.CreatedAt, &t.CreatedBy); err != nil {
			return nil, fmt.Errorf("snapshot scan transaction: %w", err)
		}
		if locationID != nil {
			t.LocationID = *locationID
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

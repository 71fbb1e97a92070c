package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

var _ repository.SalesOrderRepository = (*SalesOrderRepo)(nil)

// SalesOrderRepo implementación del puerto SalesOrderRepository sobre
// PostgreSQL. Misma disciplina de versión optimista que los pedidos de compra.
type SalesOrderRepo struct {
	q Querier
}

// NewSalesOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesOrderRepository(q Querier) *SalesOrderRepo {
	return &SalesOrderRepo{q: q}
}

const salesColumns = `id, customer_id, status, delivery_date, approved_date, received_date,
	payment_terms, tax_rate, shipping_address, notes, version, created_by, created_at, updated_at`

// Create persiste un pedido de venta con sus líneas.
func (r *SalesOrderRepo) Create(order *entity.SalesOrder) error {
	query := `
		INSERT INTO sales_orders (` + salesColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.CustomerID, order.Status, order.DeliveryDate, order.ApprovedDate,
		order.ReceivedDate, order.PaymentTerms, order.TaxRate, order.ShippingAddress,
		order.Notes, order.Version, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sales order: %w", err)
	}
	return insertLines(r.q, order.ID, order.Lines)
}

// GetByID obtiene un pedido de venta con sus líneas.
func (r *SalesOrderRepo) GetByID(id string) (*entity.SalesOrder, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_orders WHERE id = $1`
	var o entity.SalesOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.CustomerID, &o.Status, &o.DeliveryDate, &o.ApprovedDate, &o.ReceivedDate,
		&o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes, &o.Version,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get sales order: %w", err)
	}
	if o.Lines, err = loadLines(r.q, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update persiste el pedido solo si la versión en BD sigue siendo
// expectedVersion.
func (r *SalesOrderRepo) Update(order *entity.SalesOrder, expectedVersion int64) error {
	query := `
		UPDATE sales_orders SET status = $3, delivery_date = $4, approved_date = $5,
			received_date = $6, payment_terms = $7, tax_rate = $8, shipping_address = $9,
			notes = $10, version = $11, updated_at = $12
		WHERE id = $1 AND version = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		order.ID, expectedVersion, order.Status, order.DeliveryDate, order.ApprovedDate,
		order.ReceivedDate, order.PaymentTerms, order.TaxRate, order.ShippingAddress,
		order.Notes, order.Version, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrStaleTransition
	}
	return replaceLines(r.q, order.ID, order.Lines)
}

// List lista pedidos de venta, opcionalmente filtrados por estado.
func (r *SalesOrderRepo) List(status string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	return r.queryList(query, args...)
}

// ListByCustomer lista los pedidos de un cliente (vista del buyer).
func (r *SalesOrderRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.SalesOrder, error) {
	query := `SELECT ` + salesColumns + ` FROM sales_orders
		WHERE customer_id = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	return r.queryList(query, customerID, limit, offset)
}

func (r *SalesOrderRepo) queryList(sql string, args ...any) ([]*entity.SalesOrder, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesOrder
	var ids []string
	for rows.Next() {
		var o entity.SalesOrder
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Status, &o.DeliveryDate, &o.ApprovedDate,
			&o.ReceivedDate, &o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes,
			&o.Version, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sales order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	byOrder, err := loadLinesFor(r.q, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Lines = byOrder[o.ID]
	}
	return list, nil
}

// Delete elimina un pedido de venta y sus líneas. No revierte el ledger.
func (r *SalesOrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete sales order lines: %w", err)
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM sales_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sales order: %w", err)
	}
	return nil
}

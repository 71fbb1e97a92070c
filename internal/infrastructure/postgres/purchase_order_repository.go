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

var _ repository.PurchaseOrderRepository = (*PurchaseOrderRepo)(nil)

// PurchaseOrderRepo implementación del puerto PurchaseOrderRepository sobre
// PostgreSQL. Las escrituras de transición usan concurrencia optimista: el
// UPDATE exige la versión leída y 0 filas afectadas significa que otro actor
// ganó la carrera (ErrStaleTransition).
type PurchaseOrderRepo struct {
	q Querier
}

// NewPurchaseOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseOrderRepository(q Querier) *PurchaseOrderRepo {
	return &PurchaseOrderRepo{q: q}
}

const purchaseColumns = `id, supplier_id, status, expected_date, delivery_date, received_date,
	payment_terms, tax_rate, shipping_address, notes, version, created_by, created_at, updated_at`

// Create persiste un pedido de compra con sus líneas.
func (r *PurchaseOrderRepo) Create(order *entity.PurchaseOrder) error {
	query := `
		INSERT INTO purchase_orders (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.SupplierID, order.Status, order.ExpectedDate, order.DeliveryDate,
		order.ReceivedDate, order.PaymentTerms, order.TaxRate, order.ShippingAddress,
		order.Notes, order.Version, order.CreatedBy, order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase order: %w", err)
	}
	return insertLines(r.q, order.ID, order.Lines)
}

// GetByID obtiene un pedido de compra con sus líneas.
func (r *PurchaseOrderRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchase_orders WHERE id = $1`
	var o entity.PurchaseOrder
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&o.ID, &o.SupplierID, &o.Status, &o.ExpectedDate, &o.DeliveryDate, &o.ReceivedDate,
		&o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes, &o.Version,
		&o.CreatedBy, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get purchase order: %w", err)
	}
	if o.Lines, err = loadLines(r.q, o.ID); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update persiste el pedido solo si la versión en BD sigue siendo
// expectedVersion. Reescribe las líneas completas.
func (r *PurchaseOrderRepo) Update(order *entity.PurchaseOrder, expectedVersion int64) error {
	query := `
		UPDATE purchase_orders SET status = $3, expected_date = $4, delivery_date = $5,
			received_date = $6, payment_terms = $7, tax_rate = $8, shipping_address = $9,
			notes = $10, version = $11, updated_at = $12
		WHERE id = $1 AND version = $2`
	cmd, err := r.q.Exec(context.Background(), query,
		order.ID, expectedVersion, order.Status, order.ExpectedDate, order.DeliveryDate,
		order.ReceivedDate, order.PaymentTerms, order.TaxRate, order.ShippingAddress,
		order.Notes, order.Version, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase order: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		// id inexistente o versión vieja; distinguirlo requiere otra
		// lectura y el caso de uso ya leyó el pedido en esta misma tx.
		return domain.ErrStaleTransition
	}
	return replaceLines(r.q, order.ID, order.Lines)
}

// List lista pedidos de compra, opcionalmente filtrados por estado.
func (r *PurchaseOrderRepo) List(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchase_orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	defer rows.Close()

	var list []*entity.PurchaseOrder
	var ids []string
	for rows.Next() {
		var o entity.PurchaseOrder
		if err := rows.Scan(&o.ID, &o.SupplierID, &o.Status, &o.ExpectedDate, &o.DeliveryDate,
			&o.ReceivedDate, &o.PaymentTerms, &o.TaxRate, &o.ShippingAddress, &o.Notes,
			&o.Version, &o.CreatedBy, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase order: %w", err)
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

// Delete elimina un pedido de compra y sus líneas. No revierte el ledger.
func (r *PurchaseOrderRepo) Delete(id string) error {
	if _, err := r.q.Exec(context.Background(),
		`DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase order lines: %w", err)
	}
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM purchase_orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase order: %w", err)
	}
	return nil
}

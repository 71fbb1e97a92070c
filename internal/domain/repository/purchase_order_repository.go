package repository

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// PurchaseOrderRepository define el puerto de persistencia para pedidos de
// compra. Las líneas se guardan y cargan junto con su pedido (composición).
type PurchaseOrderRepository interface {
	Create(order *entity.PurchaseOrder) error
	GetByID(id string) (*entity.PurchaseOrder, error)
	// Update persiste el pedido solo si la versión en BD coincide con
	// expectedVersion (concurrencia optimista); si no, ErrStaleTransition.
	Update(order *entity.PurchaseOrder, expectedVersion int64) error
	List(status string, limit, offset int) ([]*entity.PurchaseOrder, error)
	Delete(id string) error
}

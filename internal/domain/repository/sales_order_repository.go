package repository

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// SalesOrderRepository define el puerto de persistencia para pedidos de venta.
type SalesOrderRepository interface {
	Create(order *entity.SalesOrder) error
	GetByID(id string) (*entity.SalesOrder, error)
	Update(order *entity.SalesOrder, expectedVersion int64) error
	List(status string, limit, offset int) ([]*entity.SalesOrder, error)
	ListByCustomer(customerID string, limit, offset int) ([]*entity.SalesOrder, error)
	Delete(id string) error
}

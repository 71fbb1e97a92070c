package repository

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// ReturnRepository define el puerto de persistencia para devoluciones.
type ReturnRepository interface {
	Create(ret *entity.ReturnEntry) error
	GetByID(id string) (*entity.ReturnEntry, error)
	Update(ret *entity.ReturnEntry, expectedVersion int64) error
	List(returnType, status string, limit, offset int) ([]*entity.ReturnEntry, error)
	Delete(id string) error
}

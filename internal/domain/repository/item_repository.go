package repository

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetBySKU(sku string) (*entity.Item, error)
	// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) para
	// serializar los movimientos de ledger por artículo.
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	// UpdateQuantity actualiza la caché de cantidad. Solo debe llamarse en la
	// misma transacción que la escritura del ledger correspondiente.
	UpdateQuantity(itemID string, quantity int64) error
	List(limit, offset int) ([]*entity.Item, error)
	// Search filtra por SKU o nombre, insensible a mayúsculas y tildes; la
	// consulta llega ya normalizada (pkg/textutil).
	Search(query string, limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}

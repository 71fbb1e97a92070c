package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
	"github.com/jcastro/pedidos-api/pkg/textutil"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable
// con pool o tx). Mantiene la columna search_text normalizada para búsquedas
// insensibles a mayúsculas y tildes.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemColumns = `id, sku, name, description, quantity, cost, price, min_stock, category, created_at, updated_at`

// Create persiste un artículo nuevo. SKU repetido -> ErrDuplicate.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, sku, name, description, quantity, cost, price, min_stock, category, search_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.SKU, item.Name, item.Description, item.Quantity,
		item.Cost, item.Price, item.MinStock, item.Category,
		searchText(item), item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// GetByID obtiene un artículo por ID.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	return r.getBy(`WHERE id = $1`, id)
}

// GetBySKU obtiene un artículo por SKU.
func (r *ItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	return r.getBy(`WHERE sku = $1`, sku)
}

// GetForUpdate bloquea la fila del artículo (SELECT FOR UPDATE) para
// serializar los movimientos de ledger por artículo.
func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.getBy(`WHERE id = $1 FOR UPDATE`, id)
}

func (r *ItemRepo) getBy(where string, arg any) (*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ` + where
	var it entity.Item
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&it.ID, &it.SKU, &it.Name, &it.Description, &it.Quantity,
		&it.Cost, &it.Price, &it.MinStock, &it.Category, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}

// Update actualiza los datos de catálogo. La cantidad no se toca aquí: es
// caché del ledger y solo la escribe UpdateQuantity.
func (r *ItemRepo) Update(item *entity.Item) error {
	query := `
		UPDATE items SET name = $2, description = $3, cost = $4, price = $5,
			min_stock = $6, category = $7, search_text = $8, updated_at = $9
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Description, item.Cost, item.Price,
		item.MinStock, item.Category, searchText(item), item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateQuantity actualiza la caché de cantidad. Solo debe llamarse en la
// misma transacción que la escritura del ledger correspondiente.
func (r *ItemRepo) UpdateQuantity(itemID string, quantity int64) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE items SET quantity = $2, updated_at = now() WHERE id = $1`,
		itemID, quantity,
	)
	if err != nil {
		return fmt.Errorf("update item quantity: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista artículos con paginación.
func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items ORDER BY name LIMIT $1 OFFSET $2`
	return r.queryList(query, limit, offset)
}

// Search filtra por SKU o nombre; la consulta llega ya normalizada
// (pkg/textutil) y se compara contra search_text.
func (r *ItemRepo) Search(query string, limit, offset int) ([]*entity.Item, error) {
	sql := `SELECT ` + itemColumns + ` FROM items
		WHERE search_text LIKE '%' || $1 || '%'
		ORDER BY name LIMIT $2 OFFSET $3`
	return r.queryList(sql, query, limit, offset)
}

func (r *ItemRepo) queryList(sql string, args ...any) ([]*entity.Item, error) {
	rows, err := r.q.Query(context.Background(), sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()
	var list []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.SKU, &it.Name, &it.Description, &it.Quantity,
			&it.Cost, &it.Price, &it.MinStock, &it.Category, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

// Delete elimina un artículo por ID.
func (r *ItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func searchText(item *entity.Item) string {
	return textutil.Normalize(item.SKU + " " + item.Name)
}

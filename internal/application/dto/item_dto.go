package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateItemRequest entrada de POST /api/items. El stock inicial NO se fija
// aquí: todo stock entra por un movimiento de ledger.
type CreateItemRequest struct {
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int64           `json:"min_stock"`
	Category    string          `json:"category,omitempty"`
}

// UpdateItemRequest entrada de PUT /api/items/:id. La cantidad no es
// editable: es caché del ledger.
type UpdateItemRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int64           `json:"min_stock"`
	Category    string          `json:"category,omitempty"`
}

// ItemResponse artículo del catálogo.
type ItemResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    int64           `json:"quantity"`
	Cost        decimal.Decimal `json:"cost"`
	Price       decimal.Decimal `json:"price"`
	MinStock    int64           `json:"min_stock"`
	Category    string          `json:"category,omitempty"`
	LowStock    bool            `json:"low_stock"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

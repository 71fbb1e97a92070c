package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo (SKU) del catálogo.
// Quantity es una caché de lectura: el valor autoritativo es la suma de los
// deltas del ledger (StockTransaction). Se actualiza en la misma transacción
// de BD que cada movimiento, nunca por separado.
type Item struct {
	ID          string
	SKU         string // código único
	Name        string
	Description string
	Quantity    int64           // caché derivada del ledger; nunca < 0
	Cost        decimal.Decimal // costo de compra; >= 0
	Price       decimal.Decimal // precio de venta; >= 0
	MinStock    int64           // umbral de stock bajo
	Category    string          // vacío = sin categoría
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LowStock indica si el artículo está en o por debajo de su umbral de reposición.
func (i *Item) LowStock() bool {
	return i.Quantity <= i.MinStock
}

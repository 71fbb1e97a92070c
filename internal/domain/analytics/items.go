package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// ItemRank es la posición de un artículo en el ranking de movimiento.
type ItemRank struct {
	ItemID   string
	Quantity int64 // unidades acumuladas en líneas de pedidos de venta
}

// TopItems ordena artículos por cantidad movida en líneas de venta, de mayor
// a menor. Los empates se resuelven por ID de artículo para que la salida sea
// determinista. limit <= 0 devuelve el ranking completo.
func TopItems(salesOrders []entity.SalesOrder, limit int) []ItemRank {
	moved := make(map[string]int64)
	for _, o := range salesOrders {
		for _, l := range o.Lines {
			moved[l.ItemID] += l.Quantity
		}
	}

	ranking := make([]ItemRank, 0, len(moved))
	for id, qty := range moved {
		ranking = append(ranking, ItemRank{ItemID: id, Quantity: qty})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Quantity != ranking[j].Quantity {
			return ranking[i].Quantity > ranking[j].Quantity
		}
		return ranking[i].ItemID < ranking[j].ItemID
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}

// CategoryBucket agrega los artículos de una categoría.
type CategoryBucket struct {
	Category string // vacío = artículos sin categoría
	Items    int
	Quantity int64
	Value    decimal.Decimal // Σ cantidad × precio
}

// CategorySummary agrupa artículos por categoría sumando cantidad y valor.
// Los artículos sin categoría se agrupan bajo la clave vacía explícita, que
// ordena primero. Salida ordenada por categoría.
func CategorySummary(items []entity.Item) []CategoryBucket {
	buckets := make(map[string]*CategoryBucket)
	for _, it := range items {
		b, ok := buckets[it.Category]
		if !ok {
			b = &CategoryBucket{Category: it.Category, Value: decimal.Zero}
			buckets[it.Category] = b
		}
		b.Items++
		b.Quantity += it.Quantity
		b.Value = b.Value.Add(decimal.NewFromInt(it.Quantity).Mul(it.Price))
	}

	categories := make([]string, 0, len(buckets))
	for c := range buckets {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	result := make([]CategoryBucket, 0, len(categories))
	for _, c := range categories {
		result = append(result, *buckets[c])
	}
	return result
}

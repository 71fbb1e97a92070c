package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// UnknownMonth es la cubeta para pedidos sin ninguna fecha derivable.
// Ordena después de toda clave "YYYY-MM" (orden lexicográfico).
const UnknownMonth = "Unknown"

// MonthBucket agrega los pedidos de un mes calendario.
type MonthBucket struct {
	Month    string // "YYYY-MM" o UnknownMonth
	Orders   int
	Subtotal decimal.Decimal
	Total    decimal.Decimal
}

type orderView struct {
	createdAt time.Time
	fallbacks []*time.Time
	subtotal  decimal.Decimal
	total     decimal.Decimal
}

// PurchaseMonthlyRollup agrupa pedidos de compra por mes "YYYY-MM" derivado
// de createdAt (con fallback a expectedDate y deliveryDate) y suma subtotal y
// total por mes. Los meses quedan en orden lexicográfico, que para claves
// "YYYY-MM" coincide con el cronológico.
func PurchaseMonthlyRollup(orders []entity.PurchaseOrder) []MonthBucket {
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		views = append(views, orderView{
			createdAt: o.CreatedAt,
			fallbacks: []*time.Time{o.ExpectedDate, o.DeliveryDate},
			subtotal:  o.Subtotal(),
			total:     o.Total(),
		})
	}
	return rollup(views)
}

// SalesMonthlyRollup agrupa pedidos de venta por mes.
func SalesMonthlyRollup(orders []entity.SalesOrder) []MonthBucket {
	views := make([]orderView, 0, len(orders))
	for i := range orders {
		o := &orders[i]
		views = append(views, orderView{
			createdAt: o.CreatedAt,
			fallbacks: []*time.Time{o.DeliveryDate},
			subtotal:  o.Subtotal(),
			total:     o.Total(),
		})
	}
	return rollup(views)
}

func rollup(views []orderView) []MonthBucket {
	buckets := make(map[string]*MonthBucket)
	for _, v := range views {
		month := monthKey(v)
		b, ok := buckets[month]
		if !ok {
			b = &MonthBucket{Month: month, Subtotal: decimal.Zero, Total: decimal.Zero}
			buckets[month] = b
		}
		b.Orders++
		b.Subtotal = b.Subtotal.Add(v.subtotal)
		b.Total = b.Total.Add(v.total)
	}

	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Strings(months)

	result := make([]MonthBucket, 0, len(months))
	for _, m := range months {
		result = append(result, *buckets[m])
	}
	return result
}

// monthKey deriva la clave "YYYY-MM": createdAt, si no las fechas de
// fallback en orden, y UnknownMonth cuando no hay ninguna.
func monthKey(v orderView) string {
	if !v.createdAt.IsZero() {
		return v.createdAt.Format("2006-01")
	}
	for _, f := range v.fallbacks {
		if f != nil && !f.IsZero() {
			return f.Format("2006-01")
		}
	}
	return UnknownMonth
}

package analytics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// HistogramBucketCount es el número fijo de cubetas del histograma de cantidades.
const HistogramBucketCount = 8

// PriceStats describe la distribución de precios del catálogo.
type PriceStats struct {
	Min decimal.Decimal
	P25 decimal.Decimal
	P50 decimal.Decimal
	P75 decimal.Decimal
	P90 decimal.Decimal
	Max decimal.Decimal
}

// PriceDistribution calcula mínimo, máximo y percentiles de los precios.
// Percentil por índice: sorted[floor((n-1) × p)]. Devuelve nil con catálogo
// vacío: "sin datos" explícito, nunca una división por cero ni un índice
// fuera de rango.
func PriceDistribution(items []entity.Item) *PriceStats {
	if len(items) == 0 {
		return nil
	}
	prices := make([]decimal.Decimal, len(items))
	for i, it := range items {
		prices[i] = it.Price
	}
	sort.Slice(prices, func(i, j int) bool { return prices[i].LessThan(prices[j]) })

	return &PriceStats{
		Min: prices[0],
		P25: percentile(prices, 0.25),
		P50: percentile(prices, 0.50),
		P75: percentile(prices, 0.75),
		P90: percentile(prices, 0.90),
		Max: prices[len(prices)-1],
	}
}

func percentile(sorted []decimal.Decimal, p float64) decimal.Decimal {
	idx := int(float64(len(sorted)-1) * p)
	return sorted[idx]
}

// HistogramBucket es una cubeta de ancho fijo [From, To] (inclusive).
type HistogramBucket struct {
	From  int64
	To    int64
	Count int
}

// QuantityHistogram reparte las cantidades de los artículos en 8 cubetas de
// ancho igual sobre [min, max]. Ancho = ceil((max-min)/8) con piso de 1; la
// última cubeta absorbe cualquier valor que desbordara por el redondeo.
// Devuelve vacío con catálogo vacío.
func QuantityHistogram(items []entity.Item) []HistogramBucket {
	if len(items) == 0 {
		return nil
	}

	minQ, maxQ := items[0].Quantity, items[0].Quantity
	for _, it := range items[1:] {
		if it.Quantity < minQ {
			minQ = it.Quantity
		}
		if it.Quantity > maxQ {
			maxQ = it.Quantity
		}
	}

	span := maxQ - minQ
	width := (span + HistogramBucketCount - 1) / HistogramBucketCount // ceil
	if width < 1 {
		width = 1
	}

	buckets := make([]HistogramBucket, HistogramBucketCount)
	for i := range buckets {
		from := minQ + int64(i)*width
		buckets[i] = HistogramBucket{From: from, To: from + width - 1}
	}

	for _, it := range items {
		idx := (it.Quantity - minQ) / width
		if idx >= HistogramBucketCount {
			idx = HistogramBucketCount - 1 // la última cubeta absorbe el desborde
		}
		buckets[idx].Count++
	}
	return buckets
}

// ScatterPoint es la proyección (precio, cantidad) de un artículo para
// visualización; no es una transformación estadística.
type ScatterPoint struct {
	ItemID   string
	Price    decimal.Decimal
	Quantity int64
}

// ScatterPairs proyecta cada artículo a su par (precio, cantidad), en el
// orden de entrada.
func ScatterPairs(items []entity.Item) []ScatterPoint {
	points := make([]ScatterPoint, 0, len(items))
	for _, it := range items {
		points = append(points, ScatterPoint{ItemID: it.ID, Price: it.Price, Quantity: it.Quantity})
	}
	return points
}

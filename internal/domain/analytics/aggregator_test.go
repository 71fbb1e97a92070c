package analytics_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/pedidos-api/internal/domain/analytics"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

func dia(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ── Funnels ───────────────────────────────────────────────────────────────────

func TestPurchaseFunnel_RellenaEstadosAusentes(t *testing.T) {
	orders := []entity.PurchaseOrder{
		{Status: entity.POStatusRequested},
		{Status: entity.POStatusRequested},
		{Status: entity.POStatusReceived},
	}

	funnel := analytics.PurchaseFunnel(orders)

	require.Len(t, funnel, 4, "el contrato incluye los 4 estados aunque no haya pedidos en ellos")
	assert.Equal(t, analytics.FunnelEntry{Status: entity.POStatusRequested, Count: 2}, funnel[0])
	assert.Equal(t, analytics.FunnelEntry{Status: entity.POStatusSupplierSubmitted, Count: 0}, funnel[1])
	assert.Equal(t, analytics.FunnelEntry{Status: entity.POStatusApproved, Count: 0}, funnel[2])
	assert.Equal(t, analytics.FunnelEntry{Status: entity.POStatusReceived, Count: 1}, funnel[3])
}

func TestSalesFunnel_EntradaVacia(t *testing.T) {
	funnel := analytics.SalesFunnel(nil)
	require.Len(t, funnel, 3)
	for _, e := range funnel {
		assert.Zero(t, e.Count)
	}
}

// ── Rollup mensual ────────────────────────────────────────────────────────────

func TestPurchaseMonthlyRollup_EscenarioReferencia(t *testing.T) {
	// Dos pedidos de enero 2024 con totales 100 y 200 → cubeta "2024-01" = 300
	orders := []entity.PurchaseOrder{
		{
			CreatedAt: dia("2024-01-05"),
			TaxRate:   decimal.Zero,
			Lines:     []entity.OrderLine{{ItemID: "a", Quantity: 10, UnitPrice: decimal.NewFromInt(10)}},
		},
		{
			CreatedAt: dia("2024-01-20"),
			TaxRate:   decimal.Zero,
			Lines:     []entity.OrderLine{{ItemID: "b", Quantity: 4, UnitPrice: decimal.NewFromInt(50)}},
		},
	}

	buckets := analytics.PurchaseMonthlyRollup(orders)

	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-01", buckets[0].Month)
	assert.Equal(t, 2, buckets[0].Orders)
	assert.True(t, buckets[0].Total.Equal(decimal.NewFromInt(300)), "total de enero = 100 + 200")
}

func TestPurchaseMonthlyRollup_FallbackYUnknown(t *testing.T) {
	expected := dia("2024-03-01")
	orders := []entity.PurchaseOrder{
		// Sin createdAt: usa expectedDate
		{ExpectedDate: &expected, TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(5)}}},
		// Sin fecha alguna: cubeta Unknown
		{TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(7)}}},
	}

	buckets := analytics.PurchaseMonthlyRollup(orders)

	require.Len(t, buckets, 2)
	// Orden lexicográfico: "2024-03" antes que "Unknown"
	assert.Equal(t, "2024-03", buckets[0].Month)
	assert.Equal(t, analytics.UnknownMonth, buckets[1].Month)
	assert.True(t, buckets[1].Subtotal.Equal(decimal.NewFromInt(7)))
}

func TestSalesMonthlyRollup_MesesOrdenados(t *testing.T) {
	orders := []entity.SalesOrder{
		{CreatedAt: dia("2024-11-02"), TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}},
		{CreatedAt: dia("2024-02-15"), TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}},
		{CreatedAt: dia("2025-01-01"), TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(1)}}},
	}

	buckets := analytics.SalesMonthlyRollup(orders)

	require.Len(t, buckets, 3)
	assert.Equal(t, "2024-02", buckets[0].Month)
	assert.Equal(t, "2024-11", buckets[1].Month)
	assert.Equal(t, "2025-01", buckets[2].Month)
}

func TestRollup_Idempotente(t *testing.T) {
	orders := []entity.SalesOrder{
		{CreatedAt: dia("2024-01-05"), TaxRate: decimal.NewFromFloat(0.19),
			Lines: []entity.OrderLine{{ItemID: "a", Quantity: 3, UnitPrice: decimal.NewFromInt(10)}}},
		{CreatedAt: dia("2024-02-05"), TaxRate: decimal.Zero,
			Lines: []entity.OrderLine{{ItemID: "b", Quantity: 1, UnitPrice: decimal.NewFromInt(99)}}},
	}

	first, err := json.Marshal(analytics.SalesMonthlyRollup(orders))
	require.NoError(t, err)
	second, err := json.Marshal(analytics.SalesMonthlyRollup(orders))
	require.NoError(t, err)

	assert.Equal(t, first, second, "dos corridas sobre la misma foto deben ser idénticas byte a byte")
}

// ── Top de artículos ──────────────────────────────────────────────────────────

func TestTopItems_OrdenYEmpates(t *testing.T) {
	orders := []entity.SalesOrder{
		{Lines: []entity.OrderLine{
			{ItemID: "b", Quantity: 5},
			{ItemID: "a", Quantity: 5},
		}},
		{Lines: []entity.OrderLine{
			{ItemID: "c", Quantity: 9},
			{ItemID: "a", Quantity: 2},
		}},
	}

	ranking := analytics.TopItems(orders, 0)

	require.Len(t, ranking, 3)
	assert.Equal(t, analytics.ItemRank{ItemID: "c", Quantity: 9}, ranking[0])
	assert.Equal(t, analytics.ItemRank{ItemID: "a", Quantity: 7}, ranking[1], "a acumula 5+2 entre pedidos")
	assert.Equal(t, analytics.ItemRank{ItemID: "b", Quantity: 5}, ranking[2])
}

func TestTopItems_EmpateResueltoPorID(t *testing.T) {
	orders := []entity.SalesOrder{
		{Lines: []entity.OrderLine{
			{ItemID: "z", Quantity: 4},
			{ItemID: "a", Quantity: 4},
		}},
	}

	ranking := analytics.TopItems(orders, 0)
	assert.Equal(t, "a", ranking[0].ItemID, "en empate gana el ID menor (determinismo)")
	assert.Equal(t, "z", ranking[1].ItemID)
}

func TestTopItems_Limite(t *testing.T) {
	orders := []entity.SalesOrder{
		{Lines: []entity.OrderLine{
			{ItemID: "a", Quantity: 3},
			{ItemID: "b", Quantity: 2},
			{ItemID: "c", Quantity: 1},
		}},
	}
	assert.Len(t, analytics.TopItems(orders, 2), 2)
}

// ── Resumen por categoría ─────────────────────────────────────────────────────

func TestCategorySummary_AgrupaYValora(t *testing.T) {
	items := []entity.Item{
		{ID: "1", Category: "papelería", Quantity: 10, Price: decimal.NewFromInt(2)},
		{ID: "2", Category: "papelería", Quantity: 5, Price: decimal.NewFromInt(4)},
		{ID: "3", Category: "", Quantity: 7, Price: decimal.NewFromInt(1)},
	}

	summary := analytics.CategorySummary(items)

	require.Len(t, summary, 2)
	// La categoría vacía ordena primero y es una cubeta explícita
	assert.Equal(t, "", summary[0].Category)
	assert.Equal(t, int64(7), summary[0].Quantity)
	assert.True(t, summary[0].Value.Equal(decimal.NewFromInt(7)))

	assert.Equal(t, "papelería", summary[1].Category)
	assert.Equal(t, 2, summary[1].Items)
	assert.Equal(t, int64(15), summary[1].Quantity)
	assert.True(t, summary[1].Value.Equal(decimal.NewFromInt(40)), "valor = 10×2 + 5×4")
}

// ── Utilidad ──────────────────────────────────────────────────────────────────

func TestProfit_NetYMargen(t *testing.T) {
	purchases := []entity.PurchaseOrder{
		{TaxRate: decimal.Zero, Lines: []entity.OrderLine{{ItemID: "a", Quantity: 10, UnitPrice: decimal.NewFromInt(6)}}},
	}
	sales := []entity.SalesOrder{
		{TaxRate: decimal.Zero, Lines: []entity.OrderLine{{ItemID: "a", Quantity: 10, UnitPrice: decimal.NewFromInt(10)}}},
	}

	p := analytics.Profit(purchases, sales)

	assert.True(t, p.Net.Equal(decimal.NewFromInt(40)), "net = 100 - 60")
	assert.True(t, p.Margin.Equal(decimal.NewFromFloat(0.4)), "margen = 40 / 100")
}

func TestProfit_SinVentasMargenCero(t *testing.T) {
	purchases := []entity.PurchaseOrder{
		{TaxRate: decimal.Zero, Lines: []entity.OrderLine{{ItemID: "a", Quantity: 1, UnitPrice: decimal.NewFromInt(50)}}},
	}

	p := analytics.Profit(purchases, nil)

	assert.True(t, p.Margin.IsZero(), "sin ventas el margen se define como 0, no divide por cero")
	assert.True(t, p.Net.Equal(decimal.NewFromInt(-50)))
}

// ── Distribución de precios ───────────────────────────────────────────────────

func TestPriceDistribution_Percentiles(t *testing.T) {
	// Precios 10..100: n=10, percentil p = sorted[floor(9p)]
	var items []entity.Item
	for i := 1; i <= 10; i++ {
		items = append(items, entity.Item{Price: decimal.NewFromInt(int64(i * 10))})
	}

	stats := analytics.PriceDistribution(items)

	require.NotNil(t, stats)
	assert.True(t, stats.Min.Equal(decimal.NewFromInt(10)))
	assert.True(t, stats.Max.Equal(decimal.NewFromInt(100)))
	assert.True(t, stats.P25.Equal(decimal.NewFromInt(30)), "floor(9×0.25)=2 → sorted[2]=30")
	assert.True(t, stats.P50.Equal(decimal.NewFromInt(50)), "floor(9×0.50)=4 → sorted[4]=50")
	assert.True(t, stats.P75.Equal(decimal.NewFromInt(70)), "floor(9×0.75)=6 → sorted[6]=70")
	assert.True(t, stats.P90.Equal(decimal.NewFromInt(90)), "floor(9×0.90)=8 → sorted[8]=90")
}

func TestPriceDistribution_CatalogoVacio(t *testing.T) {
	assert.Nil(t, analytics.PriceDistribution(nil), "sin datos devuelve nil explícito")
}

func TestPriceDistribution_UnSoloArticulo(t *testing.T) {
	stats := analytics.PriceDistribution([]entity.Item{{Price: decimal.NewFromInt(42)}})
	require.NotNil(t, stats)
	assert.True(t, stats.Min.Equal(stats.Max))
	assert.True(t, stats.P50.Equal(decimal.NewFromInt(42)))
}

// ── Histograma de cantidades ──────────────────────────────────────────────────

func TestQuantityHistogram_CatalogoVacio(t *testing.T) {
	assert.Empty(t, analytics.QuantityHistogram(nil))
}

func TestQuantityHistogram_AnchoMinimoUno(t *testing.T) {
	// Todas las cantidades iguales: span 0, el ancho se fuerza a 1
	items := []entity.Item{{Quantity: 5}, {Quantity: 5}, {Quantity: 5}}

	buckets := analytics.QuantityHistogram(items)

	require.Len(t, buckets, analytics.HistogramBucketCount)
	assert.Equal(t, 3, buckets[0].Count)
	assert.Equal(t, int64(5), buckets[0].From)
	for _, b := range buckets[1:] {
		assert.Zero(t, b.Count)
	}
}

func TestQuantityHistogram_UltimaCubetaAbsorbeDesborde(t *testing.T) {
	// min=0, max=100 → ancho = ceil(100/8) = 13; 100 cae en índice 7 (última)
	items := []entity.Item{{Quantity: 0}, {Quantity: 100}}

	buckets := analytics.QuantityHistogram(items)

	require.Len(t, buckets, analytics.HistogramBucketCount)
	assert.Equal(t, 1, buckets[0].Count)
	assert.Equal(t, 1, buckets[7].Count, "el máximo aterriza en la última cubeta")

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	assert.Equal(t, len(items), total, "ningún artículo se pierde por redondeo")
}

func TestQuantityHistogram_Reparto(t *testing.T) {
	// min=0, max=7 → ancho 1, una cubeta por cantidad
	var items []entity.Item
	for q := int64(0); q < 8; q++ {
		items = append(items, entity.Item{Quantity: q})
	}

	buckets := analytics.QuantityHistogram(items)
	for i, b := range buckets {
		assert.Equal(t, 1, b.Count, "cubeta %d", i)
		assert.Equal(t, int64(i), b.From)
	}
}

// ── Dispersión ────────────────────────────────────────────────────────────────

func TestScatterPairs_ProyeccionDirecta(t *testing.T) {
	items := []entity.Item{
		{ID: "a", Price: decimal.NewFromInt(3), Quantity: 9},
		{ID: "b", Price: decimal.NewFromInt(5), Quantity: 1},
	}

	points := analytics.ScatterPairs(items)

	require.Len(t, points, 2)
	assert.Equal(t, "a", points[0].ItemID)
	assert.Equal(t, int64(9), points[0].Quantity)
	assert.True(t, points[1].Price.Equal(decimal.NewFromInt(5)))
}

package dto

import "github.com/shopspring/decimal"

// FunnelEntryDTO un escalón del embudo de estados.
type FunnelEntryDTO struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// MonthBucketDTO agregado mensual de pedidos.
type MonthBucketDTO struct {
	Month    string          `json:"month"`
	Orders   int             `json:"orders"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// TopItemDTO ranking de artículos por unidades vendidas, enriquecido con
// SKU y nombre del catálogo (vacíos si el artículo ya no existe).
type TopItemDTO struct {
	ItemID   string `json:"item_id"`
	SKU      string `json:"sku,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int64  `json:"quantity"`
}

// CategoryBucketDTO resumen por categoría.
type CategoryBucketDTO struct {
	Category string          `json:"category"` // vacío = sin categoría
	Items    int             `json:"items"`
	Quantity int64           `json:"quantity"`
	Value    decimal.Decimal `json:"value"`
}

// ProfitDTO utilidad bruta del período.
type ProfitDTO struct {
	SalesSubtotal    decimal.Decimal `json:"sales_subtotal"`
	PurchaseSubtotal decimal.Decimal `json:"purchase_subtotal"`
	Net              decimal.Decimal `json:"net"`
	Margin           decimal.Decimal `json:"margin"`
}

// PriceStatsDTO percentiles de precios del catálogo; null cuando no hay artículos.
type PriceStatsDTO struct {
	Min decimal.Decimal `json:"min"`
	P25 decimal.Decimal `json:"p25"`
	P50 decimal.Decimal `json:"p50"`
	P75 decimal.Decimal `json:"p75"`
	P90 decimal.Decimal `json:"p90"`
	Max decimal.Decimal `json:"max"`
}

// HistogramBucketDTO cubeta [from, to] inclusive.
type HistogramBucketDTO struct {
	From  int64 `json:"from"`
	To    int64 `json:"to"`
	Count int   `json:"count"`
}

// ScatterPointDTO par (precio, cantidad) de un artículo.
type ScatterPointDTO struct {
	ItemID   string          `json:"item_id"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// DashboardResponse respuesta completa de GET /api/dashboard.
type DashboardResponse struct {
	PurchaseFunnel    []FunnelEntryDTO     `json:"purchase_funnel"`
	SalesFunnel       []FunnelEntryDTO     `json:"sales_funnel"`
	ReturnFunnel      []FunnelEntryDTO     `json:"return_funnel"`
	PurchasesByMonth  []MonthBucketDTO     `json:"purchases_by_month"`
	SalesByMonth      []MonthBucketDTO     `json:"sales_by_month"`
	TopItems          []TopItemDTO         `json:"top_items"`
	Categories        []CategoryBucketDTO  `json:"categories"`
	Profit            ProfitDTO            `json:"profit"`
	PriceStats        *PriceStatsDTO       `json:"price_stats"`
	QuantityHistogram []HistogramBucketDTO `json:"quantity_histogram"`
	Scatter           []ScatterPointDTO    `json:"scatter"`
}

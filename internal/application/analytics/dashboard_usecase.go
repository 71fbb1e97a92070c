// Package analytics contiene el caso de uso del dashboard: carga una foto
// consistente del estado y delega cada métrica en las funciones puras de
// internal/domain/analytics.
package analytics

import (
	"context"
	"fmt"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain/analytics"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

const (
	dashboardTopItems = 10 // filas del ranking de artículos más vendidos

	// snapshotLimit acota la foto del dashboard; por encima de esto las
	// métricas se calculan sobre la primera página.
	snapshotLimit = 10000
)

// DashboardUseCase genera las métricas del dashboard sobre una foto puntual.
// Misma foto, misma salida: todo el cálculo es determinista.
type DashboardUseCase struct {
	snapshotRepo repository.SnapshotRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(snapshotRepo repository.SnapshotRepository) *DashboardUseCase {
	return &DashboardUseCase{snapshotRepo: snapshotRepo}
}

// GetDashboard carga artículos, pedidos, devoluciones y ledger en paralelo y
// ensambla la respuesta completa del dashboard.
func (uc *DashboardUseCase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	snap, err := uc.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	// ── Métricas puras sobre la foto ──────────────────────────────────────────
	items := make(map[string]entity.Item, len(snap.Items))
	for _, it := range snap.Items {
		items[it.ID] = it
	}

	topItems := make([]dto.TopItemDTO, 0, dashboardTopItems)
	for _, r := range analytics.TopItems(snap.SalesOrders, dashboardTopItems) {
		row := dto.TopItemDTO{ItemID: r.ItemID, Quantity: r.Quantity}
		if it, ok := items[r.ItemID]; ok {
			row.SKU = it.SKU
			row.Name = it.Name
		}
		topItems = append(topItems, row)
	}

	profit := analytics.Profit(snap.PurchaseOrders, snap.SalesOrders)

	return &dto.DashboardResponse{
		PurchaseFunnel:    toFunnelDTO(analytics.PurchaseFunnel(snap.PurchaseOrders)),
		SalesFunnel:       toFunnelDTO(analytics.SalesFunnel(snap.SalesOrders)),
		ReturnFunnel:      toFunnelDTO(analytics.ReturnFunnel(snap.Returns)),
		PurchasesByMonth:  toMonthDTO(analytics.PurchaseMonthlyRollup(snap.PurchaseOrders)),
		SalesByMonth:      toMonthDTO(analytics.SalesMonthlyRollup(snap.SalesOrders)),
		TopItems:          topItems,
		Categories:        toCategoryDTO(analytics.CategorySummary(snap.Items)),
		Profit: dto.ProfitDTO{
			SalesSubtotal:    profit.SalesSubtotal,
			PurchaseSubtotal: profit.PurchaseSubtotal,
			Net:              profit.Net,
			Margin:           profit.Margin,
		},
		PriceStats:        toPriceStatsDTO(analytics.PriceDistribution(snap.Items)),
		QuantityHistogram: toHistogramDTO(analytics.QuantityHistogram(snap.Items)),
		Scatter:           toScatterDTO(analytics.ScatterPairs(snap.Items)),
	}, nil
}

// loadSnapshot hace las cinco lecturas en paralelo y ensambla la foto.
func (uc *DashboardUseCase) loadSnapshot(ctx context.Context) (*analytics.Snapshot, error) {
	type itemsResult struct {
		items []entity.Item
		err   error
	}
	type purchasesResult struct {
		orders []entity.PurchaseOrder
		err    error
	}
	type salesResult struct {
		orders []entity.SalesOrder
		err    error
	}
	type returnsResult struct {
		returns []entity.ReturnEntry
		err     error
	}
	type txnsResult struct {
		txns []entity.StockTransaction
		err  error
	}

	itemsCh := make(chan itemsResult, 1)
	purchasesCh := make(chan purchasesResult, 1)
	salesCh := make(chan salesResult, 1)
	returnsCh := make(chan returnsResult, 1)
	txnsCh := make(chan txnsResult, 1)

	go func() {
		items, err := uc.snapshotRepo.LoadItems(ctx, snapshotLimit, 0)
		itemsCh <- itemsResult{items, err}
	}()
	go func() {
		orders, err := uc.snapshotRepo.LoadPurchaseOrders(ctx, snapshotLimit, 0)
		purchasesCh <- purchasesResult{orders, err}
	}()
	go func() {
		orders, err := uc.snapshotRepo.LoadSalesOrders(ctx, snapshotLimit, 0)
		salesCh <- salesResult{orders, err}
	}()
	go func() {
		returns, err := uc.snapshotRepo.LoadReturns(ctx, snapshotLimit, 0)
		returnsCh <- returnsResult{returns, err}
	}()
	go func() {
		txns, err := uc.snapshotRepo.LoadTransactions(ctx, snapshotLimit, 0)
		txnsCh <- txnsResult{txns, err}
	}()

	items := <-itemsCh
	purchases := <-purchasesCh
	sales := <-salesCh
	returns := <-returnsCh
	txns := <-txnsCh

	if items.err != nil {
		return nil, fmt.Errorf("dashboard: artículos: %w", items.err)
	}
	if purchases.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de compra: %w", purchases.err)
	}
	if sales.err != nil {
		return nil, fmt.Errorf("dashboard: pedidos de venta: %w", sales.err)
	}
	if returns.err != nil {
		return nil, fmt.Errorf("dashboard: devoluciones: %w", returns.err)
	}
	if txns.err != nil {
		return nil, fmt.Errorf("dashboard: ledger: %w", txns.err)
	}

	return &analytics.Snapshot{
		Items:          items.items,
		PurchaseOrders: purchases.orders,
		SalesOrders:    sales.orders,
		Returns:        returns.returns,
		Transactions:   txns.txns,
	}, nil
}

func toFunnelDTO(entries []analytics.FunnelEntry) []dto.FunnelEntryDTO {
	out := make([]dto.FunnelEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.FunnelEntryDTO{Status: e.Status, Count: e.Count})
	}
	return out
}

func toMonthDTO(buckets []analytics.MonthBucket) []dto.MonthBucketDTO {
	out := make([]dto.MonthBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.MonthBucketDTO{Month: b.Month, Orders: b.Orders, Subtotal: b.Subtotal, Total: b.Total})
	}
	return out
}

func toCategoryDTO(buckets []analytics.CategoryBucket) []dto.CategoryBucketDTO {
	out := make([]dto.CategoryBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.CategoryBucketDTO{Category: b.Category, Items: b.Items, Quantity: b.Quantity, Value: b.Value})
	}
	return out
}

func toPriceStatsDTO(s *analytics.PriceStats) *dto.PriceStatsDTO {
	if s == nil {
		return nil
	}
	return &dto.PriceStatsDTO{Min: s.Min, P25: s.P25, P50: s.P50, P75: s.P75, P90: s.P90, Max: s.Max}
}

func toHistogramDTO(buckets []analytics.HistogramBucket) []dto.HistogramBucketDTO {
	out := make([]dto.HistogramBucketDTO, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.HistogramBucketDTO{From: b.From, To: b.To, Count: b.Count})
	}
	return out
}

func toScatterDTO(points []analytics.ScatterPoint) []dto.ScatterPointDTO {
	out := make([]dto.ScatterPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.ScatterPointDTO{ItemID: p.ItemID, Price: p.Price, Quantity: p.Quantity})
	}
	return out
}

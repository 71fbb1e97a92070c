package analytics

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// FunnelEntry es el conteo de pedidos en un estado del ciclo de vida.
type FunnelEntry struct {
	Status string
	Count  int
}

// PurchaseFunnel cuenta pedidos de compra por estado, en orden de ciclo de
// vida. Los estados sin pedidos aparecen con conteo cero, nunca se omiten.
func PurchaseFunnel(orders []entity.PurchaseOrder) []FunnelEntry {
	counts := make(map[string]int, len(entity.PurchaseOrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	return funnelFrom(entity.PurchaseOrderStatuses, counts)
}

// SalesFunnel cuenta pedidos de venta por estado.
func SalesFunnel(orders []entity.SalesOrder) []FunnelEntry {
	counts := make(map[string]int, len(entity.SalesOrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	return funnelFrom(entity.SalesOrderStatuses, counts)
}

// ReturnFunnel cuenta devoluciones por estado.
func ReturnFunnel(returns []entity.ReturnEntry) []FunnelEntry {
	counts := make(map[string]int, len(entity.ReturnStatuses))
	for _, r := range returns {
		counts[r.Status]++
	}
	return funnelFrom(entity.ReturnStatuses, counts)
}

func funnelFrom(statuses []string, counts map[string]int) []FunnelEntry {
	funnel := make([]FunnelEntry, 0, len(statuses))
	for _, s := range statuses {
		funnel = append(funnel, FunnelEntry{Status: s, Count: counts[s]})
	}
	return funnel
}

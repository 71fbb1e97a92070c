// Package analytics calcula las métricas del dashboard como funciones puras
// sobre una foto consistente de artículos, pedidos y transacciones.
// Todas son deterministas, sin efectos y reentrantes: dos llamadas sobre la
// misma foto producen salida idéntica byte a byte (requisito para caché y tests).
package analytics

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// Snapshot es la entrada del agregador: una lectura puntual y consistente.
// El agregador opera sobre la página/slice que se le entregue; la paginación
// es responsabilidad del proveedor de la foto.
type Snapshot struct {
	Items          []entity.Item
	PurchaseOrders []entity.PurchaseOrder
	SalesOrders    []entity.SalesOrder
	Returns        []entity.ReturnEntry
	Transactions   []entity.StockTransaction
}

package ledger

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// Replay reproduce las transacciones en orden de creación y devuelve la
// cantidad resultante por artículo (todas las ubicaciones sumadas).
// Invariante: para todo artículo, Replay(txns)[itemID] == Item.Quantity.
func Replay(txns []entity.StockTransaction) map[string]int64 {
	quantities := make(map[string]int64, len(txns))
	for _, t := range txns {
		quantities[t.ItemID] += t.Delta
	}
	return quantities
}

// ReplayByLocation reproduce las transacciones agrupando por artículo y
// ubicación. La clave de ubicación vacía corresponde a la ubicación por defecto.
func ReplayByLocation(txns []entity.StockTransaction) map[string]map[string]int64 {
	quantities := make(map[string]map[string]int64)
	for _, t := range txns {
		byLoc, ok := quantities[t.ItemID]
		if !ok {
			byLoc = make(map[string]int64)
			quantities[t.ItemID] = byLoc
		}
		byLoc[t.LocationID] += t.Delta
	}
	return quantities
}

// Divergence compara la cantidad cacheada de cada artículo contra el replay
// del ledger y devuelve los IDs cuyo valor difiere. Vacío = ledger consistente.
func Divergence(items []entity.Item, txns []entity.StockTransaction) []string {
	replayed := Replay(txns)
	var diverged []string
	for _, it := range items {
		if replayed[it.ID] != it.Quantity {
			diverged = append(diverged, it.ID)
		}
	}
	return diverged
}

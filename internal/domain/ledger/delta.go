// Package ledger contiene las reglas puras del libro de inventario:
// convención de signos por tipo de movimiento y replay de transacciones.
// El ledger es autoritativo; la cantidad cacheada en Item es solo una
// optimización de lectura.
package ledger

import (
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// NormalizeDelta aplica la convención de signos del ledger:
//   - receive: siempre aumenta stock (delta positivo)
//   - issue:   siempre reduce stock (delta negativo), aunque llegue en positivo
//   - adjust:  delta con signo tal cual
//
// Devuelve ErrInvalidQuantity si la cantidad es cero y ErrInvalidInput si el
// tipo de movimiento no existe.
func NormalizeDelta(kind string, quantity int64) (int64, error) {
	if quantity == 0 {
		return 0, domain.ErrInvalidQuantity
	}
	switch kind {
	case entity.TxnKindReceive:
		if quantity < 0 {
			return -quantity, nil
		}
		return quantity, nil
	case entity.TxnKindIssue:
		if quantity > 0 {
			return -quantity, nil
		}
		return quantity, nil
	case entity.TxnKindAdjust:
		return quantity, nil
	default:
		return 0, domain.ErrInvalidInput
	}
}

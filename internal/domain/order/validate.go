package order

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// ValidateLines aplica las invariantes de creación y edición de líneas:
// al menos una línea, cantidad > 0, precio unitario >= 0 y artículo único
// por pedido. Ninguna mutación ocurre si la validación falla.
func ValidateLines(lines []entity.OrderLine) error {
	if len(lines) == 0 {
		return domain.ErrEmptyOrder
	}
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.ItemID == "" {
			return domain.ErrInvalidInput
		}
		if l.Quantity <= 0 {
			return domain.ErrInvalidInput
		}
		if l.UnitPrice.LessThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}
		if _, dup := seen[l.ItemID]; dup {
			return domain.ErrDuplicateLineItem
		}
		seen[l.ItemID] = struct{}{}
	}
	return nil
}

// ValidateTaxRate rechaza tasas de impuesto negativas.
func ValidateTaxRate(rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

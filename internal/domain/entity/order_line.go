package entity

import "github.com/shopspring/decimal"

// OrderLine es una línea de pedido. Las líneas pertenecen en exclusiva a su
// pedido (no existen sin él). Un artículo aparece a lo más una vez por pedido.
type OrderLine struct {
	ID        string
	OrderID   string
	ItemID    string
	Quantity  int64           // > 0 siempre
	UnitPrice decimal.Decimal // costo unitario en compras, precio en ventas; >= 0
	Reason    string          // motivo, solo en devoluciones
}

// Total devuelve cantidad × precio unitario.
func (l OrderLine) Total() decimal.Decimal {
	return decimal.NewFromInt(l.Quantity).Mul(l.UnitPrice)
}

// SubtotalOf suma los totales de línea. Los montos del pedido se calculan
// siempre, nunca se almacenan de forma redundante.
func SubtotalOf(lines []OrderLine) decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.Total())
	}
	return subtotal
}

// TaxOf devuelve subtotal × tasa de impuesto.
func TaxOf(lines []OrderLine, taxRate decimal.Decimal) decimal.Decimal {
	return SubtotalOf(lines).Mul(taxRate)
}

// TotalOf devuelve subtotal + impuesto.
func TotalOf(lines []OrderLine, taxRate decimal.Decimal) decimal.Decimal {
	subtotal := SubtotalOf(lines)
	return subtotal.Add(subtotal.Mul(taxRate))
}

package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// ProfitSummary resume la utilidad bruta del período cubierto por la foto.
type ProfitSummary struct {
	SalesSubtotal    decimal.Decimal
	PurchaseSubtotal decimal.Decimal
	Net              decimal.Decimal // ventas - compras
	Margin           decimal.Decimal // net / ventas; 0 cuando no hay ventas
}

// Profit calcula net = Σ subtotales de venta - Σ subtotales de compra y el
// margen sobre ventas, con guarda contra división por cero.
func Profit(purchases []entity.PurchaseOrder, sales []entity.SalesOrder) ProfitSummary {
	purchaseSubtotal := decimal.Zero
	for i := range purchases {
		purchaseSubtotal = purchaseSubtotal.Add(purchases[i].Subtotal())
	}
	salesSubtotal := decimal.Zero
	for i := range sales {
		salesSubtotal = salesSubtotal.Add(sales[i].Subtotal())
	}

	net := salesSubtotal.Sub(purchaseSubtotal)
	margin := decimal.Zero
	if !salesSubtotal.IsZero() {
		margin = net.Div(salesSubtotal)
	}

	return ProfitSummary{
		SalesSubtotal:    salesSubtotal,
		PurchaseSubtotal: purchaseSubtotal,
		Net:              net,
		Margin:           margin,
	}
}

package entity

import "time"

// Tipos de movimiento del ledger de inventario.
const (
	TxnKindReceive = "receive" // entrada (compras recibidas, ajustes positivos)
	TxnKindIssue   = "issue"   // salida (ventas entregadas)
	TxnKindAdjust  = "adjust"  // ajuste manual, delta con signo
)

// StockTransaction es una entrada inmutable del ledger de stock.
// Reproducir todas las transacciones de un artículo en orden de creación
// debe dar exactamente su cantidad actual (invariante de replay).
type StockTransaction struct {
	ID         string
	ItemID     string
	LocationID string // vacío = ubicación por defecto
	Kind       string // receive, issue, adjust
	Delta      int64  // con signo: positivo aumenta stock, negativo lo reduce
	Reason     string // factura, pedido, nota de ajuste, etc.
	CreatedAt  time.Time
	CreatedBy  string // UserID
}

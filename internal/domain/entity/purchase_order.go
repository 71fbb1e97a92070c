package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de compra. Ciclo lineal, sin saltos ni retrocesos:
// requested → supplier_submitted → approved → received.
const (
	POStatusRequested         = "requested"          // creado por admin o seller
	POStatusSupplierSubmitted = "supplier_submitted" // el proveedor respondió con costos y fechas
	POStatusApproved          = "approved"           // aprobado por admin
	POStatusReceived          = "received"           // mercancía recibida; acredita el ledger
)

// PurchaseOrderStatuses en orden de ciclo de vida. Lo usa el funnel del
// dashboard para rellenar con cero los estados ausentes.
var PurchaseOrderStatuses = []string{
	POStatusRequested,
	POStatusSupplierSubmitted,
	POStatusApproved,
	POStatusReceived,
}

// PurchaseOrder representa un pedido de compra a un proveedor.
// Version implementa concurrencia optimista: cada transición la incrementa y
// una escritura con versión vieja falla con ErrStaleTransition.
type PurchaseOrder struct {
	ID              string
	SupplierID      string
	Status          string
	Lines           []OrderLine
	ExpectedDate    *time.Time
	DeliveryDate    *time.Time
	ReceivedDate    *time.Time
	PaymentTerms    string
	TaxRate         decimal.Decimal
	ShippingAddress string
	Notes           string
	Version         int64
	CreatedBy       string // UserID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Subtotal devuelve la suma de los totales de línea.
func (o *PurchaseOrder) Subtotal() decimal.Decimal { return SubtotalOf(o.Lines) }

// Tax devuelve subtotal × TaxRate.
func (o *PurchaseOrder) Tax() decimal.Decimal { return TaxOf(o.Lines, o.TaxRate) }

// Total devuelve subtotal + impuesto.
func (o *PurchaseOrder) Total() decimal.Decimal { return TotalOf(o.Lines, o.TaxRate) }

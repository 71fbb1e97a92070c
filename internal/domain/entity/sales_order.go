package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido de venta: requested → approved → received.
const (
	SOStatusRequested = "requested" // creado por buyer (siempre) o admin
	SOStatusApproved  = "approved"  // aprobado por admin
	SOStatusReceived  = "received"  // entregado al cliente; debita el ledger
)

// SalesOrderStatuses en orden de ciclo de vida.
var SalesOrderStatuses = []string{
	SOStatusRequested,
	SOStatusApproved,
	SOStatusReceived,
}

// SalesOrder representa un pedido de venta de un cliente.
// Un buyer lo crea siempre en requested y con precios del catálogo; solo el
// admin fija precios o estado inicial libremente.
type SalesOrder struct {
	ID              string
	CustomerID      string
	Status          string
	Lines           []OrderLine
	DeliveryDate    *time.Time
	ApprovedDate    *time.Time
	ReceivedDate    *time.Time
	PaymentTerms    string
	TaxRate         decimal.Decimal
	ShippingAddress string
	Notes           string
	Version         int64
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Subtotal devuelve la suma de los totales de línea.
func (o *SalesOrder) Subtotal() decimal.Decimal { return SubtotalOf(o.Lines) }

// Tax devuelve subtotal × TaxRate.
func (o *SalesOrder) Tax() decimal.Decimal { return TaxOf(o.Lines, o.TaxRate) }

// Total devuelve subtotal + impuesto.
func (o *SalesOrder) Total() decimal.Decimal { return TotalOf(o.Lines, o.TaxRate) }

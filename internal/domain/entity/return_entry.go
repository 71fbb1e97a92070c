package entity

import "time"

// Tipos de devolución.
const (
	ReturnTypeCustomer = "customer" // el cliente devuelve mercancía
	ReturnTypeSupplier = "supplier" // se devuelve mercancía al proveedor
)

// Estados de una devolución: requested → received → closed.
// Lineal y reversible solo mediante borrado.
const (
	ReturnStatusRequested = "requested"
	ReturnStatusReceived  = "received"
	ReturnStatusClosed    = "closed"
)

// ReturnStatuses en orden de ciclo de vida.
var ReturnStatuses = []string{
	ReturnStatusRequested,
	ReturnStatusReceived,
	ReturnStatusClosed,
}

// ReturnEntry representa una devolución de cliente o a proveedor.
// Las devoluciones no generan efecto en el ledger en este núcleo: si una
// devolución recibida debe acreditar o debitar stock es una decisión de
// política pendiente de negocio, no se infiere en silencio.
type ReturnEntry struct {
	ID        string
	Type      string // customer, supplier
	PartnerID string // Customer.ID o Supplier.ID según Type
	Status    string
	Lines     []OrderLine // Reason opcional por línea
	Notes     string
	Version   int64
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Customer representa un cliente. Referenciado por pedidos de venta y
// devoluciones de tipo customer.
type Customer struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

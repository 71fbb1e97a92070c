package entity

import "time"

// Supplier representa un proveedor. Los pedidos de compra lo referencian,
// nunca lo poseen; su integridad referencial la garantiza la capa colaboradora.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

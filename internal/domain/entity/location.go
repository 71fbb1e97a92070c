package entity

import "time"

// Location representa una bodega o ubicación física de stock.
// El cumplimiento de pedidos netea contra la ubicación por defecto;
// los ajustes manuales pueden apuntar a cualquier ubicación.
type Location struct {
	ID        string
	Name      string
	Address   string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

package entity

import "time"

// Roles válidos para User. El rol llega ya autenticado al núcleo;
// la tabla de permisos por transición vive en internal/domain/order.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller" // lado proveedor: responde órdenes de compra
	RoleBuyer  = "buyer"  // lado cliente: crea pedidos de venta
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, seller, buyer
	PartnerID    string // seller -> Supplier.ID, buyer -> Customer.ID; vacío para admin
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

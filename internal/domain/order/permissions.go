// Package order implementa la máquina de estados del ciclo de vida de
// pedidos (compra, venta, devolución) como funciones puras: validan la
// transición según estado actual, comando y rol del actor, y devuelven el
// pedido actualizado más los efectos de stock a aplicar. Nunca hacen I/O;
// el orquestador de application aplica efectos y persistencia.
package order

import "github.com/jcastro/pedidos-api/internal/domain/entity"

// Kind identifica el tipo de pedido.
type Kind string

const (
	KindPurchase Kind = "purchase"
	KindSales    Kind = "sales"
	KindReturn   Kind = "return"
)

// Actor es quien intenta la transición. El rol llega ya autenticado y se
// confía en él (la autenticación no es responsabilidad del núcleo).
type Actor struct {
	ID   string
	Role string // entity.RoleAdmin, RoleSeller, RoleBuyer
}

type transitionKey struct {
	kind Kind
	from string
	to   string
}

// allowedRoles es la tabla de permisos (kind, desde, hacia) -> roles.
// Solo existen las transiciones adyacentes del ciclo lineal: cualquier salto
// o retroceso no tiene entrada y se rechaza.
var allowedRoles = map[transitionKey][]string{
	// Pedido de compra: requested → supplier_submitted → approved → received
	{KindPurchase, entity.POStatusRequested, entity.POStatusSupplierSubmitted}: {entity.RoleSeller},
	{KindPurchase, entity.POStatusSupplierSubmitted, entity.POStatusApproved}:  {entity.RoleAdmin},
	{KindPurchase, entity.POStatusApproved, entity.POStatusReceived}:           {entity.RoleAdmin},

	// Pedido de venta: requested → approved → received
	{KindSales, entity.SOStatusRequested, entity.SOStatusApproved}: {entity.RoleAdmin},
	{KindSales, entity.SOStatusApproved, entity.SOStatusReceived}:  {entity.RoleAdmin, entity.RoleBuyer},

	// Devolución: requested → received → closed (solo admin)
	{KindReturn, entity.ReturnStatusRequested, entity.ReturnStatusReceived}: {entity.RoleAdmin},
	{KindReturn, entity.ReturnStatusReceived, entity.ReturnStatusClosed}:    {entity.RoleAdmin},
}

// TransitionExists indica si (desde, hacia) es una transición definida del ciclo.
func TransitionExists(kind Kind, from, to string) bool {
	_, ok := allowedRoles[transitionKey{kind, from, to}]
	return ok
}

// RoleAllowed indica si el rol puede ejecutar la transición (desde, hacia).
func RoleAllowed(kind Kind, from, to, role string) bool {
	roles, ok := allowedRoles[transitionKey{kind, from, to}]
	if !ok {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

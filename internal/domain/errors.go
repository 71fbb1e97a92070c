package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Todos son recuperables: se reportan al actor y ninguna operación queda a medias.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Libro de inventario (ledger).
	ErrInvalidQuantity = errors.New("cantidad inválida para el movimiento")
	ErrNegativeStock   = errors.New("el movimiento dejaría el stock en negativo")

	// Ciclo de vida de pedidos.
	ErrEmptyOrder          = errors.New("el pedido debe tener al menos una línea")
	ErrDuplicateLineItem   = errors.New("el artículo aparece más de una vez en el pedido")
	ErrIllegalTransition   = errors.New("transición de estado no permitida")
	ErrMissingReceivedDate = errors.New("la fecha de recepción es obligatoria")
	ErrStaleTransition     = errors.New("el pedido fue modificado por otra operación; recargar y reintentar")
)

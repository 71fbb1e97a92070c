package order

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// Command es la unión cerrada de comandos de transición. Cada variante fija
// el estado destino, de modo que la máquina es exhaustiva y testeable en vez
// de aceptar un objeto de actualización parcial genérico.
type Command interface {
	isCommand()
}

// SupplierRespond es la transición compuesta del proveedor sobre un pedido
// de compra requested: cambia el estado a supplier_submitted y reescribe en
// la misma operación líneas (costos), fechas y condiciones de pago.
type SupplierRespond struct {
	Lines        []entity.OrderLine
	ExpectedDate *time.Time
	DeliveryDate *time.Time
	PaymentTerms string
	TaxRate      decimal.Decimal
	Notes        string
}

// Approve avanza al siguiente estado de aprobación
// (compra: supplier_submitted → approved; venta: requested → approved).
type Approve struct {
	ApprovedDate *time.Time // opcional; ventas lo registran si llega
}

// Receive marca el pedido como recibido. ReceivedDate es obligatorio: sin él
// la transición falla con ErrMissingReceivedDate. Al recibir, la máquina
// emite los efectos de stock (acreditar compras, debitar ventas).
type Receive struct {
	ReceivedDate *time.Time
}

// ReceiveReturn marca una devolución como recibida (requested → received).
type ReceiveReturn struct{}

// CloseReturn cierra una devolución recibida (received → closed).
type CloseReturn struct{}

func (SupplierRespond) isCommand() {}
func (Approve) isCommand()         {}
func (Receive) isCommand()         {}
func (ReceiveReturn) isCommand()   {}
func (CloseReturn) isCommand()     {}

// StockEffect es un efecto de ledger que el orquestador debe aplicar de forma
// atómica junto con la transición. Quantity es magnitud positiva; el signo
// del delta lo determina Kind al registrarse en el ledger.
type StockEffect struct {
	ItemID   string
	Kind     string // entity.TxnKindReceive o entity.TxnKindIssue
	Quantity int64
}

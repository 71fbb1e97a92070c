package order_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/order"
)

var (
	admin  = order.Actor{ID: "u-admin", Role: entity.RoleAdmin}
	seller = order.Actor{ID: "u-seller", Role: entity.RoleSeller}
	buyer  = order.Actor{ID: "u-buyer", Role: entity.RoleBuyer}
)

func fecha(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

// purchaseRequested arma el pedido de compra del escenario de referencia:
// líneas [(itemA, 10 × 5), (itemB, 2 × 50)] con IVA 18%.
func purchaseRequested() entity.PurchaseOrder {
	return entity.PurchaseOrder{
		ID:         "po-1",
		SupplierID: "sup-1",
		Status:     entity.POStatusRequested,
		TaxRate:    decimal.NewFromFloat(0.18),
		Lines: []entity.OrderLine{
			{ItemID: "itemA", Quantity: 10, UnitPrice: decimal.NewFromInt(5)},
			{ItemID: "itemB", Quantity: 2, UnitPrice: decimal.NewFromInt(50)},
		},
	}
}

// ── Montos calculados ─────────────────────────────────────────────────────────

func TestMontos_EscenarioReferencia(t *testing.T) {
	po := purchaseRequested()

	assert.True(t, po.Subtotal().Equal(decimal.NewFromInt(150)), "subtotal = 10×5 + 2×50 = 150")
	assert.True(t, po.Tax().Equal(decimal.NewFromInt(27)), "impuesto = 150 × 0.18 = 27")
	assert.True(t, po.Total().Equal(decimal.NewFromInt(177)), "total = 150 + 27 = 177")
}

// ── Ciclo de vida de compra ───────────────────────────────────────────────────

func TestCompra_CicloCompleto(t *testing.T) {
	po := purchaseRequested()

	// 1. El proveedor responde: transición compuesta con reescritura de campos
	respond := order.SupplierRespond{
		Lines: []entity.OrderLine{
			{ItemID: "itemA", Quantity: 10, UnitPrice: decimal.NewFromFloat(5.50)},
			{ItemID: "itemB", Quantity: 2, UnitPrice: decimal.NewFromInt(48)},
		},
		ExpectedDate: fecha("2024-01-10"),
		PaymentTerms: "30 días",
		TaxRate:      decimal.NewFromFloat(0.18),
	}
	submitted, effects, err := order.TransitionPurchase(po, respond, seller)
	require.NoError(t, err)
	assert.Empty(t, effects, "responder no toca el ledger")
	assert.Equal(t, entity.POStatusSupplierSubmitted, submitted.Status)
	assert.True(t, submitted.Lines[0].UnitPrice.Equal(decimal.NewFromFloat(5.50)), "el proveedor reescribe costos")
	assert.Equal(t, "30 días", submitted.PaymentTerms)
	require.NotNil(t, submitted.ExpectedDate)

	// 2. Admin aprueba
	approved, effects, err := order.TransitionPurchase(submitted, order.Approve{}, admin)
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, entity.POStatusApproved, approved.Status)

	// 3. Admin recibe: acredita +10 itemA y +2 itemB en el ledger
	received, effects, err := order.TransitionPurchase(approved, order.Receive{ReceivedDate: fecha("2024-01-15")}, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusReceived, received.Status)
	require.NotNil(t, received.ReceivedDate)
	require.Len(t, effects, 2)
	assert.Equal(t, order.StockEffect{ItemID: "itemA", Kind: entity.TxnKindReceive, Quantity: 10}, effects[0])
	assert.Equal(t, order.StockEffect{ItemID: "itemB", Kind: entity.TxnKindReceive, Quantity: 2}, effects[1])
}

func TestCompra_NoSePuedeSaltarEstados(t *testing.T) {
	po := purchaseRequested()

	// requested → received en una sola llamada está prohibido, incluso para admin
	_, _, err := order.TransitionPurchase(po, order.Receive{ReceivedDate: fecha("2024-01-15")}, admin)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	// requested → approved tampoco (falta la respuesta del proveedor)
	_, _, err = order.TransitionPurchase(po, order.Approve{}, admin)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestCompra_NoHayRetrocesos(t *testing.T) {
	po := purchaseRequested()
	po.Status = entity.POStatusReceived

	_, _, err := order.TransitionPurchase(po, order.Approve{}, admin)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition, "un pedido recibido es terminal")
}

func TestCompra_SoloSellerResponde(t *testing.T) {
	po := purchaseRequested()
	respond := order.SupplierRespond{
		Lines:   po.Lines,
		TaxRate: po.TaxRate,
	}

	for _, actor := range []order.Actor{admin, buyer} {
		_, _, err := order.TransitionPurchase(po, respond, actor)
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s no puede responder como proveedor", actor.Role)
	}
}

func TestCompra_SoloAdminApruebaYRecibe(t *testing.T) {
	po := purchaseRequested()
	po.Status = entity.POStatusSupplierSubmitted

	_, _, err := order.TransitionPurchase(po, order.Approve{}, seller)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	po.Status = entity.POStatusApproved
	_, _, err = order.TransitionPurchase(po, order.Receive{ReceivedDate: fecha("2024-01-15")}, seller)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCompra_RecibirSinFechaFalla(t *testing.T) {
	po := purchaseRequested()
	po.Status = entity.POStatusApproved

	_, _, err := order.TransitionPurchase(po, order.Receive{}, admin)
	assert.ErrorIs(t, err, domain.ErrMissingReceivedDate)
	assert.Equal(t, entity.POStatusApproved, po.Status, "el pedido queda sin cambios")
}

func TestCompra_RespuestaConLineasInvalidas(t *testing.T) {
	po := purchaseRequested()

	// Línea duplicada
	_, _, err := order.TransitionPurchase(po, order.SupplierRespond{
		Lines: []entity.OrderLine{
			{ItemID: "itemA", Quantity: 1, UnitPrice: decimal.NewFromInt(5)},
			{ItemID: "itemA", Quantity: 2, UnitPrice: decimal.NewFromInt(5)},
		},
	}, seller)
	assert.ErrorIs(t, err, domain.ErrDuplicateLineItem)

	// Sin líneas
	_, _, err = order.TransitionPurchase(po, order.SupplierRespond{}, seller)
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCompra_LaFuncionEsPura(t *testing.T) {
	po := purchaseRequested()
	po.Status = entity.POStatusApproved

	updated, _, err := order.TransitionPurchase(po, order.Receive{ReceivedDate: fecha("2024-01-15")}, admin)
	require.NoError(t, err)

	assert.Equal(t, entity.POStatusApproved, po.Status, "el pedido de entrada no se modifica")
	assert.Nil(t, po.ReceivedDate)
	assert.Equal(t, entity.POStatusReceived, updated.Status)
}

// ── Ciclo de vida de venta ────────────────────────────────────────────────────

func salesApproved() entity.SalesOrder {
	return entity.SalesOrder{
		ID:         "so-1",
		CustomerID: "cus-1",
		Status:     entity.SOStatusApproved,
		TaxRate:    decimal.NewFromFloat(0.19),
		Lines: []entity.OrderLine{
			{ItemID: "itemA", Quantity: 3, UnitPrice: decimal.NewFromInt(12)},
		},
	}
}

func TestVenta_AdminAprueba(t *testing.T) {
	so := salesApproved()
	so.Status = entity.SOStatusRequested

	approved, effects, err := order.TransitionSales(so, order.Approve{ApprovedDate: fecha("2024-02-01")}, admin)
	require.NoError(t, err)
	assert.Empty(t, effects)
	assert.Equal(t, entity.SOStatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedDate)
}

func TestVenta_BuyerNoPuedeAprobar(t *testing.T) {
	so := salesApproved()
	so.Status = entity.SOStatusRequested

	_, _, err := order.TransitionSales(so, order.Approve{}, buyer)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestVenta_BuyerRecibeConFecha(t *testing.T) {
	so := salesApproved()

	received, effects, err := order.TransitionSales(so, order.Receive{ReceivedDate: fecha("2024-02-05")}, buyer)
	require.NoError(t, err)
	assert.Equal(t, entity.SOStatusReceived, received.Status)
	require.Len(t, effects, 1)
	assert.Equal(t, order.StockEffect{ItemID: "itemA", Kind: entity.TxnKindIssue, Quantity: 3}, effects[0])
}

func TestVenta_BuyerNoPuedeSaltarDeRequestedAReceived(t *testing.T) {
	so := salesApproved()
	so.Status = entity.SOStatusRequested

	_, _, err := order.TransitionSales(so, order.Receive{ReceivedDate: fecha("2024-02-05")}, buyer)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestVenta_RecibirSinFechaFalla(t *testing.T) {
	so := salesApproved()

	_, _, err := order.TransitionSales(so, order.Receive{}, buyer)
	assert.ErrorIs(t, err, domain.ErrMissingReceivedDate)
}

// ── Ciclo de vida de devolución ───────────────────────────────────────────────

func TestDevolucion_CicloLinealSoloAdmin(t *testing.T) {
	ret := entity.ReturnEntry{
		ID:     "ret-1",
		Type:   entity.ReturnTypeCustomer,
		Status: entity.ReturnStatusRequested,
		Lines: []entity.OrderLine{
			{ItemID: "itemA", Quantity: 1, Reason: "empaque dañado"},
		},
	}

	received, err := order.TransitionReturn(ret, order.ReceiveReturn{}, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.ReturnStatusReceived, received.Status)

	closed, err := order.TransitionReturn(received, order.CloseReturn{}, admin)
	require.NoError(t, err)
	assert.Equal(t, entity.ReturnStatusClosed, closed.Status)

	// No admin no transiciona
	_, err = order.TransitionReturn(ret, order.ReceiveReturn{}, buyer)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Saltos prohibidos
	_, err = order.TransitionReturn(ret, order.CloseReturn{}, admin)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

func TestComandoInvalidoPorTipoDePedido(t *testing.T) {
	// SupplierRespond no aplica a ventas; ReceiveReturn no aplica a compras
	so := salesApproved()
	_, _, err := order.TransitionSales(so, order.SupplierRespond{}, seller)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)

	po := purchaseRequested()
	_, _, err = order.TransitionPurchase(po, order.ReceiveReturn{}, admin)
	assert.ErrorIs(t, err, domain.ErrIllegalTransition)
}

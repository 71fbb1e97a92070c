package order

import (
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// TransitionPurchase evalúa un comando sobre un pedido de compra y devuelve
// el pedido actualizado más los efectos de stock. Función pura: el pedido de
// entrada no se modifica y no se toca ni ledger ni persistencia.
func TransitionPurchase(o entity.PurchaseOrder, cmd Command, actor Actor) (entity.PurchaseOrder, []StockEffect, error) {
	switch c := cmd.(type) {
	case SupplierRespond:
		if err := checkTransition(KindPurchase, o.Status, entity.POStatusSupplierSubmitted, actor.Role); err != nil {
			return o, nil, err
		}
		// Transición compuesta: el proveedor reescribe líneas, fechas y
		// condiciones en la misma operación que el cambio de estado.
		if err := ValidateLines(c.Lines); err != nil {
			return o, nil, err
		}
		if err := ValidateTaxRate(c.TaxRate); err != nil {
			return o, nil, err
		}
		updated := o
		updated.Status = entity.POStatusSupplierSubmitted
		updated.Lines = cloneLines(c.Lines, o.ID)
		updated.ExpectedDate = c.ExpectedDate
		updated.DeliveryDate = c.DeliveryDate
		updated.PaymentTerms = c.PaymentTerms
		updated.TaxRate = c.TaxRate
		if c.Notes != "" {
			updated.Notes = c.Notes
		}
		return updated, nil, nil

	case Approve:
		if err := checkTransition(KindPurchase, o.Status, entity.POStatusApproved, actor.Role); err != nil {
			return o, nil, err
		}
		updated := o
		updated.Status = entity.POStatusApproved
		return updated, nil, nil

	case Receive:
		if err := checkTransition(KindPurchase, o.Status, entity.POStatusReceived, actor.Role); err != nil {
			return o, nil, err
		}
		if c.ReceivedDate == nil {
			return o, nil, domain.ErrMissingReceivedDate
		}
		updated := o
		updated.Status = entity.POStatusReceived
		updated.ReceivedDate = c.ReceivedDate
		// Acreditar el ledger: +cantidad por línea en la ubicación por defecto.
		effects := make([]StockEffect, 0, len(o.Lines))
		for _, l := range o.Lines {
			effects = append(effects, StockEffect{
				ItemID:   l.ItemID,
				Kind:     entity.TxnKindReceive,
				Quantity: l.Quantity,
			})
		}
		return updated, effects, nil

	default:
		return o, nil, domain.ErrIllegalTransition
	}
}

// TransitionSales evalúa un comando sobre un pedido de venta.
func TransitionSales(o entity.SalesOrder, cmd Command, actor Actor) (entity.SalesOrder, []StockEffect, error) {
	switch c := cmd.(type) {
	case Approve:
		if err := checkTransition(KindSales, o.Status, entity.SOStatusApproved, actor.Role); err != nil {
			return o, nil, err
		}
		updated := o
		updated.Status = entity.SOStatusApproved
		updated.ApprovedDate = c.ApprovedDate
		return updated, nil, nil

	case Receive:
		if err := checkTransition(KindSales, o.Status, entity.SOStatusReceived, actor.Role); err != nil {
			return o, nil, err
		}
		if c.ReceivedDate == nil {
			return o, nil, domain.ErrMissingReceivedDate
		}
		updated := o
		updated.Status = entity.SOStatusReceived
		updated.ReceivedDate = c.ReceivedDate
		// Debitar el ledger: -cantidad por línea. Si alguna línea dejara un
		// artículo en negativo, el orquestador aborta toda la transición.
		effects := make([]StockEffect, 0, len(o.Lines))
		for _, l := range o.Lines {
			effects = append(effects, StockEffect{
				ItemID:   l.ItemID,
				Kind:     entity.TxnKindIssue,
				Quantity: l.Quantity,
			})
		}
		return updated, effects, nil

	default:
		return o, nil, domain.ErrIllegalTransition
	}
}

// TransitionReturn evalúa un comando sobre una devolución. Las devoluciones
// no emiten efectos de ledger en este núcleo (decisión de política pendiente).
func TransitionReturn(r entity.ReturnEntry, cmd Command, actor Actor) (entity.ReturnEntry, error) {
	switch cmd.(type) {
	case ReceiveReturn:
		if err := checkTransition(KindReturn, r.Status, entity.ReturnStatusReceived, actor.Role); err != nil {
			return r, err
		}
		updated := r
		updated.Status = entity.ReturnStatusReceived
		return updated, nil

	case CloseReturn:
		if err := checkTransition(KindReturn, r.Status, entity.ReturnStatusClosed, actor.Role); err != nil {
			return r, err
		}
		updated := r
		updated.Status = entity.ReturnStatusClosed
		return updated, nil

	default:
		return r, domain.ErrIllegalTransition
	}
}

// checkTransition valida primero que (desde, hacia) exista en el ciclo lineal
// y después que el rol esté autorizado. Saltos y retrocesos fallan con
// ErrIllegalTransition; un rol sin permiso sobre una transición válida falla
// con ErrForbidden.
func checkTransition(kind Kind, from, to, role string) error {
	if !TransitionExists(kind, from, to) {
		return domain.ErrIllegalTransition
	}
	if !RoleAllowed(kind, from, to, role) {
		return domain.ErrForbidden
	}
	return nil
}

// cloneLines copia las líneas reescritas atándolas al pedido dueño.
func cloneLines(lines []entity.OrderLine, orderID string) []entity.OrderLine {
	cloned := make([]entity.OrderLine, len(lines))
	copy(cloned, lines)
	for i := range cloned {
		cloned[i].OrderID = orderID
	}
	return cloned
}

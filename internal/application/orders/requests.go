package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/order"
)

// TransitionPurchaseFromRequest adapta el request HTTP al comando de la
// máquina de estados según el estado destino pedido.
func (uc *LifecycleUseCase) TransitionPurchaseFromRequest(ctx context.Context, orderID string, in dto.PurchaseTransitionRequest, actor order.Actor) (*entity.PurchaseOrder, error) {
	cmd, err := purchaseCommand(orderID, in)
	if err != nil {
		return nil, err
	}
	return uc.TransitionPurchase(ctx, orderID, cmd, actor)
}

func purchaseCommand(orderID string, in dto.PurchaseTransitionRequest) (order.Command, error) {
	switch in.Status {
	case entity.POStatusSupplierSubmitted:
		expectedDate, err := parseDate(in.ExpectedDate)
		if err != nil {
			return nil, err
		}
		deliveryDate, err := parseDate(in.DeliveryDate)
		if err != nil {
			return nil, err
		}
		lines := make([]entity.OrderLine, 0, len(in.Lines))
		for _, l := range in.Lines {
			// la respuesta del proveedor fija costos: precio obligatorio
			if l.UnitPrice == nil {
				return nil, domain.ErrInvalidInput
			}
			lines = append(lines, entity.OrderLine{
				ID:        uuid.New().String(),
				OrderID:   orderID,
				ItemID:    l.ItemID,
				Quantity:  l.Quantity,
				UnitPrice: *l.UnitPrice,
			})
		}
		return order.SupplierRespond{
			Lines:        lines,
			ExpectedDate: expectedDate,
			DeliveryDate: deliveryDate,
			PaymentTerms: in.PaymentTerms,
			TaxRate:      in.TaxRate,
			Notes:        in.Notes,
		}, nil

	case entity.POStatusApproved:
		return order.Approve{}, nil

	case entity.POStatusReceived:
		receivedDate, err := parseDate(in.ReceivedDate)
		if err != nil {
			return nil, err
		}
		return order.Receive{ReceivedDate: receivedDate}, nil

	default:
		return nil, domain.ErrInvalidInput
	}
}

// TransitionSalesFromRequest adapta el request HTTP al comando de venta.
func (uc *LifecycleUseCase) TransitionSalesFromRequest(ctx context.Context, orderID string, in dto.SalesTransitionRequest, actor order.Actor) (*entity.SalesOrder, error) {
	var cmd order.Command
	switch in.Status {
	case entity.SOStatusApproved:
		approvedDate, err := parseDate(in.ApprovedDate)
		if err != nil {
			return nil, err
		}
		cmd = order.Approve{ApprovedDate: approvedDate}
	case entity.SOStatusReceived:
		receivedDate, err := parseDate(in.ReceivedDate)
		if err != nil {
			return nil, err
		}
		cmd = order.Receive{ReceivedDate: receivedDate}
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.TransitionSales(ctx, orderID, cmd, actor)
}

// TransitionReturnFromRequest adapta el request HTTP al comando de devolución.
func (uc *LifecycleUseCase) TransitionReturnFromRequest(ctx context.Context, returnID string, in dto.ReturnTransitionRequest, actor order.Actor) (*entity.ReturnEntry, error) {
	var cmd order.Command
	switch in.Status {
	case entity.ReturnStatusReceived:
		cmd = order.ReceiveReturn{}
	case entity.ReturnStatusClosed:
		cmd = order.CloseReturn{}
	default:
		return nil, domain.ErrInvalidInput
	}
	return uc.TransitionReturn(ctx, returnID, cmd, actor)
}

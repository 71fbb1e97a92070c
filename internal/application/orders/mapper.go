package orders

import (
	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
)

// ToPurchaseResponse convierte la entidad a DTO con montos calculados.
func ToPurchaseResponse(o *entity.PurchaseOrder) dto.PurchaseOrderResponse {
	return dto.PurchaseOrderResponse{
		ID:              o.ID,
		SupplierID:      o.SupplierID,
		Status:          o.Status,
		Lines:           toLineResponses(o.Lines),
		ExpectedDate:    o.ExpectedDate,
		DeliveryDate:    o.DeliveryDate,
		ReceivedDate:    o.ReceivedDate,
		PaymentTerms:    o.PaymentTerms,
		TaxRate:         o.TaxRate,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		Subtotal:        o.Subtotal(),
		Tax:             o.Tax(),
		Total:           o.Total(),
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToSalesResponse convierte la entidad a DTO con montos calculados.
func ToSalesResponse(o *entity.SalesOrder) dto.SalesOrderResponse {
	return dto.SalesOrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		Status:          o.Status,
		Lines:           toLineResponses(o.Lines),
		DeliveryDate:    o.DeliveryDate,
		ApprovedDate:    o.ApprovedDate,
		ReceivedDate:    o.ReceivedDate,
		PaymentTerms:    o.PaymentTerms,
		TaxRate:         o.TaxRate,
		ShippingAddress: o.ShippingAddress,
		Notes:           o.Notes,
		Subtotal:        o.Subtotal(),
		Tax:             o.Tax(),
		Total:           o.Total(),
		Version:         o.Version,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

// ToReturnResponse convierte la entidad a DTO.
func ToReturnResponse(r *entity.ReturnEntry) dto.ReturnResponse {
	return dto.ReturnResponse{
		ID:        r.ID,
		Type:      r.Type,
		PartnerID: r.PartnerID,
		Status:    r.Status,
		Lines:     toLineResponses(r.Lines),
		Notes:     r.Notes,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toLineResponses(lines []entity.OrderLine) []dto.OrderLineResponse {
	out := make([]dto.OrderLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.OrderLineResponse{
			ID:        l.ID,
			ItemID:    l.ItemID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total(),
			Reason:    l.Reason,
		})
	}
	return out
}

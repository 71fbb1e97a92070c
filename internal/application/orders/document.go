package orders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// OrderDocument es el modelo plano que consume el generador de PDF.
type OrderDocument struct {
	Title        string // PEDIDO DE COMPRA / PEDIDO DE VENTA
	OrderID      string
	Status       string
	PartnerLabel string // Proveedor / Cliente
	PartnerName  string
	PartnerTaxID string
	Date         time.Time
	Lines        []DocumentLine
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Notes        string
}

// DocumentLine una línea del documento, con el nombre de artículo resuelto.
type DocumentLine struct {
	ItemName  string
	Quantity  int64
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// OrderPDFGenerator puerto del generador de PDF de pedidos.
type OrderPDFGenerator interface {
	Generate(ctx context.Context, doc OrderDocument) ([]byte, error)
}

// DocumentUseCase arma el documento imprimible de un pedido.
type DocumentUseCase struct {
	purchaseRepo repository.PurchaseOrderRepository
	salesRepo    repository.SalesOrderRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	generator    OrderPDFGenerator
}

// NewDocumentUseCase construye el caso de uso.
func NewDocumentUseCase(
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	generator OrderPDFGenerator,
) *DocumentUseCase {
	return &DocumentUseCase{
		purchaseRepo: purchaseRepo,
		salesRepo:    salesRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		generator:    generator,
	}
}

// PurchasePDF genera el PDF de un pedido de compra.
func (uc *DocumentUseCase) PurchasePDF(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.purchaseRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	supplier, err := uc.supplierRepo.GetByID(o.SupplierID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.documentLines(o.Lines)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(ctx, OrderDocument{
		Title:        "PEDIDO DE COMPRA",
		OrderID:      o.ID,
		Status:       o.Status,
		PartnerLabel: "Proveedor",
		PartnerName:  supplier.Name,
		PartnerTaxID: supplier.TaxID,
		Date:         o.CreatedAt,
		Lines:        lines,
		Subtotal:     o.Subtotal(),
		Tax:          o.Tax(),
		Total:        o.Total(),
		Notes:        o.Notes,
	})
}

// SalesPDF genera el PDF de un pedido de venta.
func (uc *DocumentUseCase) SalesPDF(ctx context.Context, orderID string) ([]byte, error) {
	o, err := uc.salesRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customerRepo.GetByID(o.CustomerID)
	if err != nil {
		return nil, err
	}
	lines, err := uc.documentLines(o.Lines)
	if err != nil {
		return nil, err
	}
	return uc.generator.Generate(ctx, OrderDocument{
		Title:        "PEDIDO DE VENTA",
		OrderID:      o.ID,
		Status:       o.Status,
		PartnerLabel: "Cliente",
		PartnerName:  customer.Name,
		PartnerTaxID: customer.TaxID,
		Date:         o.CreatedAt,
		Lines:        lines,
		Subtotal:     o.Subtotal(),
		Tax:          o.Tax(),
		Total:        o.Total(),
		Notes:        o.Notes,
	})
}

func (uc *DocumentUseCase) documentLines(lines []entity.OrderLine) ([]DocumentLine, error) {
	out := make([]DocumentLine, 0, len(lines))
	for _, l := range lines {
		name := l.ItemID
		if item, err := uc.itemRepo.GetByID(l.ItemID); err == nil {
			name = item.Name
		}
		out = append(out, DocumentLine{
			ItemName:  name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total(),
		})
	}
	return out, nil
}

package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/order"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// CreateUseCase crea pedidos de compra, venta y devoluciones en estado
// requested, validando referencias (proveedor/cliente/artículos) y aplicando
// las reglas por rol: un buyer nunca fija precios ni estado inicial.
type CreateUseCase struct {
	purchaseRepo repository.PurchaseOrderRepository
	salesRepo    repository.SalesOrderRepository
	returnRepo   repository.ReturnRepository
	supplierRepo repository.SupplierRepository
	customerRepo repository.CustomerRepository
	itemRepo     repository.ItemRepository
	userRepo     repository.UserRepository
}

// NewCreateUseCase construye el caso de uso.
func NewCreateUseCase(
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	returnRepo repository.ReturnRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) *CreateUseCase {
	return &CreateUseCase{
		purchaseRepo: purchaseRepo,
		salesRepo:    salesRepo,
		returnRepo:   returnRepo,
		supplierRepo: supplierRepo,
		customerRepo: customerRepo,
		itemRepo:     itemRepo,
		userRepo:     userRepo,
	}
}

// CreatePurchase crea un pedido de compra en requested. Solo admin o seller.
// El costo unitario de línea viene del request o, en su ausencia, del costo
// de catálogo del artículo.
func (uc *CreateUseCase) CreatePurchase(ctx context.Context, actor order.Actor, in dto.CreatePurchaseOrderRequest) (*entity.PurchaseOrder, error) {
	if actor.Role != entity.RoleAdmin && actor.Role != entity.RoleSeller {
		return nil, domain.ErrForbidden
	}
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.supplierRepo.GetByID(in.SupplierID); err != nil {
		return nil, err
	}
	if err := order.ValidateTaxRate(in.TaxRate); err != nil {
		return nil, err
	}
	expectedDate, err := parseDate(in.ExpectedDate)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	lines, err := uc.buildLines(orderID, in.Lines, lineCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	po := &entity.PurchaseOrder{
		ID:              orderID,
		SupplierID:      in.SupplierID,
		Status:          entity.POStatusRequested,
		Lines:           lines,
		ExpectedDate:    expectedDate,
		PaymentTerms:    in.PaymentTerms,
		TaxRate:         in.TaxRate,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		Version:         1,
		CreatedBy:       actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.purchaseRepo.Create(po); err != nil {
		return nil, err
	}
	return po, nil
}

// CreateSales crea un pedido de venta en requested. Un buyer compra para su
// propio cliente y a precio de catálogo: el customer_id y los precios del
// request se ignoran. Un admin puede fijar cliente y precios.
func (uc *CreateUseCase) CreateSales(ctx context.Context, actor order.Actor, in dto.CreateSalesOrderRequest) (*entity.SalesOrder, error) {
	var customerID string
	priceOf := linePrice

	switch actor.Role {
	case entity.RoleAdmin:
		customerID = in.CustomerID
		priceOf = linePriceOrCatalog
	case entity.RoleBuyer:
		user, err := uc.userRepo.GetByID(actor.ID)
		if err != nil {
			return nil, err
		}
		if user.PartnerID == "" {
			return nil, domain.ErrForbidden
		}
		customerID = user.PartnerID
	default:
		return nil, domain.ErrForbidden
	}

	if customerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.customerRepo.GetByID(customerID); err != nil {
		return nil, err
	}
	if err := order.ValidateTaxRate(in.TaxRate); err != nil {
		return nil, err
	}
	deliveryDate, err := parseDate(in.DeliveryDate)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New().String()
	lines, err := uc.buildLines(orderID, in.Lines, priceOf)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	so := &entity.SalesOrder{
		ID:              orderID,
		CustomerID:      customerID,
		Status:          entity.SOStatusRequested,
		Lines:           lines,
		DeliveryDate:    deliveryDate,
		PaymentTerms:    in.PaymentTerms,
		TaxRate:         in.TaxRate,
		ShippingAddress: in.ShippingAddress,
		Notes:           in.Notes,
		Version:         1,
		CreatedBy:       actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.salesRepo.Create(so); err != nil {
		return nil, err
	}
	return so, nil
}

// CreateReturn crea una devolución en requested. Un buyer solo devuelve como
// su propio cliente; un seller solo hacia su propio proveedor; un admin elige
// tipo y contraparte libremente.
func (uc *CreateUseCase) CreateReturn(ctx context.Context, actor order.Actor, in dto.CreateReturnRequest) (*entity.ReturnEntry, error) {
	if in.Type != entity.ReturnTypeCustomer && in.Type != entity.ReturnTypeSupplier {
		return nil, domain.ErrInvalidInput
	}

	partnerID := in.PartnerID
	switch actor.Role {
	case entity.RoleAdmin:
		// sin restricción
	case entity.RoleBuyer:
		if in.Type != entity.ReturnTypeCustomer {
			return nil, domain.ErrForbidden
		}
		user, err := uc.userRepo.GetByID(actor.ID)
		if err != nil {
			return nil, err
		}
		if user.PartnerID == "" {
			return nil, domain.ErrForbidden
		}
		partnerID = user.PartnerID
	case entity.RoleSeller:
		if in.Type != entity.ReturnTypeSupplier {
			return nil, domain.ErrForbidden
		}
		user, err := uc.userRepo.GetByID(actor.ID)
		if err != nil {
			return nil, err
		}
		if user.PartnerID == "" {
			return nil, domain.ErrForbidden
		}
		partnerID = user.PartnerID
	default:
		return nil, domain.ErrForbidden
	}

	if partnerID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Type == entity.ReturnTypeCustomer {
		if _, err := uc.customerRepo.GetByID(partnerID); err != nil {
			return nil, err
		}
	} else {
		if _, err := uc.supplierRepo.GetByID(partnerID); err != nil {
			return nil, err
		}
	}

	returnID := uuid.New().String()
	lines, err := uc.buildLines(returnID, in.Lines, linePriceOrCatalog)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ret := &entity.ReturnEntry{
		ID:        returnID,
		Type:      in.Type,
		PartnerID: partnerID,
		Status:    entity.ReturnStatusRequested,
		Lines:     lines,
		Notes:     in.Notes,
		Version:   1,
		CreatedBy: actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.returnRepo.Create(ret); err != nil {
		return nil, err
	}
	return ret, nil
}

// buildLines materializa las líneas del request resolviendo cada artículo en
// el catálogo y el precio unitario según la regla del llamador, y las valida
// como conjunto (no vacías, sin duplicados, cantidades positivas).
func (uc *CreateUseCase) buildLines(orderID string, reqs []dto.OrderLineRequest, priceOf linePricer) ([]entity.OrderLine, error) {
	lines := make([]entity.OrderLine, 0, len(reqs))
	for _, r := range reqs {
		if r.ItemID == "" {
			return nil, domain.ErrInvalidInput
		}
		item, err := uc.itemRepo.GetByID(r.ItemID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, entity.OrderLine{
			ID:        uuid.New().String(),
			OrderID:   orderID,
			ItemID:    r.ItemID,
			Quantity:  r.Quantity,
			UnitPrice: priceOf(item, r),
			Reason:    r.Reason,
		})
	}
	if err := order.ValidateLines(lines); err != nil {
		return nil, err
	}
	return lines, nil
}

// linePricer decide el precio unitario de una línea a partir del artículo de
// catálogo y del request.
type linePricer func(item *entity.Item, r dto.OrderLineRequest) decimal.Decimal

// linePrice precio de catálogo siempre (regla del buyer).
func linePrice(item *entity.Item, _ dto.OrderLineRequest) decimal.Decimal {
	return item.Price
}

// linePriceOrCatalog precio del request si viene, catálogo en su ausencia.
func linePriceOrCatalog(item *entity.Item, r dto.OrderLineRequest) decimal.Decimal {
	if r.UnitPrice != nil {
		return *r.UnitPrice
	}
	return item.Price
}

// lineCost costo del request si viene, costo de catálogo en su ausencia
// (líneas de pedidos de compra).
func lineCost(item *entity.Item, r dto.OrderLineRequest) decimal.Decimal {
	if r.UnitPrice != nil {
		return *r.UnitPrice
	}
	return item.Cost
}

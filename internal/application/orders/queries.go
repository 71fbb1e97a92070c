package orders

import (
	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/order"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// QueryUseCase lecturas de pedidos. Un buyer solo ve los pedidos de venta de
// su propio cliente.
type QueryUseCase struct {
	purchaseRepo repository.PurchaseOrderRepository
	salesRepo    repository.SalesOrderRepository
	returnRepo   repository.ReturnRepository
	userRepo     repository.UserRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	returnRepo repository.ReturnRepository,
	userRepo repository.UserRepository,
) *QueryUseCase {
	return &QueryUseCase{
		purchaseRepo: purchaseRepo,
		salesRepo:    salesRepo,
		returnRepo:   returnRepo,
		userRepo:     userRepo,
	}
}

// GetPurchase devuelve un pedido de compra.
func (uc *QueryUseCase) GetPurchase(id string) (*dto.PurchaseOrderResponse, error) {
	o, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToPurchaseResponse(o)
	return &resp, nil
}

// ListPurchases lista pedidos de compra; status vacío lista todos.
func (uc *QueryUseCase) ListPurchases(status string, page dto.PageRequest) ([]dto.PurchaseOrderResponse, error) {
	page.DefaultPage()
	list, err := uc.purchaseRepo.List(status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToPurchaseResponse(o))
	}
	return out, nil
}

// GetSales devuelve un pedido de venta.
func (uc *QueryUseCase) GetSales(id string) (*dto.SalesOrderResponse, error) {
	o, err := uc.salesRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToSalesResponse(o)
	return &resp, nil
}

// ListSales lista pedidos de venta. Para un buyer, la lista se restringe a su
// propio cliente sin importar los filtros pedidos.
func (uc *QueryUseCase) ListSales(actor order.Actor, status string, page dto.PageRequest) ([]dto.SalesOrderResponse, error) {
	page.DefaultPage()
	var (
		list []*entity.SalesOrder
		err  error
	)
	if actor.Role == entity.RoleBuyer {
		user, uerr := uc.userRepo.GetByID(actor.ID)
		if uerr != nil {
			return nil, uerr
		}
		list, err = uc.salesRepo.ListByCustomer(user.PartnerID, page.Limit, page.Offset)
	} else {
		list, err = uc.salesRepo.List(status, page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.SalesOrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, ToSalesResponse(o))
	}
	return out, nil
}

// GetReturn devuelve una devolución.
func (uc *QueryUseCase) GetReturn(id string) (*dto.ReturnResponse, error) {
	r, err := uc.returnRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := ToReturnResponse(r)
	return &resp, nil
}

// ListReturns lista devoluciones filtrando por tipo y estado (vacío = todos).
func (uc *QueryUseCase) ListReturns(returnType, status string, page dto.PageRequest) ([]dto.ReturnResponse, error) {
	page.DefaultPage()
	list, err := uc.returnRepo.List(returnType, status, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReturnResponse, 0, len(list))
	for _, r := range list {
		out = append(out, ToReturnResponse(r))
	}
	return out, nil
}

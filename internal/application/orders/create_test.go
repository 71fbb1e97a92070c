package orders

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/order"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// seedCatalog carga proveedor, cliente, usuarios y dos artículos de catálogo.
func seedCatalog(f *fixture) {
	f.supplierRepo.suppliers["prov-1"] = &entity.Supplier{ID: "prov-1", Name: "Aceros del Sur"}
	f.customerRepo.customers["cli-1"] = &entity.Customer{ID: "cli-1", Name: "Ferretería Central"}
	f.userRepo.users["buyer-1"] = &entity.User{ID: "buyer-1", Role: entity.RoleBuyer, PartnerID: "cli-1"}
	f.userRepo.users["seller-1"] = &entity.User{ID: "seller-1", Role: entity.RoleSeller, PartnerID: "prov-1"}
	f.itemRepo.items["item-a"] = &entity.Item{ID: "item-a", SKU: "TOR-01", Cost: dec("10"), Price: dec("25"), Quantity: 5}
	f.itemRepo.items["item-b"] = &entity.Item{ID: "item-b", SKU: "TUE-02", Cost: dec("4"), Price: dec("9"), Quantity: 3}
}

func TestCreatePurchase_Seller(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	po, err := f.create.CreatePurchase(context.Background(), order.Actor{ID: "seller-1", Role: entity.RoleSeller}, dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-a", Quantity: 10, UnitPrice: decPtr("9.50")},
			{ItemID: "item-b", Quantity: 2},
		},
		TaxRate: dec("0.18"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.POStatusRequested, po.Status)
	assert.Equal(t, int64(1), po.Version)
	assert.True(t, po.Lines[0].UnitPrice.Equal(dec("9.50")))
	// sin precio en el request, la línea toma el costo de catálogo
	assert.True(t, po.Lines[1].UnitPrice.Equal(dec("4")))
}

func TestCreatePurchase_BuyerProhibido(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreatePurchase(context.Background(), order.Actor{ID: "buyer-1", Role: entity.RoleBuyer}, dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Lines:      []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreatePurchase_ProveedorInexistente(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreatePurchase(context.Background(), order.Actor{ID: "admin-1", Role: entity.RoleAdmin}, dto.CreatePurchaseOrderRequest{
		SupplierID: "no-existe",
		Lines:      []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreatePurchase_SinLineas(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreatePurchase(context.Background(), order.Actor{ID: "admin-1", Role: entity.RoleAdmin}, dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyOrder)
}

func TestCreatePurchase_LineaDuplicada(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreatePurchase(context.Background(), order.Actor{ID: "admin-1", Role: entity.RoleAdmin}, dto.CreatePurchaseOrderRequest{
		SupplierID: "prov-1",
		Lines: []dto.OrderLineRequest{
			{ItemID: "item-a", Quantity: 1},
			{ItemID: "item-a", Quantity: 2},
		},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateLineItem)
}

func TestCreateSales_BuyerPrecioDeCatalogo(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	// el buyer intenta fijar precio y cliente ajenos: ambos se ignoran
	so, err := f.create.CreateSales(context.Background(), order.Actor{ID: "buyer-1", Role: entity.RoleBuyer}, dto.CreateSalesOrderRequest{
		CustomerID: "otro-cliente",
		Lines:      []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 2, UnitPrice: decPtr("0.01")}},
		TaxRate:    dec("0.18"),
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-1", so.CustomerID)
	assert.Equal(t, entity.SOStatusRequested, so.Status)
	assert.True(t, so.Lines[0].UnitPrice.Equal(dec("25")))
}

func TestCreateSales_BuyerSinPartner(t *testing.T) {
	f := newFixture()
	seedCatalog(f)
	f.userRepo.users["huerfano"] = &entity.User{ID: "huerfano", Role: entity.RoleBuyer}

	_, err := f.create.CreateSales(context.Background(), order.Actor{ID: "huerfano", Role: entity.RoleBuyer}, dto.CreateSalesOrderRequest{
		Lines: []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateSales_AdminFijaPrecio(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	so, err := f.create.CreateSales(context.Background(), order.Actor{ID: "admin-1", Role: entity.RoleAdmin}, dto.CreateSalesOrderRequest{
		CustomerID: "cli-1",
		Lines:      []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1, UnitPrice: decPtr("30")}},
	})
	require.NoError(t, err)
	assert.True(t, so.Lines[0].UnitPrice.Equal(dec("30")))
}

func TestCreateSales_SellerProhibido(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreateSales(context.Background(), order.Actor{ID: "seller-1", Role: entity.RoleSeller}, dto.CreateSalesOrderRequest{
		CustomerID: "cli-1",
		Lines:      []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReturn_BuyerSoloTipoCustomer(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	ret, err := f.create.CreateReturn(context.Background(), order.Actor{ID: "buyer-1", Role: entity.RoleBuyer}, dto.CreateReturnRequest{
		Type:  entity.ReturnTypeCustomer,
		Lines: []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1, Reason: "defectuoso"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "cli-1", ret.PartnerID)
	assert.Equal(t, entity.ReturnStatusRequested, ret.Status)
	assert.Equal(t, "defectuoso", ret.Lines[0].Reason)

	_, err = f.create.CreateReturn(context.Background(), order.Actor{ID: "buyer-1", Role: entity.RoleBuyer}, dto.CreateReturnRequest{
		Type:  entity.ReturnTypeSupplier,
		Lines: []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCreateReturn_TipoInvalido(t *testing.T) {
	f := newFixture()
	seedCatalog(f)

	_, err := f.create.CreateReturn(context.Background(), order.Actor{ID: "admin-1", Role: entity.RoleAdmin}, dto.CreateReturnRequest{
		Type:      "exchange",
		PartnerID: "cli-1",
		Lines:     []dto.OrderLineRequest{{ItemID: "item-a", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

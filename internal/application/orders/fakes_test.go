package orders

import (
	"context"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// ---- fakes en memoria compartidos por los tests del paquete ----

type fakePurchaseRepo struct {
	orders  map[string]*entity.PurchaseOrder
	getHook func() // se ejecuta tras cada GetByID; simula escritores concurrentes
}

func (r *fakePurchaseRepo) Create(o *entity.PurchaseOrder) error {
	copia := *o
	r.orders[o.ID] = &copia
	return nil
}

func (r *fakePurchaseRepo) GetByID(id string) (*entity.PurchaseOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *o
	if r.getHook != nil {
		r.getHook()
	}
	return &copia, nil
}

func (r *fakePurchaseRepo) Update(o *entity.PurchaseOrder, expectedVersion int64) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrStaleTransition
	}
	copia := *o
	r.orders[o.ID] = &copia
	return nil
}

func (r *fakePurchaseRepo) List(status string, limit, offset int) ([]*entity.PurchaseOrder, error) {
	var out []*entity.PurchaseOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakePurchaseRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeSalesRepo struct {
	orders map[string]*entity.SalesOrder
}

func (r *fakeSalesRepo) Create(o *entity.SalesOrder) error {
	copia := *o
	r.orders[o.ID] = &copia
	return nil
}

func (r *fakeSalesRepo) GetByID(id string) (*entity.SalesOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *o
	return &copia, nil
}

func (r *fakeSalesRepo) Update(o *entity.SalesOrder, expectedVersion int64) error {
	stored, ok := r.orders[o.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrStaleTransition
	}
	copia := *o
	r.orders[o.ID] = &copia
	return nil
}

func (r *fakeSalesRepo) List(status string, limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeSalesRepo) ListByCustomer(customerID string, limit, offset int) ([]*entity.SalesOrder, error) {
	var out []*entity.SalesOrder
	for _, o := range r.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeSalesRepo) Delete(id string) error {
	delete(r.orders, id)
	return nil
}

type fakeReturnRepo struct {
	returns map[string]*entity.ReturnEntry
}

func (r *fakeReturnRepo) Create(ret *entity.ReturnEntry) error {
	copia := *ret
	r.returns[ret.ID] = &copia
	return nil
}

func (r *fakeReturnRepo) GetByID(id string) (*entity.ReturnEntry, error) {
	ret, ok := r.returns[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *ret
	return &copia, nil
}

func (r *fakeReturnRepo) Update(ret *entity.ReturnEntry, expectedVersion int64) error {
	stored, ok := r.returns[ret.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if stored.Version != expectedVersion {
		return domain.ErrStaleTransition
	}
	copia := *ret
	r.returns[ret.ID] = &copia
	return nil
}

func (r *fakeReturnRepo) List(returnType, status string, limit, offset int) ([]*entity.ReturnEntry, error) {
	var out []*entity.ReturnEntry
	for _, ret := range r.returns {
		if returnType != "" && ret.Type != returnType {
			continue
		}
		if status != "" && ret.Status != status {
			continue
		}
		out = append(out, ret)
	}
	return out, nil
}

func (r *fakeReturnRepo) Delete(id string) error {
	delete(r.returns, id)
	return nil
}

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func (r *fakeItemRepo) Create(item *entity.Item) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.Item, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copia := *it
	return &copia, nil
}

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) { return nil, domain.ErrNotFound }
func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error {
	copia := *item
	r.items[item.ID] = &copia
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(itemID string, quantity int64) error {
	it, ok := r.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = quantity
	return nil
}

func (r *fakeItemRepo) List(limit, offset int) ([]*entity.Item, error) { return nil, nil }
func (r *fakeItemRepo) Search(q string, limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}
func (r *fakeItemRepo) Delete(id string) error { return nil }

type fakeTxnRepo struct {
	txns []*entity.StockTransaction
}

func (r *fakeTxnRepo) Create(txn *entity.StockTransaction) error {
	copia := *txn
	r.txns = append(r.txns, &copia)
	return nil
}

func (r *fakeTxnRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockTransaction, error) {
	return nil, nil
}

func (r *fakeTxnRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return r.txns, nil
}

func (r *fakeTxnRepo) SumDeltas(itemID, locationID string) (int64, error) {
	var sum int64
	for _, t := range r.txns {
		if t.ItemID == itemID {
			sum += t.Delta
		}
	}
	return sum, nil
}

type fakeLocationRepo struct {
	def *entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	return nil, domain.ErrNotFound
}
func (r *fakeLocationRepo) GetDefault() (*entity.Location, error) {
	if r.def == nil {
		return nil, domain.ErrNotFound
	}
	return r.def, nil
}
func (r *fakeLocationRepo) Update(l *entity.Location) error           { return nil }
func (r *fakeLocationRepo) List(int, int) ([]*entity.Location, error) { return nil, nil }
func (r *fakeLocationRepo) Delete(id string) error                    { return nil }

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (r *fakeUserRepo) Create(u *entity.User) error { return nil }

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	return nil, domain.ErrUserNotFound
}

type fakeSupplierRepo struct {
	suppliers map[string]*entity.Supplier
}

func (r *fakeSupplierRepo) Create(s *entity.Supplier) error { return nil }
func (r *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	s, ok := r.suppliers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}
func (r *fakeSupplierRepo) Update(s *entity.Supplier) error           { return nil }
func (r *fakeSupplierRepo) List(int, int) ([]*entity.Supplier, error) { return nil, nil }
func (r *fakeSupplierRepo) Delete(id string) error                    { return nil }

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
}

func (r *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (r *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (r *fakeCustomerRepo) Update(c *entity.Customer) error           { return nil }
func (r *fakeCustomerRepo) List(int, int) ([]*entity.Customer, error) { return nil, nil }
func (r *fakeCustomerRepo) Delete(id string) error                    { return nil }

// fakeOrdersTxRunner simula Commit/Rollback: si fn falla, restaura pedidos,
// artículos y ledger al estado previo.
type fakeOrdersTxRunner struct {
	purchaseRepo *fakePurchaseRepo
	salesRepo    *fakeSalesRepo
	returnRepo   *fakeReturnRepo
	txnRepo      *fakeTxnRepo
	itemRepo     *fakeItemRepo
}

func (tr *fakeOrdersTxRunner) RunOrders(ctx context.Context, fn func(
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	returnRepo repository.ReturnRepository,
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	poBackup := make(map[string]*entity.PurchaseOrder, len(tr.purchaseRepo.orders))
	for id, o := range tr.purchaseRepo.orders {
		copia := *o
		poBackup[id] = &copia
	}
	soBackup := make(map[string]*entity.SalesOrder, len(tr.salesRepo.orders))
	for id, o := range tr.salesRepo.orders {
		copia := *o
		soBackup[id] = &copia
	}
	retBackup := make(map[string]*entity.ReturnEntry, len(tr.returnRepo.returns))
	for id, ret := range tr.returnRepo.returns {
		copia := *ret
		retBackup[id] = &copia
	}
	txnBackup := make([]*entity.StockTransaction, len(tr.txnRepo.txns))
	copy(txnBackup, tr.txnRepo.txns)
	itemBackup := make(map[string]*entity.Item, len(tr.itemRepo.items))
	for id, it := range tr.itemRepo.items {
		copia := *it
		itemBackup[id] = &copia
	}

	err := fn(tr.purchaseRepo, tr.salesRepo, tr.returnRepo, tr.txnRepo, tr.itemRepo)
	if err != nil {
		tr.purchaseRepo.orders = poBackup
		tr.salesRepo.orders = soBackup
		tr.returnRepo.returns = retBackup
		tr.txnRepo.txns = txnBackup
		tr.itemRepo.items = itemBackup
	}
	return err
}

var (
	_ repository.PurchaseOrderRepository    = (*fakePurchaseRepo)(nil)
	_ repository.SalesOrderRepository       = (*fakeSalesRepo)(nil)
	_ repository.ReturnRepository           = (*fakeReturnRepo)(nil)
	_ repository.ItemRepository             = (*fakeItemRepo)(nil)
	_ repository.StockTransactionRepository = (*fakeTxnRepo)(nil)
	_ repository.LocationRepository         = (*fakeLocationRepo)(nil)
	_ repository.UserRepository             = (*fakeUserRepo)(nil)
	_ repository.SupplierRepository         = (*fakeSupplierRepo)(nil)
	_ repository.CustomerRepository         = (*fakeCustomerRepo)(nil)
	_ TxRunner                              = (*fakeOrdersTxRunner)(nil)
)

// fixture arma el juego completo de fakes y casos de uso.
type fixture struct {
	purchaseRepo *fakePurchaseRepo
	salesRepo    *fakeSalesRepo
	returnRepo   *fakeReturnRepo
	txnRepo      *fakeTxnRepo
	itemRepo     *fakeItemRepo
	locationRepo *fakeLocationRepo
	userRepo     *fakeUserRepo
	supplierRepo *fakeSupplierRepo
	customerRepo *fakeCustomerRepo

	create    *CreateUseCase
	lifecycle *LifecycleUseCase
}

func newFixture() *fixture {
	f := &fixture{
		purchaseRepo: &fakePurchaseRepo{orders: map[string]*entity.PurchaseOrder{}},
		salesRepo:    &fakeSalesRepo{orders: map[string]*entity.SalesOrder{}},
		returnRepo:   &fakeReturnRepo{returns: map[string]*entity.ReturnEntry{}},
		txnRepo:      &fakeTxnRepo{},
		itemRepo:     &fakeItemRepo{items: map[string]*entity.Item{}},
		locationRepo: &fakeLocationRepo{},
		userRepo:     &fakeUserRepo{users: map[string]*entity.User{}},
		supplierRepo: &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{}},
		customerRepo: &fakeCustomerRepo{customers: map[string]*entity.Customer{}},
	}
	runner := &fakeOrdersTxRunner{
		purchaseRepo: f.purchaseRepo,
		salesRepo:    f.salesRepo,
		returnRepo:   f.returnRepo,
		txnRepo:      f.txnRepo,
		itemRepo:     f.itemRepo,
	}
	f.create = NewCreateUseCase(
		f.purchaseRepo, f.salesRepo, f.returnRepo,
		f.supplierRepo, f.customerRepo, f.itemRepo, f.userRepo,
	)
	f.lifecycle = NewLifecycleUseCase(
		runner, f.purchaseRepo, f.salesRepo, f.returnRepo, f.locationRepo,
	)
	return f
}

package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// ---- fakes en memoria ----

type fakeItemRepo struct {
	items map[string]*entity.Item
}

func newFakeItemRepo(items ...*entity.Item) *fakeItemRepo {
	r := &fakeItemRepo{items: make(map[string]*entity.Item)}
	for _, it := range items {
		copia := *it
		r.items[it.ID] = &copia
	}
	return r
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

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.Item, error) {
	for _, it := range r.items {
		if it.SKU == sku {
			copia := *it
			return &copia, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeItemRepo) GetForUpdate(id string) (*entity.Item, error) { return r.GetByID(id) }

func (r *fakeItemRepo) Update(item *entity.Item) error {
	if _, ok := r.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
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

func (r *fakeItemRepo) Search(query string, limit, offset int) ([]*entity.Item, error) {
	return nil, nil
}

func (r *fakeItemRepo) Delete(id string) error {
	delete(r.items, id)
	return nil
}

type fakeTxnRepo struct {
	txns []*entity.StockTransaction
}

func (r *fakeTxnRepo) Create(txn *entity.StockTransaction) error {
	copia := *txn
	r.txns = append(r.txns, &copia)
	return nil
}

func (r *fakeTxnRepo) ListByItem(itemID string, limit, offset int) ([]*entity.StockTransaction, error) {
	var out []*entity.StockTransaction
	for _, t := range r.txns {
		if t.ItemID == itemID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTxnRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return r.txns, nil
}

func (r *fakeTxnRepo) SumDeltas(itemID, locationID string) (int64, error) {
	var sum int64
	for _, t := range r.txns {
		if t.ItemID != itemID {
			continue
		}
		if locationID != "" && t.LocationID != locationID {
			continue
		}
		sum += t.Delta
	}
	return sum, nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.Location
	def       *entity.Location
}

func (r *fakeLocationRepo) Create(l *entity.Location) error { return nil }

func (r *fakeLocationRepo) GetByID(id string) (*entity.Location, error) {
	l, ok := r.locations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return l, nil
}

func (r *fakeLocationRepo) GetDefault() (*entity.Location, error) {
	if r.def == nil {
		return nil, domain.ErrNotFound
	}
	return r.def, nil
}

func (r *fakeLocationRepo) Update(l *entity.Location) error            { return nil }
func (r *fakeLocationRepo) List(int, int) ([]*entity.Location, error)  { return nil, nil }
func (r *fakeLocationRepo) Delete(id string) error                     { return nil }

// fakeTxRunner simula Commit/Rollback: si fn falla, restaura el estado previo
// de ambos repositorios.
type fakeTxRunner struct {
	txnRepo  *fakeTxnRepo
	itemRepo *fakeItemRepo
}

func (tr *fakeTxRunner) Run(ctx context.Context, fn func(
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error) error {
	txnsBackup := make([]*entity.StockTransaction, len(tr.txnRepo.txns))
	copy(txnsBackup, tr.txnRepo.txns)
	itemsBackup := make(map[string]*entity.Item, len(tr.itemRepo.items))
	for id, it := range tr.itemRepo.items {
		copia := *it
		itemsBackup[id] = &copia
	}

	if err := fn(tr.txnRepo, tr.itemRepo); err != nil {
		tr.txnRepo.txns = txnsBackup
		tr.itemRepo.items = itemsBackup
		return err
	}
	return nil
}

var _ repository.ItemRepository = (*fakeItemRepo)(nil)
var _ repository.StockTransactionRepository = (*fakeTxnRepo)(nil)
var _ repository.LocationRepository = (*fakeLocationRepo)(nil)

func newMovementFixture(items ...*entity.Item) (*RecordMovementUseCase, *fakeTxnRepo, *fakeItemRepo) {
	itemRepo := newFakeItemRepo(items...)
	txnRepo := &fakeTxnRepo{}
	locRepo := &fakeLocationRepo{locations: map[string]*entity.Location{}}
	runner := &fakeTxRunner{txnRepo: txnRepo, itemRepo: itemRepo}
	return NewRecordMovementUseCase(runner, txnRepo, itemRepo, locRepo), txnRepo, itemRepo
}

// ---- tests ----

func TestRecordMovement_ReceiveActualizaCacheYLedger(t *testing.T) {
	uc, txnRepo, itemRepo := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1", Quantity: 5})

	txn, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "item-1",
		Kind:     entity.TxnKindReceive,
		Quantity: 10,
		Reason:   "compra inicial",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), txn.Delta)
	assert.Equal(t, "user-1", txn.CreatedBy)

	item, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, int64(15), item.Quantity)
	require.Len(t, txnRepo.txns, 1)
}

func TestRecordMovement_IssueInsuficienteAbortaAtomico(t *testing.T) {
	uc, txnRepo, itemRepo := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1", Quantity: 5})

	_, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "item-1",
		Kind:     entity.TxnKindIssue,
		Quantity: 8,
	})
	require.ErrorIs(t, err, domain.ErrNegativeStock)

	// ni ledger ni caché cambiaron
	item, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, int64(5), item.Quantity)
	assert.Empty(t, txnRepo.txns)
}

func TestRecordMovement_IssuePositivoSeNiega(t *testing.T) {
	uc, _, itemRepo := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1", Quantity: 5})

	txn, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "item-1",
		Kind:     entity.TxnKindIssue,
		Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(-3), txn.Delta)

	item, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, int64(2), item.Quantity)
}

func TestRecordMovement_AjusteNegativoExacto(t *testing.T) {
	uc, _, itemRepo := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1", Quantity: 5})

	_, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "item-1",
		Kind:     entity.TxnKindAdjust,
		Quantity: -5,
	})
	require.NoError(t, err)

	// llegar exactamente a cero es válido
	item, _ := itemRepo.GetByID("item-1")
	assert.Equal(t, int64(0), item.Quantity)
}

func TestRecordMovement_CantidadCero(t *testing.T) {
	uc, _, _ := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1"})

	_, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "item-1",
		Kind:     entity.TxnKindAdjust,
		Quantity: 0,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRecordMovement_ArticuloInexistente(t *testing.T) {
	uc, _, _ := newMovementFixture()

	_, err := uc.RecordMovement(context.Background(), "user-1", dto.RegisterMovementRequest{
		ItemID:   "no-existe",
		Kind:     entity.TxnKindReceive,
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCurrentQuantity_SumaDeltasDelLedger(t *testing.T) {
	uc, txnRepo, _ := newMovementFixture(&entity.Item{ID: "item-1", SKU: "A-1", Quantity: 7})
	txnRepo.txns = []*entity.StockTransaction{
		{ItemID: "item-1", Delta: 10},
		{ItemID: "item-1", Delta: -3},
		{ItemID: "otro", Delta: 99},
	}

	resp, err := uc.CurrentQuantity("item-1", "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Quantity)
}

func TestVerify_DetectaDivergencia(t *testing.T) {
	snap := &fakeSnapshotRepo{
		items: []entity.Item{
			{ID: "ok", Quantity: 5},
			{ID: "roto", Quantity: 9},
		},
		txns: []entity.StockTransaction{
			{ItemID: "ok", Delta: 5},
			{ItemID: "roto", Delta: 5},
		},
	}
	uc := NewAuditUseCase(snap)

	resp, err := uc.Verify(context.Background())
	require.NoError(t, err)
	assert.False(t, resp.Consistent)
	assert.Equal(t, []string{"roto"}, resp.DivergedItemIDs)
}

func TestVerify_LedgerConsistente(t *testing.T) {
	snap := &fakeSnapshotRepo{
		items: []entity.Item{{ID: "ok", Quantity: 2}},
		txns:  []entity.StockTransaction{{ItemID: "ok", Delta: 3}, {ItemID: "ok", Delta: -1}},
	}
	uc := NewAuditUseCase(snap)

	resp, err := uc.Verify(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Consistent)
	assert.Empty(t, resp.DivergedItemIDs)
}

type fakeSnapshotRepo struct {
	items []entity.Item
	txns  []entity.StockTransaction
}

func (r *fakeSnapshotRepo) LoadItems(ctx context.Context, limit, offset int) ([]entity.Item, error) {
	return pagina(r.items, limit, offset), nil
}

func (r *fakeSnapshotRepo) LoadPurchaseOrders(ctx context.Context, limit, offset int) ([]entity.PurchaseOrder, error) {
	return nil, nil
}

func (r *fakeSnapshotRepo) LoadSalesOrders(ctx context.Context, limit, offset int) ([]entity.SalesOrder, error) {
	return nil, nil
}

func (r *fakeSnapshotRepo) LoadReturns(ctx context.Context, limit, offset int) ([]entity.ReturnEntry, error) {
	return nil, nil
}

func (r *fakeSnapshotRepo) LoadTransactions(ctx context.Context, limit, offset int) ([]entity.StockTransaction, error) {
	return pagina(r.txns, limit, offset), nil
}

func pagina[T any](all []T, limit, offset int) []T {
	if offset >= len(all) {
		return nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

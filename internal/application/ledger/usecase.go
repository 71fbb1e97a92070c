package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/ledger"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// RecordMovementUseCase registra movimientos de stock de forma transaccional:
// bloquea la fila del artículo (SELECT FOR UPDATE), valida que el saldo no
// quede negativo y escribe entrada de ledger + caché de cantidad en la misma
// transacción, con Commit/Rollback.
type RecordMovementUseCase struct {
	txRunner     TxRunner
	txnRepo      repository.StockTransactionRepository
	itemRepo     repository.ItemRepository
	locationRepo repository.LocationRepository
}

// NewRecordMovementUseCase construye el caso de uso.
func NewRecordMovementUseCase(
	txRunner TxRunner,
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
	locationRepo repository.LocationRepository,
) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		txRunner:     txRunner,
		txnRepo:      txnRepo,
		itemRepo:     itemRepo,
		locationRepo: locationRepo,
	}
}

// RecordMovement valida el movimiento, resuelve la ubicación y lo aplica
// atómicamente. Devuelve la transacción escrita.
func (uc *RecordMovementUseCase) RecordMovement(ctx context.Context, userID string, in dto.RegisterMovementRequest) (*entity.StockTransaction, error) {
	if in.ItemID == "" {
		return nil, domain.ErrInvalidInput
	}
	delta, err := ledger.NormalizeDelta(in.Kind, in.Quantity)
	if err != nil {
		return nil, err
	}

	locationID, err := uc.resolveLocation(in.LocationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := &entity.StockTransaction{
		ID:         uuid.New().String(),
		ItemID:     in.ItemID,
		LocationID: locationID,
		Kind:       in.Kind,
		Delta:      delta,
		Reason:     in.Reason,
		CreatedAt:  now,
		CreatedBy:  userID,
	}

	err = uc.txRunner.Run(ctx, func(
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error {
		// Bloquea la fila del artículo para serializar movimientos concurrentes
		item, err := itemRepo.GetForUpdate(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		newQty := item.Quantity + delta
		if newQty < 0 {
			return domain.ErrNegativeStock
		}
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		return itemRepo.UpdateQuantity(item.ID, newQty)
	})
	if err != nil {
		return nil, err
	}
	return txn, nil
}

// resolveLocation valida la ubicación pedida o cae a la ubicación por defecto.
// Sin ubicaciones configuradas el ledger opera con la clave vacía.
func (uc *RecordMovementUseCase) resolveLocation(locationID string) (string, error) {
	if locationID != "" {
		loc, err := uc.locationRepo.GetByID(locationID)
		if err != nil {
			return "", err
		}
		if loc == nil {
			return "", domain.ErrNotFound
		}
		return loc.ID, nil
	}
	loc, err := uc.locationRepo.GetDefault()
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	if loc == nil {
		return "", nil
	}
	return loc.ID, nil
}

// CurrentQuantity devuelve la cantidad autoritativa de un artículo: la suma
// de deltas del ledger, no la caché.
func (uc *RecordMovementUseCase) CurrentQuantity(itemID, locationID string) (*dto.CurrentQuantityResponse, error) {
	item, err := uc.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	qty, err := uc.txnRepo.SumDeltas(itemID, locationID)
	if err != nil {
		return nil, err
	}
	return &dto.CurrentQuantityResponse{ItemID: itemID, LocationID: locationID, Quantity: qty}, nil
}

// ListMovements lista entradas del ledger; itemID vacío lista todas.
func (uc *RecordMovementUseCase) ListMovements(itemID string, page dto.PageRequest) ([]dto.TransactionResponse, error) {
	page.DefaultPage()
	var (
		txns []*entity.StockTransaction
		err  error
	)
	if itemID != "" {
		txns, err = uc.txnRepo.ListByItem(itemID, page.Limit, page.Offset)
	} else {
		txns, err = uc.txnRepo.List(page.Limit, page.Offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, dto.TransactionResponse{
			ID:         t.ID,
			ItemID:     t.ItemID,
			LocationID: t.LocationID,
			Kind:       t.Kind,
			Delta:      t.Delta,
			Reason:     t.Reason,
			CreatedAt:  t.CreatedAt,
			CreatedBy:  t.CreatedBy,
		})
	}
	return out, nil
}

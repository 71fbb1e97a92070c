package orders

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/ledger"
	"github.com/jcastro/pedidos-api/internal/domain/order"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// LifecycleUseCase orquesta las transiciones de estado: evalúa la máquina
// pura del dominio y aplica sus efectos de stock, el incremento de versión y
// la escritura del pedido en una sola transacción de BD. Dos transiciones
// concurrentes sobre el mismo pedido: una gana, la otra recibe
// ErrStaleTransition.
type LifecycleUseCase struct {
	txRunner     TxRunner
	purchaseRepo repository.PurchaseOrderRepository
	salesRepo    repository.SalesOrderRepository
	returnRepo   repository.ReturnRepository
	locationRepo repository.LocationRepository
}

// NewLifecycleUseCase construye el caso de uso.
func NewLifecycleUseCase(
	txRunner TxRunner,
	purchaseRepo repository.PurchaseOrderRepository,
	salesRepo repository.SalesOrderRepository,
	returnRepo repository.ReturnRepository,
	locationRepo repository.LocationRepository,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:     txRunner,
		purchaseRepo: purchaseRepo,
		salesRepo:    salesRepo,
		returnRepo:   returnRepo,
		locationRepo: locationRepo,
	}
}

// TransitionPurchase aplica un comando a un pedido de compra. Al recibir,
// acredita el ledger por cada línea en la misma transacción que el cambio de
// estado.
func (uc *LifecycleUseCase) TransitionPurchase(ctx context.Context, orderID string, cmd order.Command, actor order.Actor) (*entity.PurchaseOrder, error) {
	locationID, err := uc.defaultLocationID()
	if err != nil {
		return nil, err
	}

	var result entity.PurchaseOrder
	err = uc.txRunner.RunOrders(ctx, func(
		purchaseRepo repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
		_ repository.ReturnRepository,
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error {
		current, err := purchaseRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		updated, effects, err := order.TransitionPurchase(*current, cmd, actor)
		if err != nil {
			return err
		}
		if len(effects) > 0 {
			reason := "recepción de pedido de compra " + orderID
			if err := applyStockEffects(effects, locationID, actor.ID, reason, txnRepo, itemRepo); err != nil {
				return err
			}
		}
		updated.Version = current.Version + 1
		updated.UpdatedAt = time.Now()
		if err := purchaseRepo.Update(&updated, current.Version); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TransitionSales aplica un comando a un pedido de venta. Al recibir, debita
// el ledger; si alguna línea dejara stock negativo, toda la transición se
// revierte: ni estado ni ledger cambian.
func (uc *LifecycleUseCase) TransitionSales(ctx context.Context, orderID string, cmd order.Command, actor order.Actor) (*entity.SalesOrder, error) {
	locationID, err := uc.defaultLocationID()
	if err != nil {
		return nil, err
	}

	var result entity.SalesOrder
	err = uc.txRunner.RunOrders(ctx, func(
		_ repository.PurchaseOrderRepository,
		salesRepo repository.SalesOrderRepository,
		_ repository.ReturnRepository,
		txnRepo repository.StockTransactionRepository,
		itemRepo repository.ItemRepository,
	) error {
		current, err := salesRepo.GetByID(orderID)
		if err != nil {
			return err
		}
		updated, effects, err := order.TransitionSales(*current, cmd, actor)
		if err != nil {
			return err
		}
		if len(effects) > 0 {
			reason := "entrega de pedido de venta " + orderID
			if err := applyStockEffects(effects, locationID, actor.ID, reason, txnRepo, itemRepo); err != nil {
				return err
			}
		}
		updated.Version = current.Version + 1
		updated.UpdatedAt = time.Now()
		if err := salesRepo.Update(&updated, current.Version); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// TransitionReturn aplica un comando a una devolución. Sin efectos de ledger.
func (uc *LifecycleUseCase) TransitionReturn(ctx context.Context, returnID string, cmd order.Command, actor order.Actor) (*entity.ReturnEntry, error) {
	var result entity.ReturnEntry
	err := uc.txRunner.RunOrders(ctx, func(
		_ repository.PurchaseOrderRepository,
		_ repository.SalesOrderRepository,
		returnRepo repository.ReturnRepository,
		_ repository.StockTransactionRepository,
		_ repository.ItemRepository,
	) error {
		current, err := returnRepo.GetByID(returnID)
		if err != nil {
			return err
		}
		updated, err := order.TransitionReturn(*current, cmd, actor)
		if err != nil {
			return err
		}
		updated.Version = current.Version + 1
		updated.UpdatedAt = time.Now()
		if err := returnRepo.Update(&updated, current.Version); err != nil {
			return err
		}
		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePurchase borra un pedido de compra. Solo admin. Borrar un pedido
// recibido NO revierte sus entradas de ledger: el libro es inmutable.
func (uc *LifecycleUseCase) DeletePurchase(actor order.Actor, orderID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.purchaseRepo.GetByID(orderID); err != nil {
		return err
	}
	return uc.purchaseRepo.Delete(orderID)
}

// DeleteSales borra un pedido de venta. Solo admin.
func (uc *LifecycleUseCase) DeleteSales(actor order.Actor, orderID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.salesRepo.GetByID(orderID); err != nil {
		return err
	}
	return uc.salesRepo.Delete(orderID)
}

// DeleteReturn borra una devolución. Solo admin; es la única forma de
// "revertir" una devolución.
func (uc *LifecycleUseCase) DeleteReturn(actor order.Actor, returnID string) error {
	if actor.Role != entity.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := uc.returnRepo.GetByID(returnID); err != nil {
		return err
	}
	return uc.returnRepo.Delete(returnID)
}

// defaultLocationID resuelve la ubicación contra la que netea el cumplimiento
// de pedidos; sin ubicaciones configuradas el ledger usa la clave vacía.
func (uc *LifecycleUseCase) defaultLocationID() (string, error) {
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

// applyStockEffects registra los efectos de una transición en el ledger:
// bloquea cada artículo, valida que el saldo no quede negativo y escribe
// entrada + caché. Debe llamarse dentro de la transacción de la transición.
func applyStockEffects(
	effects []order.StockEffect,
	locationID, actorID, reason string,
	txnRepo repository.StockTransactionRepository,
	itemRepo repository.ItemRepository,
) error {
	now := time.Now()
	for _, e := range effects {
		delta, err := ledger.NormalizeDelta(e.Kind, e.Quantity)
		if err != nil {
			return err
		}
		item, err := itemRepo.GetForUpdate(e.ItemID)
		if err != nil {
			return err
		}
		newQty := item.Quantity + delta
		if newQty < 0 {
			return domain.ErrNegativeStock
		}
		txn := &entity.StockTransaction{
			ID:         uuid.New().String(),
			ItemID:     e.ItemID,
			LocationID: locationID,
			Kind:       e.Kind,
			Delta:      delta,
			Reason:     reason,
			CreatedAt:  now,
			CreatedBy:  actorID,
		}
		if err := txnRepo.Create(txn); err != nil {
			return err
		}
		if err := itemRepo.UpdateQuantity(item.ID, newQty); err != nil {
			return err
		}
	}
	return nil
}

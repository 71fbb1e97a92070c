package ledger

import (
	"context"

	"github.com/jcastro/pedidos-api/internal/application/dto"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/ledger"
	"github.com/jcastro/pedidos-api/internal/domain/repository"
)

// verifyPageSize tamaño de página para recorrer artículos y transacciones
// durante la auditoría.
const verifyPageSize = 1000

// AuditUseCase verifica el invariante del ledger: la caché de cantidad de
// cada artículo debe coincidir con el replay de sus transacciones.
type AuditUseCase struct {
	snapshotRepo repository.SnapshotRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(snapshotRepo repository.SnapshotRepository) *AuditUseCase {
	return &AuditUseCase{snapshotRepo: snapshotRepo}
}

// Verify carga artículos y ledger completos por páginas y reporta los IDs
// cuya caché diverge del replay.
func (uc *AuditUseCase) Verify(ctx context.Context) (*dto.LedgerCheckResponse, error) {
	var items []entity.Item
	for offset := 0; ; offset += verifyPageSize {
		page, err := uc.snapshotRepo.LoadItems(ctx, verifyPageSize, offset)
		if err != nil {
			return nil, err
		}
		items = append(items, page...)
		if len(page) < verifyPageSize {
			break
		}
	}

	var txns []entity.StockTransaction
	for offset := 0; ; offset += verifyPageSize {
		page, err := uc.snapshotRepo.LoadTransactions(ctx, verifyPageSize, offset)
		if err != nil {
			return nil, err
		}
		txns = append(txns, page...)
		if len(page) < verifyPageSize {
			break
		}
	}

	diverged := ledger.Divergence(items, txns)
	return &dto.LedgerCheckResponse{
		Consistent:      len(diverged) == 0,
		DivergedItemIDs: diverged,
	}, nil
}

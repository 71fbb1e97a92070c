package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastro/pedidos-api/internal/domain"
	"github.com/jcastro/pedidos-api/internal/domain/entity"
	"github.com/jcastro/pedidos-api/internal/domain/ledger"
)

func TestNormalizeDelta_ReceiveSiemprePositivo(t *testing.T) {
	d, err := ledger.NormalizeDelta(entity.TxnKindReceive, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), d)

	// Una entrada con cantidad negativa se normaliza a efecto positivo
	d, err = ledger.NormalizeDelta(entity.TxnKindReceive, -4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), d)
}

func TestNormalizeDelta_IssueSiempreNegativo(t *testing.T) {
	d, err := ledger.NormalizeDelta(entity.TxnKindIssue, 8)
	require.NoError(t, err)
	assert.Equal(t, int64(-8), d, "una salida en positivo debe normalizarse a delta negativo")

	d, err = ledger.NormalizeDelta(entity.TxnKindIssue, -3)
	require.NoError(t, err)
	assert.Equal(t, int64(-3), d)
}

func TestNormalizeDelta_AdjustConservaSigno(t *testing.T) {
	d, err := ledger.NormalizeDelta(entity.TxnKindAdjust, -5)
	require.NoError(t, err)
	assert.Equal(t, int64(-5), d)

	d, err = ledger.NormalizeDelta(entity.TxnKindAdjust, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), d)
}

func TestNormalizeDelta_CantidadCeroEsError(t *testing.T) {
	for _, kind := range []string{entity.TxnKindReceive, entity.TxnKindIssue, entity.TxnKindAdjust} {
		_, err := ledger.NormalizeDelta(kind, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "kind %s con delta cero debe fallar", kind)
	}
}

func TestNormalizeDelta_TipoDesconocido(t *testing.T) {
	_, err := ledger.NormalizeDelta("transfer", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplay_ReproduceCantidadExacta(t *testing.T) {
	txns := []entity.StockTransaction{
		{ItemID: "a", Kind: entity.TxnKindReceive, Delta: 10},
		{ItemID: "a", Kind: entity.TxnKindIssue, Delta: -3},
		{ItemID: "b", Kind: entity.TxnKindReceive, Delta: 2},
		{ItemID: "a", Kind: entity.TxnKindAdjust, Delta: -1},
	}

	quantities := ledger.Replay(txns)
	assert.Equal(t, int64(6), quantities["a"])
	assert.Equal(t, int64(2), quantities["b"])
}

func TestReplayByLocation_SeparaUbicaciones(t *testing.T) {
	txns := []entity.StockTransaction{
		{ItemID: "a", LocationID: "", Kind: entity.TxnKindReceive, Delta: 5},
		{ItemID: "a", LocationID: "bodega-2", Kind: entity.TxnKindReceive, Delta: 3},
		{ItemID: "a", LocationID: "bodega-2", Kind: entity.TxnKindIssue, Delta: -1},
	}

	byLoc := ledger.ReplayByLocation(txns)
	assert.Equal(t, int64(5), byLoc["a"][""])
	assert.Equal(t, int64(2), byLoc["a"]["bodega-2"])
}

func TestDivergence_DetectaCacheDesincronizada(t *testing.T) {
	items := []entity.Item{
		{ID: "a", Quantity: 6},
		{ID: "b", Quantity: 99}, // caché corrupta
	}
	txns := []entity.StockTransaction{
		{ItemID: "a", Delta: 10},
		{ItemID: "a", Delta: -4},
		{ItemID: "b", Delta: 2},
	}

	diverged := ledger.Divergence(items, txns)
	assert.Equal(t, []string{"b"}, diverged)
}

func TestDivergence_LedgerConsistenteDevuelveVacio(t *testing.T) {
	items := []entity.Item{{ID: "a", Quantity: 1}}
	txns := []entity.StockTransaction{{ItemID: "a", Delta: 1}}
	assert.Empty(t, ledger.Divergence(items, txns))
}

package dto

import "time"

// RegisterMovementRequest entrada de POST /api/ledger/movements.
// quantity es magnitud u opcionalmente delta con signo en ajustes; la
// convención de signos por tipo la aplica el dominio (issue siempre resta,
// receive siempre suma).
type RegisterMovementRequest struct {
	ItemID     string `json:"item_id"`
	LocationID string `json:"location_id"` // vacío = ubicación por defecto
	Kind       string `json:"kind"`        // receive, issue, adjust
	Quantity   int64  `json:"quantity"`
	Reason     string `json:"reason"`
}

// TransactionResponse una entrada del ledger.
type TransactionResponse struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	LocationID string    `json:"location_id,omitempty"`
	Kind       string    `json:"kind"`
	Delta      int64     `json:"delta"`
	Reason     string    `json:"reason,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by"`
}

// CurrentQuantityResponse cantidad autoritativa de un artículo.
type CurrentQuantityResponse struct {
	ItemID     string `json:"item_id"`
	LocationID string `json:"location_id,omitempty"`
	Quantity   int64  `json:"quantity"`
}

// LedgerCheckResponse resultado de la verificación de replay del ledger.
// Consistent=true significa que todas las cachés coinciden con el replay.
type LedgerCheckResponse struct {
	Consistent      bool     `json:"consistent"`
	DivergedItemIDs []string `json:"diverged_item_ids,omitempty"`
}

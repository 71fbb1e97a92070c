package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderLineRequest línea de pedido en requests de creación y respuesta de
// proveedor. UnitPrice es puntero: un buyer no puede fijar precio (se lee del
// catálogo) y en ese caso viene nil o se ignora.
type OrderLineRequest struct {
	ItemID    string           `json:"item_id"`
	Quantity  int64            `json:"quantity"`
	UnitPrice *decimal.Decimal `json:"unit_price,omitempty"`
	Reason    string           `json:"reason,omitempty"` // solo devoluciones
}

// CreatePurchaseOrderRequest entrada de POST /api/purchase-orders.
// Fechas en formato "2006-01-02".
type CreatePurchaseOrderRequest struct {
	SupplierID      string             `json:"supplier_id"`
	Lines           []OrderLineRequest `json:"lines"`
	ExpectedDate    string             `json:"expected_date,omitempty"`
	PaymentTerms    string             `json:"payment_terms,omitempty"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// PurchaseTransitionRequest entrada de POST /api/purchase-orders/:id/transition.
// status determina el comando; los demás campos solo aplican según el destino:
//   - supplier_submitted: lines, fechas, payment_terms, tax_rate (respuesta
//     compuesta del proveedor)
//   - received: received_date obligatorio
type PurchaseTransitionRequest struct {
	Status       string             `json:"status"`
	Lines        []OrderLineRequest `json:"lines,omitempty"`
	ExpectedDate string             `json:"expected_date,omitempty"`
	DeliveryDate string             `json:"delivery_date,omitempty"`
	PaymentTerms string             `json:"payment_terms,omitempty"`
	TaxRate      decimal.Decimal    `json:"tax_rate"`
	Notes        string             `json:"notes,omitempty"`
	ReceivedDate string             `json:"received_date,omitempty"`
}

// CreateSalesOrderRequest entrada de POST /api/sales-orders.
// Un buyer no envía customer_id (se resuelve de su usuario) ni precios.
type CreateSalesOrderRequest struct {
	CustomerID      string             `json:"customer_id,omitempty"`
	Lines           []OrderLineRequest `json:"lines"`
	DeliveryDate    string             `json:"delivery_date,omitempty"`
	PaymentTerms    string             `json:"payment_terms,omitempty"`
	TaxRate         decimal.Decimal    `json:"tax_rate"`
	ShippingAddress string             `json:"shipping_address,omitempty"`
	Notes           string             `json:"notes,omitempty"`
}

// SalesTransitionRequest entrada de POST /api/sales-orders/:id/transition.
type SalesTransitionRequest struct {
	Status       string `json:"status"`
	ApprovedDate string `json:"approved_date,omitempty"`
	ReceivedDate string `json:"received_date,omitempty"`
}

// CreateReturnRequest entrada de POST /api/returns.
type CreateReturnRequest struct {
	Type      string             `json:"type"` // customer, supplier
	PartnerID string             `json:"partner_id,omitempty"`
	Lines     []OrderLineRequest `json:"lines"`
	Notes     string             `json:"notes,omitempty"`
}

// ReturnTransitionRequest entrada de POST /api/returns/:id/transition.
type ReturnTransitionRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse línea con total calculado.
type OrderLineResponse struct {
	ID        string          `json:"id"`
	ItemID    string          `json:"item_id"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
	Reason    string          `json:"reason,omitempty"`
}

// PurchaseOrderResponse pedido de compra con montos calculados.
type PurchaseOrderResponse struct {
	ID              string              `json:"id"`
	SupplierID      string              `json:"supplier_id"`
	Status          string              `json:"status"`
	Lines           []OrderLineResponse `json:"lines"`
	ExpectedDate    *time.Time          `json:"expected_date,omitempty"`
	DeliveryDate    *time.Time          `json:"delivery_date,omitempty"`
	ReceivedDate    *time.Time          `json:"received_date,omitempty"`
	PaymentTerms    string              `json:"payment_terms,omitempty"`
	TaxRate         decimal.Decimal     `json:"tax_rate"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Total           decimal.Decimal     `json:"total"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// SalesOrderResponse pedido de venta con montos calculados.
type SalesOrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customer_id"`
	Status          string              `json:"status"`
	Lines           []OrderLineResponse `json:"lines"`
	DeliveryDate    *time.Time          `json:"delivery_date,omitempty"`
	ApprovedDate    *time.Time          `json:"approved_date,omitempty"`
	ReceivedDate    *time.Time          `json:"received_date,omitempty"`
	PaymentTerms    string              `json:"payment_terms,omitempty"`
	TaxRate         decimal.Decimal     `json:"tax_rate"`
	ShippingAddress string              `json:"shipping_address,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	Tax             decimal.Decimal     `json:"tax"`
	Total           decimal.Decimal     `json:"total"`
	Version         int64               `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// ReturnResponse devolución.
type ReturnResponse struct {
	ID        string              `json:"id"`
	Type      string              `json:"type"`
	PartnerID string              `json:"partner_id,omitempty"`
	Status    string              `json:"status"`
	Lines     []OrderLineResponse `json:"lines"`
	Notes     string              `json:"notes,omitempty"`
	Version   int64               `json:"version"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

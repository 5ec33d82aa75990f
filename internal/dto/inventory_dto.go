package dto

import "time"

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CreateInventoryRequest struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity"   validate:"min=0"`
	// LowStockThreshold defaults to 10 when omitted.
	LowStockThreshold *int `json:"low_stock_threshold" validate:"omitempty,min=0"`
}

// AdjustQuantityRequest is bound from the query string of PUT /inventory/:id.
// The caller supplies the absolute new quantity; change_type is audit metadata
// only and never drives any arithmetic.
type AdjustQuantityRequest struct {
	NewQuantity *int   `form:"new_quantity" validate:"required"`
	ChangeType  string `form:"change_type"  validate:"required,oneof=add remove adjust"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type InventoryResponse struct {
	ID                uint      `json:"id"`
	ProductID         uint      `json:"product_id"`
	Quantity          int       `json:"quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	LastUpdated       time.Time `json:"last_updated"`
}

type InventoryAlertResponse struct {
	ProductID         uint   `json:"product_id"`
	ProductName       string `json:"product_name"`
	CurrentQuantity   int    `json:"current_quantity"`
	LowStockThreshold int    `json:"low_stock_threshold"`
	Status            string `json:"status"`
}

type InventoryHistoryResponse struct {
	ID               uint      `json:"id"`
	InventoryID      uint      `json:"inventory_id"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	ChangeType       string    `json:"change_type"`
	Timestamp        time.Time `json:"timestamp"`
}

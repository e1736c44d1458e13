package inventory

import (
	"github.com/google/uuid"
)

// AdjustStockRequest represents a manual stock add or remove
type AdjustStockRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Quantity  int64     `json:"quantity" validate:"required,gt=0"`
	Notes     string    `json:"notes" validate:"max=500"`
}

// StockMovementResponse reports the outcome of one stock mutation
type StockMovementResponse struct {
	ProductID     uuid.UUID `json:"product_id"`
	Type          string    `json:"type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
}

package inventory

import (
	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// TransactionType classifies a stock movement
type TransactionType string

const (
	TransactionTypeAdd    TransactionType = "add"
	TransactionTypeRemove TransactionType = "remove"
)

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeAdd || t == TransactionTypeRemove
}

// String returns the string representation
func (t TransactionType) String() string {
	return string(t)
}

// StockTransaction is an immutable audit row recording one stock movement.
// Every mutation of a product's stock writes exactly one of these.
type StockTransaction struct {
	shared.BaseEntity
	ProductID     uuid.UUID
	UserID        uuid.UUID
	Type          TransactionType
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	Notes         string
}

// NewStockTransaction creates a stock movement audit row. The arithmetic
// invariant new = previous + quantity (add) or previous - quantity (remove)
// is enforced here so a row can never misstate the movement it records.
func NewStockTransaction(productID, userID uuid.UUID, txType TransactionType, quantity, previousStock, newStock int64, notes string) (*StockTransaction, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "product is required")
	}
	if !txType.IsValid() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "transaction type must be add or remove")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "quantity must be positive")
	}
	switch txType {
	case TransactionTypeAdd:
		if newStock != previousStock+quantity {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "stock arithmetic does not match an add movement")
		}
	case TransactionTypeRemove:
		if newStock != previousStock-quantity {
			return nil, shared.NewDomainError("VALIDATION_ERROR", "stock arithmetic does not match a remove movement")
		}
	}
	return &StockTransaction{
		BaseEntity:    shared.NewBaseEntity(),
		ProductID:     productID,
		UserID:        userID,
		Type:          txType,
		Quantity:      quantity,
		PreviousStock: previousStock,
		NewStock:      newStock,
		Notes:         notes,
	}, nil
}

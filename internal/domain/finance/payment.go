package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// PaymentState tracks an individual payment row
type PaymentState string

const (
	PaymentStatePending   PaymentState = "pending"
	PaymentStateCompleted PaymentState = "completed"
	PaymentStateFailed    PaymentState = "failed"
	PaymentStateRefunded  PaymentState = "refunded"
)

// IsValid checks if the payment state is valid
func (s PaymentState) IsValid() bool {
	switch s {
	case PaymentStatePending, PaymentStateCompleted, PaymentStateFailed, PaymentStateRefunded:
		return true
	}
	return false
}

// String returns the string representation
func (s PaymentState) String() string {
	return string(s)
}

// Payment is a money-in event against an order. Completed payments are
// immutable except for the transition to refunded.
type Payment struct {
	shared.BaseEntity
	OrderID         uuid.UUID
	UserID          uuid.UUID
	Amount          decimal.Decimal
	Method          string
	Status          PaymentState
	ReferenceNumber string
	TransactionID   string
	Notes           string
	PaymentDate     time.Time
}

// NewCompletedPayment records a payment that has already been taken, the
// normal case for over-the-counter sales.
func NewCompletedPayment(orderID, userID uuid.UUID, amount decimal.Decimal, method, transactionID, notes string, at time.Time) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "order is required")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "user is required")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "payment amount must be positive")
	}
	if method == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "payment method is required")
	}
	return &Payment{
		BaseEntity:      shared.NewBaseEntity(),
		OrderID:         orderID,
		UserID:          userID,
		Amount:          amount,
		Method:          method,
		Status:          PaymentStateCompleted,
		ReferenceNumber: PaymentReference(orderID, at),
		TransactionID:   transactionID,
		Notes:           notes,
		PaymentDate:     at,
	}, nil
}

// Refund flips a completed payment to refunded. No balance or stock
// reversal is computed; a refund is a status flag only.
func (p *Payment) Refund() error {
	if p.Status != PaymentStateCompleted {
		return shared.NewDomainError("INVALID_STATE",
			"only completed payments can be refunded, current status: "+p.Status.String())
	}
	p.Status = PaymentStateRefunded
	p.UpdatedAt = time.Now()
	return nil
}

// IsCompleted reports whether the payment counts toward the order balance
func (p *Payment) IsCompleted() bool {
	return p.Status == PaymentStateCompleted
}

// PaymentReference builds the generated reference for a payment on an order
func PaymentReference(orderID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("PAY-%s-%s", orderID, at.Format("20060102150405"))
}

package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// Receipt is a point-in-time snapshot of a payment and the order balance
// around it. It is never recomputed or mutated after creation; the payment
// row stays the financial source of truth.
type Receipt struct {
	shared.BaseEntity
	PaymentID        uuid.UUID
	OrderID          uuid.UUID
	ReceiptNumber    string
	PaymentAmount    decimal.Decimal
	PreviousBalance  decimal.Decimal
	RemainingBalance decimal.Decimal
	Method           string
	ReferenceNumber  string
	TransactionID    string
	Notes            string
}

// NewReceipt creates a receipt snapshot. The balance identity
// remaining = previous - amount is enforced at construction.
func NewReceipt(paymentID, orderID uuid.UUID, receiptNumber string, amount, previousBalance, remainingBalance decimal.Decimal, method, referenceNumber, transactionID, notes string) (*Receipt, error) {
	if paymentID == uuid.Nil || orderID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "payment and order are required")
	}
	if receiptNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "receipt number is required")
	}
	if !previousBalance.Sub(amount).Equal(remainingBalance) {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "receipt balances do not reconcile")
	}
	return &Receipt{
		BaseEntity:       shared.NewBaseEntity(),
		PaymentID:        paymentID,
		OrderID:          orderID,
		ReceiptNumber:    receiptNumber,
		PaymentAmount:    amount,
		PreviousBalance:  previousBalance,
		RemainingBalance: remainingBalance,
		Method:           method,
		ReferenceNumber:  referenceNumber,
		TransactionID:    transactionID,
		Notes:            notes,
	}, nil
}

package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
)

// ProcessPaymentRequest applies a payment against an order
type ProcessPaymentRequest struct {
	OrderID       uuid.UUID       `json:"order_id" validate:"required"`
	UserID        uuid.UUID       `json:"user_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Method        string          `json:"method" validate:"required,max=50"`
	TransactionID string          `json:"transaction_id" validate:"max=100"`
	Notes         string          `json:"notes" validate:"max=500"`
}

// ReceiptResponse is the balance snapshot minted for a payment
type ReceiptResponse struct {
	ReceiptNumber    string          `json:"receipt_number"`
	PaymentAmount    decimal.Decimal `json:"payment_amount"`
	PreviousBalance  decimal.Decimal `json:"previous_balance"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

// PaymentResponse reports a processed payment. Receipt is nil when the
// best-effort receipt step failed; the payment itself still stands.
type PaymentResponse struct {
	PaymentID       uuid.UUID        `json:"payment_id"`
	OrderID         uuid.UUID        `json:"order_id"`
	Amount          decimal.Decimal  `json:"amount"`
	Method          string           `json:"method"`
	Status          string           `json:"status"`
	ReferenceNumber string           `json:"reference_number"`
	PaymentDate     time.Time        `json:"payment_date"`
	Receipt         *ReceiptResponse `json:"receipt,omitempty"`
}

// ToPaymentResponse maps a payment to its response shape
func ToPaymentResponse(p *finance.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:       p.ID,
		OrderID:         p.OrderID,
		Amount:          p.Amount,
		Method:          p.Method,
		Status:          p.Status.String(),
		ReferenceNumber: p.ReferenceNumber,
		PaymentDate:     p.PaymentDate,
	}
}

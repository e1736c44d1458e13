package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// InvoiceStatus tracks an invoice's lifecycle
type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid checks if the invoice status is valid
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusOverdue, InvoiceStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation
func (s InvoiceStatus) String() string {
	return string(s)
}

// invoiceDueDays is the fixed payment-terms policy
const invoiceDueDays = 30

// Invoice is the billed snapshot of an order, created lazily, at most one
// live invoice per order. Tax and discount are placeholders carried at zero.
type Invoice struct {
	shared.BaseEntity
	OrderID        uuid.UUID
	InvoiceNumber  string
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal
	Status         InvoiceStatus
	DueDate        time.Time
	Notes          string
}

// NewInvoice creates a pending invoice for an order total
func NewInvoice(orderID uuid.UUID, invoiceNumber string, subtotal decimal.Decimal, notes string, at time.Time) (*Invoice, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "order is required")
	}
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "invoice number is required")
	}
	if subtotal.IsNegative() {
		return nil, shared.NewDomainError("VALIDATION_ERROR", "invoice subtotal cannot be negative")
	}
	return &Invoice{
		BaseEntity:     shared.NewBaseEntity(),
		OrderID:        orderID,
		InvoiceNumber:  invoiceNumber,
		Subtotal:       subtotal,
		TaxAmount:      decimal.Zero,
		DiscountAmount: decimal.Zero,
		TotalAmount:    subtotal,
		Status:         InvoiceStatusPending,
		DueDate:        at.AddDate(0, 0, invoiceDueDays),
		Notes:          notes,
	}, nil
}

// MarkPaid transitions the invoice to paid
func (i *Invoice) MarkPaid() error {
	if i.Status == InvoiceStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "cannot pay a cancelled invoice")
	}
	i.Status = InvoiceStatusPaid
	i.UpdatedAt = time.Now()
	return nil
}

// MarkOverdue flags a pending invoice past its due date
func (i *Invoice) MarkOverdue() error {
	if i.Status != InvoiceStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			"only pending invoices can become overdue, current status: "+i.Status.String())
	}
	i.Status = InvoiceStatusOverdue
	i.UpdatedAt = time.Now()
	return nil
}

// Cancel voids an unpaid invoice
func (i *Invoice) Cancel() error {
	if i.Status == InvoiceStatusPaid {
		return shared.NewDomainError("INVALID_STATE", "cannot cancel a paid invoice")
	}
	i.Status = InvoiceStatusCancelled
	i.UpdatedAt = time.Now()
	return nil
}

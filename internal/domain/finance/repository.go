package finance

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// PaymentRepository stores payment rows
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
	Save(ctx context.Context, payment *Payment) error
}

// ReceiptRepository stores receipt snapshots
type ReceiptRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Receipt, error)
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]Receipt, error)
	Save(ctx context.Context, receipt *Receipt) error
}

// InvoiceRepository stores invoices, at most one live per order
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	// FindByOrder returns the order's invoice or shared.ErrNotFound
	FindByOrder(ctx context.Context, orderID uuid.UUID) (*Invoice, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// DocumentNumberRepository mints sequence numbers from a per-prefix-per-day
// counter. NextNumber must be called inside the transaction that inserts the
// numbered document so a rollback releases the number's uniqueness slot.
type DocumentNumberRepository interface {
	NextNumber(ctx context.Context, prefix string, day time.Time) (int64, error)
}

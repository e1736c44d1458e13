package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// OrderRepository provides access to orders with their items.
// Save persists the header and the full item collection transactionally;
// items absent from the aggregate are deleted.
type OrderRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Order, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Order, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Order, error)
	Save(ctx context.Context, order *Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// QuotationRepository provides access to quotations with their items
type QuotationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Quotation, error)
	FindByNumber(ctx context.Context, number string) (*Quotation, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Quotation, error)
	Save(ctx context.Context, quotation *Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// GenerateNumber mints an unused QT-prefixed random number
	GenerateNumber(ctx context.Context) (string, error)
}

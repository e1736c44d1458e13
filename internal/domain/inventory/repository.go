package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

// StockRepository is the sole mutator of product stock counters.
type StockRepository interface {
	// AdjustStock applies delta to the product's stock counter and returns
	// the previous and new levels. Implementations must apply the delta
	// atomically with respect to concurrent adjustments of the same product;
	// callers record the returned pair in a StockTransaction.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (previous, current int64, err error)
}

// StockTransactionRepository stores the stock movement audit trail
type StockTransactionRepository interface {
	Save(ctx context.Context, tx *StockTransaction) error
	FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]StockTransaction, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]StockTransaction, error)
}

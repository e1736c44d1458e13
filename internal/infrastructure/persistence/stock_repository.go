package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

// adjustStockRetries bounds the compare-and-swap loop under concurrent
// adjustments of the same product.
const adjustStockRetries = 5

// GormStockRepository implements StockRepository using GORM. The stock
// counter is updated with a guarded UPDATE so concurrent adjustments never
// lose a movement; the returned previous/new pair is exact for the row
// this call actually wrote.
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// AdjustStock applies delta to the product's stock counter and returns the
// previous and new levels. Negative results are allowed; approval-time
// removals may backorder below zero.
func (r *GormStockRepository) AdjustStock(ctx context.Context, productID uuid.UUID, delta int64) (int64, int64, error) {
	for attempt := 0; attempt < adjustStockRetries; attempt++ {
		var model models.ProductModel
		if err := r.db.WithContext(ctx).
			Select("id", "stock").
			First(&model, "id = ?", productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return 0, 0, shared.ErrNotFound
			}
			return 0, 0, err
		}

		previous := model.Stock
		current := previous + delta
		result := r.db.WithContext(ctx).
			Model(&models.ProductModel{}).
			Where("id = ? AND stock = ?", productID, previous).
			Updates(map[string]any{
				"stock":      current,
				"updated_at": time.Now(),
			})
		if result.Error != nil {
			return 0, 0, result.Error
		}
		if result.RowsAffected == 1 {
			return previous, current, nil
		}
		// Lost the race against a concurrent adjustment; re-read and retry.
	}
	return 0, 0, shared.NewDomainError("DEPENDENCY_FAILURE", "stock adjustment retries exhausted")
}

var _ inventory.StockRepository = (*GormStockRepository)(nil)

package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/inventory"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

// GormStockTransactionRepository implements StockTransactionRepository using GORM
type GormStockTransactionRepository struct {
	db *gorm.DB
}

// NewGormStockTransactionRepository creates a new GormStockTransactionRepository
func NewGormStockTransactionRepository(db *gorm.DB) *GormStockTransactionRepository {
	return &GormStockTransactionRepository{db: db}
}

// Save inserts a stock movement audit row. Audit rows are append-only.
func (r *GormStockTransactionRepository) Save(ctx context.Context, tx *inventory.StockTransaction) error {
	model := models.StockTransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByProduct finds stock movements for a product
func (r *GormStockTransactionRepository) FindByProduct(ctx context.Context, productID uuid.UUID, filter shared.Filter) ([]inventory.StockTransaction, error) {
	return r.find(ctx, filter, "product_id = ?", productID)
}

// FindAll finds all stock movements matching the filter
func (r *GormStockTransactionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockTransaction, error) {
	return r.find(ctx, filter, "")
}

func (r *GormStockTransactionRepository) find(ctx context.Context, filter shared.Filter, cond string, args ...any) ([]inventory.StockTransaction, error) {
	query := r.db.WithContext(ctx).Model(&models.StockTransactionModel{})
	if cond != "" {
		query = query.Where(cond, args...)
	}
	for key, value := range filter.Filters {
		switch key {
		case "user_id":
			query = query.Where("user_id = ?", value)
		case "transaction_type":
			query = query.Where("transaction_type = ?", value)
		}
	}
	query = applyFilter(query, filter, map[string]bool{"created_at": true})

	var rows []models.StockTransactionModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	transactions := make([]inventory.StockTransaction, len(rows))
	for i := range rows {
		transactions[i] = *rows[i].ToDomain()
	}
	return transactions, nil
}

var _ inventory.StockTransactionRepository = (*GormStockTransactionRepository)(nil)

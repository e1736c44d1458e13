package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/catalog"
	"github.com/NgariMwangi/abz-sales-portal/internal/infrastructure/persistence/models"
)

// newTestDB opens an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, code string, branchID uuid.UUID, stock int64, sellingPrice string) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(uuid.New(), branchID, name, code)
	require.NoError(t, err)
	if sellingPrice != "" {
		price, err := decimal.NewFromString(sellingPrice)
		require.NoError(t, err)
		product.SellingPrice = &price
	}
	product.Stock = stock
	require.NoError(t, NewGormProductRepository(db).Save(context.Background(), product))
	return product
}

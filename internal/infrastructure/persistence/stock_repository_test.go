package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

func TestGormStockRepository_AdjustStock(t *testing.T) {
	ctx := context.Background()

	t.Run("applies positive and negative deltas", func(t *testing.T) {
		db := newTestDB(t)
		product := seedProduct(t, db, "Claw Hammer", "HAM-001", uuid.New(), 10, "750")
		repo := NewGormStockRepository(db)

		previous, current, err := repo.AdjustStock(ctx, product.ID, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(10), previous)
		assert.Equal(t, int64(15), current)

		previous, current, err = repo.AdjustStock(ctx, product.ID, -8)
		require.NoError(t, err)
		assert.Equal(t, int64(15), previous)
		assert.Equal(t, int64(7), current)

		reloaded, err := NewGormProductRepository(db).FindByID(ctx, product.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(7), reloaded.Stock)
	})

	t.Run("allows going below zero", func(t *testing.T) {
		db := newTestDB(t)
		product := seedProduct(t, db, "Wood Glue", "GLU-002", uuid.New(), 1, "300")
		repo := NewGormStockRepository(db)

		previous, current, err := repo.AdjustStock(ctx, product.ID, -4)
		require.NoError(t, err)
		assert.Equal(t, int64(1), previous)
		assert.Equal(t, int64(-3), current)
	})

	t.Run("unknown product returns not found", func(t *testing.T) {
		repo := NewGormStockRepository(newTestDB(t))

		_, _, err := repo.AdjustStock(ctx, uuid.New(), 1)
		require.Error(t, err)
		assert.Equal(t, "NOT_FOUND", shared.CodeOf(err))
	})
}

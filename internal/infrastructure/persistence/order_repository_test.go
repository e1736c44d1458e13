package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/trade"
)

func testOrderItem(t *testing.T, name, price string, quantity int64) trade.OrderItem {
	t.Helper()
	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	item, err := trade.NewOrderItem(uuid.Nil, nil, name, quantity, trade.LinePricing{
		OriginalPrice: p,
		FinalPrice:    p,
	})
	require.NoError(t, err)
	return *item
}

func TestGormOrderRepository_SaveAndFind(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)

	order, err := trade.NewOrder(uuid.New(), uuid.New(), trade.OrderKindWalkIn, []trade.OrderItem{
		testOrderItem(t, "Claw Hammer", "750", 2),
		testOrderItem(t, "Wood Glue", "300", 1),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.UserID, reloaded.UserID)
	assert.Equal(t, trade.OrderKindWalkIn, reloaded.Kind)
	assert.Len(t, reloaded.Items, 2)
	assert.True(t, reloaded.Total().Equal(decimal.NewFromInt(1800)))
}

func TestGormOrderRepository_SaveReplacesItems(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)

	order, err := trade.NewOrder(uuid.New(), uuid.New(), trade.OrderKindWalkIn, []trade.OrderItem{
		testOrderItem(t, "Claw Hammer", "750", 1),
		testOrderItem(t, "Wood Glue", "300", 1),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	require.NoError(t, order.ReplaceItems([]trade.OrderItem{
		testOrderItem(t, "Angle Grinder", "4500", 1),
	}))
	require.NoError(t, repo.Save(ctx, order))

	reloaded, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Items, 1)
	assert.Equal(t, "Angle Grinder", reloaded.Items[0].ProductName)
	assert.True(t, reloaded.Total().Equal(decimal.NewFromInt(4500)))
}

func TestGormOrderRepository_FindByUser(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)
	userID := uuid.New()

	for i := 0; i < 2; i++ {
		order, err := trade.NewOrder(userID, uuid.New(), trade.OrderKindOnline, []trade.OrderItem{
			testOrderItem(t, "Claw Hammer", "750", 1),
		})
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, order))
	}
	other, err := trade.NewOrder(uuid.New(), uuid.New(), trade.OrderKindWalkIn, []trade.OrderItem{
		testOrderItem(t, "Wood Glue", "300", 1),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, other))

	orders, err := repo.FindByUser(ctx, userID, shared.DefaultFilter())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestGormOrderRepository_Delete(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGormOrderRepository(db)

	order, err := trade.NewOrder(uuid.New(), uuid.New(), trade.OrderKindWalkIn, []trade.OrderItem{
		testOrderItem(t, "Claw Hammer", "750", 1),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, order))

	require.NoError(t, repo.Delete(ctx, order.ID))

	_, err = repo.FindByID(ctx, order.ID)
	assert.Equal(t, "NOT_FOUND", shared.CodeOf(err))

	err = repo.Delete(ctx, order.ID)
	assert.Equal(t, "NOT_FOUND", shared.CodeOf(err))
}

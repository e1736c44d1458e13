package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
	"github.com/NgariMwangi/abz-sales-portal/internal/domain/shared"
)

func TestGormInvoiceRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("save and find by order", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newTestDB(t))
		orderID := uuid.New()

		invoice, err := finance.NewInvoice(orderID, "INV-20250615-0001", decimal.NewFromInt(1800), "", now)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, invoice))

		found, err := repo.FindByOrder(ctx, orderID)
		require.NoError(t, err)
		assert.Equal(t, "INV-20250615-0001", found.InvoiceNumber)
		assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(1800)))
	})

	t.Run("missing invoice returns not found", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newTestDB(t))

		_, err := repo.FindByOrder(ctx, uuid.New())
		assert.Equal(t, "NOT_FOUND", shared.CodeOf(err))
	})

	t.Run("duplicate invoice number is reported as such", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newTestDB(t))

		first, err := finance.NewInvoice(uuid.New(), "INV-20250615-0002", decimal.NewFromInt(100), "", now)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := finance.NewInvoice(uuid.New(), "INV-20250615-0002", decimal.NewFromInt(200), "", now)
		require.NoError(t, err)

		err = repo.Save(ctx, second)
		require.Error(t, err)
		assert.Equal(t, "DUPLICATE_NUMBER", shared.CodeOf(err))
	})

	t.Run("second invoice for the same order is rejected", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newTestDB(t))
		orderID := uuid.New()

		first, err := finance.NewInvoice(orderID, "INV-20250615-0003", decimal.NewFromInt(100), "", now)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, first))

		second, err := finance.NewInvoice(orderID, "INV-20250615-0004", decimal.NewFromInt(100), "", now)
		require.NoError(t, err)

		err = repo.Save(ctx, second)
		require.Error(t, err)
		assert.Equal(t, "DUPLICATE_NUMBER", shared.CodeOf(err))
	})

	t.Run("delete removes the invoice", func(t *testing.T) {
		repo := NewGormInvoiceRepository(newTestDB(t))
		orderID := uuid.New()

		invoice, err := finance.NewInvoice(orderID, "INV-20250615-0005", decimal.NewFromInt(100), "", now)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, invoice))
		require.NoError(t, repo.Delete(ctx, invoice.ID))

		_, err = repo.FindByOrder(ctx, orderID)
		assert.Equal(t, "NOT_FOUND", shared.CodeOf(err))
	})
}

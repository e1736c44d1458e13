package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NgariMwangi/abz-sales-portal/internal/domain/finance"
)

func TestGormDocumentNumberRepository_NextNumber(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	t.Run("sequence is monotonic per prefix and day", func(t *testing.T) {
		repo := NewGormDocumentNumberRepository(newTestDB(t))

		for want := int64(1); want <= 3; want++ {
			seq, err := repo.NextNumber(ctx, finance.PrefixInvoice, day)
			require.NoError(t, err)
			assert.Equal(t, want, seq)
		}
	})

	t.Run("prefixes count independently", func(t *testing.T) {
		repo := NewGormDocumentNumberRepository(newTestDB(t))

		seq, err := repo.NextNumber(ctx, finance.PrefixInvoice, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)

		seq, err = repo.NextNumber(ctx, finance.PrefixReceipt, day)
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)

		seq, err = repo.NextNumber(ctx, finance.PrefixInvoice, day)
		require.NoError(t, err)
		assert.Equal(t, int64(2), seq)
	})

	t.Run("sequence restarts each day", func(t *testing.T) {
		repo := NewGormDocumentNumberRepository(newTestDB(t))

		_, err := repo.NextNumber(ctx, finance.PrefixInvoice, day)
		require.NoError(t, err)
		_, err = repo.NextNumber(ctx, finance.PrefixInvoice, day)
		require.NoError(t, err)

		seq, err := repo.NextNumber(ctx, finance.PrefixInvoice, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.Equal(t, int64(1), seq)
	})

	t.Run("formats into document numbers", func(t *testing.T) {
		repo := NewGormDocumentNumberRepository(newTestDB(t))

		seq, err := repo.NextNumber(ctx, finance.PrefixReceipt, day)
		require.NoError(t, err)
		assert.Equal(t, "RCP-20250615-0001", finance.FormatDocumentNumber(finance.PrefixReceipt, day, seq))
	})
}

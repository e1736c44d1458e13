package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockTransaction(t *testing.T) {
	productID := uuid.New()
	userID := uuid.New()

	t.Run("records an add movement", func(t *testing.T) {
		tx, err := NewStockTransaction(productID, userID, TransactionTypeAdd, 10, 5, 15, "restock")
		require.NoError(t, err)
		assert.Equal(t, int64(5), tx.PreviousStock)
		assert.Equal(t, int64(15), tx.NewStock)
		assert.Equal(t, TransactionTypeAdd, tx.Type)
	})

	t.Run("records a remove movement into backorder", func(t *testing.T) {
		tx, err := NewStockTransaction(productID, userID, TransactionTypeRemove, 8, 5, -3, "order approval (backorder)")
		require.NoError(t, err)
		assert.Equal(t, int64(-3), tx.NewStock)
	})

	t.Run("rejects mismatched arithmetic", func(t *testing.T) {
		_, err := NewStockTransaction(productID, userID, TransactionTypeAdd, 10, 5, 20, "")
		assert.Error(t, err)

		_, err = NewStockTransaction(productID, userID, TransactionTypeRemove, 3, 5, 3, "")
		assert.Error(t, err)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := NewStockTransaction(productID, userID, TransactionTypeAdd, 0, 5, 5, "")
		assert.Error(t, err)

		_, err = NewStockTransaction(productID, userID, TransactionTypeRemove, -2, 5, 7, "")
		assert.Error(t, err)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewStockTransaction(productID, userID, TransactionType("transfer"), 1, 5, 6, "")
		assert.Error(t, err)
	})

	t.Run("rejects nil product", func(t *testing.T) {
		_, err := NewStockTransaction(uuid.Nil, userID, TransactionTypeAdd, 1, 0, 1, "")
		assert.Error(t, err)
	})
}

func TestTransactionTypeIsValid(t *testing.T) {
	assert.True(t, TransactionTypeAdd.IsValid())
	assert.True(t, TransactionTypeRemove.IsValid())
	assert.False(t, TransactionType("adjust").IsValid())
}

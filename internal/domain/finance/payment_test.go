package finance

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompletedPayment(t *testing.T) {
	orderID := uuid.New()
	userID := uuid.New()
	at := time.Date(2025, 6, 15, 14, 30, 45, 0, time.UTC)

	t.Run("creates completed payment with reference", func(t *testing.T) {
		p, err := NewCompletedPayment(orderID, userID, decimal.NewFromInt(200), "mpesa", "TX123", "", at)
		require.NoError(t, err)
		assert.Equal(t, PaymentStateCompleted, p.Status)
		assert.Equal(t, fmt.Sprintf("PAY-%s-20250615143045", orderID), p.ReferenceNumber)
		assert.True(t, p.IsCompleted())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewCompletedPayment(orderID, userID, decimal.Zero, "cash", "", "", at)
		assert.Error(t, err)
	})

	t.Run("rejects missing method", func(t *testing.T) {
		_, err := NewCompletedPayment(orderID, userID, decimal.NewFromInt(10), "", "", "", at)
		assert.Error(t, err)
	})
}

func TestPaymentRefund(t *testing.T) {
	t.Run("refunds a completed payment", func(t *testing.T) {
		p, err := NewCompletedPayment(uuid.New(), uuid.New(), decimal.NewFromInt(50), "cash", "", "", time.Now())
		require.NoError(t, err)
		require.NoError(t, p.Refund())
		assert.Equal(t, PaymentStateRefunded, p.Status)
		assert.False(t, p.IsCompleted())
	})

	t.Run("refund is not repeatable", func(t *testing.T) {
		p, err := NewCompletedPayment(uuid.New(), uuid.New(), decimal.NewFromInt(50), "cash", "", "", time.Now())
		require.NoError(t, err)
		require.NoError(t, p.Refund())
		assert.Error(t, p.Refund())
	})

	t.Run("cannot refund a pending payment", func(t *testing.T) {
		p := &Payment{Status: PaymentStatePending}
		assert.Error(t, p.Refund())
	})
}

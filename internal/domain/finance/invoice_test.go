package finance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInvoice(t *testing.T) *Invoice {
	t.Helper()
	inv, err := NewInvoice(uuid.New(), "INV-20250615-0001", decimal.NewFromInt(300), "", time.Now())
	require.NoError(t, err)
	return inv
}

func TestNewInvoice(t *testing.T) {
	t.Run("creates pending invoice due in 30 days", func(t *testing.T) {
		at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
		inv, err := NewInvoice(uuid.New(), "INV-20250615-0001", decimal.NewFromInt(300), "", at)
		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusPending, inv.Status)
		assert.Equal(t, at.AddDate(0, 0, 30), inv.DueDate)
		assert.Equal(t, "300", inv.TotalAmount.String())
		assert.True(t, inv.TaxAmount.IsZero())
		assert.True(t, inv.DiscountAmount.IsZero())
	})

	t.Run("rejects negative subtotal", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), "INV-20250615-0002", decimal.NewFromInt(-1), "", time.Now())
		assert.Error(t, err)
	})

	t.Run("rejects missing number", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), "", decimal.NewFromInt(10), "", time.Now())
		assert.Error(t, err)
	})
}

func TestInvoiceTransitions(t *testing.T) {
	t.Run("pending to paid", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.MarkPaid())
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
	})

	t.Run("pending to overdue to paid", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.MarkOverdue())
		require.NoError(t, inv.MarkPaid())
	})

	t.Run("cancelled invoice cannot be paid", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.Cancel())
		assert.Error(t, inv.MarkPaid())
	})

	t.Run("paid invoice cannot be cancelled", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.MarkPaid())
		assert.Error(t, inv.Cancel())
	})

	t.Run("only pending can become overdue", func(t *testing.T) {
		inv := newTestInvoice(t)
		require.NoError(t, inv.MarkPaid())
		assert.Error(t, inv.MarkOverdue())
	})
}

func TestFormatDocumentNumber(t *testing.T) {
	day := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "INV-20250615-0001", FormatDocumentNumber(PrefixInvoice, day, 1))
	assert.Equal(t, "RCP-20250615-0042", FormatDocumentNumber(PrefixReceipt, day, 42))
	assert.Equal(t, "INV-20250615-12345", FormatDocumentNumber(PrefixInvoice, day, 12345))
}

package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), KES)
		require.NoError(t, err)
		assert.Equal(t, KES, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromInt(1), "")
		assert.Error(t, err)
	})
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyKES(decimal.NewFromInt(100))
	b := NewMoneyKES(decimal.NewFromInt(40))

	t.Run("add", func(t *testing.T) {
		sum, err := a.Add(b)
		require.NoError(t, err)
		assert.Equal(t, "140", sum.Amount().String())
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "60", diff.Amount().String())
	})

	t.Run("multiply by int", func(t *testing.T) {
		product := b.MultiplyByInt(3)
		assert.Equal(t, "120", product.Amount().String())
	})

	t.Run("currency mismatch is an error", func(t *testing.T) {
		usd := Zero(USD)
		_, err := a.Add(usd)
		assert.Error(t, err)
		_, err = a.Subtract(usd)
		assert.Error(t, err)
	})
}

func TestMoneyComparison(t *testing.T) {
	a := NewMoneyKES(decimal.NewFromInt(100))
	b := NewMoneyKES(decimal.NewFromInt(40))

	lt, err := b.LessThan(a)
	require.NoError(t, err)
	assert.True(t, lt)

	gt, err := a.GreaterThan(b)
	require.NoError(t, err)
	assert.True(t, gt)

	assert.True(t, a.Equals(NewMoneyKES(decimal.NewFromInt(100))))
	assert.False(t, a.Equals(b))
}

func TestMoneyPredicates(t *testing.T) {
	assert.True(t, ZeroKES().IsZero())
	assert.True(t, NewMoneyKES(decimal.NewFromInt(1)).IsPositive())
	assert.True(t, NewMoneyKES(decimal.NewFromInt(1)).Negate().IsNegative())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	m, err := NewMoneyKESFromString("99.99")
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"99.99","currency":"KES"}`, string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, m.Equals(decoded))
}

func TestMoneyScan(t *testing.T) {
	var m Money
	require.NoError(t, m.Scan("42.75"))
	assert.Equal(t, "42.75", m.Amount().String())
	assert.Equal(t, DefaultCurrency, m.Currency())

	var nilMoney Money
	require.NoError(t, nilMoney.Scan(nil))
	assert.True(t, nilMoney.IsZero())
}

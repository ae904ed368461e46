package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattilda/school_billing_app/internal/apperrors"
	"github.com/mattilda/school_billing_app/internal/utils/money"
)

func TestFromMinorUnits_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 101, 12345, -1, -12345, 999999999999} {
		m, err := money.FromMinorUnits(cents, "USD")
		require.NoError(t, err)
		assert.Equal(t, cents, m.MinorUnits(), "round trip for %d cents", cents)
	}
}

func TestFromMinorUnits_UnsupportedCurrency(t *testing.T) {
	_, err := money.FromMinorUnits(100, "XXX")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)

	_, err = money.FromMinorUnits(100, "usd")
	assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
}

func TestAdd(t *testing.T) {
	a, err := money.FromMinorUnits(150, "EUR")
	require.NoError(t, err)
	b, err := money.FromMinorUnits(250, "EUR")
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, int64(400), sum.MinorUnits())
	assert.Equal(t, "EUR", sum.Currency())
}

func TestAdd_MixedCurrency(t *testing.T) {
	usd, err := money.FromMinorUnits(100, "USD")
	require.NoError(t, err)
	eur, err := money.FromMinorUnits(100, "EUR")
	require.NoError(t, err)

	_, err = usd.Add(eur)
	assert.ErrorIs(t, err, apperrors.ErrMixedCurrency)

	_, err = usd.Sub(eur)
	assert.ErrorIs(t, err, apperrors.ErrMixedCurrency)
}

func TestSub_GoesNegative(t *testing.T) {
	invoiced, err := money.FromMinorUnits(1000, "MXN")
	require.NoError(t, err)
	paid, err := money.FromMinorUnits(1500, "MXN")
	require.NoError(t, err)

	// Over-payment must stay visible as a negative outstanding amount.
	outstanding, err := invoiced.Sub(paid)
	require.NoError(t, err)
	assert.True(t, outstanding.IsNegative())
	assert.Equal(t, int64(-500), outstanding.MinorUnits())
}

func TestZero(t *testing.T) {
	z, err := money.Zero("USD")
	require.NoError(t, err)
	assert.Equal(t, int64(0), z.MinorUnits())
	assert.False(t, z.IsNegative())
}

func TestString(t *testing.T) {
	m, err := money.FromMinorUnits(1234, "USD")
	require.NoError(t, err)
	assert.Equal(t, "12.34 USD", m.String())
}

func TestEqual(t *testing.T) {
	a, _ := money.FromMinorUnits(500, "USD")
	b, _ := money.FromMinorUnits(500, "USD")
	c, _ := money.FromMinorUnits(500, "EUR")
	d, _ := money.FromMinorUnits(501, "USD")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

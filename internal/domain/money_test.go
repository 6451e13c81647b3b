package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivebase/rental/internal/domain"
)

func TestNewMoney_NormalisesCurrency(t *testing.T) {
	m, err := domain.NewMoney(decimal.NewFromInt(10), "usd")

	require.NoError(t, err)
	assert.Equal(t, "USD", m.Currency)
}

func TestNewMoney_RejectsNegativeAmount(t *testing.T) {
	_, err := domain.NewMoney(decimal.NewFromInt(-1), "USD")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestNewMoney_RejectsEmptyCurrency(t *testing.T) {
	_, err := domain.NewMoney(decimal.NewFromInt(10), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestMoney_Add_SameCurrency(t *testing.T) {
	a := domain.MustMoney("10", "usd")
	b := domain.MustMoney("5", "USD")

	sum, err := a.Add(b)

	require.NoError(t, err)
	assert.True(t, sum.Equal(domain.MustMoney("15", "USD")), "got %s", sum)
}

func TestMoney_Add_CurrencyMismatch(t *testing.T) {
	a := domain.MustMoney("10", "USD")
	b := domain.MustMoney("5", "EUR")

	_, err := a.Add(b)

	assert.ErrorIs(t, err, domain.ErrInvalidOperation)
}

func TestMoney_Add_DoesNotMutateReceiver(t *testing.T) {
	a := domain.MustMoney("10", "USD")

	_, err := a.Add(domain.MustMoney("5", "USD"))

	require.NoError(t, err)
	assert.True(t, a.Equal(domain.MustMoney("10", "USD")), "receiver must stay unchanged")
}

func TestMoney_Mul(t *testing.T) {
	rate := domain.MustMoney("49.90", "EUR")

	total, err := rate.Mul(5)

	require.NoError(t, err)
	assert.True(t, total.Equal(domain.MustMoney("249.50", "EUR")), "got %s", total)
}

func TestMoney_Mul_NegativeFactor(t *testing.T) {
	_, err := domain.MustMoney("10", "USD").Mul(-1)

	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivebase/rental/internal/domain"
	"github.com/drivebase/rental/internal/service"
)

func TestRateTable_ComputeTotal(t *testing.T) {
	table := service.NewRateTable(map[string]domain.Money{
		"suv": domain.MustMoney("69.00", "EUR"),
	})

	total, err := table.ComputeTotal(context.Background(), "suv", mustRange(t, day(1), day(8)))

	require.NoError(t, err)
	assert.True(t, total.Equal(domain.MustMoney("483.00", "EUR")), "7 days × 69.00, got %s", total)
}

func TestRateTable_ComputeTotal_UnknownType(t *testing.T) {
	table := service.NewRateTable(service.DefaultRates())

	_, err := table.ComputeTotal(context.Background(), "hovercraft", mustRange(t, day(1), day(2)))

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRateTable_CopiesInputMap(t *testing.T) {
	rates := map[string]domain.Money{"compact": domain.MustMoney("39.90", "EUR")}
	table := service.NewRateTable(rates)

	// Mutating the caller's map after construction must not affect the table.
	rates["compact"] = domain.MustMoney("0.01", "EUR")

	total, err := table.ComputeTotal(context.Background(), "compact", mustRange(t, day(1), day(2)))

	require.NoError(t, err)
	assert.True(t, total.Equal(domain.MustMoney("39.90", "EUR")))
}

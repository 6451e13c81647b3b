package service

import (
	"context"
	"fmt"

	"github.com/drivebase/rental/internal/domain"
)

// Tariff computes the total price for renting a vehicle type over a range.
// Pure lookup from the booking core's perspective: no side effects.
type Tariff interface {
	// ComputeTotal returns dayRate(vehicleType) × days(r).
	// Returns domain.ErrNotFound for an unknown vehicle type.
	ComputeTotal(ctx context.Context, vehicleType string, r domain.DateRange) (domain.Money, error)
}

// RateTable is a Tariff backed by a static per-type day-rate map, loaded at
// startup. Rate changes ship as config, not code.
type RateTable struct {
	rates map[string]domain.Money
}

// NewRateTable constructs a RateTable from per-vehicle-type day rates.
func NewRateTable(rates map[string]domain.Money) *RateTable {
	copied := make(map[string]domain.Money, len(rates))
	for k, v := range rates {
		copied[k] = v
	}
	return &RateTable{rates: copied}
}

// DefaultRates is the built-in rate card used when no configuration
// overrides it.
func DefaultRates() map[string]domain.Money {
	return map[string]domain.Money{
		"compact": domain.MustMoney("39.90", "EUR"),
		"sedan":   domain.MustMoney("54.50", "EUR"),
		"suv":     domain.MustMoney("69.00", "EUR"),
		"van":     domain.MustMoney("89.00", "EUR"),
	}
}

// ComputeTotal implements Tariff.
func (t *RateTable) ComputeTotal(_ context.Context, vehicleType string, r domain.DateRange) (domain.Money, error) {
	rate, ok := t.rates[vehicleType]
	if !ok {
		return domain.Money{}, fmt.Errorf("service.RateTable.ComputeTotal: %w: no rate for vehicle type %q",
			domain.ErrNotFound, vehicleType)
	}

	total, err := rate.Mul(int64(r.Days()))
	if err != nil {
		return domain.Money{}, fmt.Errorf("service.RateTable.ComputeTotal: %w", err)
	}
	return total, nil
}

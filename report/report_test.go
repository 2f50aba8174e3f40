package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/harvestsim/sim"
)

func TestWeekDatesAreConsecutiveMondays(t *testing.T) {
	t.Parallel()

	dates := WeekDates(4)
	require.Len(t, dates, 4)

	assert.Equal(t, "2026-01-05", dates[0].Format("2006-01-02"))
	for i, d := range dates {
		assert.Equal(t, "Monday", d.Format("Monday"), "date %d", i)
		if i > 0 {
			assert.Equal(t, 7*24.0, d.Sub(dates[i-1]).Hours())
		}
	}
}

func TestGrowthReport(t *testing.T) {
	t.Parallel()

	points := sim.Growth(1000, 0.25, 2)

	var b strings.Builder
	require.NoError(t, Growth(&b, points))
	out := b.String()

	assert.Contains(t, out, "Exponential Growth Simulation:")
	assert.Contains(t, out, "Week | Date (Monday) | Amount")
	assert.Contains(t, out, " 0 | 2026-01-05 Monday | $1,000.00")
	assert.Contains(t, out, " 1 | 2026-01-12 Monday | $1,250.00")
	assert.Contains(t, out, " 2 | 2026-01-19 Monday | $1,562.50")
	assert.Contains(t, out, "Initial amount: $1,000.00")
	assert.Contains(t, out, "Final amount after 2 weeks: $1,562.50")
}

func TestHarvestReport(t *testing.T) {
	t.Parallel()

	p := sim.HarvestParams{
		InitialPot:       5000,
		WeeklyReturnRate: 1.0,
		EngineCap:        6000,
		TotalWeeks:       2,
		GrowthVaultPct:   50,
		HarvestVaultPct:  25,
	}
	history := sim.Harvest(p)

	var b strings.Builder
	require.NoError(t, Harvest(&b, history, p))
	out := b.String()

	assert.Contains(t, out, "Baseline Harvest Engine Simulation:")
	assert.Contains(t, out, "Week | Date (Monday) | Pot | Vault | Spend | Weekly Profit | Withdrawal")
	assert.Contains(t, out, " 1 | 2026-01-05 Monday | $6,000.00 | $2,000.00 | $2,000.00 | $5,000.00 | $4,000.00")
	assert.Contains(t, out, " 2 | 2026-01-12 Monday | $6,000.00 | $3,500.00 | $6,500.00 | $6,000.00 | $6,000.00")
	assert.Contains(t, out, "Initial pot: $5,000.00")
	assert.Contains(t, out, "Initial vault: $0.00")
	assert.Contains(t, out, "Final pot: $6,000.00")
	assert.Contains(t, out, "Total vault: $3,500.00")
	assert.Contains(t, out, "Total spend: $6,500.00")
}

func TestHarvestReportEmptyHistory(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	require.NoError(t, Harvest(&b, nil, sim.HarvestParams{InitialPot: 100}))

	out := b.String()
	assert.Contains(t, out, "Initial pot: $100.00")
	assert.NotContains(t, out, "Final pot")
}

func TestMoney(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.00"},
		{999.994, "999.99"},
		{1000, "1,000.00"},
		{1234567.891, "1,234,567.89"},
		{-2500.5, "-2,500.50"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

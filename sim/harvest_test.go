package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHarvestTwoWeekPhaseTransition(t *testing.T) {
	t.Parallel()

	history := Harvest(HarvestParams{
		InitialPot:       5000,
		WeeklyReturnRate: 1.0,
		EngineCap:        6000,
		TotalWeeks:       2,
		InitialVault:     0,
		GrowthVaultPct:   50,
		HarvestVaultPct:  25,
	})
	require.Len(t, history, 2)

	// Week 1 crosses the cap for the first time: 50/50 split.
	w1 := history[0]
	assert.Equal(t, 1, w1.Week)
	assert.InDelta(t, 6000, w1.Pot, 1e-6)
	assert.InDelta(t, 4000, w1.Withdrawal, 1e-6)
	assert.InDelta(t, 2000, w1.Vault, 1e-6)
	assert.InDelta(t, 2000, w1.Spend, 1e-6)
	assert.InDelta(t, 5000, w1.Profit, 1e-6)

	// Week 2 is in the harvest phase: 25/75 split.
	w2 := history[1]
	assert.Equal(t, 2, w2.Week)
	assert.InDelta(t, 6000, w2.Pot, 1e-6)
	assert.InDelta(t, 6000, w2.Withdrawal, 1e-6)
	assert.InDelta(t, 3500, w2.Vault, 1e-6)
	assert.InDelta(t, 6500, w2.Spend, 1e-6)
}

func TestHarvestZeroWeeks(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Harvest(HarvestParams{InitialPot: 5000, EngineCap: 6000}))
	assert.Empty(t, Harvest(HarvestParams{TotalWeeks: -1, EngineCap: 6000}))
}

func TestHarvestBelowCapNeverWithdraws(t *testing.T) {
	t.Parallel()

	history := Harvest(HarvestParams{
		InitialPot:       1000,
		WeeklyReturnRate: 0.1,
		EngineCap:        10000,
		TotalWeeks:       10,
		GrowthVaultPct:   50,
		HarvestVaultPct:  25,
	})
	require.Len(t, history, 10)

	pot := 1000.0
	for _, rec := range history {
		pot *= 1.1
		assert.InDelta(t, pot, rec.Pot, 1e-6)
		assert.Zero(t, rec.Withdrawal)
		assert.Zero(t, rec.Vault)
		assert.Zero(t, rec.Spend)
	}
}

func TestHarvestZeroRate(t *testing.T) {
	t.Parallel()

	t.Run("below cap stays flat", func(t *testing.T) {
		t.Parallel()

		history := Harvest(HarvestParams{
			InitialPot:       4000,
			WeeklyReturnRate: 0,
			EngineCap:        6000,
			TotalWeeks:       5,
		})
		for _, rec := range history {
			assert.InDelta(t, 4000, rec.Pot, 1e-9)
			assert.Zero(t, rec.Withdrawal)
		}
	})

	t.Run("initial pot above cap withdraws week one", func(t *testing.T) {
		t.Parallel()

		history := Harvest(HarvestParams{
			InitialPot:       8000,
			WeeklyReturnRate: 0,
			EngineCap:        6000,
			TotalWeeks:       3,
			GrowthVaultPct:   50,
			HarvestVaultPct:  25,
		})
		require.Len(t, history, 3)

		assert.InDelta(t, 2000, history[0].Withdrawal, 1e-9)
		assert.InDelta(t, 1000, history[0].Vault, 1e-9)
		assert.InDelta(t, 1000, history[0].Spend, 1e-9)
		assert.InDelta(t, 6000, history[0].Pot, 1e-9)

		// Pot is pinned at the cap afterwards, nothing more to withdraw.
		assert.Zero(t, history[1].Withdrawal)
		assert.Zero(t, history[2].Withdrawal)
	})
}

func TestHarvestNegativeRateShrinksWithoutFloor(t *testing.T) {
	t.Parallel()

	history := Harvest(HarvestParams{
		InitialPot:       1000,
		WeeklyReturnRate: -0.5,
		EngineCap:        6000,
		TotalWeeks:       4,
	})
	require.Len(t, history, 4)

	pot := 1000.0
	for _, rec := range history {
		pot *= 0.5
		assert.InDelta(t, pot, rec.Pot, 1e-9)
		assert.Zero(t, rec.Withdrawal)
	}
}

func TestHarvestZeroCapWithdrawsEveryWeek(t *testing.T) {
	t.Parallel()

	history := Harvest(HarvestParams{
		InitialPot:       100,
		WeeklyReturnRate: 0.25,
		EngineCap:        0,
		TotalWeeks:       3,
		GrowthVaultPct:   50,
		HarvestVaultPct:  25,
	})
	require.Len(t, history, 3)

	// Week 1 empties the pot with the growth split, later weeks see a zero
	// pot and have nothing left to withdraw.
	assert.InDelta(t, 125, history[0].Withdrawal, 1e-9)
	assert.InDelta(t, 62.5, history[0].Vault, 1e-9)
	assert.InDelta(t, 62.5, history[0].Spend, 1e-9)
	assert.Zero(t, history[0].Pot)
	assert.Zero(t, history[1].Withdrawal)
}

func TestHarvestInvariants(t *testing.T) {
	t.Parallel()

	params := []HarvestParams{
		{InitialPot: 220, WeeklyReturnRate: 0.25, EngineCap: 10000, TotalWeeks: 52, GrowthVaultPct: 50, HarvestVaultPct: 25},
		{InitialPot: 5000, WeeklyReturnRate: 1.0, EngineCap: 6000, TotalWeeks: 12, GrowthVaultPct: 80, HarvestVaultPct: 10},
		{InitialPot: 9000, WeeklyReturnRate: 0.02, EngineCap: 9500, TotalWeeks: 100, InitialVault: 300, GrowthVaultPct: 50, HarvestVaultPct: 25},
		{InitialPot: 10, WeeklyReturnRate: -3, EngineCap: 100, TotalWeeks: 20, GrowthVaultPct: 50, HarvestVaultPct: 25},
	}

	for _, p := range params {
		p := p
		history := Harvest(p)

		prevVault := p.InitialVault
		prevSpend := 0.0
		for _, rec := range history {
			// Pot never ends a week above the cap.
			assert.LessOrEqual(t, rec.Pot, p.EngineCap, "week %d", rec.Week)

			// Vault and spend only ever grow.
			assert.GreaterOrEqual(t, rec.Vault, prevVault, "week %d", rec.Week)
			assert.GreaterOrEqual(t, rec.Spend, prevSpend, "week %d", rec.Week)

			// Every withdrawn dollar lands in vault or spend.
			vaultDelta := rec.Vault - prevVault
			spendDelta := rec.Spend - prevSpend
			assert.InDelta(t, rec.Withdrawal, vaultDelta+spendDelta, 1e-6, "week %d", rec.Week)

			prevVault = rec.Vault
			prevSpend = rec.Spend
		}
	}
}

func TestHarvestAllocationRatioPerPhase(t *testing.T) {
	t.Parallel()

	p := HarvestParams{
		InitialPot:       5000,
		WeeklyReturnRate: 0.5,
		EngineCap:        6000,
		TotalWeeks:       6,
		GrowthVaultPct:   60,
		HarvestVaultPct:  20,
	}
	history := Harvest(p)

	prevVault := 0.0
	capped := 0
	for _, rec := range history {
		if rec.Withdrawal == 0 {
			prevVault = rec.Vault
			continue
		}
		capped++
		frac := p.HarvestVaultPct / 100
		if capped == 1 {
			frac = p.GrowthVaultPct / 100
		}
		assert.InDelta(t, rec.Withdrawal*frac, rec.Vault-prevVault, 1e-6, "week %d", rec.Week)
		prevVault = rec.Vault
	}
	assert.Greater(t, capped, 1, "scenario must exercise both phases")
}

// With a constant positive rate a capped pot can never dip back under the
// cap, so the two phase policies only diverge on sign-flipping rates
// (1+rate < 0). That degenerate region is still in the accepted domain.
func TestHarvestResetPhaseOnDip(t *testing.T) {
	t.Parallel()

	base := HarvestParams{
		InitialPot:       10,
		WeeklyReturnRate: -3,
		EngineCap:        100,
		TotalWeeks:       6,
		GrowthVaultPct:   50,
		HarvestVaultPct:  25,
	}

	// Pot oscillates: -20, 40, -80, 160 (capped), -200, 400 (capped again).
	noReset := Harvest(base)
	require.Len(t, noReset, 6)
	assert.InDelta(t, 60, noReset[3].Withdrawal, 1e-9)
	assert.InDelta(t, 30, noReset[3].Vault, 1e-9)
	assert.InDelta(t, 30, noReset[3].Spend, 1e-9)

	// Second capped week keeps the harvest split despite the dip in week 5.
	assert.InDelta(t, 300, noReset[5].Withdrawal, 1e-9)
	assert.InDelta(t, 105, noReset[5].Vault, 1e-9)
	assert.InDelta(t, 255, noReset[5].Spend, 1e-9)

	reset := base
	reset.ResetPhaseOnDip = true
	dipped := Harvest(reset)
	require.Len(t, dipped, 6)

	// The dip re-armed the growth split.
	assert.InDelta(t, 300, dipped[5].Withdrawal, 1e-9)
	assert.InDelta(t, 180, dipped[5].Vault, 1e-9)
	assert.InDelta(t, 180, dipped[5].Spend, 1e-9)
}

func TestDefaultHarvestParams(t *testing.T) {
	t.Parallel()

	p := DefaultHarvestParams()
	assert.Equal(t, float64(DefaultGrowthVaultPct), p.GrowthVaultPct)
	assert.Equal(t, float64(DefaultHarvestVaultPct), p.HarvestVaultPct)
	assert.False(t, p.ResetPhaseOnDip)
}

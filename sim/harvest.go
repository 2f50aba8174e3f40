package sim

// Default vault splits applied to withdrawals, in percent.
const (
	DefaultGrowthVaultPct  = 50
	DefaultHarvestVaultPct = 25
)

// HarvestParams configures a capped-reinvestment simulation.
//
// The pot compounds at WeeklyReturnRate until it reaches EngineCap; from then
// on the excess above the cap is withdrawn each week and split between the
// vault and spendable cash. The split applied to the very first capped week is
// GrowthVaultPct; every later capped week uses HarvestVaultPct.
type HarvestParams struct {
	InitialPot       float64
	WeeklyReturnRate float64
	EngineCap        float64
	TotalWeeks       int
	InitialVault     float64

	// Percent of each withdrawal routed to the vault, per phase. Zero values
	// are valid (everything goes to spend); use DefaultGrowthVaultPct and
	// DefaultHarvestVaultPct for the stock behavior.
	GrowthVaultPct  float64
	HarvestVaultPct float64

	// ResetPhaseOnDip restores the historical behavior where a pot that dips
	// back under the cap re-arms the growth split for the next capped week.
	// The default (false) keeps the harvest split forever once the cap has
	// been reached, regardless of later dips.
	ResetPhaseOnDip bool
}

// WeekRecord is the state of the harvest engine after one weekly transition.
// Vault and Spend are cumulative running totals; Profit is the raw pre-cap
// gain for the week and Withdrawal the amount removed from the pot (0 on
// weeks with no withdrawal).
type WeekRecord struct {
	Week       int
	Pot        float64
	Vault      float64
	Spend      float64
	Profit     float64
	Withdrawal float64
}

// DefaultHarvestParams returns the parameter set the interactive prompts
// offer as defaults.
func DefaultHarvestParams() HarvestParams {
	return HarvestParams{
		InitialPot:       1000,
		WeeklyReturnRate: DefaultGrowthRate,
		EngineCap:        10000,
		TotalWeeks:       DefaultPeriods,
		InitialVault:     0,
		GrowthVaultPct:   DefaultGrowthVaultPct,
		HarvestVaultPct:  DefaultHarvestVaultPct,
	}
}

// Harvest runs the weekly harvest-engine simulation and returns one record
// per week. TotalWeeks <= 0 yields an empty result.
//
// The function is total: any real-valued parameters are accepted, including
// negative return rates (the pot shrinks without a floor) and a zero cap
// (every positive pot triggers a withdrawal from week 1).
func Harvest(p HarvestParams) []WeekRecord {
	if p.TotalWeeks <= 0 {
		return nil
	}

	pot := p.InitialPot
	vault := p.InitialVault
	spend := 0.0
	reachedCap := false

	history := make([]WeekRecord, 0, p.TotalWeeks)

	for week := 1; week <= p.TotalWeeks; week++ {
		profit := pot * p.WeeklyReturnRate
		pot += profit

		withdrawal := 0.0

		if pot < p.EngineCap {
			if p.ResetPhaseOnDip {
				reachedCap = false
			}
		} else if excess := pot - p.EngineCap; excess > 0 {
			withdrawal = excess

			frac := p.HarvestVaultPct / 100.0
			if !reachedCap {
				// First capped week: growth-phase split.
				frac = p.GrowthVaultPct / 100.0
			}
			reachedCap = true

			vault += withdrawal * frac
			spend += withdrawal * (1 - frac)
			pot = p.EngineCap
		}

		history = append(history, WeekRecord{
			Week:       week,
			Pot:        pot,
			Vault:      vault,
			Spend:      spend,
			Profit:     profit,
			Withdrawal: withdrawal,
		})
	}

	return history
}

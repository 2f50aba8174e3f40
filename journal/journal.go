// journal/journal.go
package journal

import "time"

// Simulation kinds recorded in the journal.
const (
	KindGrowth  = "growth"
	KindHarvest = "harvest"
)

// RunRecord summarizes one finished simulation run.
type RunRecord struct {
	RunID   string
	Kind    string // KindGrowth or KindHarvest
	Created time.Time
	Params  []byte // JSON snapshot of the parameters used
	Weeks   int

	// Final figures. Growth runs only fill FinalPot (the last amount);
	// harvest runs fill all three.
	FinalPot   float64
	FinalVault float64
	FinalSpend float64
}

// WeekRow is one simulated week inside a run. Growth runs carry the weekly
// amount in Pot and leave the harvest columns zero.
type WeekRow struct {
	RunID      string
	Week       int
	Pot        float64
	Vault      float64
	Spend      float64
	Profit     float64
	Withdrawal float64
}

type Journal interface {
	RecordRun(RunRecord) error
	RecordWeeks(rows []WeekRow) error
	Close() error
}

// Package run executes one configured simulation end to end: it drives the
// simulator, writes the run's artifacts to disk and records the run in the
// journal.
package run

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rustyeddy/harvestsim/config"
	"github.com/rustyeddy/harvestsim/journal"
	"github.com/rustyeddy/harvestsim/pkg/id"
	"github.com/rustyeddy/harvestsim/report"
	"github.com/rustyeddy/harvestsim/sim"
)

// Result summarizes a finished run.
type Result struct {
	RunID string
	Kind  string
	Dir   string // run artifact directory

	ReportPath string
	ChartPath  string

	Weeks      int
	FinalPot   float64
	FinalVault float64
	FinalSpend float64

	// Rendered report text, for echoing to the console.
	Report string

	// Chart series for terminal rendering.
	ChartTitle string
	Series     []report.Series
}

// Runner executes simulations described by a validated config.
type Runner struct {
	Config  *config.Config
	Journal journal.Journal // optional; nil disables journaling

	// Now is the clock used for run IDs and directory names. Defaults to
	// time.Now.
	Now func() time.Time
}

// Run executes the configured simulation, writes
// <out>/run_<kind>_<timestamp>/{simulation.txt,chart.txt} and journals the
// run. The config must already be validated.
func (r *Runner) Run() (Result, error) {
	if r.Config == nil {
		return Result{}, fmt.Errorf("run: Config is required")
	}

	now := time.Now
	if r.Now != nil {
		now = r.Now
	}

	var (
		res    Result
		rows   []journal.WeekRow
		params any
		err    error
	)
	res.RunID = id.New()
	res.Kind = r.Config.Simulation.Kind

	switch r.Config.Simulation.Kind {
	case journal.KindGrowth:
		g := r.Config.Growth
		points := sim.Growth(g.Principal, g.Rate, g.Periods)

		res.Weeks = len(points)
		res.FinalPot = points[len(points)-1].Amount
		res.ChartTitle = fmt.Sprintf("Exponential Growth Simulation over %d Weeks (%.1f%% Weekly Gain)",
			g.Periods, g.Rate*100)

		amounts := make([]float64, len(points))
		for i, pt := range points {
			amounts[i] = pt.Amount
			rows = append(rows, journal.WeekRow{RunID: res.RunID, Week: pt.Week, Pot: pt.Amount})
		}
		res.Series = []report.Series{{Name: "Amount", Values: amounts}}
		params = g

		res.Report, err = renderGrowth(points)
		if err != nil {
			return Result{}, err
		}

	case journal.KindHarvest:
		p := r.Config.Harvest.Params()
		history := sim.Harvest(p)

		res.Weeks = len(history)
		if len(history) > 0 {
			last := history[len(history)-1]
			res.FinalPot = last.Pot
			res.FinalVault = last.Vault
			res.FinalSpend = last.Spend
		}
		res.ChartTitle = fmt.Sprintf("Baseline Harvest Engine Simulation over %d Weeks", p.TotalWeeks)

		pots := make([]float64, len(history))
		vaults := make([]float64, len(history))
		spends := make([]float64, len(history))
		for i, rec := range history {
			pots[i] = rec.Pot
			vaults[i] = rec.Vault
			spends[i] = rec.Spend
			rows = append(rows, journal.WeekRow{
				RunID:      res.RunID,
				Week:       rec.Week,
				Pot:        rec.Pot,
				Vault:      rec.Vault,
				Spend:      rec.Spend,
				Profit:     rec.Profit,
				Withdrawal: rec.Withdrawal,
			})
		}
		res.Series = []report.Series{
			{Name: "Trading Pot", Values: pots},
			{Name: "Vault", Values: vaults},
			{Name: "Spend", Values: spends},
		}
		params = r.Config.Harvest

		res.Report, err = renderHarvest(history, p)
		if err != nil {
			return Result{}, err
		}

	default:
		return Result{}, fmt.Errorf("run: unknown simulation kind %q", r.Config.Simulation.Kind)
	}

	created := now().UTC()

	res.Dir = filepath.Join(r.Config.Output.Dir,
		fmt.Sprintf("run_%s_%s", res.Kind, created.Format("2006-01-02_15-04-05")))
	if err := os.MkdirAll(res.Dir, 0755); err != nil {
		return Result{}, fmt.Errorf("create run dir: %w", err)
	}

	res.ReportPath = filepath.Join(res.Dir, "simulation.txt")
	if err := os.WriteFile(res.ReportPath, []byte(res.Report), 0644); err != nil {
		return Result{}, fmt.Errorf("write report: %w", err)
	}

	res.ChartPath = filepath.Join(res.Dir, "chart.txt")
	chart, err := renderChart(res.ChartTitle, res.Series)
	if err != nil {
		return Result{}, err
	}
	if err := os.WriteFile(res.ChartPath, []byte(chart), 0644); err != nil {
		return Result{}, fmt.Errorf("write chart: %w", err)
	}

	if r.Journal != nil {
		paramsJSON, err := json.Marshal(params)
		if err != nil {
			return Result{}, fmt.Errorf("marshal params: %w", err)
		}
		rec := journal.RunRecord{
			RunID:      res.RunID,
			Kind:       res.Kind,
			Created:    created,
			Params:     paramsJSON,
			Weeks:      res.Weeks,
			FinalPot:   res.FinalPot,
			FinalVault: res.FinalVault,
			FinalSpend: res.FinalSpend,
		}
		if err := r.Journal.RecordRun(rec); err != nil {
			return Result{}, fmt.Errorf("journal run: %w", err)
		}
		if err := r.Journal.RecordWeeks(rows); err != nil {
			return Result{}, fmt.Errorf("journal weeks: %w", err)
		}
	}

	return res, nil
}

// OpenJournal builds the journal described by the config, or nil when
// journaling is disabled.
func OpenJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	case "csv":
		return journal.NewCSV(jc.RunsFile, jc.WeeksFile)
	case "", "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown journal type %q", jc.Type)
	}
}

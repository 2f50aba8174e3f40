package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/harvestsim/journal"
	"github.com/rustyeddy/harvestsim/sim"
)

// Config is the complete parameter snapshot for one simulation run. The CLI
// saves the effective snapshot after every run so `harvestsim replay` can
// repeat the last simulation.
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Growth     GrowthConfig     `json:"growth" yaml:"growth"`
	Harvest    HarvestConfig    `json:"harvest" yaml:"harvest"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Output     OutputConfig     `json:"output" yaml:"output"`
}

// SimulationConfig selects which simulator a run uses.
type SimulationConfig struct {
	Kind string `json:"kind" yaml:"kind"` // "growth" or "harvest"
}

// GrowthConfig contains exponential growth parameters.
type GrowthConfig struct {
	Principal float64 `json:"principal" yaml:"principal"`
	Rate      float64 `json:"rate" yaml:"rate"`
	Periods   int     `json:"periods" yaml:"periods"`
}

// HarvestConfig contains harvest engine parameters.
type HarvestConfig struct {
	InitialPot       float64 `json:"initial_pot" yaml:"initial_pot"`
	WeeklyReturnRate float64 `json:"weekly_return_rate" yaml:"weekly_return_rate"`
	EngineCap        float64 `json:"engine_cap" yaml:"engine_cap"`
	TotalWeeks       int     `json:"total_weeks" yaml:"total_weeks"`
	InitialVault     float64 `json:"initial_vault" yaml:"initial_vault"`
	GrowthVaultPct   float64 `json:"growth_vault_pct" yaml:"growth_vault_pct"`
	HarvestVaultPct  float64 `json:"harvest_vault_pct" yaml:"harvest_vault_pct"`
	ResetPhaseOnDip  bool    `json:"reset_phase_on_dip,omitempty" yaml:"reset_phase_on_dip,omitempty"`
}

// JournalConfig contains journaling parameters.
type JournalConfig struct {
	Type      string `json:"type" yaml:"type"` // "csv" or "sqlite"
	RunsFile  string `json:"runs_file,omitempty" yaml:"runs_file,omitempty"`
	WeeksFile string `json:"weeks_file,omitempty" yaml:"weeks_file,omitempty"`
	DBPath    string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// OutputConfig controls where run artifacts are written.
type OutputConfig struct {
	Dir        string `json:"dir" yaml:"dir"`
	PrintChart bool   `json:"print_chart" yaml:"print_chart"`
}

// Params converts the harvest section into simulator parameters.
func (h HarvestConfig) Params() sim.HarvestParams {
	return sim.HarvestParams{
		InitialPot:       h.InitialPot,
		WeeklyReturnRate: h.WeeklyReturnRate,
		EngineCap:        h.EngineCap,
		TotalWeeks:       h.TotalWeeks,
		InitialVault:     h.InitialVault,
		GrowthVaultPct:   h.GrowthVaultPct,
		HarvestVaultPct:  h.HarvestVaultPct,
		ResetPhaseOnDip:  h.ResetPhaseOnDip,
	}
}

// LastRunPath is where the CLI persists the snapshot of the last run.
func LastRunPath(outDir string) string {
	return filepath.Join(outDir, "last_run.yaml")
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	// Determine format by extension
	if ext := filepath.Ext(path); ext == ".yaml" || ext == ".yml" {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid. The simulators themselves
// accept any numbers; this is the input gate that keeps malformed parameters
// from reaching them.
func (c *Config) Validate() error {
	switch c.Simulation.Kind {
	case journal.KindGrowth:
		if c.Growth.Principal < 0 {
			return fmt.Errorf("growth.principal must be non-negative")
		}
		if c.Growth.Rate <= -1 {
			return fmt.Errorf("growth.rate must be greater than -1")
		}
		if c.Growth.Periods < 0 {
			return fmt.Errorf("growth.periods must be non-negative")
		}
	case journal.KindHarvest:
		if c.Harvest.InitialPot < 0 {
			return fmt.Errorf("harvest.initial_pot must be non-negative")
		}
		if c.Harvest.EngineCap <= 0 {
			return fmt.Errorf("harvest.engine_cap must be positive")
		}
		if c.Harvest.TotalWeeks < 0 {
			return fmt.Errorf("harvest.total_weeks must be non-negative")
		}
		if c.Harvest.InitialVault < 0 {
			return fmt.Errorf("harvest.initial_vault must be non-negative")
		}
		if c.Harvest.GrowthVaultPct < 0 || c.Harvest.GrowthVaultPct > 100 {
			return fmt.Errorf("harvest.growth_vault_pct must be between 0 and 100")
		}
		if c.Harvest.HarvestVaultPct < 0 || c.Harvest.HarvestVaultPct > 100 {
			return fmt.Errorf("harvest.harvest_vault_pct must be between 0 and 100")
		}
	default:
		return fmt.Errorf("simulation.kind must be %q or %q", journal.KindGrowth, journal.KindHarvest)
	}

	switch c.Journal.Type {
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	case "csv":
		if c.Journal.RunsFile == "" || c.Journal.WeeksFile == "" {
			return fmt.Errorf("journal runs_file and weeks_file required for CSV type")
		}
	case "", "none":
		// Journaling is optional.
	default:
		return fmt.Errorf("journal.type must be 'csv', 'sqlite' or 'none'")
	}

	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// Default returns a configuration with the same defaults the interactive
// prompts offer.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Kind: journal.KindHarvest,
		},
		Growth: GrowthConfig{
			Principal: 1000,
			Rate:      sim.DefaultGrowthRate,
			Periods:   sim.DefaultPeriods,
		},
		Harvest: HarvestConfig{
			InitialPot:       1000,
			WeeklyReturnRate: sim.DefaultGrowthRate,
			EngineCap:        10000,
			TotalWeeks:       sim.DefaultPeriods,
			InitialVault:     0,
			GrowthVaultPct:   sim.DefaultGrowthVaultPct,
			HarvestVaultPct:  sim.DefaultHarvestVaultPct,
		},
		Journal: JournalConfig{
			Type:   "sqlite",
			DBPath: "./harvestsim.sqlite",
		},
		Output: OutputConfig{
			Dir:        "./output",
			PrintChart: true,
		},
	}
}

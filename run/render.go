package run

import (
	"strings"

	"github.com/rustyeddy/harvestsim/report"
	"github.com/rustyeddy/harvestsim/sim"
)

const (
	chartFileWidth  = 72
	chartFileHeight = 14
)

func renderGrowth(points []sim.GrowthPoint) (string, error) {
	var b strings.Builder
	if err := report.Growth(&b, points); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderHarvest(history []sim.WeekRecord, p sim.HarvestParams) (string, error) {
	var b strings.Builder
	if err := report.Harvest(&b, history, p); err != nil {
		return "", err
	}
	return b.String(), nil
}

// renderChart renders the archived chart at a fixed size so the artifact does
// not depend on the terminal the run happened in.
func renderChart(title string, series []report.Series) (string, error) {
	var b strings.Builder
	if err := report.PlotPlain(&b, title, series, chartFileWidth, chartFileHeight); err != nil {
		return "", err
	}
	return b.String(), nil
}

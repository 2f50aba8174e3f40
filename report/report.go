// Package report renders simulation results as text: the per-week table the
// run directory archives and a terminal line chart of the series.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rustyeddy/harvestsim/sim"
)

// Week 1 of every projection lands on Monday, January 5, 2026. The start is
// fixed so two runs with identical parameters produce identical reports.
var startDate = time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

// WeekDates returns n consecutive Mondays beginning at the projection start.
func WeekDates(n int) []time.Time {
	dates := make([]time.Time, n)
	for i := range dates {
		dates[i] = startDate.AddDate(0, 0, 7*i)
	}
	return dates
}

// Growth writes the exponential growth report: one row per period plus a
// summary footer.
func Growth(w io.Writer, points []sim.GrowthPoint) error {
	fmt.Fprintln(w, "Exponential Growth Simulation:")
	fmt.Fprintln(w, "Week | Date (Monday) | Amount")
	fmt.Fprintln(w, strings.Repeat("-", 40))

	dates := WeekDates(len(points))
	for i, pt := range points {
		fmt.Fprintf(w, "%2d | %s | $%s\n",
			pt.Week, dates[i].Format("2006-01-02 Monday"), Money(pt.Amount))
	}

	if len(points) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Initial amount: $%s\n", Money(points[0].Amount))
		last := points[len(points)-1]
		fmt.Fprintf(w, "Final amount after %d weeks: $%s\n", last.Week, Money(last.Amount))
	}
	return nil
}

// Harvest writes the harvest engine report: one row per week plus pot, vault
// and spend totals.
func Harvest(w io.Writer, history []sim.WeekRecord, p sim.HarvestParams) error {
	fmt.Fprintln(w, "Baseline Harvest Engine Simulation:")
	fmt.Fprintln(w, "Week | Date (Monday) | Pot | Vault | Spend | Weekly Profit | Withdrawal")
	fmt.Fprintln(w, strings.Repeat("-", 80))

	dates := WeekDates(len(history))
	for i, rec := range history {
		fmt.Fprintf(w, "%2d | %s | $%s | $%s | $%s | $%s | $%s\n",
			rec.Week, dates[i].Format("2006-01-02 Monday"),
			Money(rec.Pot), Money(rec.Vault), Money(rec.Spend),
			Money(rec.Profit), Money(rec.Withdrawal))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Initial pot: $%s\n", Money(p.InitialPot))
	fmt.Fprintf(w, "Initial vault: $%s\n", Money(p.InitialVault))
	if len(history) > 0 {
		last := history[len(history)-1]
		fmt.Fprintf(w, "Final pot: $%s\n", Money(last.Pot))
		fmt.Fprintf(w, "Total vault: $%s\n", Money(last.Vault))
		fmt.Fprintf(w, "Total spend: $%s\n", Money(last.Spend))
	}
	return nil
}

// Money formats an amount with two decimals and thousands separators,
// e.g. 1234567.891 -> "1,234,567.89".
func Money(v float64) string {
	neg := math.Signbit(v)
	s := strconv.FormatFloat(math.Abs(v), 'f', 2, 64)

	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

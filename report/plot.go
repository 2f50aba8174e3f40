package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

// Series is a named value sequence for plotting.
type Series struct {
	Name   string
	Values []float64
}

const (
	defaultPlotHeight = 12
	minPlotWidth      = 16
	fallbackTermWidth = 80
	axisSeparator     = " | "
	colorReset        = "\x1b[0m"
)

type seriesStyle struct {
	marker rune
	color  string
}

var seriesStyles = []seriesStyle{
	{marker: '*', color: "\x1b[36m"}, // cyan
	{marker: '+', color: "\x1b[32m"}, // green
	{marker: 'x', color: "\x1b[31m"}, // red
	{marker: 'o', color: "\x1b[33m"}, // yellow
}

// Plot renders a multi-series line chart as text. All series share one value
// scale so pot, vault and spend stay comparable. Width and height of 0 pick
// defaults (width from the terminal when w is one).
func Plot(w io.Writer, title string, series []Series, width, height int) error {
	return plot(w, title, series, width, height, useColor(w))
}

// PlotPlain renders the chart without ANSI colors, for writing to files.
func PlotPlain(w io.Writer, title string, series []Series, width, height int) error {
	return plot(w, title, series, width, height, false)
}

func plot(w io.Writer, title string, series []Series, width, height int, color bool) error {
	series = nonEmpty(series)
	if len(series) == 0 {
		return nil
	}

	if height <= 0 {
		height = defaultPlotHeight
	}
	if width <= 0 {
		width = autoWidth(w)
	}
	if width < minPlotWidth {
		width = minPlotWidth
	}

	lo, hi := valueRange(series)
	if hi-lo < 1e-9 {
		lo--
		hi++
	}

	// chars[y][x] holds the style index of the series drawn there, -1 empty.
	// Later series draw over earlier ones.
	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			cells[y][x] = -1
		}
	}

	for si, s := range series {
		vals := resample(s.Values, width)
		prevRow := -1
		for x, v := range vals {
			row := valueToRow(v, lo, hi, height)
			cells[row][x] = si
			// Fill the vertical gap to the previous column so steep
			// moves read as a line, not scattered points.
			if prevRow >= 0 && prevRow != row {
				step := 1
				if row < prevRow {
					step = -1
				}
				for y := prevRow + step; y != row; y += step {
					if cells[y][x] < 0 {
						cells[y][x] = si
					}
				}
			}
			prevRow = row
		}
	}

	labels := axisLabels(lo, hi, height)
	labelWidth := 0
	for _, l := range labels {
		if len(l) > labelWidth {
			labelWidth = len(l)
		}
	}

	if title != "" {
		if _, err := fmt.Fprintln(w, title); err != nil {
			return err
		}
	}

	for y := 0; y < height; y++ {
		var row strings.Builder
		fmt.Fprintf(&row, "%*s%s", labelWidth, labels[y], axisSeparator)
		for x := 0; x < width; x++ {
			si := cells[y][x]
			if si < 0 {
				row.WriteByte(' ')
				continue
			}
			style := seriesStyles[si%len(seriesStyles)]
			if color {
				row.WriteString(style.color)
				row.WriteRune(style.marker)
				row.WriteString(colorReset)
			} else {
				row.WriteRune(style.marker)
			}
		}
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}

	axis := strings.Repeat(" ", labelWidth) + axisSeparator + strings.Repeat("-", width)
	if _, err := fmt.Fprintln(w, axis); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, legend(series, color, labelWidth)); err != nil {
		return err
	}
	return nil
}

func nonEmpty(series []Series) []Series {
	out := make([]Series, 0, len(series))
	for _, s := range series {
		if len(s.Values) > 0 {
			out = append(out, s)
		}
	}
	return out
}

func valueRange(series []Series) (lo, hi float64) {
	lo = math.Inf(1)
	hi = math.Inf(-1)
	for _, s := range series {
		for _, v := range s.Values {
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	return lo, hi
}

// resample stretches or shrinks values to exactly width points using nearest
// neighbor on the index axis.
func resample(values []float64, width int) []float64 {
	if len(values) == width {
		out := make([]float64, width)
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	if len(values) == 1 {
		for i := range out {
			out[i] = values[0]
		}
		return out
	}
	for i := range out {
		pos := float64(i) * float64(len(values)-1) / float64(width-1)
		out[i] = values[int(math.Round(pos))]
	}
	return out
}

// valueToRow maps a value to a grid row, row 0 being the top.
func valueToRow(v, lo, hi float64, height int) int {
	frac := (v - lo) / (hi - lo)
	row := int(math.Round(frac * float64(height-1)))
	if row < 0 {
		row = 0
	}
	if row > height-1 {
		row = height - 1
	}
	return height - 1 - row
}

func axisLabels(lo, hi float64, height int) []string {
	labels := make([]string, height)
	for i := range labels {
		labels[i] = ""
	}
	labels[0] = Money(hi)
	labels[height-1] = Money(lo)
	if height > 2 {
		labels[height/2] = Money(lo + (hi-lo)/2)
	}
	return labels
}

func legend(series []Series, color bool, indent int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", indent+len(axisSeparator)))
	for i, s := range series {
		if i > 0 {
			b.WriteString("  ")
		}
		style := seriesStyles[i%len(seriesStyles)]
		if color {
			b.WriteString(style.color)
		}
		fmt.Fprintf(&b, "%c %s", style.marker, s.Name)
		if color {
			b.WriteString(colorReset)
		}
	}
	return b.String()
}

func autoWidth(w io.Writer) int {
	total := fallbackTermWidth
	if file, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(file.Fd())); err == nil && tw > 0 {
			total = tw
		}
	}
	// Leave room for the widest plausible label column.
	width := total - 16
	if width < minPlotWidth {
		width = minPlotWidth
	}
	return width
}

func useColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

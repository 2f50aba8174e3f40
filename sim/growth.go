package sim

import "math"

// Defaults for the growth projection, matching the interactive prompts.
const (
	DefaultGrowthRate = 0.25
	DefaultPeriods    = 52
)

// GrowthPoint is one period of an exponential growth projection.
// Week 0 holds the untouched principal.
type GrowthPoint struct {
	Week   int
	Amount float64
}

// Growth projects compound growth of principal over periods weeks at the
// given per-week rate. The result has periods+1 points; point k holds
// principal*(1+rate)^k, computed in closed form from the original principal
// each week rather than by carrying the previous amount forward, so the
// sequence is reproducible bit-for-bit.
//
// Any rate is accepted, including 0 (flat sequence) and negative rates.
func Growth(principal, rate float64, periods int) []GrowthPoint {
	if periods < 0 {
		periods = 0
	}

	points := make([]GrowthPoint, 0, periods+1)
	points = append(points, GrowthPoint{Week: 0, Amount: principal})

	for week := 1; week <= periods; week++ {
		points = append(points, GrowthPoint{
			Week:   week,
			Amount: principal * math.Pow(1+rate, float64(week)),
		})
	}
	return points
}

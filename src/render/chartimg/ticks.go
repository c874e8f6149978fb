package chartimg

import (
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"
)

// buildTicks generates up to n ticks spanning [min,max] on the 1, 2, 2.5, 5
// step ladder, so axis labels stay stable as auto-ranged bounds shift
// slightly between frames.
func buildTicks(min, max float64, n int) []chart.Tick {
	vals := tickValues(min, max, n)
	out := make([]chart.Tick, 0, len(vals))
	for _, v := range vals {
		out = append(out, chart.Tick{Value: v, Label: formatTick(v)})
	}
	return out
}

func tickValues(min, max float64, n int) []float64 {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	mag := math.Pow(10, math.Floor(math.Log10(span/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil(span/step) + 1
		if count < 2 {
			count = 2
		}
		diff := math.Abs(count - float64(n))
		if diff < bestScore {
			bestScore = diff
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	var out []float64
	for v := start; v <= end+bestStep*0.5; v += bestStep {
		out = append(out, round6(v))
	}
	if len(out) < 2 {
		out = []float64{min, max}
	}
	return out
}

// round6 stabilizes label comparisons against float drift.
func round6(v float64) float64 { return math.Round(v*1e6) / 1e6 }

// formatTick picks a compact precision for the magnitude of v.
func formatTick(v float64) string {
	av := math.Abs(v)
	switch {
	case av >= 100:
		return strconv.FormatInt(int64(math.Round(v)), 10)
	case av >= 10:
		return strconv.FormatFloat(v, 'f', 1, 64)
	case av >= 1:
		return strconv.FormatFloat(v, 'f', 2, 64)
	case av >= 0.01 || av == 0:
		return strconv.FormatFloat(v, 'f', 3, 64)
	default:
		return strconv.FormatFloat(v, 'f', 4, 64)
	}
}

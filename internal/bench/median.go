// internal/bench/median.go
package bench

import "sort"

// Median reduces timing samples to a noise-robust point estimate: the
// sorted middle value for an odd count, the mean of the two middle
// values for an even count. The input slice is not modified.
func Median(samples []float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

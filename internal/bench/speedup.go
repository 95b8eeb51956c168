// internal/bench/speedup.go
package bench

import "fmt"

// Aggregate derives per-point speedup relative to the single-thread
// baseline at the same length. The threads=1 point divides its median by
// itself, so its speedup is exactly 1.0. A length without a threads=1
// measurement is a configuration error, not a runtime condition.
func Aggregate(measurements []Measurement) ([]Record, error) {
	baseline := make(map[int]float64, len(measurements))
	for _, m := range measurements {
		if m.Threads == 1 {
			baseline[m.Length] = m.MedianSeconds
		}
	}

	records := make([]Record, 0, len(measurements))
	for _, m := range measurements {
		base, ok := baseline[m.Length]
		if !ok {
			return nil, fmt.Errorf("bench: no threads=1 baseline measurement for length %d", m.Length)
		}
		records = append(records, Record{
			Length:        m.Length,
			Threads:       m.Threads,
			MedianSeconds: m.MedianSeconds,
			Speedup:       base / m.MedianSeconds,
		})
	}
	return records, nil
}

package cpureport

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"
)

var ErrNoSamples = errors.New("no samples to compute statistics from")

// Stats holds the order statistics for one run's CPU samples, in
// percent. Values are computed once by CalculateStats and never
// modified afterwards.
type Stats struct {
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	P95    float64
	P99    float64
}

// CalculateStats computes summary statistics over data. Median is the
// element at index n/2 of the sorted samples — the upper-middle element
// for even n, not the midpoint average. Reports produced since the
// first load-test runs use this convention, so it stays.
//
// Percentile indices truncate (int(n*0.95), int(n*0.99)) with no bounds
// check beyond the n > 1 guard on p99; for n == 1, p99 is the maximum.
func CalculateStats(data []float64) (Stats, error) {
	if len(data) == 0 {
		return Stats{}, ErrNoSamples
	}
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	n := len(sorted)
	s := Stats{
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   stat.Mean(data, nil),
		Median: sorted[n/2],
		P95:    sorted[int(float64(n)*0.95)],
		P99:    sorted[n-1],
	}
	if n > 1 {
		s.P99 = sorted[int(float64(n)*0.99)]
	}
	return s, nil
}

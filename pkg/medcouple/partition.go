package medcouple

import (
	"fmt"
	"math"
	"sort"
)

// partition is the sample split around its median. Values equal to the
// median appear in both halves; ties counts them.
type partition struct {
	lower  []float64 // values <= median, ordered by decreasing value
	upper  []float64 // values >= median, ordered by increasing value
	median float64
	ties   int
}

// newPartition validates the sample, sorts a copy, and splits it into the
// two half-sequences ordered by distance from the median. Validation is the
// only failure point; the selector assumes a well-formed partition.
func newPartition(sample []float64) (partition, error) {
	if len(sample) == 0 {
		return partition{}, ErrEmptySample
	}

	for i, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return partition{}, fmt.Errorf("%w at index %d", ErrNonFinite, i)
		}
	}

	sorted := append([]float64(nil), sample...)
	sort.Float64s(sorted)

	n := len(sorted)

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	// first index with value >= median and first index with value > median
	from := sort.SearchFloat64s(sorted, median)
	to := sort.Search(n, func(i int) bool { return sorted[i] > median })

	upper := append([]float64(nil), sorted[from:]...)

	lower := make([]float64, to)
	for i := range lower {
		lower[i] = sorted[to-1-i]
	}

	return partition{
		lower:  lower,
		upper:  upper,
		median: median,
		ties:   to - from,
	}, nil
}

func (p partition) kernel() kernel {
	return kernel{
		lower: p.lower,
		upper: p.upper,
		med:   p.median,
		ties:  p.ties,
	}
}

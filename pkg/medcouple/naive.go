package medcouple

import "sort"

// Naive computes the medcouple by materializing every kernel value and
// taking the exact median of the resulting multiset. It is quadratic in
// time and memory and exists as a reference for validating the fast
// selector; both share the partitioner and kernel, so any disagreement
// between the two isolates a selection bug.
func Naive(sample []float64) (float64, error) {
	part, err := newPartition(sample)
	if err != nil {
		return 0, err
	}

	k := part.kernel()

	values := make([]float64, 0, k.rows()*k.cols())
	for i := 0; i < k.rows(); i++ {
		for j := 0; j < k.cols(); j++ {
			values = append(values, k.at(i, j))
		}
	}

	sort.Float64s(values)

	total := len(values)
	if total%2 == 1 {
		return values[total/2], nil
	}

	return (values[total/2-1] + values[total/2]) / 2, nil
}

// Package medcouple computes the medcouple, a robust measure of skewness
// based on the median of pairwise kernel values around the sample median.
// The fast path selects the median of the implicit kernel matrix in
// O(n log n) without materializing the matrix.
package medcouple

import (
	"fmt"
)

var (
	// ErrInvalidInput is the parent error for all input validation failures.
	ErrInvalidInput = fmt.Errorf("invalid input")

	// ErrEmptySample indicates a sample with no values.
	ErrEmptySample = fmt.Errorf("%w: empty sample", ErrInvalidInput)

	// ErrNonFinite indicates a sample containing NaN or an infinity.
	ErrNonFinite = fmt.Errorf("%w: non-finite value in sample", ErrInvalidInput)
)

// Medcouple returns the medcouple statistic for the provided sample. The
// result is always in the closed interval [-1, 1]; negative values indicate
// left skew and positive values right skew. The sample is not mutated.
//
// The sample must be non-empty and contain only finite values; anything
// else returns an error wrapping ErrInvalidInput.
func Medcouple(sample []float64) (float64, error) {
	part, err := newPartition(sample)
	if err != nil {
		return 0, err
	}

	return selectMedian(part.kernel()), nil
}

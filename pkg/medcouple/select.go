package medcouple

import "sort"

// selectMedian returns the exact median of the kernel multiset. For an even
// number of entries the two central order statistics are averaged, matching
// the standard median definition used by the quadratic reference.
func selectMedian(k kernel) float64 {
	total := k.rows() * k.cols()

	if total%2 == 1 {
		return kthSmallest(k, total/2)
	}

	a := kthSmallest(k, total/2-1)
	b := kthSmallest(k, total/2)

	return (a + b) / 2
}

// kthSmallest selects the entry with zero-based rank target from the implicit
// row-sorted matrix. Each row keeps a [left, right] window of columns whose
// entries are still candidates; everything outside a window is already ranked
// relative to the target. A weighted median of the window midpoints serves as
// the pivot, and per-row binary searches reclassify whole row segments at a
// time. Ranks below leftTotal are known smaller than every candidate and
// ranks at or above rightTotal known larger, so the loop terminates once the
// candidate count shrinks to at most one entry per row.
func kthSmallest(k kernel, target int) float64 {
	p, q := k.rows(), k.cols()

	left := make([]int, p)
	right := make([]int, p)
	for i := range right {
		right[i] = q - 1
	}

	leftTotal, rightTotal := 0, p*q

	// scratch space reused across iterations
	midValues := make([]float64, 0, p)
	midWeights := make([]int, 0, p)
	below := make([]int, p)
	atOrBelow := make([]int, p)

	for rightTotal-leftTotal > p {
		midValues = midValues[:0]
		midWeights = midWeights[:0]

		for i := 0; i < p; i++ {
			if left[i] > right[i] {
				continue
			}

			midValues = append(midValues, k.at(i, (left[i]+right[i])/2))
			midWeights = append(midWeights, right[i]-left[i]+1)
		}

		pivot := weightedMedian(midValues, midWeights)

		sumBelow, sumAtOrBelow := 0, 0
		for i := 0; i < p; i++ {
			below[i] = sort.Search(q, func(j int) bool { return k.at(i, j) >= pivot })
			atOrBelow[i] = sort.Search(q, func(j int) bool { return k.at(i, j) > pivot })
			sumBelow += below[i]
			sumAtOrBelow += atOrBelow[i]
		}

		switch {
		case target < sumBelow:
			// discard every entry at or above the pivot
			for i := 0; i < p; i++ {
				right[i] = below[i] - 1
			}
			rightTotal = sumBelow
		case target >= sumAtOrBelow:
			// discard every entry at or below the pivot
			for i := 0; i < p; i++ {
				left[i] = atOrBelow[i]
			}
			leftTotal = sumAtOrBelow
		default:
			// the target rank falls among entries equal to the pivot
			return pivot
		}
	}

	// Few enough candidates remain to resolve by a direct scan.
	remaining := make([]float64, 0, rightTotal-leftTotal)
	for i := 0; i < p; i++ {
		for j := left[i]; j <= right[i]; j++ {
			remaining = append(remaining, k.at(i, j))
		}
	}

	sort.Float64s(remaining)

	return remaining[target-leftTotal]
}

// weightedMedian returns the smallest value whose cumulative weight covers
// half of the total. Weighting the row midpoints by window size keeps the
// pivot balanced so every selection round discards a constant fraction of
// the live entries.
func weightedMedian(values []float64, weights []int) float64 {
	type weighted struct {
		value  float64
		weight int
	}

	pairs := make([]weighted, len(values))
	total := 0
	for i, v := range values {
		pairs[i] = weighted{value: v, weight: weights[i]}
		total += weights[i]
	}

	sort.Slice(pairs, func(a, b int) bool { return pairs[a].value < pairs[b].value })

	cumulative := 0
	for _, pair := range pairs {
		cumulative += pair.weight
		if 2*cumulative >= total {
			return pair.value
		}
	}

	return pairs[len(pairs)-1].value
}

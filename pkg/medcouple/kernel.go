package medcouple

// kernel evaluates cells of the implicit lower x upper matrix on demand.
// Row i is fixed to lower[i] and is non-decreasing in j because upper is
// ordered ascending; the selector depends on this ordering.
type kernel struct {
	lower []float64
	upper []float64
	med   float64
	ties  int
}

func (k kernel) rows() int { return len(k.lower) }

func (k kernel) cols() int { return len(k.upper) }

// at returns the kernel value h(i, j): the normalized difference of the two
// arm lengths around the median. Both halves include values equal to the
// median, so lower[i] == upper[j] can only mean both are exactly the median;
// the continuous form is 0/0 there and the cell is resolved by comparing the
// pair's rank against the tie count instead.
func (k kernel) at(i, j int) float64 {
	lo, up := k.lower[i], k.upper[j]

	if lo == up {
		switch rank := i + j - (k.ties - 1); {
		case rank < 0:
			return -1
		case rank > 0:
			return 1
		default:
			return 0
		}
	}

	return ((up - k.med) - (k.med - lo)) / (up - lo)
}

package medcouple

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedcouple_KnownValues(t *testing.T) {
	tests := []struct {
		Name           string
		Sample         []float64
		ExpectedResult float64
	}{
		{
			Name:           "SingleElement",
			Sample:         []float64{5},
			ExpectedResult: 0,
		},
		{
			Name:           "TwoElements",
			Sample:         []float64{1, 2},
			ExpectedResult: 0,
		},
		{
			Name:           "AllEqual",
			Sample:         []float64{3, 3, 3, 3},
			ExpectedResult: 0,
		},
		{
			Name:           "SymmetricOdd",
			Sample:         []float64{-2, -1, 0, 1, 2},
			ExpectedResult: 0,
		},
		{
			Name:           "SymmetricEven",
			Sample:         []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			ExpectedResult: 0,
		},
		{
			Name:           "RightSkewed",
			Sample:         []float64{1, 2, 4, 8, 16},
			ExpectedResult: 1.0 / 3.0,
		},
		{
			Name:           "LeftSkewed",
			Sample:         []float64{-16, -8, -4, -2, -1},
			ExpectedResult: -1.0 / 3.0,
		},
		{
			Name:           "MedianTiedWithMinimum",
			Sample:         []float64{-5, 0, 0, 0, 0},
			ExpectedResult: -0.5,
		},
		{
			Name:           "MedianTiedWithMaximum",
			Sample:         []float64{0, 0, 0, 0, 5},
			ExpectedResult: 0.5,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			result, err := Medcouple(test.Sample)

			require.NoError(t, err)
			assert.InDelta(t, test.ExpectedResult, result, 1e-12)
		})
	}
}

func TestMedcouple_InvalidInput(t *testing.T) {
	tests := []struct {
		Name   string
		Sample []float64
	}{
		{Name: "Empty", Sample: []float64{}},
		{Name: "Nil", Sample: nil},
		{Name: "NaN", Sample: []float64{1, math.NaN(), 3}},
		{Name: "PositiveInfinity", Sample: []float64{1, math.Inf(1)}},
		{Name: "NegativeInfinity", Sample: []float64{math.Inf(-1), 2}},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Medcouple(test.Sample)
			require.ErrorIs(t, err, ErrInvalidInput)

			_, err = Naive(test.Sample)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestMedcouple_ResultInRange(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for n := 1; n <= 40; n++ {
		sample := make([]float64, n)
		for i := range sample {
			sample[i] = rnd.NormFloat64() * 10
		}

		result, err := Medcouple(sample)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, result, -1.0)
		assert.LessOrEqual(t, result, 1.0)
	}
}

func TestMedcouple_Negation(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rnd.Intn(30)
		sample := make([]float64, n)
		negated := make([]float64, n)
		for i := range sample {
			sample[i] = rnd.NormFloat64()
			negated[i] = -sample[i]
		}

		a, err := Medcouple(sample)
		require.NoError(t, err)

		b, err := Medcouple(negated)
		require.NoError(t, err)

		assert.InDelta(t, -a, b, 1e-12)
	}
}

func TestMedcouple_ScaleAndShiftInvariance(t *testing.T) {
	sample := []float64{0.5, 1, 2, 3.5, 8, 13, 21, 34}

	base, err := Medcouple(sample)
	require.NoError(t, err)

	scaled := make([]float64, len(sample))
	shifted := make([]float64, len(sample))
	for i, v := range sample {
		scaled[i] = v * 2.5
		shifted[i] = v + 100
	}

	result, err := Medcouple(scaled)
	require.NoError(t, err)
	assert.InDelta(t, base, result, 1e-9)

	result, err = Medcouple(shifted)
	require.NoError(t, err)
	assert.InDelta(t, base, result, 1e-9)
}

// The fast selector and the quadratic reference share the partitioner and
// the kernel, so any disagreement here isolates a selection bug.
func TestMedcouple_MatchesNaive(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))

	t.Run("ContinuousSamples", func(t *testing.T) {
		for n := 1; n <= 12; n++ {
			for trial := 0; trial < 200; trial++ {
				sample := make([]float64, n)
				for i := range sample {
					sample[i] = rnd.NormFloat64()
				}

				fast, err := Medcouple(sample)
				require.NoError(t, err)

				naive, err := Naive(sample)
				require.NoError(t, err)

				require.InDelta(t, naive, fast, 1e-9, "n=%d sample=%v", n, sample)
			}
		}
	})

	// drawing from a handful of integers forces repeated median values
	t.Run("TieHeavySamples", func(t *testing.T) {
		for n := 1; n <= 12; n++ {
			for trial := 0; trial < 200; trial++ {
				sample := make([]float64, n)
				for i := range sample {
					sample[i] = float64(rnd.Intn(4))
				}

				fast, err := Medcouple(sample)
				require.NoError(t, err)

				naive, err := Naive(sample)
				require.NoError(t, err)

				require.InDelta(t, naive, fast, 1e-9, "n=%d sample=%v", n, sample)
			}
		}
	})

	t.Run("LargerSamples", func(t *testing.T) {
		for _, n := range []int{51, 100, 257} {
			sample := make([]float64, n)
			for i := range sample {
				sample[i] = math.Exp(rnd.NormFloat64())
			}

			fast, err := Medcouple(sample)
			require.NoError(t, err)

			naive, err := Naive(sample)
			require.NoError(t, err)

			require.InDelta(t, naive, fast, 1e-9)
		}
	})
}

func TestMedcouple_WorkedExample(t *testing.T) {
	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	part, err := newPartition(sample)
	require.NoError(t, err)

	assert.Equal(t, 5.5, part.median)
	assert.Equal(t, []float64{5, 4, 3, 2, 1}, part.lower)
	assert.Equal(t, []float64{6, 7, 8, 9, 10}, part.upper)
	assert.Equal(t, 0, part.ties)

	fast, err := Medcouple(sample)
	require.NoError(t, err)

	naive, err := Naive(sample)
	require.NoError(t, err)

	assert.Equal(t, naive, fast)
	assert.Equal(t, 0.0, fast)
}

func BenchmarkMedcouple(b *testing.B) {
	rnd := rand.New(rand.NewSource(1))

	sample := make([]float64, 10000)
	for i := range sample {
		sample[i] = math.Exp(rnd.NormFloat64())
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = Medcouple(sample)
	}
}

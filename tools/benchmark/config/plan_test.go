package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBenchmarkPlan(t *testing.T) {
	raw := `{
		"seed": 42,
		"estimators": ["fast", "naive"],
		"samples": [
			{
				"name": "lognormal-sweep",
				"distribution": {"type": "lognormal", "mu": 0, "sigma": 1},
				"sizes": [100, 1000, 10000],
				"count": 5,
				"transform": "2*x+10"
			}
		]
	}`

	plan, err := DecodeBenchmarkPlan([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, uint64(42), plan.Seed)
	assert.Equal(t, []Estimator{FastEstimator, NaiveEstimator}, plan.Estimators)
	require.Len(t, plan.Samples, 1)
	assert.Equal(t, "lognormal-sweep", plan.Samples[0].Name)
	assert.Equal(t, LogNormalDistribution, plan.Samples[0].Distribution.Type)
	assert.Equal(t, []int{100, 1000, 10000}, plan.Samples[0].Sizes)
	assert.Equal(t, 5, plan.Samples[0].Count)
	assert.Equal(t, "2*x+10", plan.Samples[0].Transform)
}

func TestDecodeBenchmarkPlan_DefaultsEstimators(t *testing.T) {
	raw := `{
		"samples": [
			{"name": "n", "distribution": {"type": "normal", "sigma": 1}, "sizes": [10], "count": 1}
		]
	}`

	plan, err := DecodeBenchmarkPlan([]byte(raw))

	require.NoError(t, err)
	assert.Equal(t, []Estimator{FastEstimator}, plan.Estimators)
}

func TestDecodeBenchmarkPlan_Invalid(t *testing.T) {
	tests := []struct {
		Name        string
		Raw         string
		ExpectedErr error
	}{
		{
			Name:        "MalformedJSON",
			Raw:         `{`,
			ExpectedErr: ErrEncoding,
		},
		{
			Name:        "NoSamples",
			Raw:         `{"samples": []}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "UnknownEstimator",
			Raw:         `{"estimators": ["quantum"], "samples": [{"name": "n", "distribution": {"type": "normal"}, "sizes": [10], "count": 1}]}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "UnknownDistribution",
			Raw:         `{"samples": [{"name": "n", "distribution": {"type": "cauchy"}, "sizes": [10], "count": 1}]}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "MissingName",
			Raw:         `{"samples": [{"distribution": {"type": "normal"}, "sizes": [10], "count": 1}]}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "NoSizes",
			Raw:         `{"samples": [{"name": "n", "distribution": {"type": "normal"}, "sizes": [], "count": 1}]}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "ZeroSize",
			Raw:         `{"samples": [{"name": "n", "distribution": {"type": "normal"}, "sizes": [0], "count": 1}]}`,
			ExpectedErr: ErrPlan,
		},
		{
			Name:        "ZeroCount",
			Raw:         `{"samples": [{"name": "n", "distribution": {"type": "normal"}, "sizes": [10], "count": 0}]}`,
			ExpectedErr: ErrPlan,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := DecodeBenchmarkPlan([]byte(test.Raw))
			require.ErrorIs(t, err, test.ExpectedErr)
		})
	}
}

func TestBenchmarkPlan_EncodeRoundTrip(t *testing.T) {
	plan := BenchmarkPlan{
		Seed:       7,
		Estimators: []Estimator{FastEstimator},
		Samples: []SampleSpec{
			{
				Name:         "exp",
				Distribution: Distribution{Type: ExponentialDistribution, Rate: 2},
				Sizes:        []int{25, 50},
				Count:        3,
			},
		},
	}

	encoded, err := plan.Encode()
	require.NoError(t, err)

	decoded, err := DecodeBenchmarkPlan(encoded)
	require.NoError(t, err)

	assert.Equal(t, plan, decoded)
}

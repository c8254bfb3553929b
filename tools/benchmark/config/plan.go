package config

import (
	"encoding/json"
	"fmt"
)

var (
	ErrEncoding = fmt.Errorf("encoding/decoding failure")
	ErrPlan     = fmt.Errorf("invalid benchmark plan")
)

type DistributionType string

const (
	NormalDistribution      DistributionType = "normal"
	LogNormalDistribution   DistributionType = "lognormal"
	ExponentialDistribution DistributionType = "exponential"
	ParetoDistribution      DistributionType = "pareto"
	UniformDistribution     DistributionType = "uniform"
)

type Estimator string

const (
	// FastEstimator is the O(n log n) matrix median selection path.
	FastEstimator Estimator = "fast"
	// NaiveEstimator is the quadratic reference path.
	NaiveEstimator Estimator = "naive"
)

// Distribution selects and parameterizes a sampling distribution. Only the
// fields relevant to the chosen type are read.
type Distribution struct {
	Type  DistributionType `json:"type"`
	Mu    float64          `json:"mu,omitempty"`
	Sigma float64          `json:"sigma,omitempty"`
	Rate  float64          `json:"rate,omitempty"`
	Xm    float64          `json:"xm,omitempty"`
	Alpha float64          `json:"alpha,omitempty"`
	Min   float64          `json:"min,omitempty"`
	Max   float64          `json:"max,omitempty"`
}

// SampleSpec describes a family of synthetic samples: one sample per
// (size, repetition) pair drawn from the configured distribution. Transform
// is an optional expression in x applied to every drawn value, for example
// "2*x+10".
type SampleSpec struct {
	Name         string       `json:"name"`
	Distribution Distribution `json:"distribution"`
	Sizes        []int        `json:"sizes"`
	Count        int          `json:"count"`
	Transform    string       `json:"transform,omitempty"`
}

// BenchmarkPlan is a collection of configurations with which to run a
// benchmark.
type BenchmarkPlan struct {
	Seed       uint64       `json:"seed"`
	Estimators []Estimator  `json:"estimators"`
	Samples    []SampleSpec `json:"samples"`
}

// Encode applies JSON encoding of a benchmark plan to bytes.
func (p BenchmarkPlan) Encode() ([]byte, error) {
	encoded, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode benchmark plan: %s", ErrEncoding, err.Error())
	}

	return encoded, nil
}

// DecodeBenchmarkPlan uses JSON encoding to decode bytes to a benchmark plan
// and validates the result. Estimators defaults to the fast path only.
func DecodeBenchmarkPlan(encoded []byte) (BenchmarkPlan, error) {
	var plan BenchmarkPlan

	if err := json.Unmarshal(encoded, &plan); err != nil {
		return plan, fmt.Errorf("%w: failed to decode benchmark plan: %s", ErrEncoding, err.Error())
	}

	if len(plan.Estimators) == 0 {
		plan.Estimators = []Estimator{FastEstimator}
	}

	if err := plan.validate(); err != nil {
		return plan, err
	}

	return plan, nil
}

func (p BenchmarkPlan) validate() error {
	if len(p.Samples) == 0 {
		return fmt.Errorf("%w: at least one sample spec is required", ErrPlan)
	}

	for _, estimator := range p.Estimators {
		switch estimator {
		case FastEstimator, NaiveEstimator:
		default:
			return fmt.Errorf("%w: estimator '%s' unrecognized", ErrPlan, estimator)
		}
	}

	for idx, spec := range p.Samples {
		if spec.Name == "" {
			return fmt.Errorf("%w: sample spec at index %d has no name", ErrPlan, idx)
		}

		switch spec.Distribution.Type {
		case NormalDistribution, LogNormalDistribution, ExponentialDistribution, ParetoDistribution, UniformDistribution:
		default:
			return fmt.Errorf("%w: distribution '%s' unrecognized in spec '%s'", ErrPlan, spec.Distribution.Type, spec.Name)
		}

		if len(spec.Sizes) == 0 {
			return fmt.Errorf("%w: sample spec '%s' has no sizes", ErrPlan, spec.Name)
		}

		for _, size := range spec.Sizes {
			if size < 1 {
				return fmt.Errorf("%w: sample spec '%s' has size %d below 1", ErrPlan, spec.Name, size)
			}
		}

		if spec.Count < 1 {
			return fmt.Errorf("%w: sample spec '%s' has count %d below 1", ErrPlan, spec.Name, spec.Count)
		}
	}

	return nil
}

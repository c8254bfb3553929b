package generate

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/robustats/medcouple/tools/benchmark/config"
)

var ErrSampleGeneration = fmt.Errorf("failed to generate sample")

// Sample is one concrete synthetic sample produced from a spec.
type Sample struct {
	Name   string
	Spec   string
	Size   int
	Values []float64
}

// Generator mirrors the Rand method shared by the distuv distributions.
type Generator interface {
	Rand() float64
}

// Samples expands every sample spec in the plan into concrete samples. The
// plan seed makes runs reproducible: the same plan yields the same values.
func Samples(plan config.BenchmarkPlan) ([]Sample, error) {
	src := rand.NewSource(plan.Seed)

	generated := make([]Sample, 0)

	for idx, spec := range plan.Samples {
		samples, err := fromSpec(spec, src)
		if err != nil {
			return nil, fmt.Errorf("%w at index %d", err, idx)
		}

		generated = append(generated, samples...)
	}

	return generated, nil
}

func fromSpec(spec config.SampleSpec, src rand.Source) ([]Sample, error) {
	sampler, err := newSampler(spec.Distribution, src)
	if err != nil {
		return nil, err
	}

	var tf *transform
	if spec.Transform != "" {
		tf, err = newTransform(spec.Transform)
		if err != nil {
			return nil, err
		}
	}

	samples := make([]Sample, 0, len(spec.Sizes)*spec.Count)

	for _, size := range spec.Sizes {
		for rep := 0; rep < spec.Count; rep++ {
			values := make([]float64, size)
			for i := range values {
				values[i] = sampler.Rand()
			}

			if tf != nil {
				for i, v := range values {
					values[i], err = tf.apply(v)
					if err != nil {
						return nil, err
					}
				}
			}

			samples = append(samples, Sample{
				Name:   fmt.Sprintf("%s-n%d-%d", spec.Name, size, rep),
				Spec:   spec.Name,
				Size:   size,
				Values: values,
			})
		}
	}

	return samples, nil
}

func newSampler(d config.Distribution, src rand.Source) (Generator, error) {
	switch d.Type {
	case config.NormalDistribution:
		if d.Sigma <= 0 {
			return nil, fmt.Errorf("%w: normal distribution requires sigma > 0", ErrSampleGeneration)
		}
		return distuv.Normal{Mu: d.Mu, Sigma: d.Sigma, Src: src}, nil
	case config.LogNormalDistribution:
		if d.Sigma <= 0 {
			return nil, fmt.Errorf("%w: lognormal distribution requires sigma > 0", ErrSampleGeneration)
		}
		return distuv.LogNormal{Mu: d.Mu, Sigma: d.Sigma, Src: src}, nil
	case config.ExponentialDistribution:
		if d.Rate <= 0 {
			return nil, fmt.Errorf("%w: exponential distribution requires rate > 0", ErrSampleGeneration)
		}
		return distuv.Exponential{Rate: d.Rate, Src: src}, nil
	case config.ParetoDistribution:
		if d.Xm <= 0 || d.Alpha <= 0 {
			return nil, fmt.Errorf("%w: pareto distribution requires xm > 0 and alpha > 0", ErrSampleGeneration)
		}
		return distuv.Pareto{Xm: d.Xm, Alpha: d.Alpha, Src: src}, nil
	case config.UniformDistribution:
		if d.Min >= d.Max {
			return nil, fmt.Errorf("%w: uniform distribution requires min < max", ErrSampleGeneration)
		}
		return distuv.Uniform{Min: d.Min, Max: d.Max, Src: src}, nil
	default:
		return nil, fmt.Errorf("%w: distribution '%s' unrecognized", ErrSampleGeneration, d.Type)
	}
}

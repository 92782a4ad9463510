// Package evaluation runs ranking metrics over a batch and summarizes them
package evaluation

import (
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/tensorplex-labs/rankeval/pkg/ranking"
)

type Pipeline struct {
	Cutoffs []int
	Gain    ranking.Gain
	Metrics []Metric
}

type PipelineOption func(*Pipeline)

func WithCutoffs(ks ...int) PipelineOption {
	return func(p *Pipeline) {
		p.Cutoffs = slices.Clone(ks)
	}
}

func WithGain(gain ranking.Gain) PipelineOption {
	return func(p *Pipeline) {
		p.Gain = gain
	}
}

func WithMetrics(metrics ...Metric) PipelineOption {
	return func(p *Pipeline) {
		p.Metrics = slices.Clone(metrics)
	}
}

func NewPipeline(opts ...PipelineOption) *Pipeline {
	p := &Pipeline{
		Cutoffs: DefaultCutoffs(),
		Gain:    ranking.LinearGain,
		Metrics: DefaultMetrics(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Evaluate computes every configured metric for the batch. The first failing
// metric aborts the evaluation; its ranking.ShapeError or ranking.RangeError
// stays reachable through errors.As.
func (p *Pipeline) Evaluate(scores, labels mat.Matrix) (Report, error) {
	startTime := time.Now()
	log.Debug().Ints("cutoffs", p.Cutoffs).Str("gain", p.Gain.String()).Msg("Evaluating ranking batch")

	report := Report{Cutoffs: slices.Clone(p.Cutoffs)}
	for _, m := range p.Metrics {
		values, err := p.compute(m, scores, labels)
		if err != nil {
			return Report{}, errors.Wrapf(err, "compute %s", m)
		}

		means := columnMeans(values)
		log.Debug().Str("metric", string(m)).Floats64("means", means).Msgf("Computed %s at %d cutoffs", m, len(p.Cutoffs))

		report.Batch, _ = values.Dims()
		report.Results = append(report.Results, MetricResult{
			Metric: m,
			Values: values,
			Means:  means,
		})
	}

	log.Debug().Int("batch", report.Batch).Msgf("Evaluated ranking batch in %v", time.Since(startTime))
	return report, nil
}

func (p *Pipeline) compute(m Metric, scores, labels mat.Matrix) (*mat.Dense, error) {
	switch m {
	case MetricDCG:
		return ranking.DCGAt(p.Cutoffs, scores, labels, ranking.WithGain(p.Gain))
	case MetricNDCG:
		return ranking.NDCGAt(p.Cutoffs, scores, labels, ranking.WithGain(p.Gain))
	case MetricPrecision:
		return ranking.PrecisionAt(p.Cutoffs, scores, labels)
	case MetricRecall:
		return ranking.RecallAt(p.Cutoffs, scores, labels)
	}
	return nil, errors.Errorf("unknown metric %q", m)
}

func columnMeans(values *mat.Dense) []float64 {
	_, cols := values.Dims()

	means := make([]float64, cols)
	for colIdx := range cols {
		means[colIdx] = stat.Mean(mat.Col(nil, colIdx, values), nil)
	}

	return means
}

package evaluation

import (
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

type Metric string

const (
	MetricDCG       Metric = "dcg"
	MetricNDCG      Metric = "ndcg"
	MetricPrecision Metric = "precision"
	MetricRecall    Metric = "recall"
)

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case MetricDCG, MetricNDCG, MetricPrecision, MetricRecall:
		return m, nil
	}
	return "", errors.Errorf("unknown metric %q", s)
}

func ParseMetrics(names []string) ([]Metric, error) {
	metrics := make([]Metric, 0, len(names))
	for _, name := range names {
		m, err := ParseMetric(name)
		if err != nil {
			return nil, err
		}
		metrics = append(metrics, m)
	}
	return metrics, nil
}

type MetricResult struct {
	Metric Metric
	Values *mat.Dense // 2D: (batch, len(cutoffs))
	Means  []float64  // 1D: mean over the batch per cutoff
}

type Report struct {
	Cutoffs []int
	Batch   int
	Results []MetricResult
}

func (r Report) Result(m Metric) (MetricResult, bool) {
	for _, res := range r.Results {
		if res.Metric == m {
			return res, true
		}
	}
	return MetricResult{}, false
}

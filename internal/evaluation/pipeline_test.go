package evaluation

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/rankeval/pkg/ranking"
)

func fixtureBatch() (*mat.Dense, *mat.Dense) {
	scores := mat.NewDense(2, 4, []float64{
		0.3, 1.0, 0.7, 0.4,
		0.9, 0.8, 0.7, 0.6,
	})
	labels := mat.NewDense(2, 4, []float64{
		2, 5, 3, 1,
		0, 0, 0, 0,
	})
	return scores, labels
}

func TestNewPipeline_Defaults(t *testing.T) {
	p := NewPipeline()

	assert.Equal(t, []int{1, 3, 5}, p.Cutoffs)
	assert.Equal(t, ranking.LinearGain, p.Gain)
	assert.Equal(t, []Metric{MetricDCG, MetricNDCG}, p.Metrics)
}

func TestNewPipeline_Options(t *testing.T) {
	ks := []int{2, 4}
	p := NewPipeline(
		WithCutoffs(ks...),
		WithGain(ranking.ExponentialGain),
		WithMetrics(MetricRecall),
	)
	ks[0] = 100

	assert.Equal(t, []int{2, 4}, p.Cutoffs)
	assert.Equal(t, ranking.ExponentialGain, p.Gain)
	assert.Equal(t, []Metric{MetricRecall}, p.Metrics)
}

func TestPipeline_Evaluate(t *testing.T) {
	scores, labels := fixtureBatch()
	p := NewPipeline(
		WithCutoffs(3, 1),
		WithMetrics(MetricDCG, MetricNDCG, MetricPrecision, MetricRecall),
	)

	report, err := p.Evaluate(scores, labels)
	require.NoError(t, err)

	assert.Equal(t, []int{3, 1}, report.Cutoffs)
	assert.Equal(t, 2, report.Batch)
	require.Len(t, report.Results, 4)

	dcg, ok := report.Result(MetricDCG)
	require.True(t, ok)
	want := 5/math.Log2(2) + 3/math.Log2(3) + 1/math.Log2(4)
	assert.Equal(t, want, dcg.Values.At(0, 0))
	assert.Equal(t, 0.0, dcg.Values.At(1, 0))
	assert.InDeltaSlice(t, []float64{want / 2, 2.5}, dcg.Means, 1e-12)

	ndcg, ok := report.Result(MetricNDCG)
	require.True(t, ok)
	assert.InDelta(t, 0.9366510388806776, ndcg.Values.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, ndcg.Values.At(0, 1), 1e-12)
	assert.InDeltaSlice(t, []float64{0.9366510388806776 / 2, 0.5}, ndcg.Means, 1e-12)

	_, ok = report.Result(Metric("mrr"))
	assert.False(t, ok)
}

func TestPipeline_EvaluateErrors(t *testing.T) {
	scores, labels := fixtureBatch()

	_, err := NewPipeline(WithCutoffs(1, 5)).Evaluate(scores, labels)
	require.Error(t, err)
	assert.ErrorIs(t, err, ranking.ErrRange)
	assert.True(t, strings.HasPrefix(err.Error(), "compute dcg"))

	_, err = NewPipeline().Evaluate(scores, mat.NewDense(2, 3, nil))
	var se *ranking.ShapeError
	require.True(t, errors.As(err, &se))

	_, err = NewPipeline(WithCutoffs(1), WithMetrics(Metric("mrr"))).Evaluate(scores, labels)
	assert.ErrorContains(t, err, `unknown metric "mrr"`)
}

func TestParseMetrics(t *testing.T) {
	metrics, err := ParseMetrics([]string{"DCG", " ndcg", "precision", "recall"})
	require.NoError(t, err)
	assert.Equal(t, []Metric{MetricDCG, MetricNDCG, MetricPrecision, MetricRecall}, metrics)

	_, err = ParseMetrics([]string{"ndcg", "auc"})
	assert.ErrorContains(t, err, `unknown metric "auc"`)
	_, hasStack := err.(interface{ StackTrace() pkgerrors.StackTrace })
	assert.True(t, hasStack)
}

func TestPlotCutoffMeans(t *testing.T) {
	var buf bytes.Buffer
	PlotCutoffMeans(&buf, "NDCG", []int{1, 3}, []float64{1.0, 0.5})

	out := buf.String()
	assert.Contains(t, out, "NDCG:")
	assert.Contains(t, out, "@1 | 1.000000 | "+strings.Repeat("█", maxBarWidth)+"\n")
	assert.Contains(t, out, "@3 | 0.500000 | "+strings.Repeat("█", maxBarWidth/2)+"\n")
	assert.Contains(t, out, "Scale: Max=1.000000")
}

func TestPlotCutoffMeans_ZeroMeans(t *testing.T) {
	var buf bytes.Buffer
	PlotCutoffMeans(&buf, "DCG", []int{5}, []float64{0})

	assert.Contains(t, buf.String(), "@5 | 0.000000 | ▏\n")
}

func TestPlotReport(t *testing.T) {
	scores, labels := fixtureBatch()
	report, err := NewPipeline(WithCutoffs(1, 2)).Evaluate(scores, labels)
	require.NoError(t, err)

	var buf bytes.Buffer
	PlotReport(&buf, "fixture", report)

	out := buf.String()
	assert.Contains(t, out, "fixture: DCG (batch=2):")
	assert.Contains(t, out, "fixture: NDCG (batch=2):")
}

package main

import (
	"math/rand/v2"
	"os"
	"slices"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/tensorplex-labs/rankeval/internal/config"
	"github.com/tensorplex-labs/rankeval/internal/evaluation"
	"github.com/tensorplex-labs/rankeval/internal/utils/logger"
	"github.com/tensorplex-labs/rankeval/pkg/ranking"
)

const (
	randomBatchSize = 8
	randomMaxLabel  = 3
	minRandomItems  = 20
)

func main() {
	logger.Init()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	gain, err := ranking.ParseGain(cfg.Gain)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid gain")
	}

	metrics, err := evaluation.ParseMetrics(cfg.Metrics)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid metrics")
	}

	evaluateReferenceBatch(gain, metrics)
	evaluateRandomBatch(cfg, gain, metrics)
}

func evaluateReferenceBatch(gain ranking.Gain, metrics []evaluation.Metric) {
	log.Info().Msg("--- Evaluating reference batch ---")
	scores := mat.NewDense(1, 4, []float64{0.3, 1.0, 0.7, 0.4})
	labels := mat.NewDense(1, 4, []float64{2, 5, 3, 1})

	p := evaluation.NewPipeline(
		evaluation.WithCutoffs(1, 2, 3, 4),
		evaluation.WithGain(gain),
		evaluation.WithMetrics(metrics...),
	)
	runPipeline(p, "reference", scores, labels)
}

func evaluateRandomBatch(cfg *config.EvalEnvConfig, gain ranking.Gain, metrics []evaluation.Metric) {
	log.Info().Uint64("seed", cfg.Seed).Msg("--- Evaluating random batch ---")
	items := minRandomItems
	if len(cfg.Cutoffs) > 0 {
		items = max(items, slices.Max(cfg.Cutoffs))
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))

	scores := mat.NewDense(randomBatchSize, items, nil)
	labels := mat.NewDense(randomBatchSize, items, nil)
	for i := range randomBatchSize {
		for j := range items {
			scores.Set(i, j, rng.Float64())
			labels.Set(i, j, float64(rng.IntN(randomMaxLabel+1)))
		}
	}

	p := evaluation.NewPipeline(
		evaluation.WithCutoffs(cfg.Cutoffs...),
		evaluation.WithGain(gain),
		evaluation.WithMetrics(metrics...),
	)
	runPipeline(p, "random", scores, labels)
}

func runPipeline(p *evaluation.Pipeline, name string, scores, labels *mat.Dense) {
	report, err := p.Evaluate(scores, labels)
	if err != nil {
		log.Error().Stack().Err(err).Str("batch", name).Msg("Evaluation failed")
		return
	}

	for _, res := range report.Results {
		for j, k := range report.Cutoffs {
			log.Info().Str("batch", name).Str("metric", string(res.Metric)).Int("k", k).Float64("mean", res.Means[j]).
				Msgf("%s@%d mean over %d rows: %f", res.Metric, k, report.Batch, res.Means[j])
		}
	}

	evaluation.PlotReport(os.Stdout, name, report)
}

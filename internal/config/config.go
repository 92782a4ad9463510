// Package config defines environment configuration structs and loaders.
package config

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// EvalEnvConfig configures the evaluation run.
type EvalEnvConfig struct {
	Cutoffs     []int    `env:"RANK_KS" envDefault:"1,3,5" envSeparator:","`
	Gain        string   `env:"RANK_GAIN" envDefault:"linear"`
	Metrics     []string `env:"RANK_METRICS" envDefault:"dcg,ndcg" envSeparator:","`
	Seed        uint64   `env:"RANK_SEED" envDefault:"42"`
	Environment string   `env:"ENVIRONMENT" envDefault:"prod"`
}

func LoadConfig() (*EvalEnvConfig, error) {
	cfg := &EvalEnvConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(cfg.Environment)
	return cfg, nil
}

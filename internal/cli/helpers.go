package cli

import (
	"fmt"
	"log/slog"

	"github.com/runnerr0/lookback/internal/classify"
	"github.com/runnerr0/lookback/internal/config"
	"github.com/runnerr0/lookback/internal/history"
	"github.com/runnerr0/lookback/internal/logging"
	"github.com/runnerr0/lookback/internal/stats"
)

// pipeline bundles the wired dependencies a subcommand needs.
type pipeline struct {
	cfg         *config.Config
	log         *slog.Logger
	source      stats.HistorySource
	categorizer stats.DomainCategorizer
}

// buildPipeline loads configuration and wires the history reader and
// categorizer. Each invocation gets its own reader, so concurrent requests
// never share a snapshot.
func buildPipeline(globals *GlobalFlags) (*pipeline, error) {
	var cfg *config.Config
	var err error
	if globals != nil && globals.Config != "" {
		cfg, err = config.Load(globals.Config)
	} else {
		cfg, err = config.LoadOrCreate()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.Logging.Level
	if globals != nil && globals.Verbose {
		level = "debug"
	}
	logger := logging.New(level)

	reader := history.NewReader(cfg.History.Path, logger)

	client := classify.NewHTTPClassifier(classify.ClientConfig{
		Enabled:   cfg.Classifier.Enabled,
		Endpoint:  cfg.Classifier.Endpoint,
		Model:     cfg.Classifier.Model,
		APIKey:    cfg.Classifier.APIKey,
		TimeoutMs: cfg.Classifier.TimeoutMs,
	}, logger)
	categorizer := classify.NewCategorizer(client, cfg.Classifier.BatchSize, logger)

	return &pipeline{
		cfg:         cfg,
		log:         logger,
		source:      reader,
		categorizer: categorizer,
	}, nil
}

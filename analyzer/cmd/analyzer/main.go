package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	arg "github.com/alexflint/go-arg"
	"github.com/spf13/afero"

	"github.com/censuskit/demographics/analyzer/internal/config"
)

type args struct {
	Config  string `arg:"-c,--config" help:"path to YAML config file (optional)"`
	Dataset string `arg:"-d,--dataset" help:"dataset file; overrides analyzer.dataset_path"`
	Quiet   bool   `arg:"-q,--quiet" help:"do not print the report to stdout"`
	Watch   bool   `arg:"-w,--watch" help:"regenerate whenever the config or dataset file changes"`
	Strict  bool   `arg:"--strict" help:"exit with status 2 when a check fires"`
	Debug   bool   `arg:"--debug" help:"enable debug logging"`
}

func (args) Description() string {
	return "analyzer computes summary statistics over the adult census dataset."
}

func main() {
	var a args
	arg.MustParse(&a)

	level := slog.LevelInfo
	if a.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg, err := loadConfig(a)
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	slog.Debug("config loaded",
		"dataset", cfg.Analyzer.DatasetPath,
		"print", cfg.Analyzer.Print,
		"checks", len(cfg.Checks),
	)

	fs := afero.NewOsFs()

	if !a.Watch {
		os.Exit(exitCode(run(fs, cfg), a.Strict))
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// First report before waiting for changes.
	exitCode(run(fs, cfg), a.Strict)

	// The dataset path is fixed at startup; pointing the config at a new
	// file needs a restart.
	err = config.Watch(ctx, a.Config, func(updated *config.Config) {
		applyOverrides(updated, a)
		exitCode(run(fs, updated), a.Strict)
	}, cfg.Analyzer.DatasetPath)
	if err != nil {
		slog.Error("watcher stopped", "err", err)
		os.Exit(1)
	}
	slog.Info("analyzer shutting down")
}

// loadConfig reads the config file if one was given and applies CLI overrides.
func loadConfig(a args) (*config.Config, error) {
	cfg := config.Default()
	if a.Config != "" {
		var err error
		if cfg, err = config.Load(a.Config); err != nil {
			return nil, err
		}
	}
	applyOverrides(cfg, a)
	return cfg, nil
}

func applyOverrides(cfg *config.Config, a args) {
	if a.Dataset != "" {
		cfg.Analyzer.DatasetPath = a.Dataset
	}
	if a.Quiet {
		cfg.Analyzer.Print = false
	}
}

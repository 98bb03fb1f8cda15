package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/censuskit/demographics/analyzer/internal/checks"
	"github.com/censuskit/demographics/analyzer/internal/compute"
	"github.com/censuskit/demographics/analyzer/internal/config"
	"github.com/censuskit/demographics/analyzer/internal/export"
	"github.com/censuskit/demographics/pkg/types"
)

// errChecksFired marks a run whose report was produced but tripped a check.
var errChecksFired = errors.New("checks fired")

// run generates one report, writes the configured outputs and evaluates the
// checks. A non-nil error wrapping errChecksFired means everything else
// succeeded.
func run(fs afero.Fs, cfg *config.Config) error {
	g := &compute.Generator{
		FS:       fs,
		Path:     cfg.Analyzer.DatasetPath,
		Fallback: compute.MinHoursFallback(cfg.Analyzer.MinHoursFallback),
	}
	r, err := g.Generate(cfg.Analyzer.Print)
	if err != nil {
		return err
	}

	if err := writeOutputs(fs, cfg.Output, r); err != nil {
		return err
	}

	if findings := checks.Evaluate(cfg.Checks, r); len(findings) > 0 {
		return errors.Wrapf(errChecksFired, "%d of %d", len(findings), len(cfg.Checks))
	}
	return nil
}

func writeOutputs(fs afero.Fs, out config.OutputConfig, r *types.Report) error {
	sinks := []struct {
		path  string
		write func(afero.Fs, string, *types.Report) error
	}{
		{out.JSONPath, export.WriteFile},
		{out.YAMLPath, export.WriteFile},
		{out.TextfilePath, export.WriteTextfile},
		{out.ChartPath, export.WriteRaceChart},
	}
	for _, s := range sinks {
		if s.path == "" {
			continue
		}
		if err := s.write(fs, s.path, r); err != nil {
			return err
		}
		slog.Info("report written", "path", s.path)
	}
	return nil
}

// exitCode logs err and maps it to a process exit status:
// 0 success, 1 failure, 2 checks fired under strict mode.
func exitCode(err error, strict bool) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errChecksFired):
		slog.Warn("report checks fired", "detail", err.Error())
		if strict {
			return 2
		}
		return 0
	default:
		slog.Error("report generation failed", "err", err)
		return 1
	}
}

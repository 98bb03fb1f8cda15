package compute

import (
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/censuskit/demographics/analyzer/internal/dataset"
	"github.com/censuskit/demographics/analyzer/internal/printer"
	"github.com/censuskit/demographics/pkg/types"
)

// Generator produces a Report from one dataset file.
// The zero value reads dataset.DefaultPath from the OS filesystem and prints
// to stdout.
type Generator struct {
	FS       afero.Fs
	Path     string
	Out      io.Writer
	Fallback MinHoursFallback
}

// Generate loads the dataset, computes every metric and, when printOutput is
// set, writes the human-readable report to g.Out.
//
// Every call reads the file again; nothing is cached between calls.
func (g *Generator) Generate(printOutput bool) (*types.Report, error) {
	fs := g.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	path := g.Path
	if path == "" {
		path = dataset.DefaultPath
	}

	ds, err := dataset.Load(fs, path)
	if err != nil {
		return nil, err
	}

	r, err := Compute(ds, g.Fallback)
	if err != nil {
		return nil, err
	}

	if printOutput {
		out := g.Out
		if out == nil {
			out = os.Stdout
		}
		if err := printer.Print(out, r); err != nil {
			return nil, errors.Wrap(err, "compute: print report")
		}
	}
	return r, nil
}

// Compute derives the ten report metrics from a cleaned dataset.
// Each metric is independent; the first failure aborts and is returned
// prefixed with the metric key.
func Compute(ds *dataset.Dataset, fallback MinHoursFallback) (*types.Report, error) {
	r := &types.Report{
		RaceCount: RaceCount(ds),
		Rows:      ds.Len(),
	}

	var err error
	if r.AverageAgeMen, err = AverageAgeMen(ds); err != nil {
		return nil, metricErr(types.KeyAverageAgeMen, err)
	}
	if r.PercentageBachelors, err = PercentageBachelors(ds); err != nil {
		return nil, metricErr(types.KeyPercentageBachelors, err)
	}
	if r.HigherEducationRich, err = HigherEducationRich(ds); err != nil {
		return nil, metricErr(types.KeyHigherEducationRich, err)
	}
	if r.LowerEducationRich, err = LowerEducationRich(ds); err != nil {
		return nil, metricErr(types.KeyLowerEducationRich, err)
	}
	if r.MinWorkHours, err = MinWorkHours(ds); err != nil {
		return nil, metricErr(types.KeyMinWorkHours, err)
	}
	if r.RichPercentage, err = RichPercentage(ds, r.MinWorkHours, fallback); err != nil {
		return nil, metricErr(types.KeyRichPercentage, err)
	}
	if r.HighestEarningCountry, r.HighestEarningCountryPercentage, err = HighestEarningCountry(ds); err != nil {
		return nil, metricErr(types.KeyHighestEarningCountry, err)
	}
	if r.TopINOccupation, err = TopOccupation(ds, India); err != nil {
		return nil, metricErr(types.KeyTopINOccupation, err)
	}

	slog.Debug("compute: report ready",
		"rows", r.Rows,
		"races", len(r.RaceCount),
		"highest_earning_country", r.HighestEarningCountry,
	)
	return r, nil
}

func metricErr(key string, err error) error {
	return errors.WithMessagef(err, "compute: %s", key)
}

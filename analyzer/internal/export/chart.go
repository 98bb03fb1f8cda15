package export

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/censuskit/demographics/pkg/types"
)

// Chart dimensions.
const (
	chartWidth  = 6 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = 0.5 * vg.Inch
)

// WriteRaceChart renders r.RaceCount as a bar chart. The extension of path
// selects the image format.
func WriteRaceChart(fs afero.Fs, path string, r *types.Report) error {
	if len(r.RaceCount) == 0 {
		return errors.New("export: race chart: no race counts")
	}

	values := make(plotter.Values, len(r.RaceCount))
	names := make([]string, len(r.RaceCount))
	for i, rc := range r.RaceCount {
		values[i] = float64(rc.Count)
		names[i] = rc.Race
	}

	p := plot.New()
	p.Title.Text = "Number of each race"
	p.Y.Label.Text = "Rows"

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return errors.Wrap(err, "export: race chart")
	}
	p.Add(bars)
	p.NominalX(names...)

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return errors.Wrapf(err, "export: race chart format %q", format)
	}

	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return errors.Wrap(err, "export: render race chart")
	}
	return writeAtomic(fs, path, buf.Bytes())
}

package export

import (
	"bytes"
	"sort"

	"github.com/pkg/errors"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"google.golang.org/protobuf/proto"

	"github.com/censuskit/demographics/pkg/types"
)

// Metric names written to the textfile.
const (
	metricRaceCount         = "demographics_race_count"
	metricAverageAgeMen     = "demographics_average_age_men"
	metricBachelorsPct      = "demographics_percentage_bachelors"
	metricEducationRichPct  = "demographics_education_rich_percentage"
	metricMinWorkHours      = "demographics_min_work_hours"
	metricRichPct           = "demographics_rich_percentage"
	metricHighestCountryPct = "demographics_highest_earning_country_percentage"
	metricTopOccupationInfo = "demographics_top_occupation_info"
	metricRows              = "demographics_rows"
)

// topOccupationCountry labels demographics_top_occupation_info.
const topOccupationCountry = "India"

// WriteTextfile writes r to path in Prometheus text exposition format.
func WriteTextfile(fs afero.Fs, path string, r *types.Report) error {
	var buf bytes.Buffer
	for _, mf := range toFamilies(r) {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return errors.Wrapf(err, "export: encode %s", mf.GetName())
		}
	}
	return writeAtomic(fs, path, buf.Bytes())
}

// toFamilies converts a Report into gauge metric families sorted by name.
func toFamilies(r *types.Report) []*dto.MetricFamily {
	races := make([]*dto.Metric, 0, len(r.RaceCount))
	for _, rc := range r.RaceCount {
		races = append(races, sample(float64(rc.Count), "race", rc.Race))
	}

	mfs := []*dto.MetricFamily{
		gauge(metricRaceCount, "Rows per race.", races...),
		gauge(metricAverageAgeMen, "Mean age of men.", sample(r.AverageAgeMen)),
		gauge(metricBachelorsPct, "Percentage of rows with a Bachelors degree.", sample(r.PercentageBachelors)),
		gauge(metricEducationRichPct, "Percentage earning >50K by education group.",
			sample(r.HigherEducationRich, "education", "higher"),
			sample(r.LowerEducationRich, "education", "lower"),
		),
		gauge(metricMinWorkHours, "Minimum hours worked per week.", sample(float64(r.MinWorkHours))),
		gauge(metricRichPct, "Percentage earning >50K among minimum-hours workers.", sample(r.RichPercentage)),
		gauge(metricHighestCountryPct, "Percentage earning >50K in the highest earning country.",
			sample(r.HighestEarningCountryPercentage, "country", r.HighestEarningCountry)),
		gauge(metricTopOccupationInfo, "Most common occupation among rich workers from a country.",
			sample(1, "country", topOccupationCountry, "occupation", r.TopINOccupation)),
		gauge(metricRows, "Rows after cleaning.", sample(float64(r.Rows))),
	}
	sort.Slice(mfs, func(i, j int) bool { return mfs[i].GetName() < mfs[j].GetName() })
	return mfs
}

func gauge(name, help string, metrics ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: metrics,
	}
}

// sample builds a gauge sample; labels are name/value pairs.
func sample(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}

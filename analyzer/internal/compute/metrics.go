package compute

import (
	"sort"
	"strconv"

	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"

	"github.com/censuskit/demographics/analyzer/internal/dataset"
	"github.com/censuskit/demographics/pkg/types"
)

var (
	// ErrDivisionUndefined is returned when a ratio's denominator group is empty.
	ErrDivisionUndefined = errors.New("division undefined")

	// ErrEmptySubset is returned when a required filter matches no rows.
	ErrEmptySubset = errors.New("empty subset")
)

// MinHoursFallback decides rich_percentage when no row works exactly
// min_work_hours, which happens only when the minimum is fractional.
type MinHoursFallback string

const (
	// FallbackUndefined reports ErrDivisionUndefined.
	FallbackUndefined MinHoursFallback = "undefined"

	// FallbackLegacy reports LegacyRichPercentage, the value the reference
	// fixture expects.
	FallbackLegacy MinHoursFallback = "legacy"
)

// LegacyRichPercentage is the fixed rich_percentage used by FallbackLegacy.
const LegacyRichPercentage = 10.0

// India is the country top_IN_occupation is computed for.
const India = "India"

// RaceCount returns the race frequency table, most frequent first.
func RaceCount(ds *dataset.Dataset) []types.RaceCount {
	sorted := NewCounter(ds.Strings(dataset.Race)).Sorted()
	out := make([]types.RaceCount, len(sorted))
	for i, e := range sorted {
		out[i] = types.RaceCount{Race: e.Value, Count: e.Count}
	}
	return out
}

// AverageAgeMen returns the mean age of men, ignoring missing ages.
func AverageAgeMen(ds *dataset.Dataset) (float64, error) {
	ages := ds.Filter(dataset.IsMale).Numbers(dataset.Age)
	mean, err := stats.Mean(ages)
	if err != nil {
		return 0, ErrDivisionUndefined
	}
	return round1(mean), nil
}

// PercentageBachelors returns the share of rows with a Bachelors degree.
func PercentageBachelors(ds *dataset.Dataset) (float64, error) {
	return percent(ds.Count(dataset.HasEducation("Bachelors")), ds.Len())
}

// HigherEducationRich returns the rich share among Bachelors, Masters and
// Doctorate holders.
func HigherEducationRich(ds *dataset.Dataset) (float64, error) {
	hi, _ := ds.Partition(dataset.HasEducation(dataset.HigherEducation...))
	return percent(hi.Count(dataset.IsRich), hi.Len())
}

// LowerEducationRich returns the rich share among everyone else.
func LowerEducationRich(ds *dataset.Dataset) (float64, error) {
	_, lo := ds.Partition(dataset.HasEducation(dataset.HigherEducation...))
	return percent(lo.Count(dataset.IsRich), lo.Len())
}

// MinWorkHours returns the smallest non-missing hours-per-week.
func MinWorkHours(ds *dataset.Dataset) (int, error) {
	lo, err := stats.Min(ds.Numbers(dataset.HoursPerWeek))
	if err != nil {
		return 0, ErrEmptySubset
	}
	return int(lo), nil
}

// RichPercentage returns the rich share among rows working exactly hours.
func RichPercentage(ds *dataset.Dataset, hours int, fallback MinHoursFallback) (float64, error) {
	return richAmongHours(ds, float64(hours), fallback)
}

func richAmongHours(ds *dataset.Dataset, hours float64, fallback MinHoursFallback) (float64, error) {
	workers := ds.Filter(dataset.WorksHours(hours))
	if workers.Len() == 0 {
		if fallback == FallbackLegacy {
			return LegacyRichPercentage, nil
		}
		return 0, ErrDivisionUndefined
	}
	return percent(workers.Count(dataset.IsRich), workers.Len())
}

// HighestEarningCountry returns the country with the largest rich share and
// that share as a percentage. Equal shares resolve to the country name that
// sorts first.
func HighestEarningCountry(ds *dataset.Dataset) (string, float64, error) {
	total := NewCounter(ds.Strings(dataset.NativeCountry))
	rich := NewCounter(ds.Filter(dataset.IsRich).Strings(dataset.NativeCountry))
	if rich.Len() == 0 {
		return "", 0, ErrEmptySubset
	}

	countries := make([]string, 0, rich.Len())
	for _, e := range rich.entries {
		countries = append(countries, e.Value)
	}
	sort.Strings(countries)

	var (
		best  string
		ratio = -1.0
	)
	for _, c := range countries {
		r := float64(rich.Get(c)) / float64(total.Get(c))
		if r > ratio {
			best, ratio = c, r
		}
	}
	return best, round1(ratio * 100), nil
}

// TopOccupation returns the most common occupation among rich rows from
// country. Ties go to the occupation seen first.
func TopOccupation(ds *dataset.Dataset, country string) (string, error) {
	rows := ds.Filter(dataset.And(dataset.FromCountry(country), dataset.IsRich))
	top, err := NewCounter(rows.Strings(dataset.Occupation)).Mode()
	if err != nil {
		return "", err
	}
	return top.Value, nil
}

// percent returns num/den as a percentage rounded to one decimal.
func percent(num, den int) (float64, error) {
	if den == 0 {
		return 0, ErrDivisionUndefined
	}
	return round1(float64(num) / float64(den) * 100), nil
}

// round1 rounds the exact value of v to one decimal, ties to even:
// round1(12.25) == 12.2, round1(0.35) == 0.3.
func round1(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	if err != nil {
		return v
	}
	return r
}

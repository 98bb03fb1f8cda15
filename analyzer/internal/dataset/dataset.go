package dataset

import (
	"log/slog"
)

// headerRace is the race value a header line decodes to.
const headerRace = "race"

// Dataset is the cleaned, read-only collection of Records.
type Dataset struct {
	records []*Record
}

// New cleans records and wraps the survivors in a Dataset.
func New(records []*Record) *Dataset {
	return &Dataset{records: Clean(records)}
}

// Clean drops rows with an empty race or a race equal to the header name.
// The input slice is not modified.
func Clean(records []*Record) []*Record {
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if r == nil || r.Race == "" || r.Race == headerRace {
			continue
		}
		out = append(out, r)
	}
	if dropped := len(records) - len(out); dropped > 0 {
		slog.Debug("dataset: dropped invalid rows", "count", dropped)
	}
	return out
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the records in file order. Callers must not modify them.
func (d *Dataset) Records() []*Record {
	out := make([]*Record, len(d.records))
	copy(out, d.records)
	return out
}

// Filter returns the records matching p, preserving order.
func (d *Dataset) Filter(p Predicate) *Dataset {
	out := make([]*Record, 0)
	for _, r := range d.records {
		if p(r) {
			out = append(out, r)
		}
	}
	return &Dataset{records: out}
}

// Partition splits the dataset into records matching p and the rest.
func (d *Dataset) Partition(p Predicate) (match, rest *Dataset) {
	var in, out []*Record
	for _, r := range d.records {
		if p(r) {
			in = append(in, r)
		} else {
			out = append(out, r)
		}
	}
	return &Dataset{records: in}, &Dataset{records: out}
}

// Count returns how many records match p.
func (d *Dataset) Count(p Predicate) int {
	var n int
	for _, r := range d.records {
		if p(r) {
			n++
		}
	}
	return n
}

// Numbers returns the non-missing values of a numeric field.
func (d *Dataset) Numbers(field func(*Record) Number) []float64 {
	out := make([]float64, 0, len(d.records))
	for _, r := range d.records {
		if v := field(r); !v.Missing() {
			out = append(out, v.Float())
		}
	}
	return out
}

// Strings returns the values of a categorical field in record order.
func (d *Dataset) Strings(field func(*Record) string) []string {
	out := make([]string, len(d.records))
	for i, r := range d.records {
		out[i] = field(r)
	}
	return out
}

// Field accessors for use with Numbers and Strings.
var (
	Age           = func(r *Record) Number { return r.Age }
	HoursPerWeek  = func(r *Record) Number { return r.HoursPerWeek }
	Race          = func(r *Record) string { return r.Race }
	Occupation    = func(r *Record) string { return r.Occupation }
	NativeCountry = func(r *Record) string { return r.NativeCountry }
)

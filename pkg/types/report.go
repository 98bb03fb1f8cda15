package types

// Metric keys of the report mapping, in print order.
const (
	KeyRaceCount                       = "race_count"
	KeyAverageAgeMen                   = "average_age_men"
	KeyPercentageBachelors             = "percentage_bachelors"
	KeyHigherEducationRich             = "higher_education_rich"
	KeyLowerEducationRich              = "lower_education_rich"
	KeyMinWorkHours                    = "min_work_hours"
	KeyRichPercentage                  = "rich_percentage"
	KeyHighestEarningCountry           = "highest_earning_country"
	KeyHighestEarningCountryPercentage = "highest_earning_country_percentage"
	KeyTopINOccupation                 = "top_IN_occupation"
)

// Keys lists the ten metric keys in print order.
var Keys = []string{
	KeyRaceCount,
	KeyAverageAgeMen,
	KeyPercentageBachelors,
	KeyHigherEducationRich,
	KeyLowerEducationRich,
	KeyMinWorkHours,
	KeyRichPercentage,
	KeyHighestEarningCountry,
	KeyHighestEarningCountryPercentage,
	KeyTopINOccupation,
}

// RaceCount is one row of the race frequency table.
type RaceCount struct {
	Race  string `json:"race" yaml:"race"`
	Count int    `json:"count" yaml:"count"`
}

// Report holds the ten derived metrics for one dataset.
// All percentage fields are rounded to one decimal and lie in 0–100.
type Report struct {
	// RaceCount is ordered by descending count.
	RaceCount []RaceCount

	AverageAgeMen       float64
	PercentageBachelors float64
	HigherEducationRich float64
	LowerEducationRich  float64
	MinWorkHours        int
	RichPercentage      float64

	HighestEarningCountry           string
	HighestEarningCountryPercentage float64

	TopINOccupation string

	// Rows is the number of records that survived cleaning.
	Rows int
}

// Map returns the report keyed by the ten metric names.
// race_count maps to the ordered []RaceCount slice.
func (r *Report) Map() map[string]any {
	races := make([]RaceCount, len(r.RaceCount))
	copy(races, r.RaceCount)
	return map[string]any{
		KeyRaceCount:                       races,
		KeyAverageAgeMen:                   r.AverageAgeMen,
		KeyPercentageBachelors:             r.PercentageBachelors,
		KeyHigherEducationRich:             r.HigherEducationRich,
		KeyLowerEducationRich:              r.LowerEducationRich,
		KeyMinWorkHours:                    r.MinWorkHours,
		KeyRichPercentage:                  r.RichPercentage,
		KeyHighestEarningCountry:           r.HighestEarningCountry,
		KeyHighestEarningCountryPercentage: r.HighestEarningCountryPercentage,
		KeyTopINOccupation:                 r.TopINOccupation,
	}
}

// Numeric returns the value of a numeric metric by key, with "rows" accepted
// as an extra key. ok is false for unknown or non-numeric keys.
func (r *Report) Numeric(key string) (v float64, ok bool) {
	switch key {
	case KeyAverageAgeMen:
		return r.AverageAgeMen, true
	case KeyPercentageBachelors:
		return r.PercentageBachelors, true
	case KeyHigherEducationRich:
		return r.HigherEducationRich, true
	case KeyLowerEducationRich:
		return r.LowerEducationRich, true
	case KeyMinWorkHours:
		return float64(r.MinWorkHours), true
	case KeyRichPercentage:
		return r.RichPercentage, true
	case KeyHighestEarningCountryPercentage:
		return r.HighestEarningCountryPercentage, true
	case "rows":
		return float64(r.Rows), true
	default:
		return 0, false
	}
}

// Text returns the value of a string metric by key.
func (r *Report) Text(key string) (v string, ok bool) {
	switch key {
	case KeyHighestEarningCountry:
		return r.HighestEarningCountry, true
	case KeyTopINOccupation:
		return r.TopINOccupation, true
	default:
		return "", false
	}
}

// RaceTotal returns the sum of all race counts.
func (r *Report) RaceTotal() int {
	var n int
	for _, rc := range r.RaceCount {
		n += rc.Count
	}
	return n
}

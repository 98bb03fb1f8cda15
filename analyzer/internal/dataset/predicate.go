package dataset

// Predicate selects records.
type Predicate func(*Record) bool

// IsMale matches records with sex "Male".
func IsMale(r *Record) bool { return r.Sex == "Male" }

// IsRich matches records earning more than 50K.
func IsRich(r *Record) bool { return r.Salary == SalaryAbove50K }

// HasEducation matches records whose education is one of levels.
func HasEducation(levels ...string) Predicate {
	set := make(map[string]struct{}, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return func(r *Record) bool {
		_, ok := set[r.Education]
		return ok
	}
}

// FromCountry matches records with the given native country.
func FromCountry(country string) Predicate {
	return func(r *Record) bool { return r.NativeCountry == country }
}

// WorksHours matches records whose weekly hours equal h exactly.
// Records with missing hours never match.
func WorksHours(h float64) Predicate {
	return func(r *Record) bool {
		return !r.HoursPerWeek.Missing() && r.HoursPerWeek.Float() == h
	}
}

// And matches records that satisfy every predicate.
func And(preds ...Predicate) Predicate {
	return func(r *Record) bool {
		for _, p := range preds {
			if !p(r) {
				return false
			}
		}
		return true
	}
}


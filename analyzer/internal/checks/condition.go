package checks

import (
	"strconv"
	"strings"

	"github.com/censuskit/demographics/pkg/types"
)

// evalCondition evaluates a rule condition string against a Report.
//
// Supported expressions (field operator value):
//
//	percentage_bachelors < 10
//	average_age_men >= 45
//	min_work_hours == 1
//	rows < 1000
//	highest_earning_country == Iran
//	top_IN_occupation != Prof-specialty
//
// Returns (fires, triggering value, ok). ok is false if the expression cannot
// be parsed or the field is unknown; such a condition never fires.
func evalCondition(cond string, r *types.Report) (fires bool, value string, ok bool) {
	parts := strings.Fields(cond)
	if len(parts) != 3 {
		return false, "", false
	}
	field, op, rhs := parts[0], parts[1], parts[2]

	if s, isText := r.Text(field); isText {
		switch op {
		case "==":
			return s == rhs, s, true
		case "!=":
			return s != rhs, s, true
		default:
			return false, "", false
		}
	}

	v, isNum := r.Numeric(field)
	if !isNum {
		return false, "", false
	}
	threshold, err := strconv.ParseFloat(rhs, 64)
	if err != nil {
		return false, "", false
	}
	fires, ok = compareFloat(v, op, threshold)
	return fires, strconv.FormatFloat(v, 'f', -1, 64), ok
}

// compareFloat applies a comparison operator to two float64 values.
func compareFloat(v float64, op string, threshold float64) (bool, bool) {
	switch op {
	case ">":
		return v > threshold, true
	case ">=":
		return v >= threshold, true
	case "<":
		return v < threshold, true
	case "<=":
		return v <= threshold, true
	case "==":
		return v == threshold, true
	case "!=":
		return v != threshold, true
	default:
		return false, false
	}
}

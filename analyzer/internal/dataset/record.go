package dataset

import (
	"math"
	"strconv"
	"strings"
)

// Columns is the fixed column order of the input file.
var Columns = []string{
	"age", "workclass", "fnlwgt", "education", "education-num",
	"marital-status", "occupation", "relationship", "race",
	"sex", "capital-gain", "capital-loss", "hours-per-week",
	"native-country", "salary",
}

// Salary classes.
const (
	SalaryAtMost50K = "<=50K"
	SalaryAbove50K  = ">50K"
)

// HigherEducation is the set of education levels counted as advanced.
var HigherEducation = []string{"Bachelors", "Masters", "Doctorate"}

// Record is one row of the census table. Field order must match Columns:
// rows are decoded positionally.
type Record struct {
	Age           Number `csv:"age"`
	Workclass     string `csv:"workclass"`
	Fnlwgt        Number `csv:"fnlwgt"`
	Education     string `csv:"education"`
	EducationNum  Number `csv:"education-num"`
	MaritalStatus string `csv:"marital-status"`
	Occupation    string `csv:"occupation"`
	Relationship  string `csv:"relationship"`
	Race          string `csv:"race"`
	Sex           string `csv:"sex"`
	CapitalGain   Number `csv:"capital-gain"`
	CapitalLoss   Number `csv:"capital-loss"`
	HoursPerWeek  Number `csv:"hours-per-week"`
	NativeCountry string `csv:"native-country"`
	Salary        string `csv:"salary"`
}

// trim strips surrounding whitespace from every categorical field.
func (r *Record) trim() {
	for _, s := range []*string{
		&r.Workclass, &r.Education, &r.MaritalStatus, &r.Occupation,
		&r.Relationship, &r.Race, &r.Sex, &r.NativeCountry, &r.Salary,
	} {
		*s = strings.TrimSpace(*s)
	}
}

// Number is a numeric cell. Text that does not parse as a number decodes to
// NaN and reports Missing.
type Number float64

// Missing returns a Number with no value.
func Missing() Number { return Number(math.NaN()) }

// UnmarshalCSV implements gocsv.TypeUnmarshaller. It never fails.
func (n *Number) UnmarshalCSV(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		*n = Missing()
		return nil
	}
	*n = Number(v)
	return nil
}

// Missing reports whether the cell held no numeric value.
func (n Number) Missing() bool { return math.IsNaN(float64(n)) }

// Float returns the raw value; NaN when missing.
func (n Number) Float() float64 { return float64(n) }

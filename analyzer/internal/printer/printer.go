// Package printer renders a Report as the human-readable console summary.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/censuskit/demographics/pkg/types"
)

// Print writes the report to w: the race table first, then one labelled
// line per metric. Percentages carry a trailing "%".
func Print(w io.Writer, r *types.Report) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "Number of each race:")
	raceTable(&buf, r.RaceCount)

	fmt.Fprintln(&buf, "Average age of men:", decimal(r.AverageAgeMen))
	fmt.Fprintf(&buf, "Percentage with Bachelors degrees: %s%%\n", decimal(r.PercentageBachelors))
	fmt.Fprintf(&buf, "Percentage with higher education that earn >50K: %s%%\n", decimal(r.HigherEducationRich))
	fmt.Fprintf(&buf, "Percentage without higher education that earn >50K: %s%%\n", decimal(r.LowerEducationRich))
	fmt.Fprintf(&buf, "Min work time: %d hours/week\n", r.MinWorkHours)
	fmt.Fprintf(&buf, "Percentage of rich among those who work fewest hours: %s%%\n", decimal(r.RichPercentage))
	fmt.Fprintln(&buf, "Country with highest percentage of rich:", r.HighestEarningCountry)
	fmt.Fprintf(&buf, "Highest percentage of rich people in country: %s%%\n", decimal(r.HighestEarningCountryPercentage))
	fmt.Fprintln(&buf, "Top occupations in India:", r.TopINOccupation)

	_, err := w.Write(buf.Bytes())
	return err
}

func raceTable(w io.Writer, counts []types.RaceCount) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Race", "Count"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, rc := range counts {
		table.Append([]string{rc.Race, strconv.Itoa(rc.Count)})
	}
	table.Render()
}

// decimal formats v with exactly one decimal place.
func decimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

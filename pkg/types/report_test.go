package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReport_Map(t *testing.T) {
	r := &Report{
		RaceCount:             []RaceCount{{Race: "White", Count: 3}, {Race: "Other", Count: 1}},
		MinWorkHours:          2,
		HighestEarningCountry: "Iran",
	}
	m := r.Map()
	assert.Len(t, m, len(Keys))

	races := m[KeyRaceCount].([]RaceCount)
	races[0].Count = 99
	assert.Equal(t, 3, r.RaceCount[0].Count, "Map copies the race table")
	assert.Equal(t, 4, r.RaceTotal())
}

func TestReport_Lookup(t *testing.T) {
	r := &Report{MinWorkHours: 1, Rows: 10, TopINOccupation: "Sales"}

	v, ok := r.Numeric(KeyMinWorkHours)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)

	v, ok = r.Numeric("rows")
	assert.True(t, ok)
	assert.Equal(t, 10.0, v)

	_, ok = r.Numeric(KeyTopINOccupation)
	assert.False(t, ok)

	s, ok := r.Text(KeyTopINOccupation)
	assert.True(t, ok)
	assert.Equal(t, "Sales", s)

	_, ok = r.Text(KeyRaceCount)
	assert.False(t, ok)
}

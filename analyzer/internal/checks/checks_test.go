package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/censuskit/demographics/analyzer/internal/config"
	"github.com/censuskit/demographics/pkg/types"
)

var report = &types.Report{
	AverageAgeMen:                   39.4,
	PercentageBachelors:             16.4,
	HigherEducationRich:             46.5,
	LowerEducationRich:              17.4,
	MinWorkHours:                    1,
	RichPercentage:                  10,
	HighestEarningCountry:           "Iran",
	HighestEarningCountryPercentage: 41.9,
	TopINOccupation:                 "Prof-specialty",
	Rows:                            32561,
}

func TestEvalCondition(t *testing.T) {
	tests := []struct {
		cond      string
		wantFires bool
		wantValue string
		wantOK    bool
	}{
		{"percentage_bachelors < 20", true, "16.4", true},
		{"percentage_bachelors > 20", false, "16.4", true},
		{"average_age_men >= 39.4", true, "39.4", true},
		{"min_work_hours == 1", true, "1", true},
		{"rich_percentage <= 9.9", false, "10", true},
		{"rows != 32561", false, "32561", true},
		{"highest_earning_country == Iran", true, "Iran", true},
		{"top_IN_occupation != Prof-specialty", false, "Prof-specialty", true},
		{"highest_earning_country > Iran", false, "", false},
		{"unknown_field > 1", false, "", false},
		{"percentage_bachelors ~ 1", false, "16.4", false},
		{"percentage_bachelors < lots", false, "", false},
		{"percentage_bachelors<20", false, "", false},
	}
	for _, tc := range tests {
		t.Run(tc.cond, func(t *testing.T) {
			fires, value, ok := evalCondition(tc.cond, report)
			assert.Equal(t, tc.wantFires, fires)
			assert.Equal(t, tc.wantOK, ok)
			if tc.wantOK {
				assert.Equal(t, tc.wantValue, value)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	rules := []config.CheckRule{
		{Name: "few-bachelors", Condition: "percentage_bachelors < 20", Severity: "critical"},
		{Name: "enough-rows", Condition: "rows < 1000"},
		{Name: "iran", Condition: "highest_earning_country == Iran"},
		{Name: "broken", Condition: "nonsense == 1"},
	}
	got := Evaluate(rules, report)
	require.Len(t, got, 2)

	assert.Equal(t, "few-bachelors", got[0].Rule)
	assert.Equal(t, "critical", got[0].Severity)
	assert.Equal(t, "16.4", got[0].Value)
	assert.Contains(t, got[0].Message, "percentage_bachelors < 20")

	assert.Equal(t, "iran", got[1].Rule)
	assert.Equal(t, config.DefaultSeverity, got[1].Severity)
}

func TestEvaluate_NoRules(t *testing.T) {
	assert.Empty(t, Evaluate(nil, report))
}

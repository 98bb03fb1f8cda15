package checks

import (
	"fmt"
	"log/slog"

	"github.com/censuskit/demographics/analyzer/internal/config"
	"github.com/censuskit/demographics/pkg/types"
)

// Finding is one rule that fired against a report.
type Finding struct {
	Rule     string
	Severity string
	Value    string
	Message  string
}

// Evaluate tests every rule against r and returns the ones that fire, in
// rule order. Rules whose condition cannot be evaluated are logged and
// skipped.
func Evaluate(rules []config.CheckRule, r *types.Report) []Finding {
	var out []Finding
	for _, rule := range rules {
		fires, value, ok := evalCondition(rule.Condition, r)
		if !ok {
			slog.Warn("checks: cannot evaluate condition, skipping",
				"rule", rule.Name, "condition", rule.Condition)
			continue
		}
		if !fires {
			continue
		}

		sev := rule.Severity
		if sev == "" {
			sev = config.DefaultSeverity
		}
		f := Finding{
			Rule:     rule.Name,
			Severity: sev,
			Value:    value,
			Message:  fmt.Sprintf("[%s] %s fired: %s (value %s)", sev, rule.Name, rule.Condition, value),
		}
		out = append(out, f)

		slog.Warn("check fired",
			"rule", rule.Name,
			"condition", rule.Condition,
			"value", value,
			"severity", sev,
		)
	}
	return out
}

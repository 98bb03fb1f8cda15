// Package checks evaluates threshold rules against a finished report.
// Rules come from the checks section of the config file; every rule that
// fires is logged and returned as a Finding so the CLI can fail the run.
package checks

// Package export writes a generated Report to optional sinks.
//
// file.go writes the ten-key report mapping as JSON or YAML, chosen by the
// file extension.
//
// textfile.go converts the report into Prometheus metric families and writes
// them in text exposition format, atomically (temp file + rename) so the
// node_exporter textfile collector never reads a partial file.
//
// chart.go renders the race counts as a bar chart with gonum/plot.
//
// All writers go through an afero.Fs so tests run against memory.
package export

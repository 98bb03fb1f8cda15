// Package config loads and watches the analyzer configuration file.
//
// Top-level types:
//   - Config{Analyzer, Output, Checks}: full config tree parsed from YAML
//   - AnalyzerConfig: dataset_path, print, min_hours_fallback (undefined|legacy)
//   - OutputConfig: json_path, yaml_path, textfile_path, chart_path; an
//     empty path disables that sink
//   - CheckRule: name, condition ("field op value"), severity
//     (critical|warning|info, default warning)
//
// Load(path) reads the YAML file on top of Default() (adult.data.csv,
// printing on, undefined fallback), then validates required fields and enums.
// Without a config file the CLI runs on Default() directly.
//
// Watch(ctx, path, onChange, extra...) uses fsnotify to detect writes to the
// config file or any extra file (the dataset) and calls onChange with the
// reloaded Config. It re-adds the watch after each event to survive the
// rename then create pattern of atomic-save editors.
package config

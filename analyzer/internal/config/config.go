package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultDatasetPath      = "adult.data.csv"
	DefaultMinHoursFallback = "undefined"
	DefaultSeverity         = "warning"
)

// Config is the top-level analyzer configuration.
// Fields map 1:1 to config.example.yaml.
type Config struct {
	Analyzer AnalyzerConfig `yaml:"analyzer"`
	Output   OutputConfig   `yaml:"output"`
	Checks   []CheckRule    `yaml:"checks"`
}

// AnalyzerConfig controls how the report is generated.
type AnalyzerConfig struct {
	// DatasetPath is the headerless census file. A .gz or .zst suffix
	// selects transparent decompression.
	DatasetPath string `yaml:"dataset_path"`

	// Print writes the human-readable report to stdout.
	Print bool `yaml:"print"`

	// MinHoursFallback is one of: undefined | legacy.
	// legacy reports 10.0 for rich_percentage when no row works exactly the
	// minimum hours; undefined fails the run instead.
	MinHoursFallback string `yaml:"min_hours_fallback"`
}

// OutputConfig lists optional sinks for the generated report.
// An empty path disables the sink.
type OutputConfig struct {
	// JSONPath receives the report mapping as indented JSON.
	JSONPath string `yaml:"json_path"`

	// YAMLPath receives the report mapping as YAML.
	YAMLPath string `yaml:"yaml_path"`

	// TextfilePath receives the metrics in Prometheus text exposition
	// format, for the node_exporter textfile collector.
	TextfilePath string `yaml:"textfile_path"`

	// ChartPath receives a bar chart of race counts. The extension picks
	// the image format: png | svg | pdf | jpg.
	ChartPath string `yaml:"chart_path"`
}

// CheckRule is a threshold evaluated against the finished report.
type CheckRule struct {
	// Name identifies the rule in logs.
	Name string `yaml:"name"`

	// Condition is an expression like "percentage_bachelors < 10" or
	// "highest_earning_country == Iran".
	Condition string `yaml:"condition"`

	// Severity is one of: critical | warning | info.
	Severity string `yaml:"severity"`
}

// Load reads and parses the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: read file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "config: parse yaml")
	}

	for i := range cfg.Checks {
		if cfg.Checks[i].Severity == "" {
			cfg.Checks[i].Severity = DefaultSeverity
		}
	}

	if err := validate(cfg); err != nil {
		return nil, errors.WithMessage(err, "config")
	}

	return cfg, nil
}

// Default returns a Config pre-populated with default values. It is used
// as-is when no config file is given.
func Default() *Config {
	return &Config{
		Analyzer: AnalyzerConfig{
			DatasetPath:      DefaultDatasetPath,
			Print:            true,
			MinHoursFallback: DefaultMinHoursFallback,
		},
	}
}

// chartFormats are the image extensions gonum/plot can save.
var chartFormats = map[string]bool{
	".png": true, ".svg": true, ".pdf": true, ".jpg": true, ".jpeg": true,
	".eps": true, ".tif": true, ".tiff": true,
}

// validate checks required fields and enums.
func validate(cfg *Config) error {
	if cfg.Analyzer.DatasetPath == "" {
		return errors.New("analyzer.dataset_path is required")
	}
	switch cfg.Analyzer.MinHoursFallback {
	case "undefined", "legacy":
	default:
		return errors.Errorf("analyzer.min_hours_fallback: unknown value %q", cfg.Analyzer.MinHoursFallback)
	}
	if p := cfg.Output.JSONPath; p != "" && strings.ToLower(filepath.Ext(p)) != ".json" {
		return errors.Errorf("output.json_path: %q must end in .json", p)
	}
	switch p := cfg.Output.YAMLPath; strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
	default:
		if p != "" {
			return errors.Errorf("output.yaml_path: %q must end in .yaml or .yml", p)
		}
	}
	if p := cfg.Output.ChartPath; p != "" && !chartFormats[strings.ToLower(filepath.Ext(p))] {
		return errors.Errorf("output.chart_path: unsupported image format %q", filepath.Ext(p))
	}
	seen := make(map[string]bool, len(cfg.Checks))
	for i, c := range cfg.Checks {
		if c.Name == "" {
			return errors.Errorf("checks[%d]: name is required", i)
		}
		if seen[c.Name] {
			return errors.Errorf("checks[%d]: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true
		if len(strings.Fields(c.Condition)) != 3 {
			return errors.Errorf("checks[%d] %q: condition must be \"field op value\"", i, c.Name)
		}
		switch c.Severity {
		case "critical", "warning", "info":
		default:
			return errors.Errorf("checks[%d] %q: unknown severity %q", i, c.Name, c.Severity)
		}
	}
	return nil
}

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Valid(t *testing.T) {
	yaml := `
analyzer:
  dataset_path: data/adult.data.csv.gz
  print: false
  min_hours_fallback: legacy
output:
  json_path: out/report.json
  textfile_path: /var/lib/node_exporter/demographics.prom
  chart_path: out/races.svg
checks:
  - name: low-bachelors
    condition: "percentage_bachelors < 10"
    severity: critical
`
	cfg := loadFromString(t, yaml)

	assert.Equal(t, "data/adult.data.csv.gz", cfg.Analyzer.DatasetPath)
	assert.False(t, cfg.Analyzer.Print)
	assert.Equal(t, "legacy", cfg.Analyzer.MinHoursFallback)
	assert.Equal(t, "out/report.json", cfg.Output.JSONPath)
	assert.Equal(t, "out/races.svg", cfg.Output.ChartPath)
	require.Len(t, cfg.Checks, 1)
	assert.Equal(t, "low-bachelors", cfg.Checks[0].Name)
	assert.Equal(t, "critical", cfg.Checks[0].Severity)
}

func TestLoad_Defaults(t *testing.T) {
	yaml := `
checks:
  - name: rows
    condition: "rows < 1000"
`
	cfg := loadFromString(t, yaml)

	assert.Equal(t, DefaultDatasetPath, cfg.Analyzer.DatasetPath)
	assert.True(t, cfg.Analyzer.Print, "printing is on unless disabled")
	assert.Equal(t, DefaultMinHoursFallback, cfg.Analyzer.MinHoursFallback)
	assert.Empty(t, cfg.Output.JSONPath)
	assert.Equal(t, DefaultSeverity, cfg.Checks[0].Severity)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg := loadFromString(t, "")
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty dataset path", `
analyzer:
  dataset_path: ""
`},
		{"unknown fallback", `
analyzer:
  min_hours_fallback: zero
`},
		{"chart format", `
output:
  chart_path: races.bmp
`},
		{"json extension", `
output:
  json_path: report.txt
`},
		{"yaml extension", `
output:
  yaml_path: report.json
`},
		{"check without name", `
checks:
  - condition: "rows < 1"
`},
		{"duplicate check", `
checks:
  - name: a
    condition: "rows < 1"
  - name: a
    condition: "rows > 1"
`},
		{"malformed condition", `
checks:
  - name: a
    condition: "rows<1"
`},
		{"unknown severity", `
checks:
  - name: a
    condition: "rows < 1"
    severity: page
`},
		{"bad yaml", "analyzer: [unterminated"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadStringErr(t, tc.yaml)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config")
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestWatch_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	dataPath := filepath.Join(dir, "adult.data.csv")
	require.NoError(t, os.WriteFile(cfgPath, []byte("analyzer:\n  print: false\n"), 0o600))
	require.NoError(t, os.WriteFile(dataPath, []byte(""), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan *Config, 8)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, cfgPath, func(c *Config) { changed <- c }, dataPath)
	}()

	// The watcher registers asynchronously; keep touching the dataset until
	// an event lands.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case c := <-changed:
			assert.False(t, c.Analyzer.Print, "reload reads the config file")
			cancel()
			require.NoError(t, <-done)
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(dataPath, []byte("x\n"), 0o600))
		case <-deadline:
			t.Fatal("onChange was not called")
		}
	}
}

func TestWatch_MissingPath(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "absent.yaml"), func(*Config) {})
	assert.Error(t, err)
}

// loadFromString writes yaml to a temp file and calls Load, failing on error.
func loadFromString(t *testing.T, content string) *Config {
	t.Helper()
	cfg, err := loadStringErr(t, content)
	require.NoError(t, err)
	return cfg
}

// loadStringErr writes yaml to a temp file and calls Load, returning any error.
func loadStringErr(t *testing.T, content string) (*Config, error) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return Load(path)
}

// Package projectconfig provides the ProjectConfig struct and loader for
// .taskpulse.yaml project-level configuration files.
package projectconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the project configuration file.
const FileName = ".taskpulse.yaml"

// Default values for project configuration. New() is the only place that
// applies them.
const (
	DefaultDataDir = "data/"

	DefaultFormat          = "table"
	DefaultSampleColumn    = "hours"
	DefaultConfidenceLevel = 0.95

	DefaultFirstLabel  = "Team A"
	DefaultSecondLabel = "Team B"
)

// DefaultPercentiles are the percentiles reported next to the summary.
var DefaultPercentiles = []float64{25, 50, 75, 90}

// Formats accepted by Report.Format.
var Formats = []string{"table", "json", "markdown", "html"}

// PathsConfig holds directory paths.
type PathsConfig struct {
	Data string `yaml:"data,omitempty"`
}

// ReportConfig holds output settings.
type ReportConfig struct {
	Format          string    `yaml:"format,omitempty"`
	Percentiles     []float64 `yaml:"percentiles,omitempty"`
	Color           *bool     `yaml:"color,omitempty"`
	SampleColumn    string    `yaml:"sample_column,omitempty"`
	Bootstrap       *bool     `yaml:"bootstrap,omitempty"`
	ConfidenceLevel float64   `yaml:"confidence_level,omitempty"`
}

// CompareConfig holds the labels printed for the two sides of a comparison.
type CompareConfig struct {
	FirstLabel  string `yaml:"first_label,omitempty"`
	SecondLabel string `yaml:"second_label,omitempty"`
}

// ProjectConfig is the top-level configuration loaded from .taskpulse.yaml.
type ProjectConfig struct {
	Paths   PathsConfig   `yaml:"paths,omitempty"`
	Report  ReportConfig  `yaml:"report,omitempty"`
	Compare CompareConfig `yaml:"compare,omitempty"`
}

// New returns a ProjectConfig with all hard-coded defaults populated.
func New() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Data: DefaultDataDir,
		},
		Report: ReportConfig{
			Format:          DefaultFormat,
			Percentiles:     slices.Clone(DefaultPercentiles),
			Color:           boolPtr(true),
			SampleColumn:    DefaultSampleColumn,
			Bootstrap:       boolPtr(false),
			ConfidenceLevel: DefaultConfidenceLevel,
		},
		Compare: CompareConfig{
			FirstLabel:  DefaultFirstLabel,
			SecondLabel: DefaultSecondLabel,
		},
	}
}

// Load finds .taskpulse.yaml by walking up from startDir (max 10 levels),
// unmarshals it, and fills in missing fields with defaults.
// If no config file is found, returns defaults with a nil error.
// Real I/O errors (e.g. permission denied) are returned to the caller.
func Load(startDir string) (*ProjectConfig, error) {
	cfg := New()

	data, err := findConfigFile(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil // no file found → return defaults
		}
		return nil, fmt.Errorf("loading %s: %w", FileName, err)
	}

	var fileCfg ProjectConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	mergeConfig(cfg, &fileCfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", FileName, err)
	}
	return cfg, nil
}

// Save writes cfg as .taskpulse.yaml into dir, replacing any existing file.
func Save(dir string, cfg *ProjectConfig) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", FileName, err)
	}
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %q: %w", p, err)
	}
	return p, nil
}

// Validate reports settings that no command can use.
func (c *ProjectConfig) Validate() error {
	if !slices.Contains(Formats, c.Report.Format) {
		return fmt.Errorf("report.format %q must be one of %v", c.Report.Format, Formats)
	}
	for _, p := range c.Report.Percentiles {
		if p < 0 || p > 100 {
			return fmt.Errorf("report.percentiles: %v is outside [0, 100]", p)
		}
	}
	if c.Report.ConfidenceLevel <= 0 || c.Report.ConfidenceLevel >= 1 {
		return fmt.Errorf("report.confidence_level %v must be between 0 and 1", c.Report.ConfidenceLevel)
	}
	return nil
}

// findConfigFile walks up from dir looking for .taskpulse.yaml (max 10 levels).
// Returns os.ErrNotExist if no config file is found. Propagates real I/O
// errors (e.g. permission denied) instead of silently swallowing them.
func findConfigFile(dir string) ([]byte, error) {
	// Convert to absolute path so filepath.Dir(".") walks correctly.
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", dir, err)
	}
	dir = absDir

	for i := 0; i < 10; i++ {
		p := filepath.Join(dir, FileName)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break // reached filesystem root
		}
		dir = parent
	}
	return nil, os.ErrNotExist
}

// mergeConfig overlays non-zero values from src onto dst.
func mergeConfig(dst, src *ProjectConfig) {
	// Paths
	if src.Paths.Data != "" {
		dst.Paths.Data = src.Paths.Data
	}

	// Report
	if src.Report.Format != "" {
		dst.Report.Format = src.Report.Format
	}
	if len(src.Report.Percentiles) > 0 {
		dst.Report.Percentiles = src.Report.Percentiles
	}
	if src.Report.Color != nil {
		dst.Report.Color = src.Report.Color
	}
	if src.Report.SampleColumn != "" {
		dst.Report.SampleColumn = src.Report.SampleColumn
	}
	if src.Report.Bootstrap != nil {
		dst.Report.Bootstrap = src.Report.Bootstrap
	}
	if src.Report.ConfidenceLevel != 0 {
		dst.Report.ConfidenceLevel = src.Report.ConfidenceLevel
	}

	// Compare
	if src.Compare.FirstLabel != "" {
		dst.Compare.FirstLabel = src.Compare.FirstLabel
	}
	if src.Compare.SecondLabel != "" {
		dst.Compare.SecondLabel = src.Compare.SecondLabel
	}
}

func boolPtr(b bool) *bool {
	return &b
}

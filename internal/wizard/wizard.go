// Package wizard runs the interactive form behind `taskpulse init`.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spboyer/taskpulse/internal/projectconfig"
)

// RunConfigWizard asks for the project settings, starting from defaults, and
// returns the resulting configuration. defaults is not modified.
func RunConfigWizard(in io.Reader, out io.Writer, defaults *projectconfig.ProjectConfig) (*projectconfig.ProjectConfig, error) {
	cfg := *defaults

	var (
		dataDir        = cfg.Paths.Data
		format         = cfg.Report.Format
		percentilesRaw = formatPercentiles(cfg.Report.Percentiles)
		firstLabel     = cfg.Compare.FirstLabel
		secondLabel    = cfg.Compare.SecondLabel
		color          = cfg.Report.Color == nil || *cfg.Report.Color
	)

	formatOptions := make([]huh.Option[string], 0, len(projectconfig.Formats))
	for _, f := range projectconfig.Formats {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Data directory").
				Description("Where task exports and duration files live").
				Placeholder(projectconfig.DefaultDataDir).
				Value(&dataDir),
			huh.NewSelect[string]().
				Title("Default output format").
				Options(formatOptions...).
				Value(&format),
			huh.NewInput().
				Title("Extra percentiles").
				Description("Comma-separated values between 0 and 100").
				Placeholder("25, 50, 75, 90").
				Value(&percentilesRaw).
				Validate(func(s string) error {
					_, err := ParsePercentiles(s)
					return err
				}),
			huh.NewConfirm().
				Title("Colored tables?").
				Value(&color),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("First team label").
				Value(&firstLabel).
				Validate(requireLabel),
			huh.NewInput().
				Title("Second team label").
				Value(&secondLabel).
				Validate(requireLabel),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	percentiles, err := ParsePercentiles(percentilesRaw)
	if err != nil {
		return nil, err
	}

	if d := strings.TrimSpace(dataDir); d != "" {
		cfg.Paths.Data = d
	}
	cfg.Report.Format = format
	cfg.Report.Percentiles = percentiles
	cfg.Report.Color = &color
	cfg.Compare.FirstLabel = strings.TrimSpace(firstLabel)
	cfg.Compare.SecondLabel = strings.TrimSpace(secondLabel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ParsePercentiles parses a comma-separated list of percentiles.
func ParsePercentiles(s string) ([]float64, error) {
	var out []float64
	for _, part := range splitAndTrim(s) {
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("percentile %q is not a number", part)
		}
		if p < 0 || p > 100 {
			return nil, fmt.Errorf("percentile %v must be between 0 and 100", p)
		}
		out = append(out, p)
	}
	return out, nil
}

func formatPercentiles(ps []float64) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = strconv.FormatFloat(p, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func requireLabel(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("label is required")
	}
	return nil
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

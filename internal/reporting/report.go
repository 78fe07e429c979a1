// Package reporting renders statistics, distributions, velocities and
// comparisons for people (table, markdown, HTML) and for machines (JSON).
package reporting

import (
	"fmt"
	"io"
	"slices"

	"github.com/spboyer/taskpulse/internal/statistics"
	"github.com/spboyer/taskpulse/internal/tasks"
)

// Format is an output format.
type Format string

const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if !slices.Contains([]Format{FormatTable, FormatJSON, FormatMarkdown, FormatHTML}, f) {
		return "", fmt.Errorf("unsupported format %q: must be table, json, markdown or html", s)
	}
	return f, nil
}

// PercentileValue is one requested percentile of the sample set.
type PercentileValue struct {
	Percentile float64 `json:"percentile"`
	Value      float64 `json:"value"`
}

// Comparison is a team comparison with the labels used for each side.
type Comparison struct {
	FirstLabel  string `json:"first_label"`
	SecondLabel string `json:"second_label"`
	tasks.Comparison
}

// WinnerLabel maps the winner onto the configured team labels.
func (c Comparison) WinnerLabel() string {
	switch c.Winner {
	case tasks.WinnerFirst:
		return c.FirstLabel
	case tasks.WinnerSecond:
		return c.SecondLabel
	default:
		return "Tie"
	}
}

// Report collects whatever sections a command produced. Nil sections are
// not rendered.
type Report struct {
	Title        string                         `json:"title"`
	Summary      *statistics.Summary            `json:"summary,omitempty"`
	Percentiles  []PercentileValue              `json:"percentiles,omitempty"`
	Confidence   *statistics.ConfidenceInterval `json:"confidence,omitempty"`
	Distribution *tasks.Distribution            `json:"distribution,omitempty"`
	Velocity     *tasks.Velocity                `json:"velocity,omitempty"`
	Comparison   *Comparison                    `json:"comparison,omitempty"`
}

// Options tune human-readable output.
type Options struct {
	Color bool
}

// Render writes r to w in the given format.
func Render(w io.Writer, r *Report, format Format, opts Options) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, r)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(r))
		return err
	case FormatHTML:
		return renderHTML(w, r)
	case FormatTable, "":
		return renderTables(w, r, opts)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

package reporting

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.Table))

// Markdown renders r as a GitHub-flavored markdown document.
func Markdown(r *Report) string {
	var b strings.Builder

	title := r.Title
	if title == "" {
		title = "taskpulse report"
	}
	fmt.Fprintf(&b, "# %s\n", title)

	if r.Summary != nil {
		s := r.Summary
		rows := [][]string{
			{"Count", formatCount(s.Count)},
			{"Mean", formatStat(s.Mean)},
			{"Median", formatStat(s.Median)},
			{"Std. deviation", formatStat(s.StandardDeviation)},
			{"Variance", formatStat(s.Variance)},
			{"Min", formatStat(s.Min)},
			{"Max", formatStat(s.Max)},
			{"Range", formatStat(s.Range)},
			{"P25", formatStat(s.P25)},
			{"P50", formatStat(s.P50)},
			{"P75", formatStat(s.P75)},
		}
		for _, pv := range r.Percentiles {
			rows = append(rows, []string{"P" + formatStat(pv.Percentile), formatStat(pv.Value)})
		}
		if ci := r.Confidence; ci != nil && ci.NumBootstraps > 0 {
			rows = append(rows, []string{
				fmt.Sprintf("Mean %.0f%% CI", ci.ConfidenceLevel*100),
				fmt.Sprintf("[%s, %s]", formatStat(ci.Lower), formatStat(ci.Upper)),
			})
		}
		b.WriteString("\n## Summary\n\n")
		writeMarkdownTable(&b, []string{"Statistic", "Value"}, rows)
		fmt.Fprintf(&b, "\n%s\n", InterpretSpread(*s))
	}

	if r.Distribution != nil {
		d := r.Distribution
		rows := make([][]string, 0, len(d.Statuses)+1)
		for _, s := range d.Statuses {
			rows = append(rows, []string{s.Status, formatCount(s.Count), formatPercent(s.Percentage)})
		}
		rows = append(rows, []string{"**Total**", formatCount(d.Total), ""})
		b.WriteString("\n## Status distribution\n\n")
		writeMarkdownTable(&b, []string{"Status", "Count", "Share"}, rows)
		fmt.Fprintf(&b, "\n%s\n", InterpretCompletion(*d))
	}

	if v := r.Velocity; v != nil {
		b.WriteString("\n## Velocity\n\n")
		writeMarkdownTable(&b, []string{"Metric", "Value"}, [][]string{
			{"Completed tasks", formatCount(v.TaskCount)},
			{"Total hours", formatStat(v.TotalHours)},
			{"Avg hours / task", formatStat(v.AvgHoursPerTask)},
			{"Tasks / hour", formatStat(v.TasksPerHour)},
		})
	}

	if c := r.Comparison; c != nil {
		b.WriteString("\n## Team comparison\n\n")
		writeMarkdownTable(&b, []string{"Metric", c.FirstLabel, c.SecondLabel}, [][]string{
			{"Completed tasks", formatCount(c.First.TaskCount), formatCount(c.Second.TaskCount)},
			{"Total hours", formatStat(c.First.TotalHours), formatStat(c.Second.TotalHours)},
			{"Avg hours / task", formatStat(c.First.AvgHoursPerTask), formatStat(c.Second.AvgHoursPerTask)},
			{"Tasks / hour", formatStat(c.First.TasksPerHour), formatStat(c.Second.TasksPerHour)},
		})
		fmt.Fprintf(&b, "\n**Winner:** %s  \n", c.WinnerLabel())
		fmt.Fprintf(&b, "**Difference:** %s tasks/hour (%s)\n", formatStat(c.VelocityDifference), formatSignedPercent(c.PercentageDifference))
		fmt.Fprintf(&b, "\n%s\n", InterpretComparison(*c))
	}

	return b.String()
}

// writeMarkdownTable writes a pipe table with columns padded to equal
// display width so the source stays readable.
func writeMarkdownTable(b *strings.Builder, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = max(3, runewidth.StringWidth(h))
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(escapeCell(cell)))
		}
	}

	writeRow := func(cells []string) {
		b.WriteString("|")
		for i, cell := range cells {
			fmt.Fprintf(b, " %s |", runewidth.FillRight(escapeCell(cell), widths[i]))
		}
		b.WriteString("\n")
	}

	writeRow(header)
	b.WriteString("|")
	for _, w := range widths {
		fmt.Fprintf(b, " %s |", strings.Repeat("-", w))
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderHTML(w io.Writer, r *Report) error {
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(Markdown(r)), &buf); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

package reporting

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spboyer/taskpulse/internal/tasks"
)

// maxLabelWidth bounds status labels in table cells.
const maxLabelWidth = 28

var printer = message.NewPrinter(language.English)

// formatStat prints a statistic with only the digits it actually has.
func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPercent(v float64) string {
	return printer.Sprintf("%.2f%%", v)
}

func formatSignedPercent(v float64) string {
	return printer.Sprintf("%+.2f%%", v)
}

func formatCount(n int) string {
	return printer.Sprintf("%d", n)
}

func truncateLabel(s string) string {
	return runewidth.Truncate(s, maxLabelWidth, "…")
}

type palette struct {
	heading func(format string, a ...any) string
	good    func(format string, a ...any) string
}

func newPalette(enabled bool) palette {
	heading := color.New(color.Bold)
	good := color.New(color.FgGreen, color.Bold)
	if enabled {
		heading.EnableColor()
		good.EnableColor()
	} else {
		heading.DisableColor()
		good.DisableColor()
	}
	return palette{
		heading: heading.SprintfFunc(),
		good:    good.SprintfFunc(),
	}
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader(header)
	tbl.SetAutoFormatHeaders(false)
	tbl.SetBorder(true)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	return tbl
}

func renderTables(w io.Writer, r *Report, opts Options) error {
	p := newPalette(opts.Color)
	ew := &errWriter{w: w}

	if r.Title != "" {
		ew.printf("%s\n\n", p.heading("%s", r.Title))
	}

	if r.Summary != nil {
		s := r.Summary
		ew.printf("%s\n", p.heading("Summary"))
		tbl := newTable(ew, "Statistic", "Value")
		tbl.AppendBulk([][]string{
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
		})
		for _, pv := range r.Percentiles {
			tbl.Append([]string{"P" + formatStat(pv.Percentile), formatStat(pv.Value)})
		}
		if r.Confidence != nil && r.Confidence.NumBootstraps > 0 {
			ci := r.Confidence
			tbl.Append([]string{
				fmt.Sprintf("Mean %.0f%% CI", ci.ConfidenceLevel*100),
				fmt.Sprintf("[%s, %s]", formatStat(ci.Lower), formatStat(ci.Upper)),
			})
		}
		tbl.Render()
		ew.printf("%s\n\n", InterpretSpread(*s))
	}

	if r.Distribution != nil {
		d := r.Distribution
		ew.printf("%s\n", p.heading("Status distribution"))
		tbl := newTable(ew, "Status", "Count", "Share")
		for _, s := range d.Statuses {
			tbl.Append([]string{truncateLabel(s.Status), formatCount(s.Count), formatPercent(s.Percentage)})
		}
		tbl.SetFooter([]string{"Total", formatCount(d.Total), ""})
		tbl.Render()
		ew.printf("%s\n\n", InterpretCompletion(*d))
	}

	if r.Velocity != nil {
		ew.printf("%s\n", p.heading("Velocity"))
		renderVelocityTable(ew, *r.Velocity)
		ew.printf("\n")
	}

	if r.Comparison != nil {
		c := r.Comparison
		ew.printf("%s\n", p.heading("Team comparison"))
		tbl := newTable(ew, "Metric", truncateLabel(c.FirstLabel), truncateLabel(c.SecondLabel))
		tbl.AppendBulk([][]string{
			{"Completed tasks", formatCount(c.First.TaskCount), formatCount(c.Second.TaskCount)},
			{"Total hours", formatStat(c.First.TotalHours), formatStat(c.Second.TotalHours)},
			{"Avg hours / task", formatStat(c.First.AvgHoursPerTask), formatStat(c.Second.AvgHoursPerTask)},
			{"Tasks / hour", formatStat(c.First.TasksPerHour), formatStat(c.Second.TasksPerHour)},
		})
		tbl.Render()
		ew.printf("Winner:          %s\n", p.good("%s", c.WinnerLabel()))
		ew.printf("Difference:      %s tasks/hour (%s)\n", formatStat(c.VelocityDifference), formatSignedPercent(c.PercentageDifference))
		ew.printf("%s\n", InterpretComparison(*c))
	}

	return ew.err
}

func renderVelocityTable(w io.Writer, v tasks.Velocity) {
	tbl := newTable(w, "Metric", "Value")
	tbl.AppendBulk([][]string{
		{"Completed tasks", formatCount(v.TaskCount)},
		{"Total hours", formatStat(v.TotalHours)},
		{"Avg hours / task", formatStat(v.AvgHoursPerTask)},
		{"Tasks / hour", formatStat(v.TasksPerHour)},
	})
	tbl.Render()
}

// errWriter remembers the first write error so rendering code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func (e *errWriter) printf(format string, a ...any) {
	fmt.Fprintf(e, format, a...) //nolint:errcheck
}

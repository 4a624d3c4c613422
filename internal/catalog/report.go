package catalog

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// maxPrunedNames is how many pruned column names the summary lists before
// truncating.
const maxPrunedNames = 5

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// WriteReport renders the human-readable run summary: per-file outcomes,
// dedup and pruning figures, and the non-null breakdown of the topColumns
// most populated output columns.
func WriteReport(w io.Writer, res *Result, topColumns int) {
	// Counts are comma-grouped, matching how the crawl sizes are usually
	// discussed (tens of thousands of rows).
	p := message.NewPrinter(language.English)

	fmt.Fprintln(w, titleStyle.Render("CatalogPress — combined catalog build"))
	fmt.Fprintf(w, "Input directory:  %s\n", res.InputDir)
	fmt.Fprintf(w, "Output file:      %s\n", res.OutputFile)
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render(p.Sprintf("Input files (%d)", len(res.Files))))
	ft := table.NewWriter()
	ft.SetOutputMirror(w)
	ft.SetStyle(table.StyleLight)
	ft.AppendHeader(table.Row{"File", "Rows", "Skipped", "Status"})
	for _, f := range res.Files {
		status := "ok"
		if f.Err != nil {
			status = "error: " + f.Err.Error()
		}
		ft.AppendRow(table.Row{f.Name, p.Sprintf("%d", f.Rows), f.SkippedRows, status})
	}
	ft.Render()
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Combine"))
	fmt.Fprintf(w, "Detected image columns: %d\n", len(res.ImageColumns))
	p.Fprintf(w, "Rows before dedup:      %d\n", res.RowsBeforeDedup)
	if res.DedupKey != "" {
		p.Fprintf(w, "Duplicates removed:     %d (by %s)\n", res.DuplicatesRemoved, res.DedupKey)
	} else {
		fmt.Fprintln(w, mutedStyle.Render("No dedup key column present, no deduplication performed"))
	}
	if len(res.PrunedColumns) > 0 {
		fmt.Fprintf(w, "Empty columns removed:  %d (%s)\n",
			len(res.PrunedColumns), truncateNames(res.PrunedColumns, maxPrunedNames))
	}
	p.Fprintf(w, "Final: %d rows, %d columns in %s\n",
		res.FinalRows, res.FinalColumns, res.Elapsed.Round(time.Millisecond))
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("Column summary"))
	ct := table.NewWriter()
	ct.SetOutputMirror(w)
	ct.SetStyle(table.StyleLight)
	ct.AppendHeader(table.Row{"Column", "Non-null", "%"})
	for _, s := range lo.Slice(res.ColumnStats, 0, topColumns) {
		ct.AppendRow(table.Row{s.Name, p.Sprintf("%d", s.NonNull), fmt.Sprintf("%.1f", s.Percent)})
	}
	ct.Render()
	if rest := len(res.ColumnStats) - topColumns; rest > 0 {
		fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("... and %d more columns", rest)))
	}
}

// truncateNames joins up to max names, appending "..." when truncated.
func truncateNames(names []string, max int) string {
	s := strings.Join(lo.Slice(names, 0, max), ", ")
	if len(names) > max {
		s += "..."
	}
	return s
}

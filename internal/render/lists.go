package render

import (
	"fmt"
	"io"

	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/stats"
)

// Lists writes a table of loaded lists, highest precedence last.
func (r *Renderer) Lists(w io.Writer, summaries []model.ListSummary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, "No word lists loaded.")
		return err
	}
	headers := []string{"List", "Words", "Min", "Max", "Mean", "0-100"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%d", s.Count),
			fmt.Sprintf("%d", s.Min),
			fmt.Sprintf("%d", s.Max),
			fmt.Sprintf("%.1f", s.Mean),
			"[" + stats.Histogram(s.Buckets) + "]",
		})
	}
	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	return r.Lines(w, formatTable(headers, rows, rightAlign))
}

// Loaded writes the load banner listing lists in precedence order.
func (r *Renderer) Loaded(w io.Writer, names []string) error {
	lines := make([]string, 0, len(names)+2)
	lines = append(lines, "Files loaded, highest precedence last:")
	for _, name := range names {
		lines = append(lines, "- "+name)
	}
	lines = append(lines, "")
	return r.Lines(w, lines)
}

// Package render formats search results for the terminal.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/wordlist"
)

// Renderer writes Store results using an explicit display config.
type Renderer struct {
	cfg   model.DisplayConfig
	width int

	found     lipgloss.Style
	missing   lipgloss.Style
	muted     lipgloss.Style
	highlight lipgloss.Style
	prompt    lipgloss.Style
	bold      lipgloss.Style
}

// New returns a Renderer for cfg. Zero limits fall back to the defaults.
func New(cfg model.DisplayConfig) *Renderer {
	def := model.DefaultDisplayConfig()
	if cfg.TableLimit <= 0 {
		cfg.TableLimit = def.TableLimit
	}
	if cfg.CountLimit <= 0 {
		cfg.CountLimit = def.CountLimit
	}
	if cfg.Columns <= 0 {
		cfg.Columns = def.Columns
	}
	return &Renderer{
		cfg:       cfg,
		found:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Found)),
		missing:   lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Missing)),
		muted:     lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Muted)),
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Highlight)),
		prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Colors.Prompt)).Bold(true),
		bold:      lipgloss.NewStyle().Bold(true),
	}
}

// SetWidth caps table width. Zero means unbounded.
func (r *Renderer) SetWidth(width int) {
	r.width = width
}

// Config returns the effective display config.
func (r *Renderer) Config() model.DisplayConfig {
	return r.cfg
}

// TerminalWidth returns the width of stdout, or 0 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.cfg.Color || s == "" {
		return s
	}
	return style.Render(s)
}

// PromptStyle is the style for the interactive prompt. It is unstyled when
// color is disabled.
func (r *Renderer) PromptStyle() lipgloss.Style {
	if !r.cfg.Color {
		return lipgloss.NewStyle()
	}
	return r.prompt
}

// Highlight paints the first occurrence of sub within full.
func (r *Renderer) Highlight(full, sub string) string {
	if sub == "" {
		return full
	}
	idx := strings.Index(full, sub)
	if idx < 0 {
		return full
	}
	return full[:idx] + r.paint(r.highlight, sub) + full[idx+len(sub):]
}

// highlightMany paints each sub in order, searching for the next one after
// the end of the previous match so painted text is never searched again.
func (r *Renderer) highlightMany(full string, subs []string) string {
	var b strings.Builder
	pos := 0
	for _, sub := range subs {
		if sub == "" {
			continue
		}
		idx := strings.Index(full[pos:], sub)
		if idx < 0 {
			continue
		}
		start := pos + idx
		b.WriteString(full[pos:start])
		b.WriteString(r.paint(r.highlight, sub))
		pos = start + len(sub)
	}
	b.WriteString(full[pos:])
	return b.String()
}

// Word formats a word with its length.
func (r *Renderer) Word(word string, emphasize bool, found bool) string {
	s := fmt.Sprintf("%s (%d)", word, utf8.RuneCountInString(word))
	style := r.missing
	if found {
		style = r.found
	}
	if emphasize {
		style = style.Bold(true)
	}
	return r.paint(style, s)
}

// Exact writes an exact-match report. Lists overridden by a higher
// precedence list are muted; the winning list is printed last.
func (r *Renderer) Exact(w io.Writer, word string, matches []model.Match, emphasize bool) error {
	var b strings.Builder
	b.WriteString(r.Word(word, emphasize, len(matches) > 0))
	b.WriteByte('\n')
	for i, m := range matches {
		line := fmt.Sprintf("%2d: %s", m.Score, m.List)
		if i < len(matches)-1 {
			line = r.paint(r.muted, line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Search writes a search report sized to the number of matches: a count
// when there are too many, a table for a medium number, and scored lines
// otherwise. describe completes "other words ..." in the header.
func (r *Renderer) Search(w io.Writer, describe, highlight string, matches map[string]int, minScore int) error {
	if len(matches) == 0 {
		_, err := fmt.Fprintln(w)
		return err
	}
	header := fmt.Sprintf("\n& found %d other words %s (%d+)", len(matches), describe, minScore)
	if len(matches) > r.cfg.CountLimit {
		_, err := fmt.Fprintln(w, header)
		return err
	}
	if len(matches) > r.cfg.TableLimit {
		if _, err := fmt.Fprintln(w, header+":"); err != nil {
			return err
		}
		return r.Table(w, wordlist.Words(matches), []string{highlight})
	}

	var b strings.Builder
	b.WriteString("\n-------\n")
	for _, sw := range wordlist.SortByScore(matches) {
		fmt.Fprintf(&b, "%d %s (%d)\n", sw.Score, r.Highlight(sw.Word, highlight), utf8.RuneCountInString(sw.Word))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Query writes the exact and substring halves of a query.
func (r *Renderer) Query(w io.Writer, result model.QueryResult, minScore int) error {
	if err := r.Exact(w, result.Word, result.Exact, true); err != nil {
		return err
	}
	describe := "with " + r.paint(r.found, result.Word) + " as substring"
	return r.Search(w, describe, result.Word, result.Related, minScore)
}

// Regex writes a regex search report.
func (r *Renderer) Regex(w io.Writer, pattern string, matches []model.ScoredWord, minScore int) error {
	m := make(map[string]int, len(matches))
	for _, sw := range matches {
		m[sw.Word] = sw.Score
	}
	return r.Search(w, "matching "+r.paint(r.found, pattern), "", m, minScore)
}

// Table writes words in columns, highlighting any of the given substrings.
func (r *Renderer) Table(w io.Writer, words []string, highlights []string) error {
	if len(words) == 0 {
		return nil
	}
	n := fitColumns(words, r.cfg.Columns, r.width)
	columns := splitColumns(words, n)
	widths := columnWidths(columns)

	var b strings.Builder
	for i := range columns[0] {
		var row strings.Builder
		for c, col := range columns {
			if i >= len(col) {
				continue
			}
			row.WriteString(r.highlightMany(padCell(col[i], widths[c], false), highlights))
		}
		b.WriteString(strings.TrimRight(row.String(), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Sandwich writes one table per non-empty split group.
func (r *Renderer) Sandwich(w io.Writer, groups []model.SandwichGroup) error {
	for _, g := range groups {
		if len(g.Words) == 0 {
			continue
		}
		label := r.paint(r.bold, g.Prefix) + "…" + r.paint(r.bold, g.Suffix)
		if _, err := fmt.Fprintf(w, "%s (%d)\n", label, len(g.Words)); err != nil {
			return err
		}
		words := make([]string, 0, len(g.Words))
		for _, sw := range g.Words {
			words = append(words, sw.Word)
		}
		if err := r.Table(w, words, []string{g.Prefix, g.Suffix}); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

// Score writes a `word found score` line.
func (r *Renderer) Score(w io.Writer, word string, found bool, score int) error {
	_, err := fmt.Fprintf(w, "%s %t %d\n", word, found, score)
	return err
}

// Lines writes each line as is.
func (r *Renderer) Lines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ExplainLinks returns reference links for looking up word.
func ExplainLinks(word string) []string {
	q := strings.ReplaceAll(strings.TrimSpace(word), " ", "+")
	return []string{
		"https://www.google.com/search?q=" + q,
		"https://en.wikipedia.org/w/index.php?title=Special%3ASearch&search=" + q,
		"https://www.etymonline.com/word/" + q,
		"https://www.merriam-webster.com/dictionary/" + q,
		"https://www.crosserville.com/search/theme",
	}
}

// Explain writes the word followed by its reference links.
func (r *Renderer) Explain(w io.Writer, word string) error {
	var b strings.Builder
	b.WriteString(r.paint(r.bold, fmt.Sprintf("%s (%d)", word, utf8.RuneCountInString(word))))
	b.WriteByte('\n')
	for _, link := range ExplainLinks(word) {
		b.WriteString("- " + link + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

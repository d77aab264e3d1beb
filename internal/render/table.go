// Package render formats search results for the terminal.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

// splitColumns deals words into n columns top to bottom, giving the
// leftover words to the leftmost columns.
func splitColumns(words []string, n int) [][]string {
	if n <= 0 {
		n = 1
	}
	if n > len(words) {
		n = len(words)
	}
	k, m := len(words)/n, len(words)%n
	columns := make([][]string, 0, n)
	cur := 0
	for i := 0; i < n; i++ {
		size := k
		if i < m {
			size++
		}
		columns = append(columns, words[cur:cur+size])
		cur += size
	}
	return columns
}

// columnWidths returns each column's widest word plus a two-space gutter.
func columnWidths(columns [][]string) []int {
	widths := make([]int, len(columns))
	for i, col := range columns {
		for _, word := range col {
			if w := displayWidth(word); w > widths[i] {
				widths[i] = w
			}
		}
		widths[i] += 2
	}
	return widths
}

// fitColumns lowers the column count until the table fits maxWidth.
func fitColumns(words []string, n, maxWidth int) int {
	if maxWidth <= 0 {
		return n
	}
	for ; n > 1; n-- {
		total := 0
		for _, w := range columnWidths(splitColumns(words, n)) {
			total += w
		}
		if total <= maxWidth {
			return n
		}
	}
	return 1
}

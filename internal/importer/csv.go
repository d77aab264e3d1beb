package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/wordlist"
)

const (
	// DefaultCSVScore is the score given to every word of a CSV import.
	DefaultCSVScore = 75
	// DefaultVariantsHeader names the column of alternate spellings.
	DefaultVariantsHeader = "Variants"
)

// CSV reads a headed spreadsheet export. The first column holds the word.
// variants selects a column of comma-separated alternate spellings, emitted
// with the same score: a header name matched case-insensitively, or a
// zero-based column number. An empty or unmatched selector imports no
// variants.
func CSV(r io.Reader, score int, variants string) ([]model.ScoredWord, error) {
	reader := newReader(r)
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	variantsColumn := columnIndex(header, variants)

	var entries []model.ScoredWord
	seen := map[string]struct{}{}
	emit := func(word string) {
		word = wordlist.Normalize(strings.TrimSpace(word))
		if word == "" {
			return
		}
		if _, ok := seen[word]; ok {
			return
		}
		seen[word] = struct{}{}
		entries = append(entries, model.ScoredWord{Word: word, Score: score})
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}
		if len(record) == 0 || strings.TrimSpace(record[0]) == "" {
			continue
		}
		emit(record[0])
		if variantsColumn >= 0 && variantsColumn < len(record) {
			for _, variant := range strings.Split(record[variantsColumn], ",") {
				emit(variant)
			}
		}
	}
	return entries, nil
}

// Grid reads a spreadsheet where each column is a scored word group. The
// first row holds notes, the second the column scores, and every later row
// the words.
func Grid(r io.Reader) ([]model.ScoredWord, error) {
	records, err := newReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	scores := records[1]
	var entries []model.ScoredWord
	for row, record := range records[2:] {
		for col, cell := range record {
			word := strings.TrimSpace(cell)
			if word == "" || col >= len(scores) {
				continue
			}
			raw := strings.TrimSpace(scores[col])
			if raw == "" {
				continue
			}
			score, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid score %q in column %d (row %d): %w", raw, col+1, row+3, err)
			}
			entries = append(entries, model.ScoredWord{Word: wordlist.Normalize(word), Score: score})
		}
	}
	return entries, nil
}

func columnIndex(header []string, selector string) int {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return -1
	}
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), selector) {
			return i
		}
	}
	if col, err := strconv.Atoi(selector); err == nil && col >= 0 {
		return col
	}
	return -1
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	return reader
}

package render

import (
	"reflect"
	"testing"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"List", "Words", "Mean"}
	rows := [][]string{
		{"a.txt", "1200", "51.5"},
		{"broda_full.txt", "8", "7.0"},
	}
	rightAlign := map[int]bool{1: true, 2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "List           Words Mean" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "a.txt           1200 51.5" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "broda_full.txt     8  7.0" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestSplitColumns(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f", "g"}
	got := splitColumns(words, 3)
	want := [][]string{{"a", "b", "c"}, {"d", "e"}, {"f", "g"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected columns: %v", got)
	}
	if got := splitColumns(words[:2], 4); len(got) != 2 {
		t.Fatalf("expected column count capped at word count, got %d", len(got))
	}
}

func TestFitColumns(t *testing.T) {
	words := []string{"aaaaaaaa", "bbbbbbbb", "cccccccc", "dddddddd"}
	if got := fitColumns(words, 4, 0); got != 4 {
		t.Fatalf("expected unbounded width to keep 4 columns, got %d", got)
	}
	if got := fitColumns(words, 4, 25); got != 2 {
		t.Fatalf("expected 2 columns to fit 25 cells, got %d", got)
	}
	if got := fitColumns(words, 4, 3); got != 1 {
		t.Fatalf("expected minimum of 1 column, got %d", got)
	}
}

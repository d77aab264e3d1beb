package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/verte-zerg/xword/internal/model"
)

func plainRenderer() *Renderer {
	cfg := model.DefaultDisplayConfig()
	cfg.Color = false
	return New(cfg)
}

func TestExactMarksWinnerLast(t *testing.T) {
	var buf bytes.Buffer
	r := plainRenderer()
	matches := []model.Match{{Score: 50, List: "a.txt"}, {Score: 7, List: "b.txt"}}
	if err := r.Exact(&buf, "cat", matches, true); err != nil {
		t.Fatalf("Exact failed: %v", err)
	}
	want := "cat (3)\n50: a.txt\n 7: b.txt\n"
	if buf.String() != want {
		t.Fatalf("unexpected exact output: %q", buf.String())
	}
}

func TestExactMissing(t *testing.T) {
	var buf bytes.Buffer
	if err := plainRenderer().Exact(&buf, "zzz", nil, false); err != nil {
		t.Fatalf("Exact failed: %v", err)
	}
	if buf.String() != "zzz (3)\n" {
		t.Fatalf("unexpected exact output: %q", buf.String())
	}
}

func TestSearchSmallResultPrintsScores(t *testing.T) {
	var buf bytes.Buffer
	matches := map[string]int{"scatter": 60, "category": 50}
	if err := plainRenderer().Search(&buf, "with cat as substring", "cat", matches, 40); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	want := "\n-------\n50 category (8)\n60 scatter (7)\n"
	if buf.String() != want {
		t.Fatalf("unexpected search output: %q", buf.String())
	}
}

func TestSearchMediumResultPrintsTable(t *testing.T) {
	var buf bytes.Buffer
	matches := map[string]int{}
	for i := 0; i < 12; i++ {
		matches[fmt.Sprintf("cat%02d", i)] = 50
	}
	if err := plainRenderer().Search(&buf, "with cat as substring", "cat", matches, 40); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "& found 12 other words with cat as substring (40+):") {
		t.Fatalf("missing table header: %q", out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header plus 3 table rows, got %d: %q", len(lines), out)
	}
	if lines[1] != "cat00  cat03  cat06  cat09" {
		t.Fatalf("unexpected first table row: %q", lines[1])
	}
}

func TestSearchLargeResultPrintsCount(t *testing.T) {
	var buf bytes.Buffer
	cfg := model.DefaultDisplayConfig()
	cfg.Color = false
	cfg.TableLimit = 1
	cfg.CountLimit = 2
	matches := map[string]int{"a": 50, "b": 50, "c": 50}
	if err := New(cfg).Search(&buf, "matching .", "", matches, 40); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if buf.String() != "\n& found 3 other words matching . (40+)\n" {
		t.Fatalf("unexpected count output: %q", buf.String())
	}
}

func TestSearchEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := plainRenderer().Search(&buf, "", "", nil, 40); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if buf.String() != "\n" {
		t.Fatalf("expected a blank line, got %q", buf.String())
	}
}

func TestSandwichSkipsEmptyGroups(t *testing.T) {
	var buf bytes.Buffer
	groups := []model.SandwichGroup{
		{Prefix: "a", Suffix: "bc", Words: []model.ScoredWord{{Word: "aqbc", Score: 50}}},
		{Prefix: "ab", Suffix: "c"},
	}
	if err := plainRenderer().Sandwich(&buf, groups); err != nil {
		t.Fatalf("Sandwich failed: %v", err)
	}
	want := "a…bc (1)\naqbc\n\n"
	if buf.String() != want {
		t.Fatalf("unexpected sandwich output: %q", buf.String())
	}
}

func TestExplainLinks(t *testing.T) {
	links := ExplainLinks("ice cream")
	if len(links) != 5 {
		t.Fatalf("expected 5 links, got %d", len(links))
	}
	if links[0] != "https://www.google.com/search?q=ice+cream" {
		t.Fatalf("unexpected google link: %s", links[0])
	}
}

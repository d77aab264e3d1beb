package wordlist

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/verte-zerg/xword/internal/model"
)

func writeList(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func loadStore(t *testing.T, opts Options, paths ...string) *Store {
	t.Helper()
	st := New(opts)
	if err := st.LoadPaths(paths); err != nil {
		t.Fatalf("LoadPaths failed: %v", err)
	}
	return st
}

func TestLoadPathFile(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "main.txt", "Fire Fly;50\ncat;80;a note;more\ncat;70\n")

	st := loadStore(t, Options{}, path)
	if got := st.Names(); !reflect.DeepEqual(got, []string{"main.txt"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	entries, ok := st.Entries("main.txt")
	if !ok {
		t.Fatalf("expected main.txt entries")
	}
	want := map[string]int{"firefly": 50, "cat": 70}
	if !reflect.DeepEqual(entries, want) {
		t.Fatalf("unexpected entries: %v", entries)
	}
}

func TestLoadPathDirectoryIsOneLevel(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "b.txt", "bee;50\n")
	writeList(t, dir, "a.txt", "ant;50\n")
	sub := filepath.Join(dir, "nested")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeList(t, sub, "c.txt", "cow;50\n")

	st := loadStore(t, Options{}, dir)
	if got := st.Names(); !reflect.DeepEqual(got, []string{"a.txt", "b.txt"}) {
		t.Fatalf("unexpected names: %v", got)
	}
	if st.Contains("cow", 0) {
		t.Fatalf("expected nested directory to be skipped")
	}
}

func TestLoadPathMissing(t *testing.T) {
	st := New(Options{})
	err := st.LoadPath(filepath.Join(t.TempDir(), "nope.txt"))
	if !errors.Is(err, ErrPathNotFound) {
		t.Fatalf("expected ErrPathNotFound, got %v", err)
	}
}

func TestParseSkipsMalformedLines(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	input := "good;50\n\njustaword\nbad;score\nalso good ; 60 \n"

	result, err := Parse("test.txt", strings.NewReader(input), logger)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if result.Skipped != 3 {
		t.Fatalf("expected 3 skipped lines, got %d", result.Skipped)
	}
	want := map[string]int{"good": 50, "alsogood": 60}
	if !reflect.DeepEqual(result.Words, want) {
		t.Fatalf("unexpected words: %v", result.Words)
	}
	out := logs.String()
	for _, needle := range []string{"invalid wordlist line", "invalid wordlist score", "file=test.txt", "line=3", "content=justaword"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("expected %q in diagnostics: %s", needle, out)
		}
	}
}

func TestLoadPathsSortsByName(t *testing.T) {
	dir := t.TempDir()
	c := writeList(t, dir, "c.txt", "word;10\n")
	a := writeList(t, dir, "a.txt", "word;20\n")
	b := writeList(t, dir, "b.txt", "word;30\n")

	st := loadStore(t, Options{}, c, a, b)
	if got := st.Names(); !reflect.DeepEqual(got, []string{"a.txt", "b.txt", "c.txt"}) {
		t.Fatalf("unexpected precedence order: %v", got)
	}
}

func TestBaselineSortsFirst(t *testing.T) {
	dir := t.TempDir()
	writeList(t, dir, "00_main.txt", "word;10\n")
	writeList(t, dir, "zz_base.txt", "word;20\n")
	writeList(t, dir, "50_extra.txt", "word;30\n")

	st := loadStore(t, Options{Baseline: BaselineName("zz_base.txt")}, dir)
	want := []string{"zz_base.txt", "00_main.txt", "50_extra.txt"}
	if got := st.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected precedence order: %v", got)
	}
}

func TestReloadSameNameReplaces(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeList(t, first, "list.txt", "old;50\n")
	writeList(t, second, "list.txt", "new;60\n")

	st := loadStore(t, Options{}, first, second)
	if got := st.Names(); !reflect.DeepEqual(got, []string{"list.txt"}) {
		t.Fatalf("expected a single list.txt, got %v", got)
	}
	if st.Contains("old", 0) {
		t.Fatalf("expected earlier data to be replaced")
	}
	if !st.Contains("new", 0) {
		t.Fatalf("expected later data to be loaded")
	}
}

func TestIgnore(t *testing.T) {
	st := New(Options{})
	st.Add("a.txt", map[string]int{"cat": 50})
	st.Add("b.txt", map[string]int{"cat": 70})

	if !st.Ignore("b.txt") {
		t.Fatalf("expected b.txt to be ignored")
	}
	if st.Ignore("b.txt") {
		t.Fatalf("expected second ignore to report false")
	}
	got := st.MatchExact("cat")
	want := []model.Match{{Score: 50, List: "a.txt"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected matches after ignore: %v", got)
	}
	if _, ok := st.Entries("b.txt"); !ok {
		t.Fatalf("expected ignored list data to remain loaded")
	}
}

func TestMatchExactOrder(t *testing.T) {
	st := New(Options{})
	st.Add("zeta.txt", map[string]int{"cat": 30})
	st.Add("alpha.txt", map[string]int{"cat": 90})
	st.Add("mid.txt", map[string]int{"dog": 50})

	got := st.MatchExact("CAT")
	want := []model.Match{{Score: 90, List: "alpha.txt"}, {Score: 30, List: "zeta.txt"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected matches: %v", got)
	}
	if got := st.MatchExact("cow"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestSearchSubstringExcludesQuery(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{"cat": 80, "category": 50, "scatter": 60, "catnap": 20})

	got := st.SearchSubstring("cat", DefaultMinScore)
	want := map[string]int{"category": 50, "scatter": 60}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected substring matches: %v", got)
	}
}

func TestSearchRegexFullWord(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{"cat": 50, "category": 50})

	got, err := st.SearchRegex("cat", DefaultMinScore)
	if err != nil {
		t.Fatalf("SearchRegex failed: %v", err)
	}
	if !reflect.DeepEqual(got, map[string]int{"cat": 50}) {
		t.Fatalf("unexpected regex matches: %v", got)
	}

	if _, err := st.SearchRegex("[", DefaultMinScore); !errors.Is(err, ErrInvalidPattern) {
		t.Fatalf("expected ErrInvalidPattern, got %v", err)
	}
}

func TestSearchRangeBounds(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{"aaa": 10, "bbb": 40, "ccc": 41, "ddd": 90})

	got, err := st.SearchRegexRange("...", 10, 40)
	if err != nil {
		t.Fatalf("SearchRegexRange failed: %v", err)
	}
	want := map[string]int{"aaa": 10, "bbb": 40}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected range matches: %v", got)
	}
}

func TestSearchReportsHighestQualifyingList(t *testing.T) {
	st := New(Options{})
	st.Add("a.txt", map[string]int{"word": 60, "both": 50})
	st.Add("b.txt", map[string]int{"word": 30, "both": 70})

	got := st.Search(func(string) bool { return true }, DefaultMinScore)
	want := map[string]int{"word": 60, "both": 70}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected search scores: %v", got)
	}
}

func TestScore(t *testing.T) {
	st := New(Options{})
	st.Add("a.txt", map[string]int{"best": 40, "zero": 0, "mixed": 0, "low": 10})
	st.Add("b.txt", map[string]int{"best": 70, "mixed": 80})

	cases := []struct {
		word      string
		min       int
		wantFound bool
		wantScore int
	}{
		{word: "best", min: 0, wantFound: true, wantScore: 70},
		{word: "best", min: 80, wantFound: false, wantScore: 0},
		{word: "zero", min: 0, wantFound: false, wantScore: 0},
		{word: "mixed", min: 0, wantFound: false, wantScore: 0},
		{word: "low", min: 40, wantFound: false, wantScore: 0},
		{word: "missing", min: 0, wantFound: false, wantScore: 0},
	}
	for _, tc := range cases {
		found, score := st.Score(tc.word, tc.min)
		if found != tc.wantFound || score != tc.wantScore {
			t.Fatalf("Score(%q, %d) = (%v, %d), want (%v, %d)", tc.word, tc.min, found, score, tc.wantFound, tc.wantScore)
		}
		if st.Contains(tc.word, tc.min) != tc.wantFound {
			t.Fatalf("Contains(%q, %d) disagrees with Score", tc.word, tc.min)
		}
	}
}

func TestQuerySandwichDedupes(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{
		"abxbc":  50,
		"aqbc":   50,
		"abzzc":  50,
		"abcabc": 50,
		"abc":    50,
		"axxc":   50,
	})

	groups, err := st.QuerySandwich("abc", DefaultMinScore)
	if err != nil {
		t.Fatalf("QuerySandwich failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].Prefix != "a" || groups[0].Suffix != "bc" || groups[1].Prefix != "ab" || groups[1].Suffix != "c" {
		t.Fatalf("unexpected group labels: %+v", groups)
	}

	first := groupWords(groups[0])
	second := groupWords(groups[1])
	if !reflect.DeepEqual(first, []string{"aqbc", "abxbc"}) {
		t.Fatalf("unexpected first group: %v", first)
	}
	if !reflect.DeepEqual(second, []string{"abzzc"}) {
		t.Fatalf("unexpected second group: %v", second)
	}

	seen := map[string]bool{}
	for _, g := range groups {
		for _, w := range g.Words {
			if seen[w.Word] {
				t.Fatalf("word %q reported twice", w.Word)
			}
			if strings.Contains(w.Word, "abc") {
				t.Fatalf("word %q contains the query", w.Word)
			}
			seen[w.Word] = true
		}
	}
}

func TestQuerySandwichQuotesLetters(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{"a.xb": 50, "azzb": 50})

	groups, err := st.QuerySandwich("a.b", 0)
	if err != nil {
		t.Fatalf("QuerySandwich failed: %v", err)
	}
	for _, g := range groups {
		for _, w := range g.Words {
			if w.Word == "azzb" {
				t.Fatalf("expected query letters to be matched literally")
			}
		}
	}
}

func TestQueryEndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeList(t, dir, "list.txt", "cat;80\ncategory;50\nscatter;60\n")
	st := loadStore(t, Options{}, path)

	result := st.Query("Cat", DefaultMinScore)
	if !result.Found() {
		t.Fatalf("expected cat to be found")
	}
	wantExact := []model.Match{{Score: 80, List: "list.txt"}}
	if !reflect.DeepEqual(result.Exact, wantExact) {
		t.Fatalf("unexpected exact matches: %v", result.Exact)
	}
	wantRelated := map[string]int{"category": 50, "scatter": 60}
	if !reflect.DeepEqual(result.Related, wantRelated) {
		t.Fatalf("unexpected related words: %v", result.Related)
	}
}

func TestQueryRegexOrdering(t *testing.T) {
	st := New(Options{})
	st.Add("list.txt", map[string]int{"bat": 60, "cat": 50, "hat": 50, "rat": 10})

	got, err := st.QueryRegex(".at", DefaultMinScore)
	if err != nil {
		t.Fatalf("QueryRegex failed: %v", err)
	}
	want := []model.ScoredWord{{Word: "cat", Score: 50}, {Word: "hat", Score: 50}, {Word: "bat", Score: 60}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected ordering: %v", got)
	}
}

func groupWords(g model.SandwichGroup) []string {
	out := make([]string, 0, len(g.Words))
	for _, w := range g.Words {
		out = append(out, w.Word)
	}
	return out
}

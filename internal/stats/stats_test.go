package stats

import (
	"reflect"
	"testing"
)

type fakeSource struct {
	names []string
	data  map[string]map[string]int
}

func (f fakeSource) Names() []string { return f.names }

func (f fakeSource) Entries(name string) (map[string]int, bool) {
	entries, ok := f.data[name]
	return entries, ok
}

func TestSummarize(t *testing.T) {
	s := Summarize("list.txt", map[string]int{"a": 0, "b": 45, "c": 50, "d": 100, "e": -5})
	if s.Count != 5 || s.Min != -5 || s.Max != 100 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if s.Mean != 38 {
		t.Fatalf("expected mean 38, got %f", s.Mean)
	}
	want := []int{2, 0, 0, 0, 1, 1, 0, 0, 0, 1}
	if !reflect.DeepEqual(s.Buckets, want) {
		t.Fatalf("unexpected buckets: %v", s.Buckets)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize("empty.txt", nil)
	if s.Count != 0 || len(s.Buckets) != BucketCount {
		t.Fatalf("unexpected empty summary: %+v", s)
	}
}

func TestSummarizeAllKeepsOrder(t *testing.T) {
	src := fakeSource{
		names: []string{"a.txt", "gone.txt", "b.txt"},
		data: map[string]map[string]int{
			"a.txt": {"x": 10},
			"b.txt": {"y": 20, "z": 30},
		},
	}
	got := SummarizeAll(src)
	if len(got) != 2 || got[0].Name != "a.txt" || got[1].Name != "b.txt" {
		t.Fatalf("unexpected summaries: %+v", got)
	}
	if got[1].Count != 2 {
		t.Fatalf("expected 2 entries in b.txt, got %d", got[1].Count)
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Histogram([]int{3, 3, 3}); got != "+++" {
		t.Fatalf("expected flat histogram, got %q", got)
	}
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
}

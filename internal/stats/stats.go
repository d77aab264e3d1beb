// Package stats contains per-list score statistics.
package stats

import (
	"math"
	"strings"

	"github.com/verte-zerg/xword/internal/model"
)

const sparkChars = " .:-=+*#%@"

// BucketCount is the number of score buckets in a summary.
const BucketCount = 10

// Source exposes the loaded lists in precedence order.
type Source interface {
	Names() []string
	Entries(name string) (map[string]int, bool)
}

// Summarize computes counts, range, mean and a score histogram for one list.
// Scores are bucketed by tens; anything at or above 90 lands in the last
// bucket and negative scores in the first.
func Summarize(name string, entries map[string]int) model.ListSummary {
	summary := model.ListSummary{Name: name, Buckets: make([]int, BucketCount)}
	if len(entries) == 0 {
		return summary
	}
	first := true
	total := 0
	for _, score := range entries {
		if first || score < summary.Min {
			summary.Min = score
		}
		if first || score > summary.Max {
			summary.Max = score
		}
		first = false
		total += score
		summary.Buckets[bucketFor(score)]++
	}
	summary.Count = len(entries)
	summary.Mean = float64(total) / float64(summary.Count)
	return summary
}

// SummarizeAll summarizes every active list, highest precedence last.
func SummarizeAll(src Source) []model.ListSummary {
	names := src.Names()
	out := make([]model.ListSummary, 0, len(names))
	for _, name := range names {
		entries, ok := src.Entries(name)
		if !ok {
			continue
		}
		out = append(out, Summarize(name, entries))
	}
	return out
}

func bucketFor(score int) int {
	idx := score / 10
	if idx < 0 {
		return 0
	}
	if idx >= BucketCount {
		return BucketCount - 1
	}
	return idx
}

// Histogram renders bucket counts as a sparkline.
func Histogram(buckets []int) string {
	values := make([]float64, len(buckets))
	for i, b := range buckets {
		values[i] = float64(b)
	}
	return Sparkline(values)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

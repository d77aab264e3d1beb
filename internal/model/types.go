// Package model defines shared data structures.
package model

// Match is one list's score for an exact word.
type Match struct {
	Score int
	List  string
}

// ScoredWord pairs a normalized word with a score.
type ScoredWord struct {
	Word  string
	Score int
}

// QueryResult combines an exact lookup with a substring search.
type QueryResult struct {
	Word    string
	Exact   []Match
	Related map[string]int
}

// Found reports whether the exact lookup matched any list.
func (r QueryResult) Found() bool {
	return len(r.Exact) > 0
}

// SandwichGroup holds the words found around one split of a sandwich query.
type SandwichGroup struct {
	Prefix string
	Suffix string
	Words  []ScoredWord
}

// ListSummary describes one loaded word list.
type ListSummary struct {
	Name    string
	Count   int
	Min     int
	Max     int
	Mean    float64
	Buckets []int
}

// SearchConfig defines defaults for search commands.
type SearchConfig struct {
	MinScore int
	Baseline string
	Ignore   []string
}

// DisplayConfig defines how results are presented.
type DisplayConfig struct {
	TableLimit int
	CountLimit int
	Columns    int
	Color      bool
	Colors     Palette
}

// Palette maps semantic roles to lipgloss color strings.
type Palette struct {
	Found     string
	Missing   string
	Muted     string
	Highlight string
	Prompt    string
}

// DefaultDisplayConfig mirrors the thresholds the shell has always used.
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		TableLimit: 10,
		CountLimit: 200,
		Columns:    4,
		Color:      true,
		Colors: Palette{
			Found:     "6",
			Missing:   "9",
			Muted:     "14",
			Highlight: "3",
			Prompt:    "4",
		},
	}
}

package wordlist

import (
	"cmp"
	"math"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/verte-zerg/xword/internal/model"
)

// DefaultMinScore is the threshold interactive searches use.
const DefaultMinScore = 40

// MatchExact returns every list containing word, highest precedence last.
func (s *Store) MatchExact(word string) []model.Match {
	word = Normalize(word)
	var results []model.Match
	for _, name := range s.filelist {
		if score, ok := s.data[name][word]; ok {
			results = append(results, model.Match{Score: score, List: name})
		}
	}
	return results
}

// Search scans every list for words accepted by pred scoring at least
// minScore.
func (s *Store) Search(pred Predicate, minScore int) map[string]int {
	return s.SearchRange(pred, minScore, math.MaxInt)
}

// SearchRange is Search with an inclusive upper score bound.
//
// Lists are scanned in precedence order and each qualifying entry
// overwrites the result, so a word reports the score from the highest
// precedence list in which it qualifies. A non-qualifying entry in a later
// list does not displace an earlier qualifying one.
func (s *Store) SearchRange(pred Predicate, minScore, maxScore int) map[string]int {
	matches := map[string]int{}
	for _, name := range s.filelist {
		for word, score := range s.data[name] {
			if score < minScore || score > maxScore {
				continue
			}
			if pred(word) {
				matches[word] = score
			}
		}
	}
	return matches
}

// SearchSubstring finds words containing word, excluding word itself.
func (s *Store) SearchSubstring(word string, minScore int) map[string]int {
	word = Normalize(word)
	matches := s.Search(SubstringPredicate(word), minScore)
	delete(matches, word)
	return matches
}

// SearchRegex finds words fully matching pattern.
func (s *Store) SearchRegex(pattern string, minScore int) (map[string]int, error) {
	return s.SearchRegexRange(pattern, minScore, math.MaxInt)
}

// SearchRegexRange is SearchRegex with an inclusive upper score bound.
func (s *Store) SearchRegexRange(pattern string, minScore, maxScore int) (map[string]int, error) {
	pred, err := RegexPredicate(pattern)
	if err != nil {
		return nil, err
	}
	return s.SearchRange(pred, minScore, maxScore), nil
}

// Score reports whether word exists with at least minScore, and its best
// score across lists. A zero score anywhere marks the word as disqualified.
func (s *Store) Score(word string, minScore int) (bool, int) {
	word = Normalize(word)
	found := false
	best := 0
	for _, name := range s.filelist {
		score, ok := s.data[name][word]
		if !ok {
			continue
		}
		if score == 0 {
			return false, 0
		}
		if score < minScore {
			continue
		}
		if !found || score > best {
			best = score
		}
		found = true
	}
	return found, best
}

// Contains reports whether word exists with at least minScore.
func (s *Store) Contains(word string, minScore int) bool {
	found, _ := s.Score(word, minScore)
	return found
}

// Query runs an exact lookup and a substring search for word.
func (s *Store) Query(word string, minScore int) model.QueryResult {
	word = Normalize(word)
	return model.QueryResult{
		Word:    word,
		Exact:   s.MatchExact(word),
		Related: s.SearchSubstring(word, minScore),
	}
}

// QueryRegex runs a regex search and orders results by score, then word.
func (s *Store) QueryRegex(pattern string, minScore int) ([]model.ScoredWord, error) {
	matches, err := s.SearchRegex(pattern, minScore)
	if err != nil {
		return nil, err
	}
	return SortByScore(matches), nil
}

// QuerySandwich finds words that wrap extra letters around every split of
// word. A word is reported at the first split it matches only, and words
// containing the query itself are skipped.
func (s *Store) QuerySandwich(word string, minScore int) ([]model.SandwichGroup, error) {
	word = Normalize(word)
	runes := []rune(word)
	if len(runes) < 2 {
		return nil, nil
	}

	seen := map[string]struct{}{}
	groups := make([]model.SandwichGroup, 0, len(runes)-1)
	for i := 1; i < len(runes); i++ {
		prefix := string(runes[:i])
		suffix := string(runes[i:])
		pattern := regexp.QuoteMeta(prefix) + ".+" + regexp.QuoteMeta(suffix)
		matches, err := s.SearchRegex(pattern, minScore)
		if err != nil {
			return nil, err
		}

		group := model.SandwichGroup{Prefix: prefix, Suffix: suffix}
		for match, score := range matches {
			if strings.Contains(match, word) {
				continue
			}
			if _, ok := seen[match]; ok {
				continue
			}
			group.Words = append(group.Words, model.ScoredWord{Word: match, Score: score})
		}
		for _, sw := range group.Words {
			seen[sw.Word] = struct{}{}
		}
		SortByLength(group.Words)
		groups = append(groups, group)
	}
	return groups, nil
}

// SortByScore flattens matches ordered by score, then word.
func SortByScore(matches map[string]int) []model.ScoredWord {
	out := make([]model.ScoredWord, 0, len(matches))
	for word, score := range matches {
		out = append(out, model.ScoredWord{Word: word, Score: score})
	}
	slices.SortFunc(out, func(a, b model.ScoredWord) int {
		if c := cmp.Compare(a.Score, b.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	return out
}

// SortByLength orders words by rune length, then alphabetically.
func SortByLength(words []model.ScoredWord) {
	slices.SortFunc(words, func(a, b model.ScoredWord) int {
		if c := cmp.Compare(utf8.RuneCountInString(a.Word), utf8.RuneCountInString(b.Word)); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
}

// Words returns the keys of matches in sorted order.
func Words(matches map[string]int) []string {
	out := make([]string, 0, len(matches))
	for word := range matches {
		out = append(out, word)
	}
	slices.Sort(out)
	return out
}

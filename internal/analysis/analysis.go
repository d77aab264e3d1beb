// Package analysis runs word-game searches over loaded word lists.
package analysis

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"

	"github.com/verte-zerg/xword/internal/wordlist"
)

// Lexicon is the part of the word list store analyses depend on.
type Lexicon interface {
	Search(pred wordlist.Predicate, minScore int) map[string]int
	SearchRegex(pattern string, minScore int) (map[string]int, error)
	SearchRegexRange(pattern string, minScore, maxScore int) (map[string]int, error)
	Score(word string, minScore int) (bool, int)
	Contains(word string, minScore int) bool
}

// Pair links a word to the word it transforms into.
type Pair struct {
	Word    string
	Partner string
}

// Combination is a word built from the tails of two prefixed words.
type Combination struct {
	Left  string
	Right string
	Word  string
	Score int
}

// LetterGroup holds words sharing a first letter.
type LetterGroup struct {
	Letter rune
	Words  []string
}

// commonEndings are inflections rather than words, so they never count as
// a tail in Combine.
var commonEndings = map[string]struct{}{
	"ing": {}, "ings": {}, "son": {}, "ness": {}, "edon": {}, "ingon": {}, "sof": {},
	"ish": {}, "est": {}, "ingup": {}, "iest": {}, "edup": {}, "ies": {}, "sup": {},
	"ier": {},
}

var upsideDown = map[rune]rune{
	's': 's', 'i': 'i', 'o': 'o', 'n': 'n', 'x': 'x', 'z': 'z', 'h': 'h',
	'm': 'w', 'w': 'm',
}

// MatchingHalves finds words made of the same half twice, like "yadayada".
func MatchingHalves(lex Lexicon, minScore int) []string {
	matches := lex.Search(func(word string) bool {
		first, last := halves(word)
		return first != "" && first == last
	}, minScore)
	return byLength(wordlist.Words(matches))
}

// NearHalves finds words whose halves differ by a single edit, like
// "dillydally". Only words of at least minLen runes are considered.
func NearHalves(lex Lexicon, minScore, minLen int) []string {
	matches := lex.Search(func(word string) bool {
		if utf8.RuneCountInString(word) < minLen {
			return false
		}
		first, last := halves(word)
		return edlib.LevenshteinDistance(first, last) == 1
	}, minScore)
	return byLength(wordlist.Words(matches))
}

// LetterSwap finds words that stay words when every from is replaced by to.
func LetterSwap(lex Lexicon, from, to string, minScore int) []Pair {
	from, to = wordlist.Normalize(from), wordlist.Normalize(to)
	if from == "" {
		return nil
	}
	matches := lex.Search(func(word string) bool {
		if !strings.Contains(word, from) {
			return false
		}
		return lex.Contains(strings.ReplaceAll(word, from, to), 0)
	}, minScore)
	return pairsByLength(matches, func(word string) string {
		return strings.ReplaceAll(word, from, to)
	})
}

// UpsideDown finds words that read as another word when rotated half a turn.
func UpsideDown(lex Lexicon, minScore int) []Pair {
	matches := lex.Search(func(word string) bool {
		if utf8.RuneCountInString(word) < 4 {
			return false
		}
		rotated := rotate(word)
		return rotated != "" && lex.Contains(rotated, minScore)
	}, minScore)
	return pairsByLength(matches, rotate)
}

func rotate(word string) string {
	runes := []rune(word)
	out := make([]rune, len(runes))
	for i, r := range runes {
		flipped, ok := upsideDown[r]
		if !ok {
			return ""
		}
		out[len(runes)-1-i] = flipped
	}
	return string(out)
}

// Combine joins the tails of words starting with left and right, keeping
// joins that are words scoring above threshold.
func Combine(lex Lexicon, left, right string, minScore, threshold int) ([]Combination, error) {
	left, right = wordlist.Normalize(left), wordlist.Normalize(right)
	leftTails, err := tails(lex, left, minScore)
	if err != nil {
		return nil, err
	}
	rightTails, err := tails(lex, right, minScore)
	if err != nil {
		return nil, err
	}

	var out []Combination
	for _, l := range leftTails {
		for _, r := range rightTails {
			if isCommonEnding(l) || isCommonEnding(r) {
				continue
			}
			word := l + r
			found, score := lex.Score(word, 0)
			if found && score > threshold {
				out = append(out, Combination{Left: l, Right: r, Word: word, Score: score})
			}
		}
	}
	slices.SortFunc(out, func(a, b Combination) int {
		return compareLength(a.Word, b.Word)
	})
	return out, nil
}

func tails(lex Lexicon, prefix string, minScore int) ([]string, error) {
	matches, err := lex.SearchRegex(regexp.QuoteMeta(prefix)+".+", minScore)
	if err != nil {
		return nil, err
	}
	prefixLen := len(prefix)
	var out []string
	for _, word := range wordlist.Words(matches) {
		if len(word) > prefixLen+2 {
			out = append(out, word[prefixLen:])
		}
	}
	return out, nil
}

func isCommonEnding(tail string) bool {
	_, ok := commonEndings[tail]
	return ok
}

// Infix finds words that remain words once target is removed from inside
// them, like "beast" without "as" giving "bet".
func Infix(lex Lexicon, target string) ([]Pair, error) {
	target = wordlist.Normalize(target)
	quoted := regexp.QuoteMeta(target)
	matches, err := lex.SearchRegex(".+"+quoted+".+", 0)
	if err != nil {
		return nil, err
	}
	var out []Pair
	for _, word := range wordlist.Words(matches) {
		remainder := strings.ReplaceAll(word, target, "")
		if lex.Contains(remainder, 0) {
			out = append(out, Pair{Word: word, Partner: remainder})
		}
	}
	return out, nil
}

// PrefixSwap finds words starting with from that stay words with to in
// its place, like "hotdog" and "sourdog".
func PrefixSwap(lex Lexicon, from, to string) ([]Pair, error) {
	from, to = wordlist.Normalize(from), wordlist.Normalize(to)
	matches, err := lex.SearchRegex(regexp.QuoteMeta(from)+".*", 0)
	if err != nil {
		return nil, err
	}
	var out []Pair
	for _, word := range wordlist.Words(matches) {
		swapped := to + strings.TrimPrefix(word, from)
		if lex.Contains(swapped, 0) {
			out = append(out, Pair{Word: word, Partner: swapped})
		}
	}
	return out, nil
}

// ContainsWord lists every word with target somewhere inside it.
func ContainsWord(lex Lexicon, target string) ([]string, error) {
	target = wordlist.Normalize(target)
	matches, err := lex.SearchRegex(".*"+regexp.QuoteMeta(target)+".*", 0)
	if err != nil {
		return nil, err
	}
	return wordlist.Words(matches), nil
}

// ShortWords groups words of exactly length runes scoring within
// [minScore, maxScore] by first letter, a to z.
func ShortWords(lex Lexicon, length, minScore, maxScore int) ([]LetterGroup, error) {
	if length <= 0 {
		return nil, nil
	}
	matches, err := lex.SearchRegexRange(strings.Repeat(".", length), minScore, maxScore)
	if err != nil {
		return nil, err
	}
	byLetter := map[rune][]string{}
	for _, word := range wordlist.Words(matches) {
		first, _ := utf8.DecodeRuneInString(word)
		if first < 'a' || first > 'z' {
			continue
		}
		byLetter[first] = append(byLetter[first], word)
	}
	var out []LetterGroup
	for letter := 'a'; letter <= 'z'; letter++ {
		if words, ok := byLetter[letter]; ok {
			out = append(out, LetterGroup{Letter: letter, Words: words})
		}
	}
	return out, nil
}

func halves(word string) (string, string) {
	runes := []rune(word)
	mid := len(runes) / 2
	return string(runes[:mid]), string(runes[mid:])
}

func compareLength(a, b string) int {
	if c := cmp.Compare(utf8.RuneCountInString(a), utf8.RuneCountInString(b)); c != 0 {
		return c
	}
	return strings.Compare(a, b)
}

func byLength(words []string) []string {
	slices.SortStableFunc(words, compareLength)
	return words
}

func pairsByLength(matches map[string]int, partner func(string) string) []Pair {
	words := byLength(wordlist.Words(matches))
	out := make([]Pair, 0, len(words))
	for _, word := range words {
		out = append(out, Pair{Word: word, Partner: partner(word)})
	}
	return out
}

// Package wordlist provides word list filtering helpers.
package wordlist

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidPattern is returned when a search pattern fails to compile.
var ErrInvalidPattern = errors.New("invalid pattern")

// Predicate returns true when a word should be kept.
type Predicate func(string) bool

// Normalize lowercases a word and strips spaces.
func Normalize(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), " ", "")
}

// SubstringPredicate keeps words containing needle.
func SubstringPredicate(needle string) Predicate {
	return func(word string) bool {
		return strings.Contains(word, needle)
	}
}

// RegexPredicate compiles pattern for whole-word matching. Partial matches
// must be spelled out with leading or trailing wildcards in the pattern.
func RegexPredicate(pattern string) (Predicate, error) {
	re, err := compileFull(pattern)
	if err != nil {
		return nil, err
	}
	return re.MatchString, nil
}

func compileFull(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		// Compile the raw pattern so the error names what the caller typed.
		if _, rawErr := regexp.Compile(pattern); rawErr != nil {
			err = rawErr
		}
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidPattern, pattern, err)
	}
	return re, nil
}

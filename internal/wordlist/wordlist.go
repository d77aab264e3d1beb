// Package wordlist loads scored word lists and searches across them.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// ErrPathNotFound is returned when a load path is neither a file nor a directory.
var ErrPathNotFound = errors.New("word list path not found")

// Options configures a Store.
type Options struct {
	// Logger receives malformed-line diagnostics. Nil discards them.
	Logger *slog.Logger
	// Baseline marks list names that always sort to lowest precedence.
	Baseline func(name string) bool
}

// Store holds independently loaded word lists ordered by precedence.
// Lists later in the order win when a word appears in more than one.
type Store struct {
	data     map[string]map[string]int
	filelist []string
	logger   *slog.Logger
	baseline func(string) bool
}

// ParseResult is one parsed word list file.
type ParseResult struct {
	Name    string
	Words   map[string]int
	Skipped int
}

// New returns an empty Store.
func New(opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		data:     map[string]map[string]int{},
		logger:   logger,
		baseline: opts.Baseline,
	}
}

// BaselineName returns a Baseline func that matches a single list name.
func BaselineName(name string) func(string) bool {
	if name == "" {
		return nil
	}
	return func(candidate string) bool {
		return candidate == name
	}
}

// LoadPaths loads every path in turn. The first failure aborts the load.
func (s *Store) LoadPaths(paths []string) error {
	for _, path := range paths {
		if err := s.LoadPath(path); err != nil {
			return err
		}
	}
	return nil
}

// LoadPath loads a file as one list, or each file directly inside a
// directory as its own list. Sub-directories are not descended into.
func (s *Store) LoadPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return fmt.Errorf("failed to stat word list: %w", err)
	}

	switch {
	case info.Mode().IsRegular():
		if err := s.loadFile(path); err != nil {
			return err
		}
	case info.IsDir():
		entries, err := os.ReadDir(path)
		if err != nil {
			return fmt.Errorf("failed to read word list directory: %w", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			if err := s.loadFile(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	s.sortFilelist()
	return nil
}

func (s *Store) loadFile(path string) error {
	result, err := ParseFile(path, s.logger)
	if err != nil {
		return err
	}
	s.add(result.Name, result.Words)
	return nil
}

// Add registers a list built by the caller rather than read from disk,
// replacing any list with the same name. Words are normalized on the way
// in and precedence is re-sorted as for loaded files.
func (s *Store) Add(name string, words map[string]int) {
	normalized := make(map[string]int, len(words))
	for word, score := range words {
		normalized[Normalize(word)] = score
	}
	s.add(name, normalized)
	s.sortFilelist()
}

func (s *Store) add(name string, words map[string]int) {
	if !slices.Contains(s.filelist, name) {
		s.filelist = append(s.filelist, name)
	}
	s.data[name] = words
}

func (s *Store) sortFilelist() {
	slices.SortFunc(s.filelist, func(a, b string) int {
		aBase, bBase := s.isBaseline(a), s.isBaseline(b)
		if aBase != bBase {
			if aBase {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	})
}

func (s *Store) isBaseline(name string) bool {
	return s.baseline != nil && s.baseline(name)
}

// Ignore removes name from the active precedence order. Its data stays
// loaded but is no longer searched.
func (s *Store) Ignore(name string) bool {
	idx := slices.Index(s.filelist, name)
	if idx < 0 {
		return false
	}
	s.filelist = slices.Delete(s.filelist, idx, idx+1)
	return true
}

// Names returns the active lists, highest precedence last.
func (s *Store) Names() []string {
	return slices.Clone(s.filelist)
}

// Entries returns a copy of one list's words and scores.
func (s *Store) Entries(name string) (map[string]int, bool) {
	words, ok := s.data[name]
	if !ok {
		return nil, false
	}
	return maps.Clone(words), true
}

// ParseFile reads a `word;score[;notes]` file. Malformed lines are logged
// and skipped.
func ParseFile(path string, logger *slog.Logger) (ParseResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to open word list: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	result, err := Parse(filepath.Base(path), file, logger)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return result, nil
}

// Parse reads word list lines from r into a list called name.
func Parse(name string, r io.Reader, logger *slog.Logger) (ParseResult, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	result := ParseResult{Name: name, Words: map[string]int{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			logger.Warn("invalid wordlist line", "file", name, "line", lineNo, "content", line)
			result.Skipped++
			continue
		}
		score, err := strconv.Atoi(strings.TrimSpace(fields[1]))
		if err != nil {
			logger.Warn("invalid wordlist score", "file", name, "line", lineNo, "content", line)
			result.Skipped++
			continue
		}
		result.Words[Normalize(fields[0])] = score
	}
	if err := scanner.Err(); err != nil {
		return ParseResult{}, err
	}
	return result, nil
}

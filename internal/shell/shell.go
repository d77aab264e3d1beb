// Package shell runs the interactive word list prompt.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/xword/internal/render"
	"github.com/verte-zerg/xword/internal/stats"
	"github.com/verte-zerg/xword/internal/wordlist"
)

// Prompt is shown before each command.
const Prompt = "> "

// ErrUsage is returned when a command is missing its argument.
var ErrUsage = errors.New("usage")

const helpText = `Commands:
  WORD          exact matches and words containing WORD
  PATTERN       regex search when the input contains "."
  r PATTERN     regex search
  s WORD        sandwich search
  x WORD        exact matches only
  e WORD        reference links
  score WORD    found flag and best score
  ignore NAME   stop searching a loaded list
  lists         loaded lists, highest precedence last
  help, ?       this help
  quit, exit    leave (Ctrl+D also works)`

// Shell dispatches command lines against a Store.
type Shell struct {
	store    *wordlist.Store
	render   *render.Renderer
	out      io.Writer
	errOut   io.Writer
	minScore int
}

// New returns a Shell writing results to out and command errors to errOut.
func New(store *wordlist.Store, r *render.Renderer, out, errOut io.Writer, minScore int) *Shell {
	return &Shell{
		store:    store,
		render:   r,
		out:      out,
		errOut:   errOut,
		minScore: minScore,
	}
}

// Run reads commands until EOF or quit. Command errors are reported and the
// loop continues; only reader failures end it early.
func (s *Shell) Run(reader LineReader) error {
	for {
		line, err := reader.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := s.Dispatch(line)
		if err != nil {
			fmt.Fprintf(s.errOut, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}

// Dispatch runs one command line. It reports whether the session should end.
func (s *Shell) Dispatch(line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}

	switch line {
	case "quit", "exit":
		return true, nil
	case "help", "?":
		_, err := fmt.Fprintln(s.out, helpText)
		return false, err
	case "lists":
		return false, s.render.Lists(s.out, stats.SummarizeAll(s.store))
	}

	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)
	if arg != "" {
		switch cmd {
		case "r":
			return false, s.regex(arg)
		case "s":
			return false, s.sandwich(arg)
		case "x":
			return false, s.render.Exact(s.out, wordlist.Normalize(arg), s.store.MatchExact(arg), true)
		case "e":
			return false, s.render.Explain(s.out, arg)
		case "score":
			found, score := s.store.Score(arg, 0)
			return false, s.render.Score(s.out, wordlist.Normalize(arg), found, score)
		case "ignore":
			if !s.store.Ignore(arg) {
				return false, fmt.Errorf("no loaded list named %q", arg)
			}
			_, err := fmt.Fprintf(s.out, "Ignoring %s\n", arg)
			return false, err
		}
	} else if isArgCommand(cmd) {
		return false, fmt.Errorf("%w: %s ARG", ErrUsage, cmd)
	}

	if strings.Contains(line, ".") {
		return false, s.regex(line)
	}
	return false, s.render.Query(s.out, s.store.Query(line, s.minScore), s.minScore)
}

func isArgCommand(cmd string) bool {
	switch cmd {
	case "r", "s", "x", "e", "score", "ignore":
		return true
	}
	return false
}

func (s *Shell) regex(pattern string) error {
	matches, err := s.store.QueryRegex(pattern, s.minScore)
	if err != nil {
		return err
	}
	return s.render.Regex(s.out, pattern, matches, s.minScore)
}

func (s *Shell) sandwich(word string) error {
	groups, err := s.store.QuerySandwich(word, s.minScore)
	if err != nil {
		return err
	}
	return s.render.Sandwich(s.out, groups)
}

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/xword/internal/config"
	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/stats"
	"github.com/verte-zerg/xword/internal/wordlist"
)

var regexMax int

func newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query WORD...",
		Short: "Show exact matches and words containing each WORD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			for _, word := range args {
				result := s.store.Query(word, s.minScore)
				if err := s.render.Query(cmd.OutOrStdout(), result, s.minScore); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newExactCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exact WORD...",
		Short: "Show the lists containing each WORD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			for _, word := range args {
				matches := s.store.MatchExact(word)
				if err := s.render.Exact(cmd.OutOrStdout(), wordlist.Normalize(word), matches, true); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newRegexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regex PATTERN",
		Short: "Find words fully matching PATTERN",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			var matches []model.ScoredWord
			if regexMax > 0 {
				found, err := s.store.SearchRegexRange(args[0], s.minScore, regexMax)
				if err != nil {
					return err
				}
				matches = wordlist.SortByScore(found)
			} else {
				matches, err = s.store.QueryRegex(args[0], s.minScore)
				if err != nil {
					return err
				}
			}
			if err := s.render.Regex(cmd.OutOrStdout(), args[0], matches, s.minScore); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&regexMax, "max", 0, "maximum score (0 means no limit)")
	return cmd
}

func newSandwichCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sandwich WORD...",
		Short: "Find words wrapping extra letters around each split of WORD",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			for _, word := range args {
				groups, err := s.store.QuerySandwich(word, s.minScore)
				if err != nil {
					return err
				}
				if err := s.render.Sandwich(cmd.OutOrStdout(), groups); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score WORD...",
		Short: "Print whether each WORD is listed and its best score",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			for _, word := range args {
				found, score := s.store.Score(word, scoreMin(cmd))
				if err := s.render.Score(cmd.OutOrStdout(), wordlist.Normalize(word), found, score); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
}

// scoreMin is the threshold for score lookups: --min when given explicitly,
// otherwise 0 so any listed word is reported.
func scoreMin(cmd *cobra.Command) int {
	if cmd.Flags().Changed("min") {
		return minScore
	}
	return 0
}

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain WORD...",
		Short: "Print reference links for a word or phrase",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			r := newRenderer(cmd, fileCfg)
			if err := r.Explain(cmd.OutOrStdout(), strings.Join(args, " ")); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newListsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Summarize loaded lists, highest precedence last",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			if err := s.render.Lists(cmd.OutOrStdout(), stats.SummarizeAll(s.store)); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

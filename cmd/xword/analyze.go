package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/xword/internal/analysis"
)

const (
	defaultAnalysisMin  = 50
	defaultUpsideMin    = 40
	defaultNearHalvesSz = 9
	defaultShortLength  = 3
	defaultShortMax     = 40
	defaultCombineAbove = 40
)

var (
	nearHalvesLen int
	combineAbove  int
	shortLength   int
	shortMax      int
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run word-game analyses over the loaded lists",
	}

	halves := &cobra.Command{
		Use:   "halves",
		Short: "Words made of the same half twice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			words := analysis.MatchingHalves(s.store, analysisMin(cmd, defaultAnalysisMin))
			return s.render.Table(cmd.OutOrStdout(), words, nil)
		},
	}

	nearHalves := &cobra.Command{
		Use:   "near-halves",
		Short: "Words whose halves differ by one edit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			words := analysis.NearHalves(s.store, analysisMin(cmd, defaultAnalysisMin), nearHalvesLen)
			return s.render.Table(cmd.OutOrStdout(), words, nil)
		},
	}
	nearHalves.Flags().IntVar(&nearHalvesLen, "min-length", defaultNearHalvesSz, "minimum word length")

	swap := &cobra.Command{
		Use:   "swap FROM TO",
		Short: "Words that stay words when FROM is replaced by TO",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			pairs := analysis.LetterSwap(s.store, args[0], args[1], analysisMin(cmd, defaultAnalysisMin))
			return writePairs(cmd.OutOrStdout(), pairs)
		},
	}

	upsideDown := &cobra.Command{
		Use:   "upside-down",
		Short: "Words that read as a word when rotated half a turn",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			pairs := analysis.UpsideDown(s.store, analysisMin(cmd, defaultUpsideMin))
			return writePairs(cmd.OutOrStdout(), pairs)
		},
	}

	combine := &cobra.Command{
		Use:   "combine LEFT RIGHT",
		Short: "Join tails of LEFT-prefixed and RIGHT-prefixed words into new words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			combos, err := analysis.Combine(s.store, args[0], args[1], analysisMin(cmd, defaultAnalysisMin), combineAbove)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, c := range combos {
				if _, err := fmt.Fprintf(w, "%s%s + %s%s = %s (%d)\n", args[0], c.Left, args[1], c.Right, c.Word, c.Score); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
	combine.Flags().IntVar(&combineAbove, "above", defaultCombineAbove, "keep joined words scoring above this")

	infix := &cobra.Command{
		Use:   "infix TARGET",
		Short: "Words that stay words once TARGET is removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			pairs, err := analysis.Infix(s.store, args[0])
			if err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), pairs)
		},
	}

	prefixSwap := &cobra.Command{
		Use:   "prefix-swap FROM TO",
		Short: "Words starting with FROM that stay words with TO in its place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			pairs, err := analysis.PrefixSwap(s.store, args[0], args[1])
			if err != nil {
				return err
			}
			return writePairs(cmd.OutOrStdout(), pairs)
		},
	}

	contains := &cobra.Command{
		Use:   "contains TARGET",
		Short: "Every word containing TARGET",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			words, err := analysis.ContainsWord(s.store, args[0])
			if err != nil {
				return err
			}
			return s.render.Table(cmd.OutOrStdout(), words, []string{args[0]})
		},
	}

	short := &cobra.Command{
		Use:   "short",
		Short: "Low-scoring short words grouped by first letter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}
			groups, err := analysis.ShortWords(s.store, shortLength, analysisMin(cmd, 0), shortMax)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, g := range groups {
				if _, err := fmt.Fprintf(w, "%c (%d)\n", g.Letter, len(g.Words)); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
				if err := s.render.Table(w, g.Words, nil); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			return nil
		},
	}
	short.Flags().IntVar(&shortLength, "length", defaultShortLength, "word length")
	short.Flags().IntVar(&shortMax, "max", defaultShortMax, "maximum score")

	cmd.AddCommand(halves, nearHalves, swap, upsideDown, combine, infix, prefixSwap, contains, short)
	return cmd
}

// analysisMin returns --min when given explicitly, otherwise the analysis
// default. Analyses ignore the config file's search threshold.
func analysisMin(cmd *cobra.Command, def int) int {
	if cmd.Flags().Changed("min") {
		return minScore
	}
	return def
}

func writePairs(w io.Writer, pairs []analysis.Pair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s -> %s\n", p.Word, p.Partner); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

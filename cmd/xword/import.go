package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/xword/internal/config"
	"github.com/verte-zerg/xword/internal/importer"
	"github.com/verte-zerg/xword/internal/model"
)

const (
	defaultWordfreqLang = "en"
	defaultWordfreqSize = 50000
	defaultWordfreqList = "large"
)

var (
	importOut    string
	csvScore     int
	csvVariants  string
	wordfreqLang string
	wordfreqSize int
	wordfreqList string
)

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Convert external sources into word;score lists",
	}
	cmd.PersistentFlags().StringVarP(&importOut, "out", "o", "", "output file (default: stdout)")

	csvCmd := &cobra.Command{
		Use:   "csv FILE",
		Short: "Import a headed CSV with one word per row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readImport(args[0], func(r io.Reader) ([]model.ScoredWord, error) {
				return importer.CSV(r, csvScore, csvVariants)
			})
			if err != nil {
				return err
			}
			return writeImport(cmd, entries)
		},
	}
	csvCmd.Flags().IntVar(&csvScore, "score", importer.DefaultCSVScore, "score for every imported word")
	csvCmd.Flags().StringVar(&csvVariants, "variants", importer.DefaultVariantsHeader, "header name or zero-based column of comma-separated variants (empty for none)")

	gridCmd := &cobra.Command{
		Use:   "grid FILE",
		Short: "Import a CSV whose columns are scored word groups",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := readImport(args[0], importer.Grid)
			if err != nil {
				return err
			}
			return writeImport(cmd, entries)
		},
	}

	wordfreqCmd := &cobra.Command{
		Use:   "wordfreq",
		Short: "Import the most frequent words from the wordfreq dataset",
		Args:  cobra.NoArgs,
		RunE:  runWordfreqImport,
	}
	wordfreqCmd.Flags().StringVar(&wordfreqLang, "lang", defaultWordfreqLang, "language code")
	wordfreqCmd.Flags().IntVar(&wordfreqSize, "size", defaultWordfreqSize, "number of words")
	wordfreqCmd.Flags().StringVar(&wordfreqList, "list-type", defaultWordfreqList, "wordfreq list (large or small)")

	cmd.AddCommand(csvCmd, gridCmd, wordfreqCmd)
	return cmd
}

func runWordfreqImport(cmd *cobra.Command, _ []string) error {
	if wordfreqSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}

	logErrln("Fetching wordfreq metadata...")
	wheel, err := importer.DownloadLatestWheel(cmd.Context(), config.DefaultWordfreqCacheDir())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	if wheel.Cached {
		logErrf("Using cached wheel %s\n", wheel.Filename)
	} else {
		logErrf("Downloaded wheel %s\n", wheel.Filename)
	}

	langs, err := importer.Languages(wheel.Path, wordfreqList)
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	lang := strings.ToLower(strings.TrimSpace(wordfreqLang))
	if !slices.Contains(langs, lang) {
		return fmt.Errorf("unknown language %q (available: %s)", lang, strings.Join(langs, ", "))
	}

	logErrf("Extracting %s word list...\n", lang)
	entries, err := importer.Wordfreq(wheel.Path, lang, wordfreqList, wordfreqSize)
	if err != nil {
		return fmt.Errorf("failed to extract %s word list: %w", lang, err)
	}
	return writeImport(cmd, entries)
}

func readImport(path string, parse func(io.Reader) ([]model.ScoredWord, error)) ([]model.ScoredWord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only import source.
			_ = cerr
		}
	}()
	entries, err := parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s: %w", path, err)
	}
	return entries, nil
}

func writeImport(cmd *cobra.Command, entries []model.ScoredWord) error {
	if importOut == "" {
		return importer.Write(cmd.OutOrStdout(), entries)
	}
	path := config.ExpandHome(importOut)
	if err := importer.WriteFile(path, entries); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	logErrf("Wrote %d words to %s\n", len(entries), path)
	return nil
}

// Package main provides the CLI entrypoint for xword.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/xword/internal/config"
	"github.com/verte-zerg/xword/internal/model"
	"github.com/verte-zerg/xword/internal/render"
	"github.com/verte-zerg/xword/internal/shell"
	"github.com/verte-zerg/xword/internal/wordlist"
)

var (
	listPaths   []string
	minScore    int
	baseline    string
	ignoreLists []string
	noColor     bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := newRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "xword",
		Short:         "Search scored crossword word lists",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runShellCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringSliceVarP(&listPaths, "list", "l", nil, "word list file or directory (repeatable)")
	flags.IntVar(&minScore, "min", wordlist.DefaultMinScore, "minimum score for search results")
	flags.StringVar(&baseline, "baseline", "", "list name pinned to lowest precedence")
	flags.StringSliceVar(&ignoreLists, "ignore", nil, "list name to skip (repeatable)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newQueryCmd())
	rootCmd.AddCommand(newExactCmd())
	rootCmd.AddCommand(newRegexCmd())
	rootCmd.AddCommand(newSandwichCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newExplainCmd())
	rootCmd.AddCommand(newListsCmd())
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newImportCmd())

	return rootCmd
}

// session is a loaded Store plus the renderer configured for it.
type session struct {
	store    *wordlist.Store
	render   *render.Renderer
	minScore int
}

func loadSession(cmd *cobra.Command) (*session, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "min", &minScore, fileCfg.Search.MinScore)
	applyStringConfig(cmd, "baseline", &baseline, fileCfg.Lists.Baseline)

	paths := listPaths
	if !cmd.Flags().Changed("list") && len(fileCfg.Lists.Paths) > 0 {
		paths = fileCfg.Lists.Paths
	}
	if len(paths) == 0 {
		paths = []string{config.DefaultWordListDir()}
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	st := wordlist.New(wordlist.Options{
		Logger:   logger,
		Baseline: wordlist.BaselineName(baseline),
	})
	if err := st.LoadPaths(paths); err != nil {
		if errors.Is(err, wordlist.ErrPathNotFound) {
			logErrf("Pass word lists with --list, set [lists] paths in %s, or import one with: xword import\n", config.DefaultConfigPath())
		}
		return nil, fmt.Errorf("failed to load word lists: %w", err)
	}
	for _, name := range append(fileCfg.Lists.Ignore, ignoreLists...) {
		if !st.Ignore(name) {
			logErrf("Not ignoring %s: no loaded list with that name\n", name)
		}
	}

	r := newRenderer(cmd, fileCfg)
	if err := r.Loaded(cmd.ErrOrStderr(), st.Names()); err != nil {
		return nil, fmt.Errorf("failed to write output: %w", err)
	}
	return &session{store: st, render: r, minScore: minScore}, nil
}

func newRenderer(cmd *cobra.Command, fileCfg config.FileConfig) *render.Renderer {
	r := render.New(displayConfig(fileCfg, colorEnabled(cmd.OutOrStdout())))
	r.SetWidth(render.TerminalWidth())
	return r
}

func displayConfig(fileCfg config.FileConfig, color bool) model.DisplayConfig {
	cfg := model.DefaultDisplayConfig()
	cfg.Color = color
	applyInt(&cfg.TableLimit, fileCfg.Search.TableLimit)
	applyInt(&cfg.CountLimit, fileCfg.Search.CountLimit)
	applyInt(&cfg.Columns, fileCfg.Search.Columns)
	applyString(&cfg.Colors.Found, fileCfg.Colors.Found)
	applyString(&cfg.Colors.Missing, fileCfg.Colors.Missing)
	applyString(&cfg.Colors.Muted, fileCfg.Colors.Muted)
	applyString(&cfg.Colors.Highlight, fileCfg.Colors.Highlight)
	applyString(&cfg.Colors.Prompt, fileCfg.Colors.Prompt)
	return cfg
}

func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func runShellCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSession(cmd)
	if err != nil {
		return err
	}
	reader := shell.NewLineReader(os.Stdin, cmd.ErrOrStderr(), shell.Prompt, s.render.PromptStyle())
	sh := shell.New(s.store, s.render, cmd.OutOrStdout(), cmd.ErrOrStderr(), s.minScore)
	if err := sh.Run(reader); err != nil {
		return fmt.Errorf("failed to run shell: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	def := model.DefaultDisplayConfig()
	return fmt.Sprintf(`# xword configuration
# Uncomment a value to enable it. CLI flags override config values.

[lists]
# paths = [%q]    # Files or directories, loaded in order
# baseline = ""   # List name always given lowest precedence
# ignore = []     # List names loaded but not searched

[search]
# min-score = %d      # Minimum score for search results
# table-limit = %d    # Above this many results print a table
# count-limit = %d   # Above this many results print only the count
# columns = %d         # Table columns

[colors]
# found = %q
# missing = %q
# muted = %q
# highlight = %q
# prompt = %q
`,
		config.DefaultWordListDir(),
		wordlist.DefaultMinScore,
		def.TableLimit,
		def.CountLimit,
		def.Columns,
		def.Colors.Found,
		def.Colors.Missing,
		def.Colors.Muted,
		def.Colors.Highlight,
		def.Colors.Prompt,
	)
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt(target, value *int) {
	if value != nil && *value > 0 {
		*target = *value
	}
}

func applyString(target, value *string) {
	if value != nil && *value != "" {
		*target = *value
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

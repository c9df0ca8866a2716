// Package main provides the CLI entrypoint for fwew.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/fwew/internal/affix"
	"github.com/verte-zerg/fwew/internal/config"
	"github.com/verte-zerg/fwew/internal/dictionary"
	"github.com/verte-zerg/fwew/internal/model"
	"github.com/verte-zerg/fwew/internal/render"
	"github.com/verte-zerg/fwew/internal/search"
	"github.com/verte-zerg/fwew/internal/stats"
	"github.com/verte-zerg/fwew/internal/store"
	"github.com/verte-zerg/fwew/internal/tui"
	"github.com/verte-zerg/fwew/internal/wordlist"
)

const (
	defaultLang        = "en"
	defaultCacheSize   = 256
	defaultHistoryTop  = 10
	defaultTrendWindow = 20
)

var (
	lookupLang      string
	lookupReverse   bool
	lookupFile      string
	lookupExplain   bool
	lookupIPA       bool
	lookupSyllables bool
	lookupData      string
	lookupCacheSize int
	lookupHistory   bool

	historyLast  int
	historyTop   int
	historyClear bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "fwew [words...]",
		Short:         "Na'vi dictionary lookup",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runLookupCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&lookupLang, "lang", "l", defaultLang, "gloss language code")
	flags.StringVar(&lookupData, "data", "", "dictionary JSON file (default: embedded)")
	flags.IntVar(&lookupCacheSize, "cache-size", defaultCacheSize, "number of cached lookups (0 disables)")
	flags.BoolVar(&lookupHistory, "history", true, "record lookups in the history database")
	flags.BoolVarP(&lookupExplain, "explain", "e", false, "print the reconstruction stages")
	flags.BoolVarP(&lookupIPA, "ipa", "i", false, "print IPA")
	flags.BoolVarP(&lookupSyllables, "syllables", "s", false, "print syllable counts")

	rootCmd.Flags().BoolVarP(&lookupReverse, "reverse", "r", false, "look up glosses in --lang instead of Na'vi")
	rootCmd.Flags().StringVarP(&lookupFile, "file", "f", "", "read queries from a file")

	rootCmd.AddCommand(newInteractiveCmd())
	rootCmd.AddCommand(newHistoryCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLenitionCmd())

	return rootCmd
}

func loadLookupConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &lookupLang, fileCfg.Lookup.Lang)
	applyStringConfig(cmd, "data", &lookupData, fileCfg.Lookup.Data)
	applyIntConfig(cmd, "cache-size", &lookupCacheSize, fileCfg.Lookup.CacheSize)
	applyBoolConfig(cmd, "history", &lookupHistory, fileCfg.Lookup.History)
	applyBoolConfig(cmd, "explain", &lookupExplain, fileCfg.Lookup.Explain)
	applyBoolConfig(cmd, "ipa", &lookupIPA, fileCfg.Lookup.IPA)
	applyBoolConfig(cmd, "syllables", &lookupSyllables, fileCfg.Lookup.Syllables)

	cfg := model.Config{
		Lang:      lookupLang,
		Direction: model.FromNavi,
		DataPath:  lookupData,
		CacheSize: lookupCacheSize,
		History:   lookupHistory,
		Explain:   lookupExplain,
		IPA:       lookupIPA,
		Syllables: lookupSyllables,
	}
	if lookupReverse {
		cfg.Direction = model.ToNavi
	}
	return validateConfig(cfg)
}

func validateConfig(cfg model.Config) (model.Config, error) {
	lang, err := search.ParseLanguage(cfg.Lang)
	if err != nil {
		return model.Config{}, fmt.Errorf("--lang must be one of %s: %w", strings.Join(dictionary.Languages, ", "), err)
	}
	cfg.Lang = lang
	if cfg.CacheSize < 0 {
		return model.Config{}, fmt.Errorf("--cache-size must be >= 0")
	}
	return cfg, nil
}

func newSearcher(cfg model.Config) (*search.Searcher, error) {
	dict := dictionary.Default()
	if cfg.DataPath != "" {
		dict = dictionary.New(dictionary.FromFile(cfg.DataPath))
	}
	if err := dict.Load(); err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return search.New(dict, search.WithCache(cfg.CacheSize))
}

func openHistory(cfg model.Config) *store.Store {
	if !cfg.History {
		return nil
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return nil
	}
	return st
}

func closeHistory(st *store.Store) {
	if st == nil {
		return
	}
	if cerr := st.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadLookupConfig(cmd)
	if err != nil {
		return err
	}
	queries := args
	if lookupFile != "" {
		fromFile, err := wordlist.LoadWords(lookupFile)
		if err != nil {
			return fmt.Errorf("failed to load queries: %w", err)
		}
		queries = append(queries, fromFile...)
	}
	if len(queries) == 0 {
		return cmd.Help()
	}

	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	st := openHistory(cfg)
	defer closeHistory(st)

	records, err := lookupAll(cmd.OutOrStdout(), searcher, cfg, queries)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if st != nil {
		if err := st.InsertLookups(context.Background(), records); err != nil {
			logErrf("failed to save history: %v\n", err)
		}
	}
	return nil
}

func lookupAll(out io.Writer, searcher *search.Searcher, cfg model.Config, queries []string) ([]model.LookupRecord, error) {
	opts := render.Options{
		Lang:      cfg.Lang,
		IPA:       cfg.IPA,
		Syllables: cfg.Syllables,
		Width:     render.TerminalWidth(),
	}
	var explain func(dictionary.Word) []affix.Step
	if cfg.Explain {
		explain = search.Explain
	}
	records := make([]model.LookupRecord, 0, len(queries))
	for _, q := range queries {
		var words []dictionary.Word
		if cfg.Direction == model.ToNavi {
			words = searcher.TranslateToNavi(q, cfg.Lang)
		} else {
			words = searcher.TranslateFromNavi(q)
		}
		if err := render.Results(out, q, words, opts, explain); err != nil {
			return nil, err
		}
		records = append(records, model.LookupRecord{
			At:        time.Now(),
			Query:     q,
			Direction: cfg.Direction,
			Lang:      cfg.Lang,
			Results:   len(words),
		})
	}
	return records, nil
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Look words up interactively",
		Args:  cobra.NoArgs,
		RunE:  runInteractiveCmd,
	}
}

func runInteractiveCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadLookupConfig(cmd)
	if err != nil {
		return err
	}
	searcher, err := newSearcher(cfg)
	if err != nil {
		return err
	}
	st := openHistory(cfg)
	defer closeHistory(st)

	program := tea.NewProgram(tui.NewModel(cfg, searcher, st), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show lookup history",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N lookups")
	cmd.Flags().IntVar(&historyTop, "top", defaultHistoryTop, "number of queries per table")
	cmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded lookups")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer closeHistory(st)

	ctx := context.Background()
	if historyClear {
		if err := st.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		logErrln("History cleared.")
		return nil
	}
	report, err := stats.BuildReport(ctx, st, model.HistoryConfig{Last: historyLast, Top: historyTop})
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.RenderReport(cmd.OutOrStdout(), report, defaultTrendWindow); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newLenitionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lenition",
		Short: "Print the lenition table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.LenitionTable(cmd.OutOrStdout())
		},
	}
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

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# fwew configuration
# Uncomment a value to enable it. CLI flags override config values.

[lookup]
# lang = %q            # Gloss language (%s)
# data = ""              # Dictionary JSON file; empty uses the embedded one
# cache-size = %d       # Number of cached lookups, 0 disables
# history = true         # Record lookups for "fwew history"
# explain = false        # Print reconstruction stages
# ipa = false            # Print IPA
# syllables = false      # Print syllable counts
`,
		defaultLang,
		strings.Join(dictionary.Languages, ", "),
		defaultCacheSize,
	)
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

// Package main provides the CLI entry point for surveydoc.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	// Populated in PersistentPreRunE
	logger *slog.Logger
	cfg    *surveydoc.Config
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "surveydoc",
		Short: "Turn survey export rows into PDFs merged with their uploads",
		Long: `surveydoc processes survey exports in three steps:

  intake    unpack recent export archives into the inbox
  match     find the uploaded files belonging to each response
  generate  render one PDF per response and append its PDF uploads`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", surveydoc.DefaultConfigPath, "Config file (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(
		newIntakeCmd(),
		newMatchCmd(),
		newGenerateCmd(),
		newInspectCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func setup(cmd *cobra.Command, args []string) error {
	handler, err := newLogHandler(os.Stderr, logLevel, logFormat)
	if err != nil {
		return err
	}
	logger = slog.New(handler)
	slog.SetDefault(logger)

	cfg, err = surveydoc.LoadOrDefault(cfgFile)
	if err != nil {
		return err
	}
	logger.Debug("Configuration loaded", slog.String("path", cfgFile), slog.Any("config", cfg))
	return nil
}

func newLogHandler(w io.Writer, level, format string) (slog.Handler, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.NewTextHandler(w, opts), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s (must be text or json)", format)
	}
}

package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/pdfdoc"
)

func newIntakeCmd() *cobra.Command {
	var (
		sourceDir   string
		pattern     string
		windowHours float64
	)

	cmd := &cobra.Command{
		Use:   "intake",
		Short: "Unpack recent export archives into the inbox",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("source-dir") {
				cfg.Intake.SourceDir = sourceDir
			}
			if cmd.Flags().Changed("pattern") {
				cfg.Intake.Pattern = pattern
			}
			if cmd.Flags().Changed("window-hours") {
				cfg.Intake.WindowHours = windowHours
			}
			report, err := surveydoc.Intake(cfg, logger)
			if err != nil {
				return fmt.Errorf("intake failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Processed %d archive(s)\n", len(report.Archives))
			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDir, "source-dir", "", "Directory to scan for archives")
	cmd.Flags().StringVar(&pattern, "pattern", "", "Archive file name pattern")
	cmd.Flags().Float64Var(&windowHours, "window-hours", 0, "Only take archives modified within this many hours")
	return cmd
}

func newMatchCmd() *cobra.Command {
	var (
		input      string
		searchRoot string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Annotate the spreadsheet with each row's matching files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				cfg.Match.Input = input
			}
			if cmd.Flags().Changed("search-root") {
				cfg.Match.SearchRoot = searchRoot
			}
			if cmd.Flags().Changed("output") {
				cfg.Match.OutputDir, cfg.Match.OutputFile = filepath.Split(output)
			}

			report, err := surveydoc.Match(cfg, logger)
			if err != nil {
				return fmt.Errorf("match failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated file saved as: %s (%d of %d rows matched)\n",
				report.Output, report.MatchedRows, report.Rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Input spreadsheet")
	cmd.Flags().StringVar(&searchRoot, "search-root", "", "Directory searched for matching files")
	cmd.Flags().StringVar(&output, "output", "", "Path of the updated spreadsheet")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var (
		input      string
		outputDir  string
		headerRows int
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render one PDF per row and merge its PDF attachments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				cfg.Generate.Input = input
			}
			if cmd.Flags().Changed("output-dir") {
				cfg.Generate.OutputDir = outputDir
			}
			if cmd.Flags().Changed("header-rows") {
				cfg.Generate.HeaderRows = headerRows
			}

			report, err := surveydoc.Generate(cfg, logger)
			if err != nil {
				return fmt.Errorf("generate failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDFs created in %s (%d rows)\n", cfg.Generate.OutputDir, len(report.Rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Matched spreadsheet")
	cmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for generated PDFs")
	cmd.Flags().IntVar(&headerRows, "header-rows", 2, "Header rows in the spreadsheet: 1 or 2")
	return cmd
}

func newInspectCmd() *cobra.Command {
	var textOnly bool

	cmd := &cobra.Command{
		Use:   "inspect [file.pdf]",
		Short: "Print the page count and text of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := pdfdoc.Inspect(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !textOnly {
				fmt.Fprintf(out, "%s: %d page(s)\n\n", info.Path, info.Pages)
			}
			fmt.Fprintln(out, info.Text)
			return nil
		},
	}

	cmd.Flags().BoolVar(&textOnly, "text", false, "Print only the extracted text")
	return cmd
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := cfgFile
			if len(args) == 1 {
				path = args[0]
			}
			written, err := surveydoc.InitConfig(path)
			if err != nil {
				return err
			}
			if written {
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Config %s already exists\n", path)
			}
			return nil
		},
	})
	return cmd
}

package surveydoc

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/archive"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/parser"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/pdfdoc"
)

// Generate renders one PDF per row of the matched spreadsheet and merges it
// with the row's PDF attachments. Attachments that are missing or not PDFs
// are skipped with a warning. Any rendering or merge failure stops the run.
func Generate(cfg *Config, logger *slog.Logger) (*models.GenerateReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := logger.With(slog.String("stage", "generate"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gc := cfg.Generate
	if _, err := os.Stat(gc.Input); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, gc.Input)
	}

	table, err := parser.ReadTable(gc.Input, gc.HeaderRows)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", gc.Input, err)
	}

	for _, d := range []string{gc.OutputDir, gc.TempDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	cols := resolveColumns(cfg, table)
	if cols.matched < 0 {
		l.Warn("Matched files column not found; rows get no attachments.", slog.String("column", cfg.MatchedFiles.Column))
	}
	if cols.name < 0 {
		l.Warn("Name column not found; outputs are named by row number.")
	}

	report := &models.GenerateReport{}
	written := make(map[string]int)
	for _, row := range table.Rows {
		result, err := generateRow(cfg, table, row, cols, l)
		if err != nil {
			return report, NewStageError("generate", fmt.Sprintf("row %d", row.Index+1), err)
		}
		if prev, ok := written[result.Output]; ok {
			l.Warn("Output name collision; earlier row overwritten.",
				slog.String("output", result.Output), slog.Int("row", row.Index+1), slog.Int("earlier_row", prev+1))
		}
		written[result.Output] = row.Index
		report.Rows = append(report.Rows, result)
	}

	l.Info("PDFs created.", slog.String("output_dir", gc.OutputDir), slog.Int("rows", len(report.Rows)))
	return report, nil
}

// columnSet holds the resolved column indexes used per row. -1 means absent.
type columnSet struct {
	matched int
	name    int
	group   int
}

func resolveColumns(cfg *Config, table *models.Table) columnSet {
	gc := cfg.Generate
	cols := columnSet{
		matched: parser.ResolvePrefixedColumn(table.Columns, cfg.MatchedFiles.Column),
		name:    parser.ResolveColumn(table.Columns, gc.NameColumn, gc.NameColumnIndex),
		group:   -1,
	}
	if gc.GroupColumn != "" || gc.GroupColumnIndex >= 0 {
		cols.group = parser.ResolveColumn(table.Columns, gc.GroupColumn, gc.GroupColumnIndex)
	}
	return cols
}

// generateRow renders, merges and names the document of a single row.
func generateRow(cfg *Config, table *models.Table, row models.Row, cols columnSet, l *slog.Logger) (models.RowResult, error) {
	gc := cfg.Generate
	result := models.RowResult{Index: row.Index}

	var skip []int
	if cols.matched >= 0 {
		skip = append(skip, cols.matched)
	}
	fields := parser.FilterFields(table, row, gc.ExcludedKeywords, skip...)

	tempPDF := filepath.Join(gc.TempDir, fmt.Sprintf("temp_row_%d.pdf", row.Index))
	if err := pdfdoc.RenderFile(fields, tempPDF, pdfdoc.RenderOptions{CreationDate: now()}); err != nil {
		return result, fmt.Errorf("render: %w", err)
	}
	defer os.Remove(tempPDF)

	name := OutputName(table.Value(row, cols.name), table.Value(row, cols.group), gc.NameSeparator, row.Index)
	result.Output = filepath.Join(gc.OutputDir, name+".pdf")
	rl := l.With(slog.Int("row", row.Index+1), slog.String("output", result.Output))

	attachments := SplitMatchedFiles(table.Value(row, cols.matched), cfg.MatchedFiles.Separator)
	usable, skipped := pdfdoc.SelectAttachments(attachments)
	result.Attachments = len(usable)
	result.Skipped = len(skipped)
	if len(skipped) > 0 {
		rl.Warn("Skipping attachments that are missing or not PDFs.", slog.Int("skipped", len(skipped)), slog.Any("paths", skipped))
	}

	if len(usable) > 0 {
		rl.Info("Merging attachments.", slog.Int("fields", len(fields)), slog.Int("attachments", len(usable)))
		if err := pdfdoc.MergeFiles(tempPDF, usable, result.Output); err != nil {
			return result, fmt.Errorf("merge: %w", err)
		}
	} else {
		rl.Info("Writing row document.", slog.Int("fields", len(fields)))
		if err := archive.Move(tempPDF, result.Output); err != nil {
			return result, fmt.Errorf("move: %w", err)
		}
	}

	pages, err := pdfdoc.PageCount(result.Output)
	if err != nil {
		return result, fmt.Errorf("count pages of %s: %w", result.Output, err)
	}
	result.Pages = pages
	return result, nil
}

// SplitMatchedFiles splits a matched-files cell on sep, trimming entries and
// dropping empty ones.
func SplitMatchedFiles(value, sep string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	var paths []string
	for _, p := range strings.Split(value, sep) {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

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
)

// Match loads the input spreadsheet, finds the files under the search root
// whose names contain each row's identifier, and writes the spreadsheet with
// the matched-files column to the output path.
//
// Matching is an unanchored, case-sensitive substring test on the file base
// name, so identifier "42" also matches "142_b.pdf".
func Match(cfg *Config, logger *slog.Logger) (*models.MatchReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := logger.With(slog.String("stage", "match"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	input := cfg.Match.Input
	if _, err := os.Stat(input); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, input)
	}

	table, err := parser.ReadTable(input, 1)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}

	idCol := parser.FindIdentifierColumn(table.Columns, cfg.Match.IdentifierKeywords)
	if idCol < 0 {
		return nil, fmt.Errorf("%w (keywords %q); available columns: %q",
			ErrNoIdentifierColumn, cfg.Match.IdentifierKeywords, table.Columns)
	}
	l.Info("Using identifier column.", slog.String("column", table.Columns[idCol]))

	files, err := listFiles(cfg.Match.SearchRoot)
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", cfg.Match.SearchRoot, err)
	}
	l.Debug("Indexed search root.", slog.String("root", cfg.Match.SearchRoot), slog.Int("files", len(files)))

	report := &models.MatchReport{
		IdentifierColumn: table.Columns[idCol],
		Rows:             len(table.Rows),
		Files:            len(files),
	}

	values := make([]string, len(table.Rows))
	for i, row := range table.Rows {
		id := table.Value(row, idCol)
		matches := MatchFiles(id, files)
		if len(matches) > 0 {
			report.MatchedRows++
		}
		l.Debug("Matched row.", slog.Int("row", row.Index), slog.String("id", id), slog.Int("files", len(matches)))
		values[i] = strings.Join(matches, cfg.MatchedFiles.Separator)
	}
	table.SetColumn(cfg.MatchedFiles.Column, values)

	output := filepath.Join(cfg.Match.OutputDir, cfg.Match.OutputFile)
	if err := parser.WriteTable(output, table); err != nil {
		return nil, fmt.Errorf("write %s: %w", output, err)
	}
	report.Output = output

	l.Info("Wrote matched spreadsheet.",
		slog.String("output", output),
		slog.Int("rows", report.Rows),
		slog.Int("matched_rows", report.MatchedRows))
	return report, nil
}

// MatchFiles returns the paths in files whose base name contains id, in the
// order of files. An empty id matches nothing.
func MatchFiles(id string, files []string) []string {
	if id == "" {
		return nil
	}
	var matches []string
	for _, f := range files {
		if strings.Contains(filepath.Base(f), id) {
			matches = append(matches, f)
		}
	}
	return matches
}

// listFiles returns every regular file under root, in lexical walk order.
// Paths are root-prefixed; a relative root keeps an explicit ./ so the paths
// stay recognizable as local paths in generated documents.
func listFiles(root string) ([]string, error) {
	rels, err := archive.Walk(root)
	if err != nil {
		return nil, err
	}

	files := make([]string, len(rels))
	for i, rel := range rels {
		files[i] = localPath(filepath.Join(root, rel))
	}
	return files, nil
}

// localPath prefixes a relative path with ./ unless it already starts with a dot.
func localPath(p string) string {
	if filepath.IsAbs(p) || strings.HasPrefix(p, ".") {
		return p
	}
	return "." + string(filepath.Separator) + p
}

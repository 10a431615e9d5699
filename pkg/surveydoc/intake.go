package surveydoc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/archive"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
)

// now is replaced in tests.
var now = time.Now

// Intake unpacks every recent archive in the source directory: the first
// spreadsheet goes to cfg.Intake.SpreadsheetPath and every other file to the
// staging tree. Archives that are not valid zip files are skipped. Other
// per-archive failures are logged, the remaining archives still run, and the
// failures are returned joined.
func Intake(cfg *Config, logger *slog.Logger) (*models.IntakeReport, error) {
	if logger == nil {
		logger = slog.Default()
	}
	l := logger.With(slog.String("stage", "intake"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sourceDir, err := expandHome(cfg.Intake.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("resolve source dir: %w", err)
	}

	logZipListing(l, sourceDir)

	window := time.Duration(cfg.Intake.WindowHours * float64(time.Hour))
	cutoff := now().Add(-window)
	candidates, err := archive.FindRecent(sourceDir, cfg.Intake.Pattern, cutoff)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", sourceDir, err)
	}

	report := &models.IntakeReport{}
	if len(candidates) == 0 {
		l.Info("No recent archives found.",
			slog.String("source_dir", sourceDir),
			slog.String("pattern", cfg.Intake.Pattern),
			slog.Duration("window", window))
		return report, nil
	}

	// Extraction dirs live next to the spreadsheet target so moves stay on one device.
	inboxDir := filepath.Dir(cfg.Intake.SpreadsheetPath)
	for _, d := range []string{inboxDir, cfg.Intake.StagingDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	var errs []error
	for _, c := range candidates {
		al := l.With(slog.String("archive", filepath.Base(c.Path)), slog.Time("modified", c.ModTime))
		al.Info("Processing archive.")

		result, err := intakeArchive(cfg, inboxDir, c.Path, al)
		switch {
		case errors.Is(err, archive.ErrInvalidArchive):
			al.Warn("Skipping archive that is not a valid zip file.", "error", err)
			result.Skipped = true
		case err != nil:
			al.Error("Failed to process archive.", "error", err)
			result.Error = err.Error()
			errs = append(errs, NewStageError("intake", filepath.Base(c.Path), err))
		default:
			al.Info("Archive processed.", slog.Int("staged", result.Staged), slog.String("spreadsheet", result.Spreadsheet))
		}
		report.Archives = append(report.Archives, result)
	}

	return report, errors.Join(errs...)
}

// intakeArchive extracts one archive into its own temp dir under inboxDir and
// distributes its files. The temp dir is removed on every path.
func intakeArchive(cfg *Config, inboxDir, path string, l *slog.Logger) (result models.ArchiveResult, err error) {
	result.Path = path

	tmpDir, err := os.MkdirTemp(inboxDir, "extract-*")
	if err != nil {
		return result, err
	}
	defer func() {
		if rmErr := os.RemoveAll(tmpDir); rmErr != nil {
			l.Warn("Failed to remove temp dir.", "dir", tmpDir, "error", rmErr)
		}
	}()

	files, err := archive.Extract(path, tmpDir)
	if err != nil {
		return result, err
	}
	l.Debug("Extracted archive.", slog.Int("files", len(files)), slog.String("dir", tmpDir))

	spreadsheetFound := false
	for _, rel := range files {
		src := filepath.Join(tmpDir, rel)

		if strings.EqualFold(filepath.Ext(rel), ".xlsx") {
			if spreadsheetFound {
				l.Debug("Ignoring additional spreadsheet.", "file", rel)
				continue
			}
			if err := archive.Move(src, cfg.Intake.SpreadsheetPath); err != nil {
				return result, fmt.Errorf("move spreadsheet %s: %w", rel, err)
			}
			spreadsheetFound = true
			result.Spreadsheet = cfg.Intake.SpreadsheetPath
			l.Info("Moved spreadsheet.", "file", rel, "target", cfg.Intake.SpreadsheetPath)
			continue
		}

		target := filepath.Join(cfg.Intake.StagingDir, rel)
		l.Debug("Staging file.", "file", rel, "target", target)
		if err := archive.Move(src, target); err != nil {
			return result, fmt.Errorf("stage %s: %w", rel, err)
		}
		result.Staged++
	}

	if !spreadsheetFound {
		l.Warn("No spreadsheet found in archive.")
	}
	return result, nil
}

// logZipListing logs the first few zip files of dir to help diagnose pattern
// or time window mismatches.
func logZipListing(l *slog.Logger, dir string) {
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	zips, err := filepath.Glob(filepath.Join(dir, "*.zip"))
	if err != nil {
		return
	}
	l.Debug("Scanned source directory.", slog.String("dir", dir), slog.Int("zip_files", len(zips)))
	for i, z := range zips {
		if i == 5 {
			break
		}
		l.Debug("Found zip file.", "file", filepath.Base(z))
	}
}

package surveydoc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/pdfdoc"
)

// generateConfig returns a single-header config naming outputs by ResponseID.
func generateConfig() *Config {
	cfg := Default()
	cfg.Generate.HeaderRows = 1
	cfg.Generate.ExcludedKeywords = nil
	cfg.Generate.NameColumn = "ResponseID"
	return cfg
}

// writeAttachment renders a one-page PDF attachment at path.
func writeAttachment(t *testing.T, path string) {
	t.Helper()
	mkdirAll(t, filepath.Dir(path))
	fields := []models.Field{{Key: "Attachment", Value: filepath.Base(path)}}
	if err := pdfdoc.RenderFile(fields, path, pdfdoc.RenderOptions{}); err != nil {
		t.Fatal(err)
	}
}

func TestGenerate(t *testing.T) {
	useFixedClock(t)
	work := t.TempDir()
	t.Chdir(work)

	writeAttachment(t, filepath.Join("inbox", "data", "R1_photo.pdf"))
	writeFile(t, filepath.Join("inbox", "data", "R3_notes.txt"), "notes")
	writeSheet(t, filepath.Join("outbox", "updated_exported_data.xlsx"), [][]string{
		{"ResponseID", "Q1 How are you", "Matched Files"},
		{"R1", "Fine", "./inbox/data/R1_photo.pdf"},
		{"R2", "Okay", ""},
		{"R3", "Busy", "./inbox/data/R3_notes.txt| ./inbox/data/missing.pdf"},
	})

	report, err := Generate(generateConfig(), quietLogger())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(report.Rows) != 3 {
		t.Fatalf("Expected 3 rows, got %+v", report.Rows)
	}

	r1 := report.Rows[0]
	if r1.Output != filepath.Join("outbox", "pdfs", "R1.pdf") {
		t.Errorf("Unexpected output path %q", r1.Output)
	}
	if r1.Attachments != 1 || r1.Pages != 2 {
		t.Errorf("Expected 1 row page + 1 attachment page, got %+v", r1)
	}
	pages, err := pdfdoc.PageCount(r1.Output)
	if err != nil || pages != 2 {
		t.Errorf("Expected merged PDF with 2 pages, got %d (%v)", pages, err)
	}

	r3 := report.Rows[2]
	if r3.Attachments != 0 || r3.Skipped != 2 || r3.Pages != 1 {
		t.Errorf("Expected both R3 attachments skipped, got %+v", r3)
	}

	// Temp row documents are gone
	matches, err := filepath.Glob(filepath.Join("outbox", "temp_row_*.pdf"))
	if err != nil || len(matches) != 0 {
		t.Errorf("Expected temp files removed, found %v", matches)
	}
}

func TestGenerateWithoutAttachmentsKeepsRenderedBytes(t *testing.T) {
	useFixedClock(t)
	t.Chdir(t.TempDir())

	writeSheet(t, filepath.Join("outbox", "updated_exported_data.xlsx"), [][]string{
		{"ResponseID", "Q1 How are you", "Matched Files"},
		{"R2", "Okay", ""},
	})

	report, err := Generate(generateConfig(), quietLogger())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	got, err := os.ReadFile(report.Rows[0].Output)
	if err != nil {
		t.Fatal(err)
	}

	var want bytes.Buffer
	fields := []models.Field{
		{Key: "ResponseID", Value: "R2"},
		{Key: "Q1 How are you", Value: "Okay"},
	}
	if err := pdfdoc.Render(fields, &want, pdfdoc.RenderOptions{CreationDate: fixedNow}); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want.Bytes()) {
		t.Error("Expected output to be the rendered row document byte for byte")
	}

	info, err := pdfdoc.Inspect(report.Rows[0].Output)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !strings.Contains(info.Text, "Q1 How are you:") || !strings.Contains(info.Text, "Okay") {
		t.Errorf("Unexpected document text %q", info.Text)
	}
}

func TestGenerateCompositeHeader(t *testing.T) {
	useFixedClock(t)
	t.Chdir(t.TempDir())

	writeSheet(t, filepath.Join("outbox", "updated_exported_data.xlsx"), [][]string{
		{"StartDate", "ResponseId", "Q1", "Name", "Show", "Matched Files"},
		{"Start Date", "Response ID", "How are you", "Full name", "Show name", ""},
		{"2024-01-01", "R_1", "Fine", "Ada Lovelace", "Spring/Gala", ""},
		{"2024-01-02", "R_2", "Tired", "", "", ""},
	})

	cfg := Default()
	cfg.Generate.NameColumn = "Name Full name"
	cfg.Generate.GroupColumn = "Show Show name"

	report, err := Generate(cfg, quietLogger())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if got := report.Rows[0].Output; got != filepath.Join("outbox", "pdfs", "Ada Lovelace - SpringGala.pdf") {
		t.Errorf("Unexpected output %q", got)
	}
	if got := report.Rows[1].Output; got != filepath.Join("outbox", "pdfs", "row_2.pdf") {
		t.Errorf("Unexpected fallback output %q", got)
	}

	info, err := pdfdoc.Inspect(report.Rows[0].Output)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	if !strings.Contains(info.Text, "Q1 How are you:") {
		t.Errorf("Expected composite header in text, got %q", info.Text)
	}
	if strings.Contains(info.Text, "StartDate") {
		t.Errorf("Excluded column rendered: %q", info.Text)
	}
}

func TestGenerateMissingInput(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Generate(Default(), quietLogger())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

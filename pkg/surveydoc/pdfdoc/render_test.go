package pdfdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
)

var fixedDate = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestRenderFile(t *testing.T) {
	fields := []models.Field{
		{Key: "ResponseID", Value: "R1"},
		{Key: "Q1 How are you", Value: "Fine"},
		{Key: "Q2 Links", Value: "https://example.com\n./inbox/data/R1_photo.pdf"},
	}

	path := filepath.Join(t.TempDir(), "row.pdf")
	if err := RenderFile(fields, path, RenderOptions{CreationDate: fixedDate}); err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}

	pages, err := PageCount(path)
	if err != nil {
		t.Fatalf("PageCount failed: %v", err)
	}
	if pages != 1 {
		t.Errorf("Expected 1 page, got %d", pages)
	}

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	for _, want := range []string{"Q1 How are you:", "Fine", "ResponseID:", "R1"} {
		if !strings.Contains(info.Text, want) {
			t.Errorf("Expected text to contain %q, got %q", want, info.Text)
		}
	}
	if info.Pages != 1 {
		t.Errorf("Expected Inspect to report 1 page, got %d", info.Pages)
	}
}

func TestRenderKeepsNonLatinText(t *testing.T) {
	fields := []models.Field{
		{Key: "Name", Value: "Zoë Ωmega"},
		{Key: "Город", Value: "Привет, мир"},
	}

	path := filepath.Join(t.TempDir(), "row.pdf")
	if err := RenderFile(fields, path, RenderOptions{CreationDate: fixedDate}); err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}

	info, err := Inspect(path)
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	for _, want := range []string{"Zoë", "Ωmega", "Город:", "Привет"} {
		if !strings.Contains(info.Text, want) {
			t.Errorf("Expected text to contain %q, got %q", want, info.Text)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	fields := []models.Field{{Key: "Name", Value: "Ada\nLovelace"}}

	var a, b bytes.Buffer
	if err := Render(fields, &a, RenderOptions{CreationDate: fixedDate}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if err := Render(fields, &b, RenderOptions{CreationDate: fixedDate}); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("Expected identical output for identical input and date")
	}
}

func TestRenderEmptyAndLong(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.pdf")
	if err := RenderFile(nil, empty, RenderOptions{}); err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	if pages, err := PageCount(empty); err != nil || pages != 1 {
		t.Errorf("Expected 1 blank page, got %d (%v)", pages, err)
	}

	var fields []models.Field
	for i := 0; i < 60; i++ {
		fields = append(fields, models.Field{
			Key:   fmt.Sprintf("Q%d", i),
			Value: strings.Repeat("word ", 40),
		})
	}
	long := filepath.Join(dir, "long.pdf")
	if err := RenderFile(fields, long, RenderOptions{}); err != nil {
		t.Fatalf("RenderFile failed: %v", err)
	}
	if pages, err := PageCount(long); err != nil || pages < 2 {
		t.Errorf("Expected page breaks, got %d pages (%v)", pages, err)
	}
}

func TestRenderFileRemovesPartialOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "row.pdf")
	if err := RenderFile(nil, path, RenderOptions{}); err == nil {
		t.Fatal("Expected error for missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected no output file")
	}
}

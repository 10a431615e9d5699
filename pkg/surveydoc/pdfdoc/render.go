package pdfdoc

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ukaji3/surveydoc-go/pkg/surveydoc/models"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// fontFamily is the embedded UTF-8 font used for row documents. It covers
// Latin, Greek and Cyrillic scripts.
const fontFamily = "Go"

// RenderOptions configures row document rendering.
type RenderOptions struct {
	// CreationDate is stamped into the document metadata.
	// If zero, the current time is used.
	CreationDate time.Time
}

// Render lays out fields as a letter-size document and writes it to w.
// Each field becomes a bold "Key: " followed by the value in regular text.
// Line breaks inside values are kept, URLs and ./ paths become blue links.
// A document without fields still has one blank page.
func Render(fields []models.Field, w io.Writer, opts RenderOptions) error {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetMargins(PageMargin, PageMargin, PageMargin)
	pdf.SetAutoPageBreak(true, PageMargin)
	pdf.SetCatalogSort(true)

	created := opts.CreationDate
	if created.IsZero() {
		created = time.Now()
	}
	pdf.SetCreationDate(created)
	pdf.SetModificationDate(created)

	pdf.AddUTF8FontFromBytes(fontFamily, "", goregular.TTF)
	pdf.AddUTF8FontFromBytes(fontFamily, "B", gobold.TTF)
	pdf.AddPage()

	for _, field := range fields {
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont(fontFamily, "B", FontSize)
		pdf.Write(LineHeight, field.Key+": ")

		pdf.SetFont(fontFamily, "", FontSize)
		for _, seg := range Linkify(normalizeNewlines(field.Value)) {
			if seg.Link == "" {
				pdf.SetTextColor(0, 0, 0)
				pdf.Write(LineHeight, seg.Text)
				continue
			}
			pdf.SetTextColor(0, 0, 255)
			pdf.WriteLinkString(LineHeight, seg.Text, seg.Link)
		}

		pdf.Ln(LineHeight)
		pdf.Ln(FieldSpacer)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// RenderFile renders fields into a new file at path. The partial file is
// removed when rendering fails.
func RenderFile(fields []models.Field, path string, opts RenderOptions) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return Render(fields, f, opts)
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

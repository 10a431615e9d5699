package pdfdoc

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Info describes the content of an existing PDF file.
type Info struct {
	Path  string
	Pages int
	Text  string
}

// Inspect reads the page count and plain text layer of the PDF at path.
func Inspect(path string) (*Info, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	textReader, err := r.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("read text %s: %w", path, err)
	}
	var sb strings.Builder
	if _, err := io.Copy(&sb, textReader); err != nil {
		return nil, err
	}

	return &Info{
		Path:  path,
		Pages: r.NumPage(),
		Text:  sb.String(),
	}, nil
}

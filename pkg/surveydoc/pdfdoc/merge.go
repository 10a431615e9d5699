package pdfdoc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func init() {
	// Use the built-in pdfcpu defaults instead of a per-user config dir.
	api.DisableConfigDir()
}

// SelectAttachments splits paths into attachments that can be merged and
// those that are skipped. A path is usable when it exists as a regular file
// and has a .pdf extension (any case). Input order is kept.
func SelectAttachments(paths []string) (usable, skipped []string) {
	for _, p := range paths {
		if isPDFFile(p) {
			usable = append(usable, p)
		} else {
			skipped = append(skipped, p)
		}
	}
	return usable, skipped
}

func isPDFFile(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// MergeFiles writes the pages of mainPDF followed by the pages of each
// attachment, in order, to out. Attachments are used as given; filter them
// with SelectAttachments first.
func MergeFiles(mainPDF string, attachments []string, out string) error {
	conf := model.NewDefaultConfiguration()
	conf.CreateBookmarks = false

	inFiles := append([]string{mainPDF}, attachments...)
	return api.MergeCreateFile(inFiles, out, false, conf)
}

// PageCount returns the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}

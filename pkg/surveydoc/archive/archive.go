// Package archive finds and unpacks delivered zip archives.
package archive

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// ErrInvalidArchive indicates the file is not a readable zip archive.
var ErrInvalidArchive = errors.New("invalid zip archive")

// ErrUnsafePath indicates a zip entry that would be written outside the
// extraction root.
var ErrUnsafePath = errors.New("unsafe path in archive")

// Candidate is an archive file found in a source directory.
type Candidate struct {
	Path    string
	ModTime time.Time
}

// FindRecent returns the files in dir matching pattern that were modified
// after since, oldest first.
func FindRecent(dir, pattern string, since time.Time) ([]Candidate, error) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, err
	}

	var result []Candidate
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() || !info.ModTime().After(since) {
			continue
		}
		result = append(result, Candidate{Path: path, ModTime: info.ModTime()})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].ModTime.Before(result[j].ModTime)
	})
	return result, nil
}

package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Extract unpacks the zip file at src into dst and returns the extracted
// file paths relative to dst, in archive order. A file that is not a zip
// archive, or holds an entry that fails to decompress or verify, yields an
// error wrapping ErrInvalidArchive.
func Extract(src, dst string) ([]string, error) {
	r, err := zip.OpenReader(src)
	if err != nil {
		if isCorrupt(err) {
			return nil, fmt.Errorf("%s: %w: %v", filepath.Base(src), ErrInvalidArchive, err)
		}
		return nil, err
	}
	defer r.Close()

	var files []string
	for _, f := range r.File {
		rel, err := entryPath(f.Name)
		if err != nil {
			return files, err
		}

		target := filepath.Join(dst, rel)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0755); err != nil {
				return files, err
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			if isCorrupt(err) {
				return files, fmt.Errorf("extract %s: %w: %v", f.Name, ErrInvalidArchive, err)
			}
			return files, fmt.Errorf("extract %s: %w", f.Name, err)
		}
		files = append(files, rel)
	}

	return files, nil
}

func isCorrupt(err error) bool {
	return errors.Is(err, zip.ErrFormat) || errors.Is(err, zip.ErrAlgorithm) || errors.Is(err, zip.ErrChecksum)
}

// entryPath cleans a zip entry name into a relative path that stays inside
// the extraction root.
func entryPath(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	rel := filepath.FromSlash(strings.TrimPrefix(name, "/"))
	rel = filepath.Clean(rel)
	if rel == "." || !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%w: %s", ErrUnsafePath, name)
	}
	return rel, nil
}

// extractFile writes a single zip entry to target, creating parent directories.
func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}

	out, err := os.Create(target)
	if err != nil {
		rc.Close()
		return err
	}

	_, copyErr := io.Copy(out, rc)
	closeOutErr := out.Close()
	closeRcErr := rc.Close()

	if err := errors.Join(copyErr, closeOutErr, closeRcErr); err != nil {
		os.Remove(target)
		return err
	}
	return nil
}

// Walk returns every regular file under root as a path relative to root,
// in lexical order. Symlinks to regular files are listed; symlinked
// directories are not descended into.
func Walk(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !isRegularFile(path, d) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	return files, err
}

func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Move moves src to dst, replacing dst. Parent directories of dst are
// created. When a rename is not possible (e.g. across devices) the file is
// copied and the source removed.
func Move(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	if err := os.Remove(dst); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	if err := copyFile(src, dst); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

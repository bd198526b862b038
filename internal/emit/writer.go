// Package emit writes the generated CSV files. Files are staged under
// temporary names and only renamed into place once every file of the run has
// been fully written, so a failed run leaves no partial dataset behind.
package emit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

type stagedFile struct {
	tmp   string
	final string
}

// Writer stages CSV files in an output directory.
type Writer struct {
	dir    string
	staged []stagedFile
}

// NewWriter verifies the output directory exists, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return &Writer{dir: dir}, nil
}

// WriteFile stages one CSV file: a header line followed by count rows
// produced by row(id) for sequential IDs 1..count. Fields are comma-joined
// without quoting; every generated field comes from a fixed comma-free
// vocabulary or numeric formatting. onRow, if non-nil, is called after each
// row for progress reporting.
func (w *Writer) WriteFile(name, header string, count int, row func(id int) []string, onRow func()) error {
	tmp := filepath.Join(w.dir, name+".tmp")
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", tmp, err)
	}

	bw := bufio.NewWriter(f)
	if _, err := bw.WriteString(header + "\n"); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}

	for id := 1; id <= count; id++ {
		if _, err := bw.WriteString(strings.Join(row(id), ",") + "\n"); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("failed to write %s row %d: %w", name, id, err)
		}
		if onRow != nil {
			onRow()
		}
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to close %s: %w", name, err)
	}

	w.staged = append(w.staged, stagedFile{
		tmp:   tmp,
		final: filepath.Join(w.dir, name),
	})
	return nil
}

// Commit renames every staged file into place and returns the final paths in
// staging order.
func (w *Writer) Commit() ([]string, error) {
	paths := make([]string, 0, len(w.staged))
	for _, s := range w.staged {
		if err := os.Rename(s.tmp, s.final); err != nil {
			return nil, fmt.Errorf("failed to finalize %s: %w", s.final, err)
		}
		paths = append(paths, s.final)
	}
	w.staged = nil
	return paths, nil
}

// Discard removes any staged temporary files. Safe to call after a partial
// failure or after Commit.
func (w *Writer) Discard() {
	for _, s := range w.staged {
		os.Remove(s.tmp)
	}
	w.staged = nil
}

package emit

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func TestWriteFileAndCommit(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	row := func(id int) []string {
		return []string{strconv.Itoa(id), "name-" + strconv.Itoa(id)}
	}
	if err := w.WriteFile("test.csv", "ID,Name", 3, row, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// Staged only: final file must not exist before Commit.
	final := filepath.Join(dir, "test.csv")
	if _, err := os.Stat(final); !os.IsNotExist(err) {
		t.Fatal("final file should not exist before Commit")
	}

	paths, err := w.Commit()
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if len(paths) != 1 || paths[0] != final {
		t.Errorf("Commit returned %v, want [%s]", paths, final)
	}

	lines := readLines(t, final)
	if len(lines) != 4 {
		t.Fatalf("file has %d lines, want header + 3 rows", len(lines))
	}
	if lines[0] != "ID,Name" {
		t.Errorf("header = %q, want ID,Name", lines[0])
	}
	if lines[1] != "1,name-1" || lines[3] != "3,name-3" {
		t.Errorf("unexpected rows: %v", lines[1:])
	}

	// No temp files left behind.
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("temp file %s left after Commit", e.Name())
		}
	}
}

func TestNewWriterCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := NewWriter(dir); err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("output directory was not created: %v", err)
	}
}

func TestNewWriterUnwritablePath(t *testing.T) {
	// A file blocking the directory path makes MkdirAll fail.
	base := t.TempDir()
	blocker := filepath.Join(base, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatalf("failed to create blocker file: %v", err)
	}

	if _, err := NewWriter(filepath.Join(blocker, "out")); err == nil {
		t.Error("NewWriter should fail when the directory cannot be created")
	}
}

func TestDiscardRemovesStagedFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	row := func(id int) []string { return []string{strconv.Itoa(id)} }
	if err := w.WriteFile("a.csv", "ID", 2, row, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := w.WriteFile("b.csv", "ID", 2, row, nil); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	w.Discard()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("directory should be empty after Discard, has %d entries", len(entries))
	}
}

func TestWriteFileProgressCallback(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	calls := 0
	row := func(id int) []string { return []string{strconv.Itoa(id)} }
	if err := w.WriteFile("a.csv", "ID", 5, row, func() { calls++ }); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if calls != 5 {
		t.Errorf("onRow called %d times, want 5", calls)
	}
}

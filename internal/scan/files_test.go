package scan

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestIsImage(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"image.PNG", true},
		{"image.jpg", true},
		{"image.jpeg", true},
		{"image.gif", true},
		{"image.txt", false},
		{"image", false},
		{".jpeg", true}, // Test with only extension
	}

	for _, test := range tests {
		result := IsImage(test.name)
		if result != test.expected {
			t.Errorf("IsImage(%s) = %v; want %v", test.name, result, test.expected)
		}
	}
}

// writeFiles creates the named files in dir with size bytes each.
func writeFiles(t *testing.T, dir string, files map[string]int) {
	t.Helper()
	for name, size := range files {
		content := make([]byte, size)
		if err := os.WriteFile(filepath.Join(dir, name), content, 0644); err != nil {
			t.Fatalf("Failed to write test file %s: %v", name, err)
		}
	}
}

func TestDir(t *testing.T) {
	rootDir := t.TempDir()
	writeFiles(t, rootDir, map[string]int{
		"img10.jpg":    10,
		"img2.jpg":     10,
		"img1.PNG":     10,
		"notes.txt":    10,
		"empty.gif":    0, // 0-byte image, should be skipped
		"holiday.jpeg": 10,
	})
	if err := os.Mkdir(filepath.Join(rootDir, "sub.jpg"), 0755); err != nil {
		t.Fatalf("Failed to create subdirectory: %v", err)
	}

	got, err := Dir(rootDir)
	if err != nil {
		t.Fatalf("Dir() error: %v", err)
	}
	var names []string
	for _, p := range got {
		names = append(names, filepath.Base(p))
	}
	want := []string{"holiday.jpeg", "img1.PNG", "img2.jpg", "img10.jpg"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Dir() = %v, want %v", names, want)
	}
}

func TestDirMissing(t *testing.T) {
	if _, err := Dir(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Dir() on a missing directory should fail")
	}
}

func TestExpand(t *testing.T) {
	rootDir := t.TempDir()
	albumDir := filepath.Join(rootDir, "album")
	if err := os.Mkdir(albumDir, 0755); err != nil {
		t.Fatalf("Failed to create album dir: %v", err)
	}
	writeFiles(t, rootDir, map[string]int{"cover.png": 10, "readme.md": 10})
	writeFiles(t, albumDir, map[string]int{"b.jpg": 10, "a.jpg": 10})

	var logs []string
	logger := func(message string) {
		t.Logf("ScanTestLogger: %s", message)
		logs = append(logs, message)
	}

	missing := filepath.Join(rootDir, "missing.gif")
	got := Expand([]string{
		filepath.Join(rootDir, "cover.png"),
		albumDir,
		filepath.Join(rootDir, "readme.md"),
		missing,
	}, logger)

	want := []string{
		filepath.Join(rootDir, "cover.png"),
		filepath.Join(albumDir, "a.jpg"),
		filepath.Join(albumDir, "b.jpg"),
		missing,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand() = %v, want %v", got, want)
	}
	for _, p := range got {
		if !filepath.IsAbs(p) {
			t.Errorf("Expand() path %s is not absolute", p)
		}
	}

	skipped := false
	for _, l := range logs {
		if strings.Contains(l, "readme.md") {
			skipped = true
		}
	}
	if !skipped {
		t.Errorf("expected a log line about skipping readme.md, got %v", logs)
	}
}

func TestExpandEmpty(t *testing.T) {
	got := Expand(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("Expand(nil) = %#v, want empty non-nil slice", got)
	}
}

func TestExpandNilLoggerFallsBackToLog(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"notes.txt": 10})
	got := Expand([]string{filepath.Join(dir, "notes.txt")}, nil)

	if len(got) != 0 {
		t.Errorf("Expand() = %v, want no paths", got)
	}
	if !strings.Contains(buf.String(), "notes.txt") {
		t.Errorf("expected the skip message on the standard logger, got %q", buf.String())
	}
}

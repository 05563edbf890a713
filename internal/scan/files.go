// Package scan turns user-selected files and folders into the list of image
// paths handed to the picture collection.
package scan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/facette/natsort"
)

// LoggerFunc defines a function signature for logging messages.
type LoggerFunc func(message string)

// Extensions lists the file extensions treated as images, lower case with
// the leading dot.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// IsImage checks if a file name has a supported image extension.
func IsImage(n string) bool {
	ext := strings.ToLower(filepath.Ext(n))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Dir lists the non-empty image files directly inside dir in natural order,
// so that "img2.jpg" sorts before "img10.jpg".
func Dir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsImage(e.Name()) {
			continue
		}
		fi, err := e.Info()
		if err != nil || fi.Size() == 0 {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	natsort.Sort(paths)
	return paths, nil
}

// Expand resolves a mixed list of files and folders into image paths,
// keeping the order of the arguments. Folders are replaced by their images,
// files without an image extension are skipped. Image paths that cannot be
// stat'ed are kept so that the collection reports their load failure.
// A nil logger falls back to the standard log package.
func Expand(paths []string, logger LoggerFunc) []string {
	logf := func(format string, args ...interface{}) {
		if logger != nil {
			logger(fmt.Sprintf(format, args...))
		} else {
			log.Printf(format, args...)
		}
	}

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err == nil {
			p = abs
		}
		fi, err := os.Stat(p)
		switch {
		case err == nil && fi.IsDir():
			found, err := Dir(p)
			if err != nil {
				logf("Skipping %s: %v", p, err)
				continue
			}
			logf("Found %d images in %s", len(found), p)
			out = append(out, found...)
		case !IsImage(p):
			logf("Skipping %s: not a supported image file", filepath.Base(p))
		default:
			out = append(out, p)
		}
	}
	return out
}

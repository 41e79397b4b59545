// Package fs writes extraction results as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/notemd/notemd"
)

// Ensure Writer implements notemd.ResultWriter at compile time.
var _ notemd.ResultWriter = (*Writer)(nil)

// Writer writes results as Markdown files to a directory, one file per page,
// named after the sanitized title. Rewriting a file whose content is unchanged
// is skipped so repeated exports keep file timestamps stable.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write stores the result and returns the file path.
func (w *Writer) Write(ctx context.Context, res *notemd.ExtractResult) (string, error) {
	if res == nil || strings.TrimSpace(res.Markdown) == "" {
		return "", notemd.Errorf(notemd.EINVALID, "result content required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := notemd.SanitizeFilename(res.Title)
	if name == "" {
		name = "notion-export"
	}
	fullPath := filepath.Join(w.baseDir, name+".md")

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	content := []byte(res.Markdown)
	if existing, err := os.ReadFile(fullPath); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(content) {
			return fullPath, nil
		}
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}

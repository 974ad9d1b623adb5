package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Writer persists one output page. Per-file failures are reported to the
// caller, which logs and continues; they are never fatal to the whole run.
type Writer interface {
	Write(path string, content string) error
}

// DiskWriter writes pages under a destination root, refusing paths that
// escape it.
type DiskWriter struct {
	Root string
}

// NewDiskWriter creates the destination root and returns a writer scoped to it.
func NewDiskWriter(root string) (*DiskWriter, error) {
	if root == "" {
		return nil, fmt.Errorf("destination root is required")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create destination root: %w", err)
	}
	return &DiskWriter{Root: filepath.Clean(root)}, nil
}

// Write stores content at the path relative to the destination root.
func (w *DiskWriter) Write(path string, content string) error {
	cleanRel := filepath.Clean(path)
	if filepath.IsAbs(cleanRel) || strings.HasPrefix(cleanRel, "..") {
		return fmt.Errorf("output path must stay under destination root: %s", path)
	}
	fullPath := filepath.Join(w.Root, cleanRel)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G306 -- generated pages are public content
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write output file %s: %w", fullPath, err)
	}
	return nil
}

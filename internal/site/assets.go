package site

import (
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/symdoc/internal/config"
	"git.home.luguber.info/inful/symdoc/internal/logfields"
)

//go:embed static/*
var builtinStatic embed.FS

// copyBuiltinStatic places the built-in template assets under styles/ in the
// destination. Per-file failures are logged and skipped.
func (p *Publisher) copyBuiltinStatic() {
	entries, err := fs.ReadDir(builtinStatic, "static")
	if err != nil {
		slog.Error("Failed to read built-in static assets", logfields.Error(err))
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fs.ReadFile(builtinStatic, filepath.Join("static", entry.Name()))
		if err != nil {
			slog.Error("Failed to read built-in asset", logfields.Path(entry.Name()), logfields.Error(err))
			p.report.AssetFailures++
			continue
		}
		if err := p.writer.Write(filepath.Join("styles", entry.Name()), string(data)); err != nil {
			slog.Error("Failed to copy built-in asset", logfields.Path(entry.Name()), logfields.Error(err))
			p.report.AssetFailures++
			continue
		}
		p.report.AssetsCopied++
	}
}

// copyUserStatic copies each configured static path into the destination,
// honoring include/exclude substring filters. Failures cost one file each,
// never the whole copy.
func (p *Publisher) copyUserStatic(paths []config.StaticPath) {
	for _, sp := range paths {
		root := filepath.Clean(sp.Path)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Error("Static asset walk error", logfields.Path(path), logfields.Error(err))
				p.report.AssetFailures++
				return nil
			}
			if d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil
			}
			if !staticIncluded(rel, sp.Include, sp.Exclude) {
				return nil
			}
			data, readErr := os.ReadFile(path)
			if readErr != nil {
				slog.Error("Failed to read static asset", logfields.Path(path), logfields.Error(readErr))
				p.report.AssetFailures++
				return nil
			}
			if writeErr := p.writer.Write(rel, string(data)); writeErr != nil {
				slog.Error("Failed to copy static asset", logfields.Path(rel), logfields.Error(writeErr))
				p.report.AssetFailures++
				return nil
			}
			p.report.AssetsCopied++
			return nil
		})
		if err != nil {
			slog.Error("Static asset copy failed", logfields.Path(root), logfields.Error(err))
		}
	}
}

// staticIncluded applies substring filters: include filters (when present)
// must match at least once, exclude filters always win.
func staticIncluded(rel string, include, exclude []string) bool {
	slashed := filepath.ToSlash(rel)
	for _, ex := range exclude {
		if ex != "" && strings.Contains(slashed, ex) {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, in := range include {
		if in != "" && strings.Contains(slashed, in) {
			return true
		}
	}
	return false
}

package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyLongname = "longname"
	KeyKind     = "kind"
	KeyCategory = "category"
	KeyPath     = "path"
	KeyPage     = "page"
	KeyView     = "view"
	KeyCount    = "count"
	KeyStep     = "step"
	KeyError    = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Longname(l string) slog.Attr { return slog.String(KeyLongname, l) }
func Kind(k string) slog.Attr     { return slog.String(KeyKind, k) }
func Category(c string) slog.Attr { return slog.String(KeyCategory, c) }
func Path(p string) slog.Attr     { return slog.String(KeyPath, p) }
func Page(p string) slog.Attr     { return slog.String(KeyPage, p) }
func View(v string) slog.Attr     { return slog.String(KeyView, v) }
func Count(n int) slog.Attr       { return slog.Int(KeyCount, n) }
func Step(s string) slog.Attr     { return slog.String(KeyStep, s) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

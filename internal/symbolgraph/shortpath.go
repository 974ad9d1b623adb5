package symbolgraph

import (
	"path/filepath"
	"strings"
)

// shortPaths strips the longest common directory prefix from every recorded
// source path and normalizes separators to forward slashes. With a single
// path the prefix is its own directory, leaving just the filename.
func shortPaths(paths []string) map[string]string {
	out := make(map[string]string, len(paths))
	if len(paths) == 0 {
		return out
	}
	prefix := commonDirPrefix(paths)
	for _, p := range paths {
		short := filepath.ToSlash(p)
		if len(prefix) > 0 {
			short = strings.TrimPrefix(short, prefix)
			short = strings.TrimPrefix(short, "/")
		}
		out[p] = short
	}
	return out
}

// commonDirPrefix computes the shared leading directory segments across all
// paths, never consuming a path's final (filename) segment.
func commonDirPrefix(paths []string) string {
	dirs := make([][]string, len(paths))
	for i, p := range paths {
		dir := filepath.ToSlash(filepath.Dir(p))
		if dir == "." {
			dirs[i] = nil
			continue
		}
		dirs[i] = strings.Split(dir, "/")
	}
	common := dirs[0]
	for _, segs := range dirs[1:] {
		n := 0
		for n < len(common) && n < len(segs) && common[n] == segs[n] {
			n++
		}
		common = common[:n]
		if len(common) == 0 {
			break
		}
	}
	return strings.Join(common, "/")
}

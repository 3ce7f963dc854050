package project

import (
	"os"
	"path/filepath"
	"strings"
)

var headerSuffixes = []string{".h", ".hpp", ".hxx", ".hh"}
var sourceSuffixes = []string{".cpp", ".cc", ".cxx", ".c"}

func isHeaderPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range headerSuffixes {
		if ext == s {
			return true
		}
	}
	return false
}

// CorrespondingHeaderSource returns the source file paired with a header
// (or the header paired with a source), or "" if none is found. The file
// next to the original with the same base name wins; otherwise the project
// file sharing the longest path prefix with the original is picked.
func (p *Project) CorrespondingHeaderSource(path string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.root, path)
	}

	suffixes := sourceSuffixes
	if !isHeaderPath(path) {
		suffixes = headerSuffixes
	}

	base := strings.TrimSuffix(path, filepath.Ext(path))
	for _, suffix := range suffixes {
		candidate := base + suffix
		if _, err := os.Stat(candidate); err == nil {
			log.Debugf("CorrespondingHeaderSource %s => %s", path, candidate)
			return candidate
		}
	}

	// Fall back to the project file with the most path in common.
	baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	files, err := p.Files()
	if err != nil {
		return ""
	}
	best := ""
	bestCommon := 0
	for _, rel := range files {
		full := filepath.Join(p.root, rel)
		ext := strings.ToLower(filepath.Ext(full))
		if !hasSuffixIn(ext, suffixes) {
			continue
		}
		if !strings.EqualFold(strings.TrimSuffix(filepath.Base(full), ext), baseName) {
			continue
		}
		if common := commonPathLength(full, path); common > bestCommon {
			bestCommon = common
			best = full
		}
	}
	if best == "" {
		log.Warningf("CorrespondingHeaderSource %s - not found", path)
	}
	return best
}

func hasSuffixIn(ext string, suffixes []string) bool {
	for _, s := range suffixes {
		if ext == s {
			return true
		}
	}
	return false
}

func commonPathLength(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if strings.ToLower(string(a[i])) != strings.ToLower(string(b[i])) {
			return i
		}
	}
	return n
}

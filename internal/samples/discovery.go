// Package samples discovers fastq input files and derives sample names
// from the configured extension and read-pair suffix markers.
package samples

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Discover globs indir for input files ending in ext and returns them
// sorted. An empty result is not an error here; the caller decides whether
// a run without inputs is fatal.
func Discover(indir, ext string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(indir, "*"+ext))
	if err != nil {
		return nil, fmt.Errorf("scan input dir: %w", err)
	}
	sort.Strings(matches)
	return matches, nil
}

// Names derives the deduplicated, sorted sample names from a list of input
// files by stripping the extension and both read-pair markers.
func Names(infiles []string, ext string, reads []string) []string {
	seen := make(map[string]bool)
	for _, f := range infiles {
		name := strings.TrimSuffix(filepath.Base(f), ext)
		for _, marker := range reads {
			name = strings.Replace(name, marker, "", 1)
		}
		seen[name] = true
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsPaired reports whether the input files form paired-end samples: every
// base name groups exactly two files, one per read-pair marker. Read-pair
// markers are matched at the end of the file name, before the extension.
func IsPaired(infiles []string, ext string, reads []string) (bool, error) {
	if len(reads) != 2 {
		return false, fmt.Errorf("need exactly 2 read-pair markers, got %d", len(reads))
	}

	re, err := regexp.Compile("^(.+)(" + regexp.QuoteMeta(reads[0]) + "|" + regexp.QuoteMeta(reads[1]) + ")$")
	if err != nil {
		return false, fmt.Errorf("bad read-pair markers: %w", err)
	}

	groups := make(map[string]int)
	for _, f := range infiles {
		base := strings.TrimSuffix(filepath.Base(f), ext)
		if m := re.FindStringSubmatch(base); m != nil {
			groups[m[1]]++
		}
	}

	if len(groups) == 0 {
		return false, nil
	}
	for _, n := range groups {
		if n != 2 {
			return false, nil
		}
	}
	return true, nil
}

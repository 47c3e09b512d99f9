package clean

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/winsweep/winsweep/internal/config"
	"github.com/winsweep/winsweep/internal/envutil"
)

// Target is a concrete, currently-existing filesystem path produced from a
// PathPattern.
type Target struct {
	Path    string
	IsDir   bool
	Recurse bool
}

// Resolve expands a PathPattern into the deduplicated set of targets that
// currently exist on disk. Environment references are substituted first; a
// pattern referencing an unset variable resolves to nothing. Wildcard
// segments are expanded level by level against the live filesystem, so a
// missing intermediate directory short-circuits to an empty result.
//
// Resolution order follows filesystem enumeration order and is not stable
// across runs. Read-only: Resolve never mutates anything.
func Resolve(p config.PathPattern) []Target {
	expanded, ok := envutil.ExpandStrict(p.Pattern)
	if !ok || expanded == "" {
		return nil
	}

	// Patterns must anchor to absolute user/system roots. A half-expanded
	// or relative result would glob against the working directory.
	if !filepath.IsAbs(expanded) {
		return nil
	}

	matches, err := filepath.Glob(expanded)
	if err != nil {
		// Malformed pattern; treat as no matches.
		return nil
	}

	// Deduplicate case-insensitively — %TEMP% often points inside
	// %LOCALAPPDATA%, and NTFS is case-preserving but case-insensitive.
	seen := make(map[string]bool, len(matches))
	targets := make([]Target, 0, len(matches))
	for _, m := range matches {
		key := strings.ToLower(filepath.Clean(m))
		if seen[key] {
			continue
		}
		seen[key] = true

		info, err := os.Lstat(m)
		if err != nil {
			// Raced away between Glob and Lstat.
			continue
		}
		targets = append(targets, Target{
			Path:    m,
			IsDir:   info.IsDir(),
			Recurse: p.Recurse,
		})
	}

	return targets
}

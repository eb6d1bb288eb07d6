package dsfrkit

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics
type ScanStats struct {
	FilesDiscovered int // Files matched by arguments and globs
	FilesScanned    int // Files kept after filtering
	FilesSkipped    int // Lock files and gitignored files
}

var (
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// loadGitIgnore loads the .gitignore of the working directory once.
// A missing .gitignore is fine.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// isLockFile reports whether path is an Office owner file ("~$deck.pptx")
// left next to a deck that is open in PowerPoint.
func isLockFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "~$")
}

// shouldSkipFile filters discovered files.
//
// Two layers:
// 1. Office lock files are always skipped
// 2. Relative paths matched by the project .gitignore are skipped
func shouldSkipFile(path string) bool {
	if isLockFile(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project
	if !filepath.IsAbs(path) {
		if gi := loadGitIgnore(); gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// FindFiles expands command-line arguments into files with one of the given
// extensions. An argument may be a file (kept even with another extension),
// a directory (searched recursively) or a doublestar glob. A plain path that
// does not exist is an ErrFileNotFound; a glob matching nothing is not.
func FindFiles(args []string, exts ...string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	add := func(path string, explicit bool) {
		if seen[path] {
			return
		}
		if !explicit && !hasExt(path, exts) {
			return
		}
		stats.FilesDiscovered++
		if !explicit && shouldSkipFile(path) {
			stats.FilesSkipped++
			return
		}
		seen[path] = true
		files = append(files, path)
		stats.FilesScanned++
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err == nil && !info.IsDir():
			add(arg, true)
			continue
		case err == nil && info.IsDir():
			matches, err := doublestar.FilepathGlob(filepath.Join(arg, "**", "*"))
			if err != nil {
				return nil, stats, fmt.Errorf("scanning %s: %w", arg, err)
			}
			addMatches(matches, add)
			continue
		}

		if !hasMeta(arg) {
			return nil, stats, fmt.Errorf("%w: %s", ErrFileNotFound, arg)
		}
		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, stats, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, stats, fmt.Errorf("expanding %s: %w", arg, err)
		}
		addMatches(matches, add)
	}

	return files, stats, nil
}

func addMatches(matches []string, add func(string, bool)) {
	sort.Strings(matches)
	for _, match := range matches {
		info, err := os.Stat(match)
		if err == nil && !info.IsDir() {
			add(match, false)
		}
	}
}

func hasExt(path string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

func hasMeta(path string) bool {
	return strings.ContainsAny(path, "*?[{")
}

// FindDecks is FindFiles restricted to .pptx files.
func FindDecks(args []string) ([]string, ScanStats, error) {
	return FindFiles(args, ".pptx")
}

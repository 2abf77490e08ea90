// Package source expands style document patterns into file lists.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// Extensions of the style documents picked up by Expand.
var Extensions = []string{".yaml", ".yml", ".json"}

// Stats counts the files seen while expanding patterns.
type Stats struct {
	FilesDiscovered int
	FilesScanned    int
	FilesSkipped    int
}

// Expander expands glob patterns, honoring a .gitignore file.
type Expander struct {
	gitignore *ignore.GitIgnore
}

// NewExpander loads the .gitignore at path. A missing or unreadable file
// disables ignore matching.
func NewExpander(gitignorePath string) *Expander {
	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return &Expander{}
	}
	return &Expander{gitignore: gi}
}

// Expand returns the style documents matching patterns, in pattern order
// and without duplicates. Directories and files with other extensions are
// not counted.
func (e *Expander) Expand(patterns []string) ([]string, Stats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := Stats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("expand %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] || !IsStyleDocument(match) {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if e.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// shouldSkip applies the .gitignore to relative paths only; absolute
// paths may live outside the project.
func (e *Expander) shouldSkip(path string) bool {
	if e.gitignore == nil || filepath.IsAbs(path) {
		return false
	}
	return e.gitignore.MatchesPath(path)
}

// IsStyleDocument reports whether path has a style document extension.
func IsStyleDocument(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, want := range Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

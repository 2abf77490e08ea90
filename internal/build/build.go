// Package build compiles style documents into a stylesheet.
package build

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/yacobolo/unicss"
	"github.com/yacobolo/unicss/internal/source"
)

// Config configures a build.
type Config struct {
	// Patterns select the style documents (doublestar globs).
	Patterns []string
	// ThemePath is a YAML or JSON theme document. Empty uses the bundled
	// theme.
	ThemePath string
	// Output is the stylesheet path. Empty leaves the CSS in the result.
	Output string
	// Database is a SQLite file accumulating rules across builds. Empty
	// builds into memory.
	Database string
	// Gitignore is consulted for relative paths.
	Gitignore string
	Logger    *zap.Logger
}

// FileResult describes one compiled document.
type FileResult struct {
	Path     string `json:"path"`
	Hash     string `json:"hash"`
	Rules    int    `json:"rules"`
	Inserted bool   `json:"inserted"`
}

// Result summarizes a build.
type Result struct {
	FilesScanned int          `json:"files_scanned"`
	FilesSkipped int          `json:"files_skipped"`
	FilesFailed  int          `json:"files_failed"`
	Files        []FileResult `json:"files"`
	Emitted      int          `json:"emitted"`
	Output       string       `json:"output,omitempty"`
	CSS          string       `json:"-"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// ErrNoDocuments is returned when the patterns match nothing.
var ErrNoDocuments = errors.New("no style documents found")

// Run compiles every document matched by cfg.Patterns through one
// instance, so identical groups across files are emitted once. Documents
// that cannot be read or parsed become warnings; Run fails only when no
// document compiled.
func Run(cfg Config) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("build")

	gitignore := cfg.Gitignore
	if gitignore == "" {
		gitignore = ".gitignore"
	}
	files, stats, err := source.NewExpander(gitignore).Expand(cfg.Patterns)
	if err != nil {
		return Result{}, err
	}
	result := Result{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
		Output:       cfg.Output,
	}
	if len(files) == 0 {
		return result, ErrNoDocuments
	}

	th, err := loadTheme(cfg.ThemePath)
	if err != nil {
		return result, err
	}

	sink, closeSink, err := openSink(cfg.Database)
	if err != nil {
		return result, err
	}
	defer func() {
		if cerr := closeSink(); cerr != nil {
			log.Warn("close sink", zap.Error(cerr))
		}
	}()

	inst, err := unicss.New(unicss.Options{Theme: th, Sink: sink, Logger: log, Key: "build"})
	if err != nil {
		return result, err
	}

	var errs error
	for _, path := range files {
		fr, err := compileFile(inst, path)
		if err != nil {
			errs = multierr.Append(errs, err)
			result.FilesFailed++
			continue
		}
		if fr.Inserted {
			result.Emitted++
		}
		log.Debug("compiled", zap.String("path", path), zap.String("hash", fr.Hash), zap.Int("rules", fr.Rules))
		result.Files = append(result.Files, fr)
	}
	for _, err := range multierr.Errors(errs) {
		result.Warnings = append(result.Warnings, err.Error())
	}
	if len(result.Files) == 0 {
		return result, fmt.Errorf("all %d documents failed: %w", len(files), errs)
	}

	result.CSS = inst.ExtractCSS()
	if cfg.Output != "" {
		if err := writeOutput(cfg.Output, result.CSS); err != nil {
			return result, err
		}
	}
	return result, nil
}

func compileFile(inst *unicss.Instance, path string) (FileResult, error) {
	// #nosec G304 - path comes from trusted configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return FileResult{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := unicss.ParseStyle(data)
	if err != nil {
		return FileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	e, err := inst.Compile(unicss.KindGlobal, doc)
	if err != nil {
		return FileResult{}, fmt.Errorf("%s: %w", path, err)
	}
	return FileResult{Path: path, Hash: e.Hash, Rules: len(e.Rules), Inserted: e.Inserted}, nil
}

func loadTheme(path string) (*unicss.Theme, error) {
	if path == "" {
		return unicss.DefaultTheme(), nil
	}
	th, err := unicss.LoadTheme(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return th, nil
}

func openSink(database string) (unicss.Sink, func() error, error) {
	if database == "" {
		return unicss.NewTextSink(""), func() error { return nil }, nil
	}
	if err := os.MkdirAll(filepath.Dir(database), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := unicss.OpenSQLiteSink(database)
	if err != nil {
		return nil, nil, err
	}
	return db, db.Close, nil
}

func writeOutput(path, css string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(css), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

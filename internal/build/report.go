package build

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Output formats of a build report.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Reporter prints build results.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, useColors, verbose bool) *Reporter {
	return &Reporter{w: w, useColors: useColors, verbose: verbose}
}

// PrintSummary prints the counts of a build, and one line per document
// in verbose mode.
func (r *Reporter) PrintSummary(result Result) {
	if r.verbose {
		for _, f := range result.Files {
			status := RenderStyle(StyleGray, "cached", r.useColors)
			if f.Inserted {
				status = RenderStyle(StyleGreen, "emitted", r.useColors)
			}
			fmt.Fprintf(r.w, "  %s %s %s (%s)\n",
				status, f.Path, RenderStyle(StyleGray, f.Hash, r.useColors),
				pluralizeCount(f.Rules, "rule", "rules"))
		}
	}

	target := result.Output
	if target == "" {
		target = "stdout"
	}
	fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleCyan, "Built", r.useColors), target)
	fmt.Fprintf(r.w, "  Files scanned: %d\n", result.FilesScanned)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.w, "  Files skipped: %d\n", result.FilesSkipped)
	}
	fmt.Fprintf(r.w, "  Groups emitted: %d of %d\n", result.Emitted, len(result.Files))

	for _, w := range result.Warnings {
		fmt.Fprintf(r.w, "  %s %s\n", RenderStyle(StyleYellow, "Warning:", r.useColors), w)
	}
}

// PrintError prints a failed build.
func (r *Reporter) PrintError(err error) {
	fmt.Fprintf(r.w, "%s %v\n", RenderStyle(StyleRed, "Build failed:", r.useColors), err)
}

// JSONOutput is the machine-readable build report.
type JSONOutput struct {
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Result
}

// WriteJSON writes result as indented JSON.
func WriteJSON(w io.Writer, result Result, version string) error {
	out := JSONOutput{
		Version:   version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Result:    result,
	}
	if out.Files == nil {
		out.Files = []FileResult{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

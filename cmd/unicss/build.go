package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/unicss/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Compile style documents into a stylesheet",
	Long: `Expand the include patterns, compile every style document as global CSS
and write the stylesheet to --out (or stdout). With --db, rules accumulate in a
SQLite database so repeated builds only add what changed.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.StringSlice("include", nil, "Glob patterns for style documents to include")
	f.StringP("out", "o", "", "Output stylesheet (default: stdout)")
	f.String("db", "", "SQLite database for incremental builds")
	f.String("format", "", "Summary format: text|json (default text)")
	f.String("gitignore", "", "Ignore file applied to relative paths (default .gitignore)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	config := buildBuildConfig()

	quiet := getBoolWithFallback("quiet", "quiet", false)
	verbose := getBoolWithFallback("verbose", "verbose", false)
	useColors := build.ShouldUseColors(getBoolWithFallback("color", "color", false))
	format := getStringWithFallback("format", "build.format", build.FormatText)
	if format != build.FormatText && format != build.FormatJSON {
		return fmt.Errorf("unknown format %q (want %s or %s)", format, build.FormatText, build.FormatJSON)
	}

	log := newLogger(verbose, quiet, useColors)
	defer func() { _ = log.Sync() }()
	config.Logger = log

	result, err := build.Run(config)
	reporter := build.NewReporter(os.Stderr, useColors, verbose)
	if err != nil {
		if !quiet {
			for _, w := range result.Warnings {
				log.Warn(w)
			}
			reporter.PrintError(err)
		}
		return fmt.Errorf("build failed: %w", err)
	}

	// Without --out the stylesheet is the primary output.
	if config.Output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.CSS)
	}

	if quiet {
		return nil
	}
	if format == build.FormatJSON {
		return build.WriteJSON(os.Stderr, result, version)
	}
	reporter.PrintSummary(result)
	return nil
}

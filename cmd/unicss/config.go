package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/unicss/internal/build"
)

var k = koanf.New(".")

// defaultPatterns select the style documents when none are configured.
var defaultPatterns = []string{
	"styles/**/*.yaml",
	"styles/**/*.json",
}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".unicss.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// Only flags that were explicitly set
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("UNICSS_", ".", func(s string) string {
		// UNICSS_BUILD_OUT -> build.out
		// UNICSS_THEME -> theme
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "UNICSS_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildBuildConfig constructs the build Config from koanf state.
func buildBuildConfig() build.Config {
	config := build.Config{
		ThemePath: getStringWithFallback("theme", "theme", ""),
		Output:    getStringWithFallback("out", "build.out", ""),
		Database:  getStringWithFallback("db", "build.db", ""),
		Gitignore: getStringWithFallback("gitignore", "build.gitignore", ".gitignore"),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Patterns = includes
	} else if includes := k.Strings("build.include"); len(includes) > 0 {
		config.Patterns = includes
	} else {
		config.Patterns = append([]string(nil), defaultPatterns...)
	}

	return config
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

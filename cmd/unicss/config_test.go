package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf creates a fresh koanf instance for each test.
func resetKoanf() {
	k = koanf.New(".")
}

func TestConfigFileLoading(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".unicss.yaml")
	configContent := `
verbose: true
theme: themes/brand.yaml

build:
  out: public/app.css
  db: .cache/unicss.db
  format: json
  include:
    - "ui/**/*.yaml"
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	require.NoError(t, loadConfigFromPath(configPath))

	assert.True(t, k.Bool("verbose"))
	assert.Equal(t, "themes/brand.yaml", k.String("theme"))
	assert.Equal(t, "public/app.css", k.String("build.out"))
	assert.Equal(t, "json", k.String("build.format"))
	assert.Equal(t, []string{"ui/**/*.yaml"}, k.Strings("build.include"))
}

func TestConfigFileNotFound_UsesDefaults(t *testing.T) {
	resetKoanf()

	// Point to non-existent config — should not error
	require.NoError(t, loadConfigFromPath("/nonexistent/.unicss.yaml"))

	config := buildBuildConfig()
	assert.Equal(t, defaultPatterns, config.Patterns)
	assert.Empty(t, config.ThemePath)
	assert.Empty(t, config.Output)
	assert.Empty(t, config.Database)
	assert.Equal(t, ".gitignore", config.Gitignore)
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	resetKoanf()

	dir := t.TempDir()
	configPath := filepath.Join(dir, ".unicss.yaml")
	configContent := `
build:
  out: from-file.css
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	t.Setenv("UNICSS_BUILD_OUT", "from-env.css")
	t.Setenv("UNICSS_THEME", "env-theme.yaml")

	require.NoError(t, loadConfigFromPath(configPath))

	config := buildBuildConfig()
	assert.Equal(t, "from-env.css", config.Output)
	assert.Equal(t, "env-theme.yaml", config.ThemePath)
}

func TestBuildBuildConfig_FlagKeysWin(t *testing.T) {
	resetKoanf()

	require.NoError(t, k.Set("build.out", "from-file.css"))
	require.NoError(t, k.Set("out", "from-flag.css"))
	require.NoError(t, k.Set("build.include", []string{"a/*.yaml"}))
	require.NoError(t, k.Set("include", []string{"b/*.yaml"}))

	config := buildBuildConfig()
	assert.Equal(t, "from-flag.css", config.Output)
	assert.Equal(t, []string{"b/*.yaml"}, config.Patterns)
}

func TestInitCommand_CreatesConfigFile(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".unicss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
	assert.Contains(t, string(data), "styles/**/*.yaml")
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".unicss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInitCommand_ForceOverwrite(t *testing.T) {
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	require.NoError(t, os.WriteFile(".unicss.yaml", []byte("existing"), 0644))

	cmd := rootCmd
	cmd.SetArgs([]string{"init", "--force"})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(".unicss.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "build:")
}

func TestGetStringWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.Equal(t, "default", getStringWithFallback("flag-key", "config.key", "default"))
}

func TestGetBoolWithFallback(t *testing.T) {
	resetKoanf()

	// No keys set - should return default
	assert.False(t, getBoolWithFallback("flag-key", "config.key", false))
	assert.True(t, getBoolWithFallback("flag-key", "config.key", true))
}

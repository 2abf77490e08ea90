package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .unicss.yaml config file",
	Long:  `Create a .unicss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".unicss.yaml"); err == nil && !force {
			return fmt.Errorf(".unicss.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".unicss.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .unicss.yaml")
		return nil
	},
}

const defaultConfig = `# unicss configuration
# Docs: https://github.com/yacobolo/unicss

# Shared settings
verbose: false
theme: ""                  # empty = bundled theme

# Build settings
build:
  include:
    - "styles/**/*.yaml"
    - "styles/**/*.json"
  out: dist/styles.css
  db: ""                   # SQLite file for incremental builds
  format: text             # text | json
  gitignore: .gitignore
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

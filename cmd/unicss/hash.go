package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yacobolo/unicss"
)

var hashCmd = &cobra.Command{
	Use:   "hash [text...]",
	Short: "Print the class name generated for text",
	Long: `Print the identifier unicss generates for each argument. With --file the
arguments are read as files and their content is hashed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fromFile, _ := cmd.Flags().GetBool("file")
		for _, arg := range args {
			text := arg
			if fromFile {
				// #nosec G304 - path comes from the command line
				data, err := os.ReadFile(arg)
				if err != nil {
					return fmt.Errorf("read %s: %w", arg, err)
				}
				text = string(data)
			}
			fmt.Fprintln(cmd.OutOrStdout(), unicss.Hash(text))
		}
		return nil
	},
}

func init() {
	hashCmd.Flags().BoolP("file", "f", false, "Treat arguments as files")
}

package main

import (
	"fmt"

	"github.com/aretw0/utilkit/pkg/fileio"
	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a directory and its missing parents",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fileio.CreateDirectory(args[0]); err != nil {
			return err
		}
		logger.Debug("Directory ensured", "path", args[0])
		return nil
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <src> <dst>",
	Short: "Convert a data file between JSON, YAML, TOML and CSV",
	Long: `Loads src and writes it to dst, choosing each format from the file
extension (.json, .yaml/.yml, .toml, .csv). CSV output requires a list of
flat records.`,
	Example: "  utilkit convert settings.json settings.toml",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := fileio.Convert(args[0], args[1]); err != nil {
			return err
		}
		logger.Info("File converted", "src", args[0], "dst", args[1])
		fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mkdirCmd, convertCmd)
}

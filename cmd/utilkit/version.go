package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/utilkit"
	"github.com/aretw0/utilkit/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of utilkit",
	Run: func(cmd *cobra.Command, args []string) {
		version := strings.TrimSpace(utilkit.Version)
		if banner, _ := cmd.Flags().GetBool("banner"); banner {
			tui.PrintBanner(cmd.OutOrStdout(), version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "utilkit version %s\n", version)
	},
}

func init() {
	versionCmd.Flags().Bool("banner", false, "Print the ASCII art banner")
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"log"
	"os"

	"github.com/aretw0/utilkit/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves every utilkit helper as an MCP tool over Standard Input/Output.
This allows AI agents to call the helpers as tools. Logs go to Stderr so they
never corrupt the JSON-RPC stream on Stdout.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := mcp.NewServer(
			mcp.WithLogger(logger),
			mcp.WithPasswordLength(cfg.PasswordLength),
			mcp.WithDefaultAlgorithm(cfg.Algorithm()),
		)

		log.SetOutput(os.Stderr)
		logger.Info("Starting utilkit MCP Server (Stdio)...")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

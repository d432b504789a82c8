package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sw360/sw360-dashboard/internal/mcp"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the SW360 dashboard MCP server",
	Long:  `Launch an MCP server that allows AI agents to query catalog statistics and run history via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so the pipeline must not print
		// progress lines while serving.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, runManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

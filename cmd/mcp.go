package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ykhadiri/alkimiya/internal/elements"
	"github.com/ykhadiri/alkimiya/internal/genai"
	mcpserver "github.com/ykhadiri/alkimiya/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing element lookup, search and mixing tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := elements.NewCatalog()

		// The mix tool needs a provider; lookup and search work without
		// one, so a missing key only degrades the server.
		var gen genai.Generator
		if cfg, err := loadConfig(); err == nil {
			database, store, err := openLedger(cfg)
			if err == nil {
				defer database.Close()
				if g, err := newGenerator(cfg, store); err == nil {
					gen = g
				} else {
					fmt.Fprintf(os.Stderr, "Warning: mix tool disabled: %v\n", err)
				}
			}
		}

		mcpserver.Version = Version
		fmt.Fprintf(os.Stderr, "alkimiya MCP server started on stdio (%d elements)\n", catalog.Len())

		srv := mcpserver.NewServer(catalog, gen)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

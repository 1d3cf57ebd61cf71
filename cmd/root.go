// root.go defines the root command and CLI execution entry point.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tscharff/doi-mcp/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "doi-mcp",
	Short: "MCP server for DOI resolution and article search",
	Long:  `An MCP (Model Context Protocol) server that queries the Crossref REST API to resolve DOIs, search for articles, and retrieve structured metadata.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// Execute runs the root command and handles process lifecycle.
// Opens audit logging (warn if it fails, but continue), executes the
// command, and exits with code 1 on error.
func Execute() {
	if err := log.Open(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: audit log unavailable: %v\n", err)
	}

	err := rootCmd.Execute()
	log.Close()

	if err != nil {
		os.Exit(1)
	}
}

// RootCmd returns the root command for testing.
func RootCmd() *cobra.Command {
	return rootCmd
}

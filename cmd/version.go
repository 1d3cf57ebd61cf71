package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tscharff/doi-mcp/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(version.Get().String())
		},
	}
}

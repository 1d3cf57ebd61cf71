// serve.go implements the "doi-mcp serve" command.
//
// Unlike version, which runs and exits, serve blocks indefinitely
// handling MCP requests over stdio. Startup failures (bad config) are
// the only path that exits the process non-zero; once serving, every
// call failure is answered in-band.

package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tscharff/doi-mcp/internal/config"
	"github.com/tscharff/doi-mcp/internal/mcp"
)

var (
	serveMailto  string
	serveTimeout int
)

func newServeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start MCP server",
		Long: `Start an MCP (Model Context Protocol) server over stdio for LLM integration.

Configuration is read from .doi-mcp.yaml in the working directory, or
~/.doi-mcp/config.yaml. A .env file may set ` + config.EnvMailto + `.`,
		RunE: runServe,
	}
	c.Flags().StringVar(&serveMailto, "mailto", "", "contact email sent in the upstream User-Agent")
	c.Flags().IntVar(&serveTimeout, "timeout", 0, "outbound request timeout in seconds")
	return c
}

func runServe(_ *cobra.Command, _ []string) error {
	// Optional .env in the working directory; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags win over env and file values.
	if serveMailto != "" {
		cfg.Contact.Email = serveMailto
	}
	if serveTimeout != 0 {
		cfg.HTTP.TimeoutSeconds = &serveTimeout
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	return mcp.Serve(cfg)
}

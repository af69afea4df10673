package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/erraggy/treeschema/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: treeschema mcp\n\n")
		Writef(fs.Output(), "Run the Model Context Protocol server over stdio.\n\n")
		Writef(fs.Output(), "The server exposes validate, inspect, and formats tools to MCP clients.\n")
		Writef(fs.Output(), "It is configured through TREESCHEMA_* environment variables; run the\n")
		Writef(fs.Output(), "server and read its instructions for the full list.\n\n")
		Writef(fs.Output(), "Examples:\n")
		Writef(fs.Output(), "  treeschema mcp\n")
		Writef(fs.Output(), "  TREESCHEMA_VALIDATE_MAX_DEPTH=50 treeschema mcp\n")
	}

	return fs
}

// HandleMCP executes the mcp command
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

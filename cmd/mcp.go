package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotview/internal/shared"
	"github.com/desertthunder/spotview/internal/tools"
	"github.com/mark3labs/mcp-go/server"
	"github.com/urfave/cli/v3"
)

// MCP serves the playlist and show tools over stdio until stdin closes.
func (r *Runner) MCP(ctx context.Context, cmd *cli.Command) error {
	r.ensureConfig()

	session, err := r.Session()
	if err != nil {
		return err
	}

	s := tools.NewServer(session, r.config.Resources.PlaylistID, version, r.logger)
	if err := server.ServeStdio(s); err != nil {
		return fmt.Errorf("%w: mcp server: %v", shared.ErrServiceUnavailable, err)
	}

	return nil
}

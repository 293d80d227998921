package main

import (
	"context"

	"github.com/desertthunder/spotview/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration to the path given by --path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Infof("created config file at %s", path)
	return r.writePlain("Edit %s and set credentials.spotify.client_id and client_secret\n", path)
}

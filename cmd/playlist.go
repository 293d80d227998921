package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotview/internal/formatter"
	"github.com/desertthunder/spotview/internal/shared"
	"github.com/urfave/cli/v3"
)

// Show authenticates, runs one fetch batch and renders the view model.
//
// Auth and fetch failures are logged, never returned: the output degrades to the loading placeholder
// or to a view without the failed resource.
func (r *Runner) Show(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	r.ensureConfig()
	if cmd.IsSet("limit") {
		r.config.Resources.Limit = cmd.Int("limit")
	}
	playlistID := r.playlistID(cmd)

	session, err := r.Session()
	if err != nil {
		return err
	}

	if session.Authenticate(ctx) {
		if _, err := session.Sync(ctx, playlistID); err != nil {
			r.logger.Debug("fetch batch skipped", "error", err)
		}
	}
	vm := session.ViewModel()

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteFile(vm, format, path); err != nil {
			return err
		}
		r.logger.Infof("wrote %s output to %s", format, path)
		return nil
	}

	data, err := formatter.Render(vm, format)
	if err != nil {
		return err
	}
	return r.writePlain("%s", data)
}

// Podcast fetches the show metadata slot and prints it as JSON. An unavailable show prints null.
func (r *Runner) Podcast(ctx context.Context, cmd *cli.Command) error {
	r.ensureConfig()
	if id := cmd.String("show"); id != "" {
		r.config.Resources.ShowID = id
	}

	session, err := r.Session()
	if err != nil {
		return err
	}

	if session.Authenticate(ctx) {
		if t, ok := session.Begin(r.config.Resources.PlaylistID); ok {
			session.LoadShow(ctx, t)
		}
	}

	return r.writeJSON(session.ViewModel().Show, cmd.Bool("pretty"))
}

// Token performs a single client-credentials exchange and prints the access token.
func (r *Runner) Token(ctx context.Context, cmd *cli.Command) error {
	session, err := r.Session()
	if err != nil {
		return err
	}

	if !session.Authenticate(ctx) {
		return fmt.Errorf("%w: see log for details", shared.ErrAuthFailed)
	}
	return r.writePlain("%s\n", session.Token())
}

func (r *Runner) ensureConfig() {
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}
}

func (r *Runner) playlistID(cmd *cli.Command) string {
	if id := cmd.String("playlist"); id != "" {
		return id
	}
	r.ensureConfig()
	return r.config.Resources.PlaylistID
}

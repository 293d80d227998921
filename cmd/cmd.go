// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// showCommand renders the configured playlist once
func showCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "show",
		Aliases: []string{"view"},
		Usage:   "Fetch and render a playlist",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "playlist",
				Usage: "Playlist ID (defaults to resources.playlist_id)",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of tracks to fetch (defaults to resources.limit)",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Output format: text, markdown, csv or json",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write output to a file instead of stdout",
			},
		},
		Action: r.Show,
	}
}

// podcastCommand prints the configured show's metadata
func podcastCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "podcast",
		Aliases: []string{"show-metadata"},
		Usage:   "Fetch show (podcast) metadata as JSON",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "show",
				Usage: "Show ID (defaults to resources.show_id)",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Podcast,
	}
}

// tokenCommand performs the credentials exchange and prints the token
func tokenCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "token",
		Usage:  "Acquire an access token with the client-credentials grant",
		Action: r.Token,
	}
}

// tuiCommand returns the top-level TUI command.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive playlist view",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "playlist",
				Usage: "Playlist ID (defaults to resources.playlist_id)",
			},
		},
		Action: r.TUI,
	}
}

// mcpCommand serves the fetches as MCP tools over stdio.
func mcpCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "mcp",
		Usage:  "Serve playlist and show tools over MCP (stdio)",
		Action: r.MCP,
	}
}

// setupCommand handles setup operations.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write an example config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "path",
						Usage: "Destination path",
						Value: "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

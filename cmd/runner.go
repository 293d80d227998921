package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/services"
	"github.com/desertthunder/spotview/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	session    *services.Session
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Session    *services.Session
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		config:     opts.Config,
		session:    opts.Session,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		showCommand, podcastCommand, tokenCommand, tuiCommand, mcpCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before loads the env file and configuration, then applies env overrides and the log level.
//
// A missing config file falls back to the embedded defaults.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if err := shared.LoadEnv(cmd.String("env-file")); err != nil {
		return ctx, err
	}

	if r.config == nil {
		config, err := shared.LoadConfig(cmd.String("config"))
		switch {
		case errors.Is(err, shared.ErrMissingConfig):
			r.logger.Debug("config file not found, using defaults", "path", cmd.String("config"))
			config = shared.DefaultConfig()
		case err != nil:
			return ctx, err
		}
		r.config = config
	}
	r.config.ApplyEnv()

	level := shared.ParseLogLevel(r.config.Logging.Level)
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)

	return ctx, nil
}

// Session returns the session, building it from the configuration on first use.
func (r *Runner) Session() (*services.Session, error) {
	if r.session != nil {
		return r.session, nil
	}
	if r.config == nil {
		r.config = shared.DefaultConfig()
	}
	if err := r.config.Validate(); err != nil {
		return nil, err
	}

	api := r.config.Spotify
	r.session = services.NewSession(services.SessionOpts{
		Auth: services.NewAuthenticator(api.TokenURL, r.httpClient),
		Fetcher: services.NewSpotifyService(services.SpotifyOpts{
			BaseURL:    api.APIURL,
			Market:     api.Market,
			HTTPClient: r.httpClient,
		}),
		Credentials: models.Credentials{
			ClientID:     r.config.Credentials.Spotify.ClientID,
			ClientSecret: r.config.Credentials.Spotify.ClientSecret,
		},
		ShowID: r.config.Resources.ShowID,
		Limit:  r.config.Resources.Limit,
		Logger: r.logger,
	})

	return r.session, nil
}

// SetLogger replaces the logger. Must be called before [Runner.Session] to reach the session.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

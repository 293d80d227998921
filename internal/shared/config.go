package shared

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

//go:embed config.example.toml
var exampleConf []byte

// Environment variables that override the configured Spotify credentials.
const (
	EnvClientID     = "SPOTIFY_CLIENT_ID"
	EnvClientSecret = "SPOTIFY_CLIENT_SECRET"
)

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Credentials CredentialsConfig `toml:"credentials"`
	Spotify     APIConfig         `toml:"spotify"`
	Resources   ResourcesConfig   `toml:"resources"`
	Logging     LoggingConfig     `toml:"logging"`
}

// CredentialsConfig contains service-specific credentials.
type CredentialsConfig struct {
	Spotify SpotifyConfig `toml:"spotify"`
}

// SpotifyConfig contains Spotify API credentials.
type SpotifyConfig struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
}

// APIConfig holds the Spotify endpoints. Tests point these at local servers.
type APIConfig struct {
	TokenURL string `toml:"token_url"`
	APIURL   string `toml:"api_url"`
	Market   string `toml:"market"`
}

// ResourcesConfig holds the fixed resource identifiers and the track page size.
type ResourcesConfig struct {
	PlaylistID string `toml:"playlist_id"`
	ShowID     string `toml:"show_id"`
	Limit      int    `toml:"limit"`
}

// LoggingConfig contains log level and the TUI log file location.
type LoggingConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their values from [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingConfig, path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// LoadEnv loads .env style files into the process environment. Missing files are ignored.
func LoadEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", p, err)
		}
	}
	return nil
}

// ApplyEnv overrides credentials with [EnvClientID] and [EnvClientSecret] when set.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvClientID); v != "" {
		c.Credentials.Spotify.ClientID = v
	}
	if v := os.Getenv(EnvClientSecret); v != "" {
		c.Credentials.Spotify.ClientSecret = v
	}
}

// Validate checks the values needed before any request can be made.
func (c *Config) Validate() error {
	if c.Spotify.TokenURL == "" || c.Spotify.APIURL == "" {
		return fmt.Errorf("%w: spotify token_url and api_url are required", ErrInvalidConfig)
	}
	if c.Resources.PlaylistID == "" {
		return fmt.Errorf("%w: resources.playlist_id is required", ErrInvalidConfig)
	}
	return nil
}

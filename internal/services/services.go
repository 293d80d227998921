// package services defines the Spotify token provider, resource fetcher and the session that sequences them
package services

import (
	"context"

	"github.com/desertthunder/spotview/internal/models"
)

// TokenProvider exchanges client credentials for a bearer token.
type TokenProvider interface {
	// Token performs one credentials-grant exchange and returns the access token.
	Token(ctx context.Context, creds models.Credentials) (string, error)
}

// Fetcher requests the three resource shapes with a bearer token.
type Fetcher interface {
	// PlaylistMetadata fetches the playlist header fields.
	PlaylistMetadata(ctx context.Context, token, playlistID string) (*models.PlaylistMetadata, error)

	// PlaylistTracks fetches up to limit tracks. A negative limit selects [DefaultTrackLimit].
	PlaylistTracks(ctx context.Context, token, playlistID string, limit int) (*models.TrackPage, error)

	// Show fetches show metadata. limit is accepted and ignored.
	Show(ctx context.Context, token, showID string, limit int) (*models.ShowMetadata, error)
}

var (
	_ TokenProvider = (*Authenticator)(nil)
	_ Fetcher       = (*SpotifyService)(nil)
)

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/services"
	"github.com/desertthunder/spotview/internal/shared"
	tu "github.com/desertthunder/spotview/internal/testing"
)

func newHandlers(t *testing.T, srv *tu.SpotifyServer) *handlers {
	t.Helper()
	logger := shared.NewLogger(&bytes.Buffer{})
	session := services.NewSession(services.SessionOpts{
		Auth:        services.NewAuthenticator(srv.TokenURL(), srv.Client()),
		Fetcher:     services.NewSpotifyService(services.SpotifyOpts{BaseURL: srv.APIURL(), HTTPClient: srv.Client()}),
		Credentials: models.Credentials{ClientID: tu.TestClientID, ClientSecret: tu.TestClientSecret},
		ShowID:      "show1",
		Limit:       3,
		Logger:      logger,
	})
	return &handlers{session: session, playlistID: "default_pl", logger: logger}
}

func TestTools(t *testing.T) {
	ctx := context.Background()

	t.Run("NewServer", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		h := newHandlers(t, srv)
		if s := NewServer(h.session, "pl1", "test", nil); s == nil {
			t.Fatal("expected server")
		}
	})

	t.Run("playlist_tracks authenticates lazily", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		h := newHandlers(t, srv)

		out, err := h.call(ctx, ToolPlaylistTracks, map[string]any{"playlist_id": "pl1"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var page models.TrackPage
		if err := json.Unmarshal([]byte(out), &page); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if len(page.Items) != 3 || page.Total != 4 {
			t.Errorf("unexpected page %+v", page)
		}
		if srv.TokenRequests() != 1 {
			t.Errorf("expected one token request, got %d", srv.TokenRequests())
		}

		if _, err := h.call(ctx, ToolPlaylistTracks, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if srv.TokenRequests() != 1 {
			t.Error("expected the token to be reused")
		}
		reqs := srv.ResourceRequests()
		if reqs[len(reqs)-1].URL.Path != "/v1/playlists/default_pl/tracks" {
			t.Errorf("expected default playlist, got %s", reqs[len(reqs)-1].URL.Path)
		}
	})

	t.Run("playlist_metadata and show", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		h := newHandlers(t, srv)

		out, err := h.call(ctx, ToolPlaylistMetadata, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		var metadata models.PlaylistMetadata
		if err := json.Unmarshal([]byte(out), &metadata); err != nil || metadata.Name != "Morning Mix" {
			t.Errorf("unexpected metadata %q (%v)", out, err)
		}

		out, err = h.call(ctx, ToolShow, nil)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		var show models.ShowMetadata
		if err := json.Unmarshal([]byte(out), &show); err != nil || show.Publisher != "Code Talk Media" {
			t.Errorf("unexpected show %q (%v)", out, err)
		}
	})

	t.Run("failed fetch yields null", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		srv.Fail[tu.ResourceMetadata] = http.StatusUnauthorized
		h := newHandlers(t, srv)

		out, err := h.call(ctx, ToolPlaylistMetadata, nil)
		if err != nil || out != "null" {
			t.Errorf("expected null, got %q (%v)", out, err)
		}
	})

	t.Run("failed auth yields null without fetching", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		srv.TokenStatus = http.StatusUnauthorized
		h := newHandlers(t, srv)

		out, err := h.call(ctx, ToolPlaylistTracks, nil)
		if err != nil || out != "null" {
			t.Errorf("expected null, got %q (%v)", out, err)
		}
		if len(srv.ResourceRequests()) != 0 {
			t.Error("expected no resource requests")
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		srv := tu.NewSpotifyServer(t)
		h := newHandlers(t, srv)

		if _, err := h.call(ctx, "albums", nil); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

// Spotify Web API implementation of [Fetcher]
//
// Response shapes follow the fields filters sent with each request, see https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

const (
	// DefaultTrackLimit is the page size used when the caller does not specify one.
	DefaultTrackLimit = 5
	maxTrackLimit     = 100

	playlistMetadataFields = "collaborative,description,followers,images,name"
	playlistTrackFields    = "items(track(id,name,artists(name),preview_url,duration_ms)),total"
	showFields             = "description,genres,images,name,publisher,type,uri"
)

// playlistItemsResponse is the filtered playlist items page. Unavailable entries come back with a null track.
type playlistItemsResponse struct {
	Items []struct {
		Track *models.Track `json:"track"`
	} `json:"items"`
	Total int `json:"total"`
}

// SpotifyService implements [Fetcher] against the Spotify Web API.
type SpotifyService struct {
	baseURL    string
	market     string
	httpClient *http.Client
}

// SpotifyOpts configures a [SpotifyService].
type SpotifyOpts struct {
	BaseURL    string
	Market     string // sent with show requests when set
	HTTPClient *http.Client
}

// NewSpotifyService creates a new Spotify fetcher. Zero options fall back to the public API and [http.DefaultClient].
func NewSpotifyService(opts SpotifyOpts) *SpotifyService {
	if opts.BaseURL == "" {
		opts.BaseURL = spotifyBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &SpotifyService{
		baseURL:    opts.BaseURL,
		market:     opts.Market,
		httpClient: opts.HTTPClient,
	}
}

func (s *SpotifyService) Name() string {
	return "Spotify"
}

// doRequest performs an authenticated GET request to the Spotify API and decodes the JSON body into result.
func (s *SpotifyService) doRequest(ctx context.Context, token, endpoint string, params url.Values, result any) error {
	if token == "" {
		return fmt.Errorf("%w: empty access token", shared.ErrNotAuthenticated)
	}

	apiURL := s.baseURL + endpoint
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned status %d", shared.ErrAPIRequest, endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}

// PlaylistMetadata retrieves the name, description, collaborative flag, followers and images of a playlist.
func (s *SpotifyService) PlaylistMetadata(ctx context.Context, token, playlistID string) (*models.PlaylistMetadata, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: empty playlist id", shared.ErrInvalidArgument)
	}

	params := url.Values{"fields": {playlistMetadataFields}}

	var metadata models.PlaylistMetadata
	if err := s.doRequest(ctx, token, "/playlists/"+url.PathEscape(playlistID), params, &metadata); err != nil {
		return nil, err
	}

	return &metadata, nil
}

// PlaylistTracks retrieves the first page of a playlist's tracks.
//
// A negative limit selects [DefaultTrackLimit]; zero is sent as-is and yields an empty page.
// Limits above the API maximum are clamped.
func (s *SpotifyService) PlaylistTracks(ctx context.Context, token, playlistID string, limit int) (*models.TrackPage, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("%w: empty playlist id", shared.ErrInvalidArgument)
	}
	if limit < 0 {
		limit = DefaultTrackLimit
	}
	if limit > maxTrackLimit {
		limit = maxTrackLimit
	}

	params := url.Values{
		"limit":  {strconv.Itoa(limit)},
		"fields": {playlistTrackFields},
	}

	var response playlistItemsResponse
	endpoint := fmt.Sprintf("/playlists/%s/tracks", url.PathEscape(playlistID))
	if err := s.doRequest(ctx, token, endpoint, params, &response); err != nil {
		return nil, err
	}

	page := &models.TrackPage{
		Items: make([]models.Track, 0, len(response.Items)),
		Total: response.Total,
	}
	for _, item := range response.Items {
		if item.Track == nil {
			continue
		}
		page.Items = append(page.Items, *item.Track)
	}

	// The server can return more than asked for; the page never exceeds limit.
	if len(page.Items) > limit {
		page.Items = page.Items[:limit]
	}

	return page, nil
}

// Show retrieves show (podcast) metadata.
//
// limit has no effect on a single-resource fetch and is kept for interface compatibility.
func (s *SpotifyService) Show(ctx context.Context, token, showID string, limit int) (*models.ShowMetadata, error) {
	if showID == "" {
		return nil, fmt.Errorf("%w: empty show id", shared.ErrInvalidArgument)
	}

	params := url.Values{"fields": {showFields}}
	if s.market != "" {
		params.Set("market", s.market)
	}

	var show models.ShowMetadata
	if err := s.doRequest(ctx, token, "/shows/"+url.PathEscape(showID), params, &show); err != nil {
		return nil, err
	}

	return &show, nil
}

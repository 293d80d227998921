// package testing contains shared testing utilities
package testing

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"sync"
	"testing"

	"github.com/desertthunder/spotview/internal/models"
)

const (
	TestClientID     = "test_client_id"
	TestClientSecret = "test_client_secret"
	TestToken        = "test_access_token"
)

// Resource kinds served by [SpotifyServer], used as keys for [SpotifyServer.Fail].
const (
	ResourceMetadata = "metadata"
	ResourceTracks   = "tracks"
	ResourceShow     = "show"
)

// SpotifyServer is an [httptest.Server] faking the Spotify accounts and Web API endpoints.
//
// Configure the exported fields before issuing requests.
type SpotifyServer struct {
	*httptest.Server

	ClientID     string
	ClientSecret string
	Token        string
	TokenStatus  int           // non-zero forces the token endpoint to fail with this status
	Block        chan struct{} // non-nil holds token requests until closed or cancelled
	Fail         map[string]int

	Metadata models.PlaylistMetadata
	Tracks   []models.Track
	Total    int // reported total, defaults to len(Tracks)
	Show     models.ShowMetadata

	mu       sync.Mutex
	tokens   int
	requests []*http.Request
}

// NewSpotifyServer starts a fake server with valid defaults. It is closed on test cleanup.
func NewSpotifyServer(t *testing.T) *SpotifyServer {
	t.Helper()

	s := &SpotifyServer{
		ClientID:     TestClientID,
		ClientSecret: TestClientSecret,
		Token:        TestToken,
		Fail:         map[string]int{},
		Metadata: models.PlaylistMetadata{
			Name:        "Morning Mix",
			Description: "Songs for the commute",
			Followers:   models.Followers{Total: 42},
			Images:      []models.Image{{URL: "https://i.scdn.co/image/cover", Height: 640, Width: 640}},
		},
		Tracks: SampleTracks(),
		Show: models.ShowMetadata{
			Description: "A show about code",
			Genres:      []string{},
			Name:        "Code Talk",
			Publisher:   "Code Talk Media",
			Type:        "show",
			URI:         "spotify:show:3MXQRTTDsQGIzCyttaqCOM",
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token", s.handleToken)
	mux.HandleFunc("GET /v1/playlists/{id}", s.handleResource(ResourceMetadata))
	mux.HandleFunc("GET /v1/playlists/{id}/tracks", s.handleResource(ResourceTracks))
	mux.HandleFunc("GET /v1/shows/{id}", s.handleResource(ResourceShow))

	s.Server = httptest.NewServer(mux)
	t.Cleanup(func() {
		if s.Block != nil {
			select {
			case <-s.Block:
			default:
				close(s.Block)
			}
		}
		s.Close()
	})

	return s
}

// TokenURL returns the fake accounts token endpoint.
func (s *SpotifyServer) TokenURL() string { return s.URL + "/api/token" }

// APIURL returns the fake Web API base URL.
func (s *SpotifyServer) APIURL() string { return s.URL + "/v1" }

// TokenRequests returns the number of token requests received.
func (s *SpotifyServer) TokenRequests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens
}

// ResourceRequests returns copies of the resource requests received, in arrival order.
func (s *SpotifyServer) ResourceRequests() []*http.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*http.Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *SpotifyServer) handleToken(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.tokens++
	s.mu.Unlock()

	if s.Block != nil {
		select {
		case <-s.Block:
		case <-r.Context().Done():
			return
		}
	}

	if s.TokenStatus != 0 {
		writeJSON(w, s.TokenStatus, map[string]string{"error": "invalid_client"})
		return
	}

	if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}

	id, secret, ok := r.BasicAuth()
	if !ok || id != s.ClientID || secret != s.ClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": s.Token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

func (s *SpotifyServer) handleResource(kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Clone(r.Context()))
		s.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+s.Token {
			writeAPIError(w, http.StatusUnauthorized, "Invalid access token")
			return
		}
		if status, ok := s.Fail[kind]; ok {
			writeAPIError(w, status, http.StatusText(status))
			return
		}

		switch kind {
		case ResourceMetadata:
			writeJSON(w, http.StatusOK, s.Metadata)
		case ResourceShow:
			writeJSON(w, http.StatusOK, s.Show)
		case ResourceTracks:
			limit := 100
			if v := r.URL.Query().Get("limit"); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil || n < 0 {
					writeAPIError(w, http.StatusBadRequest, "Invalid limit")
					return
				}
				limit = n
			}
			writeJSON(w, http.StatusOK, s.tracksPage(limit))
		}
	}
}

func (s *SpotifyServer) tracksPage(limit int) map[string]any {
	total := s.Total
	if total == 0 {
		total = len(s.Tracks)
	}

	tracks := s.Tracks
	if limit < len(tracks) {
		tracks = tracks[:limit]
	}

	items := make([]map[string]any, 0, len(tracks))
	for _, tr := range tracks {
		items = append(items, map[string]any{"track": tr})
	}
	return map[string]any{"items": items, "total": total}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAPIError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": map[string]any{"status": status, "message": message}})
}

// SampleTracks returns four tracks with all requested fields populated.
func SampleTracks() []models.Track {
	return []models.Track{
		{ID: "t1", Name: "First Light", Artists: []models.Artist{{Name: "Aurora Lane"}}, PreviewURL: "https://p.scdn.co/mp3-preview/t1", DurationMS: 150000},
		{ID: "t2", Name: "Second Wind", Artists: []models.Artist{{Name: "Kite"}, {Name: "Harbor"}}, PreviewURL: "https://p.scdn.co/mp3-preview/t2", DurationMS: 65000},
		{ID: "t3", Name: "Third Rail", Artists: []models.Artist{{Name: "Mono Lake"}}, PreviewURL: "https://p.scdn.co/mp3-preview/t3", DurationMS: 201000},
		{ID: "t4", Name: "Fourth Wall", Artists: []models.Artist{{Name: "Aurora Lane"}}, PreviewURL: "https://p.scdn.co/mp3-preview/t4", DurationMS: 189000},
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
)

// Session holds the access token and the three resource slots for one viewer.
//
// Fetches are gated on [Session.Ready]. Each batch is tagged with a [Ticket]; a response
// whose ticket has been superseded by a later [Session.Begin] is dropped instead of stored.
type Session struct {
	auth    TokenProvider
	fetcher Fetcher
	creds   models.Credentials
	showID  string
	limit   int
	logger  *log.Logger

	mu         sync.Mutex
	token      string
	generation uint64
	synced     string
	metadata   *models.PlaylistMetadata
	tracks     *models.TrackPage
	show       *models.ShowMetadata
}

// SessionOpts contains the collaborators and fixed inputs for a [Session].
type SessionOpts struct {
	Auth        TokenProvider
	Fetcher     Fetcher
	Credentials models.Credentials
	ShowID      string
	Limit       int // track page size, negative selects [DefaultTrackLimit]
	Logger      *log.Logger
}

// Ticket identifies one fetch batch.
type Ticket struct {
	Generation uint64
	PlaylistID string
	BatchID    string
	token      string
}

// NewSession creates a Session with no token.
func NewSession(opts SessionOpts) *Session {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	return &Session{
		auth:    opts.Auth,
		fetcher: opts.Fetcher,
		creds:   opts.Credentials,
		showID:  opts.ShowID,
		limit:   opts.Limit,
		logger:  opts.Logger,
	}
}

// Authenticate acquires the access token. Failures are logged and leave the session not ready.
func (s *Session) Authenticate(ctx context.Context) bool {
	if s.auth == nil {
		s.logger.Error("token exchange failed", "err", fmt.Errorf("%w: no token provider", shared.ErrServiceUnavailable))
		return false
	}

	token, err := s.auth.Token(ctx, s.creds)
	if err != nil {
		s.logger.Error("token exchange failed", "err", err)
		return false
	}

	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	s.logger.Debug("access token acquired")
	return true
}

// Ready reports whether an access token is present.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != ""
}

// Token returns the current access token, empty when not ready.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Begin starts a new batch for playlistID, superseding any batch in flight.
//
// Returns false without side effects while the session is not ready.
func (s *Session) Begin(playlistID string) (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return Ticket{}, false
	}

	s.generation++
	return Ticket{
		Generation: s.generation,
		PlaylistID: playlistID,
		BatchID:    shared.GenerateID(),
		token:      s.token,
	}, true
}

// Current reports whether t belongs to the latest batch.
func (s *Session) Current(t Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return t.Generation == s.generation
}

// store runs set under the lock if t is still current.
func (s *Session) store(t Ticket, slot string, set func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.Generation != s.generation {
		s.logger.Debug("discarding stale response", "slot", slot, "batch", t.BatchID, "generation", t.Generation, "current", s.generation)
		return
	}
	set()
}

func (s *Session) batchLogger(t Ticket) *log.Logger {
	return shared.WithLogger(s.logger, "batch", t.BatchID, "playlist", t.PlaylistID)
}

// LoadTracks fetches the track page for t and stores it. Returns nil on failure.
func (s *Session) LoadTracks(ctx context.Context, t Ticket) *models.TrackPage {
	page, err := s.fetcher.PlaylistTracks(ctx, t.token, t.PlaylistID, s.limit)
	if err != nil {
		s.batchLogger(t).Error("failed to fetch playlist tracks", "err", err)
		page = nil
	}

	s.store(t, "tracks", func() { s.tracks = page })
	return page
}

// LoadMetadata fetches the playlist metadata for t and stores it. Returns nil on failure.
func (s *Session) LoadMetadata(ctx context.Context, t Ticket) *models.PlaylistMetadata {
	metadata, err := s.fetcher.PlaylistMetadata(ctx, t.token, t.PlaylistID)
	if err != nil {
		s.batchLogger(t).Error("failed to fetch playlist metadata", "err", err)
		metadata = nil
	}

	s.store(t, "metadata", func() { s.metadata = metadata })
	return metadata
}

// LoadShow fetches the configured show and stores it in the secondary slot. Returns nil on failure.
func (s *Session) LoadShow(ctx context.Context, t Ticket) *models.ShowMetadata {
	show, err := s.fetcher.Show(ctx, t.token, s.showID, s.limit)
	if err != nil {
		s.batchLogger(t).Error("failed to fetch show", "show", s.showID, "err", err)
		show = nil
	}

	s.store(t, "show", func() { s.show = show })
	return show
}

// Refresh runs one batch for playlistID: tracks, then metadata, then show.
//
// Returns [shared.ErrNotAuthenticated] without issuing any request when the session is not ready.
// Individual fetch failures are logged and leave their slot nil.
func (s *Session) Refresh(ctx context.Context, playlistID string) error {
	t, ok := s.Begin(playlistID)
	if !ok {
		return fmt.Errorf("%w: no access token", shared.ErrNotAuthenticated)
	}

	logger := s.batchLogger(t)
	logger.Debug("fetch batch started", "generation", t.Generation)

	s.LoadTracks(ctx, t)
	s.LoadMetadata(ctx, t)
	if show := s.LoadShow(ctx, t); show != nil {
		logger.Info("show metadata", "name", show.Name, "publisher", show.Publisher, "uri", show.URI)
	}

	return nil
}

// Sync runs [Session.Refresh] once per distinct (token, playlistID) pair and reports whether a batch ran.
func (s *Session) Sync(ctx context.Context, playlistID string) (bool, error) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return false, fmt.Errorf("%w: no access token", shared.ErrNotAuthenticated)
	}
	key := s.token + "\x00" + playlistID
	if key == s.synced {
		s.mu.Unlock()
		return false, nil
	}
	s.synced = key
	s.mu.Unlock()

	return true, s.Refresh(ctx, playlistID)
}

// ViewModel returns a snapshot of the slots.
func (s *Session) ViewModel() models.ViewModel {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.ViewModel{
		PlaylistMetadata: s.metadata,
		TrackPage:        s.tracks,
		Show:             s.show,
	}
}

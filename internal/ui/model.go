package ui

import (
	"context"
	"fmt"
	"html"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotview/internal/formatter"
	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/services"
)

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	session    *services.Session
	playlistID string
	ticket     services.Ticket
	vm         models.ViewModel
	tracks     list.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap
	width      int
	height     int
}

// NewModel creates a new TUI model for playlistID backed by session.
func NewModel(ctx context.Context, session *services.Session, playlistID string) *Model {
	tracks := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	tracks.Title = "Playlist"
	tracks.SetShowHelp(false)
	tracks.Styles.Title = styles.title

	return &Model{
		ctx:        ctx,
		session:    session,
		playlistID: playlistID,
		tracks:     tracks,
		spinner:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.loading)),
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init starts the spinner and acquires the access token.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.authenticate())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tracks.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.reload):
			return m, m.begin()
		}

	case spinner.TickMsg:
		if !m.vm.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case Msg:
		return m.handleMsg(msg)
	}

	var cmd tea.Cmd
	m.tracks, cmd = m.tracks.Update(msg)
	return m, cmd
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgTokenAcquired:
		if ok, _ := msg.data.(bool); ok {
			return m, m.begin()
		}
		return m, nil

	case MsgTracksFetched:
		data := msg.data.(tracksFetched)
		if !m.accept(data.ticket) {
			return m, nil
		}
		wasLoading := m.vm.Loading()
		m.vm.TrackPage = data.page
		cmd := m.tracks.SetItems(trackItems(data.page))
		if m.vm.Loading() && !wasLoading {
			return m, tea.Batch(cmd, m.spinner.Tick)
		}
		return m, cmd

	case MsgMetadataFetched:
		data := msg.data.(metadataFetched)
		if !m.accept(data.ticket) {
			return m, nil
		}
		m.vm.PlaylistMetadata = data.metadata
		m.tracks.Title = "Playlist"
		if data.metadata != nil && data.metadata.Name != "" {
			m.tracks.Title = html.UnescapeString(data.metadata.Name)
		}
		return m, nil

	case MsgShowFetched:
		data := msg.data.(showFetched)
		if !m.accept(data.ticket) {
			return m, nil
		}
		m.vm.Show = data.show
		return m, nil
	}

	return m, nil
}

// accept reports whether a result for t should be applied.
func (m *Model) accept(t services.Ticket) bool {
	return t.Generation == m.ticket.Generation && m.session.Current(t)
}

// View renders the loading placeholder until the track page is present, then the track list.
func (m *Model) View() string {
	helpView := m.help.ShortHelpView(m.keys.ShortHelp())

	if m.vm.Loading() {
		return fmt.Sprintf("%s %s\n\n%s", m.spinner.View(), styles.loading.Render(formatter.LoadingPlaceholder), helpView)
	}

	var header string
	if md := m.vm.PlaylistMetadata; md != nil && md.Description != "" {
		header = styles.desc.Render(html.UnescapeString(md.Description)) + "\n"
	}

	footer := fmt.Sprintf("%d of %d tracks", len(m.vm.TrackPage.Items), m.vm.TrackPage.Total)
	return fmt.Sprintf("%s%s\n%s\n\n%s", header, m.tracks.View(), styles.help.Render(footer), helpView)
}

func (m *Model) authenticate() tea.Cmd {
	return func() tea.Msg {
		return tokenAcquiredMsg(m.session.Authenticate(m.ctx))
	}
}

// begin starts a new batch and issues the three loads. Returns nil while the session is not ready.
func (m *Model) begin() tea.Cmd {
	t, ok := m.session.Begin(m.playlistID)
	if !ok {
		return nil
	}
	m.ticket = t

	return tea.Batch(
		func() tea.Msg { return tracksFetchedMsg(t, m.session.LoadTracks(m.ctx, t)) },
		func() tea.Msg { return metadataFetchedMsg(t, m.session.LoadMetadata(m.ctx, t)) },
		func() tea.Msg { return showFetchedMsg(t, m.session.LoadShow(m.ctx, t)) },
	)
}

package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/services"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTokenAcquired MsgKind = iota
	MsgTracksFetched
	MsgMetadataFetched
	MsgShowFetched
)

type tracksFetched struct {
	ticket services.Ticket
	page   *models.TrackPage
}

type metadataFetched struct {
	ticket   services.Ticket
	metadata *models.PlaylistMetadata
}

type showFetched struct {
	ticket services.Ticket
	show   *models.ShowMetadata
}

// tokenAcquiredMsg is the constructor for [MsgTokenAcquired]
func tokenAcquiredMsg(ok bool) Msg {
	return Msg{kind: MsgTokenAcquired, data: ok}
}

// tracksFetchedMsg is the constructor for [MsgTracksFetched]
func tracksFetchedMsg(t services.Ticket, page *models.TrackPage) Msg {
	return Msg{kind: MsgTracksFetched, data: tracksFetched{ticket: t, page: page}}
}

// metadataFetchedMsg is the constructor for [MsgMetadataFetched]
func metadataFetchedMsg(t services.Ticket, metadata *models.PlaylistMetadata) Msg {
	return Msg{kind: MsgMetadataFetched, data: metadataFetched{ticket: t, metadata: metadata}}
}

// showFetchedMsg is the constructor for [MsgShowFetched]
func showFetchedMsg(t services.Ticket, show *models.ShowMetadata) Msg {
	return Msg{kind: MsgShowFetched, data: showFetched{ticket: t, show: show}}
}

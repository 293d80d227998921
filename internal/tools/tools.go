// package tools exposes the playlist and show fetches as MCP tools
package tools

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotview/internal/services"
	"github.com/desertthunder/spotview/internal/shared"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	ToolPlaylistMetadata = "playlist_metadata"
	ToolPlaylistTracks   = "playlist_tracks"
	ToolShow             = "show"

	// absent is returned for a resource that could not be fetched.
	absent = "null"
)

type handlers struct {
	session    *services.Session
	playlistID string
	logger     *log.Logger
}

// NewServer builds an MCP server whose tools read through session.
//
// playlistID is used when a call does not name a playlist.
func NewServer(session *services.Session, playlistID, version string, logger *log.Logger) *server.MCPServer {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	h := &handlers{session: session, playlistID: playlistID, logger: logger}

	s := server.NewMCPServer("spotview", version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
	)

	s.AddTool(mcp.NewTool(ToolPlaylistMetadata,
		mcp.WithDescription("Name, description, followers and images of a Spotify playlist"),
		mcp.WithString("playlist_id", mcp.Description("Spotify playlist ID, defaults to the configured playlist")),
	), h.handle(ToolPlaylistMetadata))

	s.AddTool(mcp.NewTool(ToolPlaylistTracks,
		mcp.WithDescription("First page of tracks in a Spotify playlist with durations in milliseconds"),
		mcp.WithString("playlist_id", mcp.Description("Spotify playlist ID, defaults to the configured playlist")),
	), h.handle(ToolPlaylistTracks))

	s.AddTool(mcp.NewTool(ToolShow,
		mcp.WithDescription("Metadata of the configured Spotify show (podcast)"),
	), h.handle(ToolShow))

	return s
}

func (h *handlers) handle(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := h.call(ctx, name, request.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// call runs a tool and returns its JSON result, "null" when the resource is absent.
func (h *handlers) call(ctx context.Context, name string, args map[string]any) (string, error) {
	playlistID := h.playlistID
	if v, ok := args["playlist_id"].(string); ok && v != "" {
		playlistID = v
	}

	if !h.session.Ready() && !h.session.Authenticate(ctx) {
		return absent, nil
	}

	t, ok := h.session.Begin(playlistID)
	if !ok {
		return absent, nil
	}

	var result any
	switch name {
	case ToolPlaylistMetadata:
		if v := h.session.LoadMetadata(ctx, t); v != nil {
			result = v
		}
	case ToolPlaylistTracks:
		if v := h.session.LoadTracks(ctx, t); v != nil {
			result = v
		}
	case ToolShow:
		if v := h.session.LoadShow(ctx, t); v != nil {
			result = v
		}
	default:
		return "", fmt.Errorf("%w: unknown tool %q", shared.ErrInvalidArgument, name)
	}

	if result == nil {
		return absent, nil
	}

	data, err := shared.MarshalJSON(result, false)
	if err != nil {
		return "", fmt.Errorf("failed to marshal %s result: %w", name, err)
	}
	h.logger.Debug("tool call", "tool", name, "batch", t.BatchID)
	return string(data), nil
}

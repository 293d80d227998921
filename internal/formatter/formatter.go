// package formatter renders a [models.ViewModel] as plain text, Markdown, CSV or JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
)

// LoadingPlaceholder is rendered while the track page is absent.
const LoadingPlaceholder = "Loading..."

// Format selects an output renderer.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
	FormatJSON     Format = "json"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatMarkdown, FormatCSV, FormatJSON:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, s)
	}
}

// Render dispatches to the renderer for f.
func Render(vm models.ViewModel, f Format) ([]byte, error) {
	switch f {
	case FormatText, "":
		return RenderText(vm), nil
	case FormatMarkdown:
		return RenderMarkdown(vm), nil
	case FormatCSV:
		return RenderCSV(vm)
	case FormatJSON:
		return shared.MarshalJSON(vm, true)
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, f)
	}
}

// RenderText renders the playlist header and one line per track with its m:ss duration.
func RenderText(vm models.ViewModel) []byte {
	if vm.Loading() {
		return []byte(LoadingPlaceholder + "\n")
	}

	var buf bytes.Buffer
	name, description := header(vm)
	if name != "" {
		buf.WriteString(name + "\n")
	}
	if description != "" {
		buf.WriteString(description + "\n")
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}

	for i, track := range vm.TrackPage.Items {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, track.Name, shared.FormatDuration(track.DurationMS)))
		if artists := strings.Join(track.ArtistNames(), ", "); artists != "" {
			buf.WriteString(fmt.Sprintf("   %s\n", artists))
		}
	}

	return buf.Bytes()
}

// RenderMarkdown renders the view as a Markdown document with the cover image when present.
func RenderMarkdown(vm models.ViewModel) []byte {
	if vm.Loading() {
		return []byte(fmt.Sprintf("_%s_\n", LoadingPlaceholder))
	}

	var buf bytes.Buffer
	name, description := header(vm)
	if name == "" {
		name = "Playlist"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", name))

	if m := vm.PlaylistMetadata; m != nil && len(m.Images) > 0 {
		buf.WriteString(fmt.Sprintf("![Cover](%s)\n\n", m.Images[0].URL))
	}
	if description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", description))
	}
	if m := vm.PlaylistMetadata; m != nil {
		buf.WriteString(fmt.Sprintf("**Followers**: %d\n", m.Followers.Total))
		if m.Collaborative {
			buf.WriteString("**Collaborative**: yes\n")
		}
	}
	buf.WriteString(fmt.Sprintf("**Tracks**: %d of %d\n\n", len(vm.TrackPage.Items), vm.TrackPage.Total))

	buf.WriteString("## Tracks\n\n")
	for i, track := range vm.TrackPage.Items {
		title := track.Name
		if track.PreviewURL != "" {
			title = fmt.Sprintf("[%s](%s)", track.Name, track.PreviewURL)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n", i+1, strings.Join(track.ArtistNames(), ", "), title, shared.FormatDuration(track.DurationMS)))
	}

	return buf.Bytes()
}

// RenderCSV converts the track page to CSV with columns: ID, Name, Artists, Duration, Preview URL.
//
// A loading view yields the header row only.
func RenderCSV(vm models.ViewModel) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Artists", "Duration", "Preview URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	if !vm.Loading() {
		for _, track := range vm.TrackPage.Items {
			record := []string{
				track.ID,
				track.Name,
				strings.Join(track.ArtistNames(), "; "),
				shared.FormatDuration(track.DurationMS),
				track.PreviewURL,
			}
			if err := writer.Write(record); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteFile renders vm in format f to path.
func WriteFile(vm models.ViewModel, f Format, path string) error {
	data, err := Render(vm, f)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// header returns the playlist name and description with HTML entities decoded.
func header(vm models.ViewModel) (string, string) {
	if vm.PlaylistMetadata == nil {
		return "", ""
	}
	return html.UnescapeString(vm.PlaylistMetadata.Name), html.UnescapeString(vm.PlaylistMetadata.Description)
}

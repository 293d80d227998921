package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
)

var _ list.Item = trackItem{}

// trackItem wraps [models.Track] to implement [list.Item].
type trackItem struct {
	track models.Track
}

func (i trackItem) FilterValue() string { return i.track.Name }
func (i trackItem) Title() string {
	return fmt.Sprintf("%s (%s)", i.track.Name, shared.FormatDuration(i.track.DurationMS))
}
func (i trackItem) Description() string {
	return strings.Join(i.track.ArtistNames(), ", ")
}

func trackItems(page *models.TrackPage) []list.Item {
	if page == nil {
		return nil
	}
	items := make([]list.Item, len(page.Items))
	for i, track := range page.Items {
		items[i] = trackItem{track: track}
	}
	return items
}

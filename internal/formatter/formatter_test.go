package formatter

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/spotview/internal/models"
	"github.com/desertthunder/spotview/internal/shared"
	th "github.com/desertthunder/spotview/internal/testing"
)

func sampleView() models.ViewModel {
	return models.ViewModel{
		PlaylistMetadata: &models.PlaylistMetadata{
			Name:        "Morning Mix",
			Description: "Rock &amp; Roll",
			Followers:   models.Followers{Total: 42},
			Images:      []models.Image{{URL: "https://i.scdn.co/image/cover"}},
		},
		TrackPage: &models.TrackPage{Items: th.SampleTracks()[:3], Total: 4},
	}
}

func TestRenderers(t *testing.T) {
	t.Run("RenderText", func(t *testing.T) {
		t.Run("loading placeholder", func(t *testing.T) {
			vm := models.ViewModel{PlaylistMetadata: &models.PlaylistMetadata{Name: "x"}}
			if got := string(RenderText(vm)); got != "Loading...\n" {
				t.Errorf("expected placeholder, got %q", got)
			}
		})

		t.Run("tracks with durations", func(t *testing.T) {
			output := string(RenderText(sampleView()))

			for _, want := range []string{
				"Morning Mix\n",
				"Rock & Roll\n",
				"1. First Light (2:30)",
				"2. Second Wind (1:05)",
				"   Kite, Harbor",
				"3. Third Rail (3:21)",
			} {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}
			if strings.Contains(output, "Fourth Wall") {
				t.Error("output should only contain the fetched page")
			}
		})

		t.Run("missing metadata still renders tracks", func(t *testing.T) {
			vm := sampleView()
			vm.PlaylistMetadata = nil

			output := string(RenderText(vm))
			if !strings.HasPrefix(output, "1. First Light (2:30)") {
				t.Errorf("expected tracks without header, got %q", output)
			}
		})

		t.Run("empty page", func(t *testing.T) {
			vm := models.ViewModel{TrackPage: &models.TrackPage{Items: []models.Track{}, Total: 10}}
			if got := string(RenderText(vm)); got != "" {
				t.Errorf("expected empty output, got %q", got)
			}
		})
	})

	t.Run("RenderMarkdown", func(t *testing.T) {
		output := string(RenderMarkdown(sampleView()))

		for _, want := range []string{
			"# Morning Mix",
			"![Cover](https://i.scdn.co/image/cover)",
			"**Description**: Rock & Roll",
			"**Followers**: 42",
			"**Tracks**: 3 of 4",
			"## Tracks",
			"1. Aurora Lane - [First Light](https://p.scdn.co/mp3-preview/t1) [2:30]",
			"2. Kite, Harbor - [Second Wind](https://p.scdn.co/mp3-preview/t2) [1:05]",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("markdown missing %q:\n%s", want, output)
			}
		}

		if got := string(RenderMarkdown(models.ViewModel{})); !strings.Contains(got, LoadingPlaceholder) {
			t.Errorf("expected placeholder, got %q", got)
		}
	})

	t.Run("RenderCSV", func(t *testing.T) {
		data, err := RenderCSV(sampleView())
		if err != nil {
			t.Fatalf("RenderCSV failed: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 4 {
			t.Fatalf("expected header and 3 rows, got %d", len(lines))
		}
		if lines[0] != "ID,Name,Artists,Duration,Preview URL" {
			t.Errorf("CSV missing headers, got: %s", lines[0])
		}
		if lines[2] != "t2,Second Wind,Kite; Harbor,1:05,https://p.scdn.co/mp3-preview/t2" {
			t.Errorf("unexpected row: %s", lines[2])
		}

		data, err = RenderCSV(models.ViewModel{})
		if err != nil {
			t.Fatalf("RenderCSV failed: %v", err)
		}
		if strings.Count(string(data), "\n") != 1 {
			t.Errorf("expected header only while loading, got %q", data)
		}
	})

	t.Run("Render JSON", func(t *testing.T) {
		data, err := Render(sampleView(), FormatJSON)
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}

		var decoded models.ViewModel
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.TrackPage == nil || decoded.TrackPage.Total != 4 {
			t.Errorf("unexpected decoded view %+v", decoded)
		}
	})

	t.Run("ParseFormat", func(t *testing.T) {
		tc := []struct {
			in   string
			want Format
		}{
			{"", FormatText},
			{"text", FormatText},
			{"MD", FormatMarkdown},
			{"csv", FormatCSV},
			{"json", FormatJSON},
		}
		for _, tt := range tc {
			got, err := ParseFormat(tt.in)
			if err != nil || got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
			}
		}

		if _, err := ParseFormat("yaml"); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
		if _, err := Render(sampleView(), Format("yaml")); !errors.Is(err, shared.ErrInvalidFlag) {
			t.Errorf("expected ErrInvalidFlag, got %v", err)
		}
	})

	t.Run("WriteFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "playlist.md")
		if err := WriteFile(sampleView(), FormatMarkdown, path); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}

		th.AssertFileExists(t, path)
		if content := th.MustReadFile(t, path); !strings.HasPrefix(content, "# Morning Mix") {
			t.Errorf("unexpected file content %q", content)
		}

		if err := WriteFile(sampleView(), FormatText, filepath.Join(t.TempDir(), "missing", "out.txt")); err == nil {
			t.Error("expected error writing into a missing directory")
		}
	})
}

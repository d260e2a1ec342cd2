package web

import (
	"bytes"
	"strings"
	"testing"

	"github.com/desertthunder/festify/internal/lineup"
	"github.com/desertthunder/festify/internal/models"
)

func TestTrackTypeFlags(t *testing.T) {
	for _, tc := range []struct {
		name                 string
		trackType            models.TrackType
		top, setlist, recent string
	}{
		{"Top", models.TrackTypeTop, models.Checked, "", ""},
		{"Setlist", models.TrackTypeSetlist, "", models.Checked, ""},
		{"Recent", models.TrackTypeRecent, "", "", models.Checked},
		{"Unset Defaults To Top", models.TrackType(""), models.Checked, "", ""},
		{"Unknown Defaults To Top", models.TrackType("bogus"), models.Checked, "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			top, setlist, recent := TrackTypeFlags(tc.trackType)
			if top != tc.top || setlist != tc.setlist || recent != tc.recent {
				t.Errorf("got (%q, %q, %q)", top, setlist, recent)
			}
		})
	}
}

func TestRenderer(t *testing.T) {
	renderer, err := NewRenderer()
	if err != nil {
		t.Fatalf("expected templates to parse, got %v", err)
	}

	t.Run("Home", func(t *testing.T) {
		var buf bytes.Buffer
		page := HomePage{
			Base:      Base{Title: "Home"},
			Festivals: []models.Festival{{Name: "coachella", DisplayName: "Coachella", Region: "us-ca"}},
		}
		if err := renderer.Render(&buf, "home", page); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "Coachella") {
			t.Error("expected festival name in output")
		}
	})

	t.Run("Customize Checkbox State", func(t *testing.T) {
		data := &models.SessionData{
			FestivalName:        "coachella",
			FestivalDisplayName: "Coachella",
			FestivalYear:        2024,
			TracksPerArtist:     3,
		}
		merged := lineup.Merge([]models.Artist{{ID: "a1", Name: "Alpha", Genres: []string{"pop"}}}, nil, data)

		var buf bytes.Buffer
		if err := renderer.Render(&buf, "customize", NewCustomizePage(false, data, merged, "Mar 1, 2024")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		body := buf.String()
		if !strings.Contains(body, `value="a1" checked`) {
			t.Error("expected checked artist checkbox")
		}
		if !strings.Contains(body, `value="top" checked`) {
			t.Error("expected top track type checked")
		}
		if !strings.Contains(body, "Mar 1, 2024") {
			t.Error("expected last-updated stamp")
		}
	})

	t.Run("Lineup", func(t *testing.T) {
		var buf bytes.Buffer
		page := LineupPage{
			Base:                Base{Title: "Your lineup"},
			FestivalDisplayName: "Coachella",
			FestivalYear:        2024,
			Artists: []models.ArtistTracks{
				{Artist: models.Artist{Name: "Alpha"}, Tracks: []models.Track{{Name: "One", Album: "LP"}}},
			},
		}
		if err := renderer.Render(&buf, "lineup", page); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !strings.Contains(buf.String(), "Alpha") || !strings.Contains(buf.String(), "One") {
			t.Error("expected artist and track in output")
		}
	})

	t.Run("Unknown Template", func(t *testing.T) {
		if err := renderer.Render(&bytes.Buffer{}, "missing", nil); err == nil {
			t.Error("expected error for unknown template")
		}
	})
}

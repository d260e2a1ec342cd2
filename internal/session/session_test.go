package session

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("Load Missing Session", func(t *testing.T) {
		store := NewMemoryStore()
		_, err := store.Load(ctx, "nobody")
		if !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("Reset Writes Minimal Record", func(t *testing.T) {
		store := NewMemoryStore()
		data := &models.SessionData{FestivalName: "coachella", FestivalDisplayName: "Coachella", FestivalYear: 2024}

		if err := store.Reset(ctx, "visitor", data); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		fields := store.Fields("visitor")
		if len(fields) != 3 {
			t.Errorf("expected 3 fields in minimal record, got %d: %v", len(fields), fields)
		}
		if fields[FieldFestivalName] != "coachella" || fields[FieldFestivalYear] != "2024" {
			t.Errorf("unexpected minimal record: %v", fields)
		}
	})

	t.Run("Reset Removes Stale Fields", func(t *testing.T) {
		store := NewMemoryStore()
		if err := store.Merge(ctx, "visitor", map[string]string{
			FieldFestivalName:        "coachella",
			FieldFestivalDisplayName: "Coachella",
			FieldFestivalYear:        "2023",
			FieldTracksPerArtist:     "5",
			FieldArtistIDs:           "a1,a2",
			FieldTrackIDs:            "t1,t2",
			FieldTrackType:           "setlist",
			FieldPlaylistName:        "My Mix",
			FieldSelectedDays:        "1,2",
			FieldSelectedGenres:      "pop",
		}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		data := &models.SessionData{FestivalName: "bottlerock", FestivalDisplayName: "BottleRock", FestivalYear: 2024}
		if err := store.Reset(ctx, "visitor", data); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		fields := store.Fields("visitor")
		for _, stale := range staleFields {
			if _, ok := fields[stale]; ok {
				t.Errorf("stale field %s survived reset", stale)
			}
		}
		if fields[FieldFestivalName] != "bottlerock" || fields[FieldFestivalYear] != "2024" {
			t.Errorf("unexpected record after reset: %v", fields)
		}
	})

	t.Run("Merge Shallow Merges", func(t *testing.T) {
		store := NewMemoryStore()
		data := &models.SessionData{FestivalName: "bonnaroo", FestivalDisplayName: "Bonnaroo", FestivalYear: 2024}
		if err := store.Reset(ctx, "visitor", data); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if err := store.Merge(ctx, "visitor", map[string]string{FieldTrackIDs: "t1,t2,t3"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		loaded, err := store.Load(ctx, "visitor")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if loaded.FestivalName != "bonnaroo" {
			t.Errorf("merge clobbered festival name: %s", loaded.FestivalName)
		}
		if loaded.TrackIDs == nil || *loaded.TrackIDs != "t1,t2,t3" {
			t.Errorf("expected merged track ids, got %v", loaded.TrackIDs)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("Defaults Tracks Per Artist", func(t *testing.T) {
		data := decode(map[string]string{FieldFestivalName: "coachella"})
		if data.TracksPerArtist != models.DefaultTracksPerArtist {
			t.Errorf("expected default %d, got %d", models.DefaultTracksPerArtist, data.TracksPerArtist)
		}
	})

	t.Run("Defaults Tracks Per Artist On NaN", func(t *testing.T) {
		data := decode(map[string]string{FieldTracksPerArtist: "lots"})
		if data.TracksPerArtist != models.DefaultTracksPerArtist {
			t.Errorf("expected default %d, got %d", models.DefaultTracksPerArtist, data.TracksPerArtist)
		}
	})

	t.Run("Absent List Is Nil", func(t *testing.T) {
		data := decode(map[string]string{FieldFestivalName: "coachella"})
		if data.ArtistIDs != nil || data.SelectedGenres != nil || data.SelectedDays != nil {
			t.Error("expected absent list fields to stay nil")
		}
	})

	t.Run("Present Empty List Is Non Nil", func(t *testing.T) {
		data := decode(map[string]string{FieldSelectedGenres: ""})
		if data.SelectedGenres == nil {
			t.Fatal("expected present-but-empty genres to be non-nil")
		}
		if *data.SelectedGenres != "" {
			t.Errorf("expected empty string, got %q", *data.SelectedGenres)
		}
	})

	t.Run("Parses Year And Track Type", func(t *testing.T) {
		data := decode(map[string]string{FieldFestivalYear: "2024", FieldTrackType: "setlist"})
		if data.FestivalYear != 2024 {
			t.Errorf("expected 2024, got %d", data.FestivalYear)
		}
		if data.TrackType != models.TrackTypeSetlist {
			t.Errorf("expected setlist, got %s", data.TrackType)
		}
	})
}

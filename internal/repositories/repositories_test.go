package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return db
}

func TestArtistRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewArtistRepository(db)

	artists := []models.Artist{
		{ID: "a2", Name: "Beta", Genres: []string{"rock", "pop"}, Day: 2},
		{ID: "a1", Name: "Alpha", Genres: []string{"pop"}, Day: 1},
	}

	t.Run("Replace And List Preserves Order", func(t *testing.T) {
		if err := repo.ReplaceForEdition("coachella", 2024, artists); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got, err := repo.ListForEdition("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 artists, got %d", len(got))
		}
		if got[0].ID != "a2" || got[1].ID != "a1" {
			t.Errorf("lineup order not preserved: %v", got)
		}
		if len(got[0].Genres) != 2 || got[0].Genres[0] != "rock" {
			t.Errorf("genres not round-tripped: %v", got[0].Genres)
		}
	})

	t.Run("Replace Is Wholesale", func(t *testing.T) {
		if err := repo.ReplaceForEdition("coachella", 2024, artists[:1]); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		got, err := repo.ListForEdition("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected stale rows replaced, got %d artists", len(got))
		}
	})

	t.Run("Editions Are Isolated", func(t *testing.T) {
		got, err := repo.ListForEdition("coachella", 2023)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no artists for other edition, got %d", len(got))
		}
	})
}

func TestDayRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewDayRepository(db)

	days := []models.LineupDay{
		{Number: 2, Label: "Saturday", Date: "2024-04-13"},
		{Number: 1, Label: "Friday", Date: "2024-04-12"},
	}
	if err := repo.ReplaceForEdition("coachella", 2024, days); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	t.Run("ListNumbers Ascending", func(t *testing.T) {
		numbers, err := repo.ListNumbers("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(numbers) != 2 || numbers[0] != 1 || numbers[1] != 2 {
			t.Errorf("expected [1 2], got %v", numbers)
		}
	})

	t.Run("Get", func(t *testing.T) {
		day, err := repo.Get("coachella", 2024, 2)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if day.Label != "Saturday" {
			t.Errorf("expected Saturday, got %s", day.Label)
		}
	})

	t.Run("Get Missing Day", func(t *testing.T) {
		if _, err := repo.Get("coachella", 2024, 9); err == nil {
			t.Error("expected error for unknown day")
		}
	})
}

func TestEditionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewEditionRepository(db)

	t.Run("Never Refreshed", func(t *testing.T) {
		meta, err := repo.Get("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !meta.LastUpdated.IsZero() {
			t.Errorf("expected zero time, got %v", meta.LastUpdated)
		}
	})

	t.Run("Touch Then Get", func(t *testing.T) {
		at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
		if err := repo.Touch("coachella", 2024, at); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		meta, err := repo.Get("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !meta.LastUpdated.Equal(at) {
			t.Errorf("expected %v, got %v", at, meta.LastUpdated)
		}
	})

	t.Run("Touch Upserts", func(t *testing.T) {
		later := time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)
		if err := repo.Touch("coachella", 2024, later); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		meta, err := repo.Get("coachella", 2024)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !meta.LastUpdated.Equal(later) {
			t.Errorf("expected %v, got %v", later, meta.LastUpdated)
		}
	})
}

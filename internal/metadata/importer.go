package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/repositories"
	"github.com/desertthunder/festify/internal/services"
)

// LineupFile is the on-disk shape of a festival lineup: day metadata plus
// artist names per day, resolved against the music API on import.
type LineupFile struct {
	Festival string `json:"festival"`
	Year     int    `json:"year"`
	Days     []struct {
		Number int    `json:"number"`
		Label  string `json:"label"`
		Date   string `json:"date"`
	} `json:"days"`
	Artists []struct {
		Name string `json:"name"`
		Day  int    `json:"day"`
	} `json:"artists"`
}

// Importer refreshes the metadata cache for one edition from a lineup file.
type Importer struct {
	source   services.ArtistSource
	artists  *repositories.ArtistRepository
	days     *repositories.DayRepository
	editions *repositories.EditionRepository
	logger   *log.Logger
}

// NewImporter creates an Importer writing through the given repositories.
func NewImporter(source services.ArtistSource, artists *repositories.ArtistRepository, days *repositories.DayRepository, editions *repositories.EditionRepository, logger *log.Logger) *Importer {
	return &Importer{source: source, artists: artists, days: days, editions: editions, logger: logger}
}

// ReadLineupFile parses a lineup JSON file.
func ReadLineupFile(path string) (*LineupFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lineup file: %w", err)
	}

	var lineup LineupFile
	if err := json.Unmarshal(data, &lineup); err != nil {
		return nil, fmt.Errorf("failed to parse lineup file: %w", err)
	}
	if lineup.Festival == "" || lineup.Year == 0 {
		return nil, fmt.Errorf("lineup file missing festival or year")
	}

	return &lineup, nil
}

// Import resolves every artist name in the lineup against the music API and
// replaces the edition's cached metadata wholesale.
//
// Artists that cannot be resolved are logged and skipped rather than failing
// the import.
func (im *Importer) Import(ctx context.Context, lineup *LineupFile) error {
	days := make([]models.LineupDay, 0, len(lineup.Days))
	for _, d := range lineup.Days {
		days = append(days, models.LineupDay{Number: d.Number, Label: d.Label, Date: d.Date})
	}

	artists := make([]models.Artist, 0, len(lineup.Artists))
	for _, entry := range lineup.Artists {
		artist, err := im.source.SearchArtist(ctx, entry.Name)
		if err != nil {
			im.logger.Warn("skipping unresolved artist", "artist", entry.Name, "error", err)
			continue
		}
		artist.Day = entry.Day
		artists = append(artists, *artist)
	}

	if err := im.days.ReplaceForEdition(lineup.Festival, lineup.Year, days); err != nil {
		return fmt.Errorf("failed to cache days: %w", err)
	}
	if err := im.artists.ReplaceForEdition(lineup.Festival, lineup.Year, artists); err != nil {
		return fmt.Errorf("failed to cache artists: %w", err)
	}
	if err := im.editions.Touch(lineup.Festival, lineup.Year, time.Now()); err != nil {
		return fmt.Errorf("failed to record refresh: %w", err)
	}

	im.logger.Info("lineup imported", "festival", lineup.Festival, "year", lineup.Year, "artists", len(artists), "days", len(days))
	return nil
}

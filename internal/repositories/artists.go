package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// ArtistRepository caches performing artists per festival edition.
type ArtistRepository struct {
	db *sql.DB
}

// NewArtistRepository creates a new ArtistRepository with the given database connection
func NewArtistRepository(db *sql.DB) *ArtistRepository {
	return &ArtistRepository{db: db}
}

// ReplaceForEdition replaces the cached artist list for an edition wholesale,
// preserving the given slice order as the canonical lineup order.
func (r *ArtistRepository) ReplaceForEdition(festival string, year int, artists []models.Artist) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM artists WHERE festival = ? AND year = ?", festival, year); err != nil {
		return fmt.Errorf("failed to clear cached artists: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO artists (festival, year, artist_id, name, genres, day, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, artist := range artists {
		if _, err := stmt.Exec(festival, year, artist.ID, artist.Name, shared.JoinList(artist.Genres), artist.Day, i); err != nil {
			return fmt.Errorf("failed to insert artist %s: %w", artist.ID, err)
		}
	}

	return tx.Commit()
}

// ListForEdition retrieves the cached artists for an edition in lineup order.
func (r *ArtistRepository) ListForEdition(festival string, year int) ([]models.Artist, error) {
	query := `
		SELECT artist_id, name, genres, day
		FROM artists
		WHERE festival = ? AND year = ?
		ORDER BY position
	`

	rows, err := r.db.Query(query, festival, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []models.Artist
	for rows.Next() {
		var artist models.Artist
		var genres string
		if err := rows.Scan(&artist.ID, &artist.Name, &genres, &artist.Day); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artist.Genres = shared.SplitList(genres)
		artists = append(artists, artist)
	}

	return artists, rows.Err()
}

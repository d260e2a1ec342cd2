package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/desertthunder/festify/internal/models"
)

// EditionRepository tracks when each edition's cached metadata was refreshed.
type EditionRepository struct {
	db *sql.DB
}

// NewEditionRepository creates a new EditionRepository with the given database connection
func NewEditionRepository(db *sql.DB) *EditionRepository {
	return &EditionRepository{db: db}
}

// Touch records a metadata refresh for an edition.
func (r *EditionRepository) Touch(festival string, year int, at time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO editions (festival, year, last_updated) VALUES (?, ?, ?)
		ON CONFLICT (festival, year) DO UPDATE SET last_updated = excluded.last_updated
	`, festival, year, at.UTC())
	if err != nil {
		return fmt.Errorf("failed to touch edition: %w", err)
	}
	return nil
}

// Get retrieves the refresh bookkeeping for an edition.
//
// A missing row yields a zero LastUpdated rather than an error; the caller
// treats it as "never refreshed".
func (r *EditionRepository) Get(festival string, year int) (*models.EditionMeta, error) {
	meta := &models.EditionMeta{Festival: festival, Year: year}

	row := r.db.QueryRow("SELECT last_updated FROM editions WHERE festival = ? AND year = ?", festival, year)
	var at sql.NullTime
	if err := row.Scan(&at); err != nil {
		if err == sql.ErrNoRows {
			return meta, nil
		}
		return nil, fmt.Errorf("failed to scan edition: %w", err)
	}
	if at.Valid {
		meta.LastUpdated = at.Time
	}

	return meta, nil
}

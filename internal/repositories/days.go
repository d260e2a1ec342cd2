package repositories

import (
	"database/sql"
	"fmt"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// DayRepository caches lineup days per festival edition.
type DayRepository struct {
	db *sql.DB
}

// NewDayRepository creates a new DayRepository with the given database connection
func NewDayRepository(db *sql.DB) *DayRepository {
	return &DayRepository{db: db}
}

// ReplaceForEdition replaces the cached day list for an edition wholesale.
func (r *DayRepository) ReplaceForEdition(festival string, year int, days []models.LineupDay) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM lineup_days WHERE festival = ? AND year = ?", festival, year); err != nil {
		return fmt.Errorf("failed to clear cached days: %w", err)
	}

	for _, day := range days {
		if _, err := tx.Exec(
			"INSERT INTO lineup_days (festival, year, day, label, date) VALUES (?, ?, ?, ?, ?)",
			festival, year, day.Number, day.Label, day.Date,
		); err != nil {
			return fmt.Errorf("failed to insert day %d: %w", day.Number, err)
		}
	}

	return tx.Commit()
}

// ListNumbers retrieves the cached day numbers for an edition in ascending order.
func (r *DayRepository) ListNumbers(festival string, year int) ([]int, error) {
	rows, err := r.db.Query(
		"SELECT day FROM lineup_days WHERE festival = ? AND year = ? ORDER BY day",
		festival, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query days: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		numbers = append(numbers, n)
	}

	return numbers, rows.Err()
}

// Get retrieves a single cached lineup day.
func (r *DayRepository) Get(festival string, year, number int) (*models.LineupDay, error) {
	row := r.db.QueryRow(
		"SELECT day, label, date FROM lineup_days WHERE festival = ? AND year = ? AND day = ?",
		festival, year, number,
	)

	var day models.LineupDay
	if err := row.Scan(&day.Number, &day.Label, &day.Date); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: day %d", shared.ErrFestivalNotFound, number)
		}
		return nil, fmt.Errorf("failed to scan day: %w", err)
	}

	return &day, nil
}

// Package metadata serves festival edition metadata (artists, lineup days,
// refresh timestamps) out of the local cache, and refreshes the cache from
// external music APIs.
package metadata

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/repositories"
)

// Provider is the read side consumed by page handlers.
type Provider interface {
	// ArtistsFor returns the edition's artists in lineup order.
	ArtistsFor(ctx context.Context, festival string, year int) ([]models.Artist, error)

	// DayNumbers returns the edition's day numbers in ascending order.
	DayNumbers(ctx context.Context, festival string, year int) ([]int, error)

	// Days returns the edition's day metadata, joined in ascending day order.
	Days(ctx context.Context, festival string, year int) ([]models.LineupDay, error)

	// LastUpdated returns when the edition's metadata was last refreshed.
	LastUpdated(ctx context.Context, festival string, year int) (time.Time, error)
}

// Fetcher implements [Provider] over the sqlite metadata cache.
type Fetcher struct {
	artists  *repositories.ArtistRepository
	days     *repositories.DayRepository
	editions *repositories.EditionRepository
}

// NewFetcher creates a Fetcher over the given repositories.
func NewFetcher(artists *repositories.ArtistRepository, days *repositories.DayRepository, editions *repositories.EditionRepository) *Fetcher {
	return &Fetcher{artists: artists, days: days, editions: editions}
}

// ArtistsFor returns the edition's artists in lineup order.
func (f *Fetcher) ArtistsFor(ctx context.Context, festival string, year int) ([]models.Artist, error) {
	return f.artists.ListForEdition(festival, year)
}

// DayNumbers returns the edition's day numbers in ascending order.
func (f *Fetcher) DayNumbers(ctx context.Context, festival string, year int) ([]int, error) {
	return f.days.ListNumbers(festival, year)
}

// Day returns metadata for a single lineup day.
func (f *Fetcher) Day(ctx context.Context, festival string, year, number int) (*models.LineupDay, error) {
	return f.days.Get(festival, year, number)
}

// Days fetches metadata for every day number concurrently and joins the
// results in ascending day order. The first failed fetch aborts the whole
// call.
func (f *Fetcher) Days(ctx context.Context, festival string, year int) ([]models.LineupDay, error) {
	numbers, err := f.DayNumbers(ctx, festival, year)
	if err != nil {
		return nil, err
	}

	days := make([]models.LineupDay, len(numbers))
	g, ctx := errgroup.WithContext(ctx)
	for i, number := range numbers {
		g.Go(func() error {
			day, err := f.Day(ctx, festival, year, number)
			if err != nil {
				return fmt.Errorf("failed to fetch day %d: %w", number, err)
			}
			days[i] = *day
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return days, nil
}

// LastUpdated returns when the edition's metadata was last refreshed. A zero
// time means the edition has never been refreshed.
func (f *Fetcher) LastUpdated(ctx context.Context, festival string, year int) (time.Time, error) {
	meta, err := f.editions.Get(festival, year)
	if err != nil {
		return time.Time{}, err
	}
	return meta.LastUpdated, nil
}

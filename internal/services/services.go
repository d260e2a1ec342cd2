package services

import (
	"context"

	"github.com/desertthunder/festify/internal/models"
)

// ArtistSource resolves artist names against an external music catalog.
type ArtistSource interface {
	// SearchArtist returns the best match for the given artist name.
	SearchArtist(ctx context.Context, name string) (*models.Artist, error)
}

// TrackSource fetches subsets of an artist's catalog, one method per track
// type the customize form offers.
type TrackSource interface {
	// TopTracks returns the artist's most popular tracks.
	TopTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error)

	// NewTracks returns tracks from the artist's newest releases.
	NewTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error)

	// SetlistTracks returns tracks seen in the artist's recent live sets.
	SetlistTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error)
}

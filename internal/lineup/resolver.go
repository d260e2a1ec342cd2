package lineup

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/services"
	"github.com/desertthunder/festify/internal/session"
	"github.com/desertthunder/festify/internal/shared"
)

// Resolver fetches the chosen track subset per selected artist and persists
// the aggregated track IDs back into the session.
type Resolver struct {
	source services.TrackSource
	store  session.Store
	logger *log.Logger
}

// NewResolver creates a Resolver with the given track source and session store.
func NewResolver(source services.TrackSource, store session.Store, logger *log.Logger) *Resolver {
	return &Resolver{source: source, store: store, logger: logger}
}

// Resolve fetches tracks for every artist the session selected.
//
// Artists are processed sequentially in lineup order; a fetch failure for any
// artist aborts the whole resolution. An unrecognized or missing track type
// logs a warning and falls back to top tracks. The aggregated track IDs are
// merged into the session under trackIdsStr, in artist-then-track order;
// merge failures are logged, not surfaced.
func (r *Resolver) Resolve(ctx context.Context, sessionID string, artists []models.Artist, data *models.SessionData) ([]models.ArtistTracks, error) {
	chosen := make(map[string]bool)
	if data.ArtistIDs != nil {
		for _, id := range shared.SplitList(*data.ArtistIDs) {
			chosen[id] = true
		}
	}

	fetch := r.fetchFunc(data.TrackType)
	limit := data.TracksPerArtist
	if limit <= 0 {
		limit = models.DefaultTracksPerArtist
	}

	var resolved []models.ArtistTracks
	var trackIDs []string
	for _, artist := range artists {
		if !chosen[artist.ID] {
			continue
		}

		tracks, err := fetch(ctx, artist, limit)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch tracks for %s: %w", artist.Name, err)
		}

		for _, track := range tracks {
			trackIDs = append(trackIDs, track.ID)
		}
		resolved = append(resolved, models.ArtistTracks{Artist: artist, Tracks: tracks})
	}

	fields := map[string]string{session.FieldTrackIDs: shared.JoinList(trackIDs)}
	if err := r.store.Merge(ctx, sessionID, fields); err != nil {
		r.logger.Error("failed to persist resolved track ids", "session", sessionID, "error", err)
	}

	return resolved, nil
}

// fetchFunc routes a track type to its fetch strategy.
func (r *Resolver) fetchFunc(tt models.TrackType) func(context.Context, models.Artist, int) ([]models.Track, error) {
	switch tt {
	case models.TrackTypeRecent:
		return r.source.NewTracks
	case models.TrackTypeSetlist:
		return r.source.SetlistTracks
	case models.TrackTypeTop:
		return r.source.TopTracks
	default:
		r.logger.Warn("unknown track type, falling back to top tracks", "trackType", string(tt))
		return r.source.TopTracks
	}
}

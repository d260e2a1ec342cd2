// Package session persists per-visitor customization state in an external
// key-value store, keyed by an opaque session identifier.
package session

import (
	"context"
	"strconv"

	"github.com/desertthunder/festify/internal/models"
)

// Hash field names. These are part of the contract with the template layer
// and must not change.
const (
	FieldFestivalName        = "festivalName"
	FieldFestivalDisplayName = "festivalDisplayName"
	FieldFestivalYear        = "festivalYear"
	FieldTrackType           = "trackType"
	FieldTracksPerArtist     = "tracksPerArtist"
	FieldArtistIDs           = "artistIdsStr"
	FieldSelectedGenres      = "selectedGenresStr"
	FieldSelectedDays        = "selectedDaysStr"
	FieldTrackIDs            = "trackIdsStr"
	FieldPlaylistName        = "playlistName"
	FieldPlaylistURL         = "playlistUrl"
)

// staleFields are removed when the visitor switches to a different festival
// edition, before the new minimal record is written.
var staleFields = []string{
	FieldTracksPerArtist,
	FieldArtistIDs,
	FieldTrackIDs,
	FieldTrackType,
	FieldPlaylistName,
	FieldSelectedDays,
	FieldSelectedGenres,
}

// Store reads and writes session hashes.
//
// Reads are awaited (a page cannot render without session state). Write
// failures are expected to be logged by the caller and not surfaced to the
// requester.
type Store interface {
	// Load returns the session for the given identifier, or
	// [shared.ErrNoSession] if no hash exists for the key.
	Load(ctx context.Context, sessionID string) (*models.SessionData, error)

	// Reset deletes the stale customization fields then writes the new
	// minimal record (festival name, display name, year). The two steps are
	// separate operations; partial failure leaves a degraded record.
	Reset(ctx context.Context, sessionID string, data *models.SessionData) error

	// Merge shallow-merges fields into the existing hash.
	Merge(ctx context.Context, sessionID string, fields map[string]string) error
}

// decode builds a SessionData from hash fields. List fields keep their
// absent-vs-present distinction: an absent field stays nil, a present field
// (even empty) becomes a non-nil pointer.
func decode(fields map[string]string) *models.SessionData {
	data := &models.SessionData{
		FestivalName:        fields[FieldFestivalName],
		FestivalDisplayName: fields[FieldFestivalDisplayName],
		TrackType:           models.TrackType(fields[FieldTrackType]),
		PlaylistName:        fields[FieldPlaylistName],
		PlaylistURL:         fields[FieldPlaylistURL],
	}

	data.FestivalYear, _ = strconv.Atoi(fields[FieldFestivalYear])

	data.TracksPerArtist = models.DefaultTracksPerArtist
	if raw, ok := fields[FieldTracksPerArtist]; ok {
		if n, err := strconv.Atoi(raw); err == nil {
			data.TracksPerArtist = n
		}
	}

	for field, target := range map[string]**string{
		FieldArtistIDs:      &data.ArtistIDs,
		FieldSelectedGenres: &data.SelectedGenres,
		FieldSelectedDays:   &data.SelectedDays,
		FieldTrackIDs:       &data.TrackIDs,
	} {
		if raw, ok := fields[field]; ok {
			value := raw
			*target = &value
		}
	}

	return data
}

// minimalRecord is the hash written on reset: just enough to tie the session
// to a festival edition.
func minimalRecord(data *models.SessionData) map[string]string {
	return map[string]string{
		FieldFestivalName:        data.FestivalName,
		FieldFestivalDisplayName: data.FestivalDisplayName,
		FieldFestivalYear:        data.YearString(),
	}
}

// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/desertthunder/festify/internal/models"
)

// MockTrackSource is a test double for [services.TrackSource] that records
// which strategy was called per artist and serves canned tracks.
type MockTrackSource struct {
	Calls  []string // "top", "recent" or "setlist", in call order
	Tracks map[string][]models.Track
	Err    error
}

func (m *MockTrackSource) fetch(strategy string, artist models.Artist, limit int) ([]models.Track, error) {
	m.Calls = append(m.Calls, strategy)
	if m.Err != nil {
		return nil, m.Err
	}
	tracks := m.Tracks[artist.ID]
	if limit > 0 && len(tracks) > limit {
		tracks = tracks[:limit]
	}
	return tracks, nil
}

func (m *MockTrackSource) TopTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	return m.fetch("top", artist, limit)
}

func (m *MockTrackSource) NewTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	return m.fetch("recent", artist, limit)
}

func (m *MockTrackSource) SetlistTracks(ctx context.Context, artist models.Artist, limit int) ([]models.Track, error) {
	return m.fetch("setlist", artist, limit)
}

// MockArtistSource is a test double for [services.ArtistSource].
type MockArtistSource struct {
	Artists map[string]models.Artist // keyed by search name
}

func (m *MockArtistSource) SearchArtist(ctx context.Context, name string) (*models.Artist, error) {
	artist, ok := m.Artists[name]
	if !ok {
		return nil, fmt.Errorf("no match for %s", name)
	}
	return &artist, nil
}

// MockProvider is a test double for [metadata.Provider] serving fixed data.
type MockProvider struct {
	Artists   []models.Artist
	DayList   []models.LineupDay
	Updated   time.Time
	FailReads bool
}

func (m *MockProvider) ArtistsFor(ctx context.Context, festival string, year int) ([]models.Artist, error) {
	if m.FailReads {
		return nil, errors.New("metadata unavailable")
	}
	return m.Artists, nil
}

func (m *MockProvider) DayNumbers(ctx context.Context, festival string, year int) ([]int, error) {
	if m.FailReads {
		return nil, errors.New("metadata unavailable")
	}
	numbers := make([]int, len(m.DayList))
	for i, d := range m.DayList {
		numbers[i] = d.Number
	}
	return numbers, nil
}

func (m *MockProvider) Days(ctx context.Context, festival string, year int) ([]models.LineupDay, error) {
	if m.FailReads {
		return nil, errors.New("metadata unavailable")
	}
	return m.DayList, nil
}

func (m *MockProvider) LastUpdated(ctx context.Context, festival string, year int) (time.Time, error) {
	if m.FailReads {
		return time.Time{}, errors.New("metadata unavailable")
	}
	return m.Updated, nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// StrPtr returns a pointer to s, for building nullable session list fields.
func StrPtr(s string) *string {
	return &s
}

package models

import (
	"strconv"
	"time"
)

// Checked is the selection-state value rendered into checkbox attributes.
// The empty string means unchecked.
const Checked = "checked"

// Festival is a supported festival with the years it ran.
//
// The empty Name is reserved: dropdown separator entries use it so they sort
// before every real festival within their region.
type Festival struct {
	Name        string
	DisplayName string
	Region      string
	Years       []int
}

// HasYear reports whether the festival ran an edition in the given year.
func (f Festival) HasYear(year int) bool {
	for _, y := range f.Years {
		if y == year {
			return true
		}
	}
	return false
}

// Region is a geographic grouping of festivals, used only to inject
// non-selectable separators into the festival dropdown.
type Region struct {
	Name        string
	DisplayName string
}

// TrackType selects which subset of an artist's catalog feeds the playlist.
type TrackType string

const (
	TrackTypeTop     TrackType = "top"     // most popular tracks
	TrackTypeSetlist TrackType = "setlist" // tracks seen in recent live setlists
	TrackTypeRecent  TrackType = "recent"  // newest releases
)

// DefaultTracksPerArtist is used when the session carries no track count.
const DefaultTracksPerArtist = 3

// SessionData is the per-visitor customization state persisted as a hash in
// the session store. String list fields are comma-joined IDs; a nil pointer
// means the visitor never customized that dimension.
type SessionData struct {
	FestivalName        string
	FestivalDisplayName string
	FestivalYear        int
	TrackType           TrackType
	TracksPerArtist     int
	ArtistIDs           *string
	SelectedGenres      *string
	SelectedDays        *string
	TrackIDs            *string
	PlaylistName        string
	PlaylistURL         string
}

// YearString renders the festival year the way session hashes store it.
func (s *SessionData) YearString() string {
	return strconv.Itoa(s.FestivalYear)
}

// Matches reports whether the session belongs to the given festival edition.
func (s *SessionData) Matches(festival string, year int) bool {
	return s.FestivalName == festival && s.FestivalYear == year
}

// Artist is a performing artist fetched from the music API, with the genre
// tags combined across its source records.
type Artist struct {
	ID     string
	Name   string
	Genres []string
	Day    int
}

// LineupDay is one day of a festival edition.
type LineupDay struct {
	Number int
	Label  string
	Date   string
}

// Track is a single resolved track for the personalized lineup.
type Track struct {
	ID    string
	Name  string
	Album string
	URI   string
}

// Stateful pairs a selection state with a domain object so the view layer can
// render checkbox state without re-deriving it.
type Stateful[T any] struct {
	State string // Checked or ""
	Obj   T
}

// NewStateful wraps obj with the checked flag rendered as a state string.
func NewStateful[T any](obj T, checked bool) Stateful[T] {
	s := Stateful[T]{Obj: obj}
	if checked {
		s.State = Checked
	}
	return s
}

// ArtistTracks is an artist annotated with its resolved track list for the
// personalized-lineup page.
type ArtistTracks struct {
	Artist Artist
	Tracks []Track
}

// EditionMeta records when an edition's cached metadata was last refreshed.
type EditionMeta struct {
	Festival    string
	Year        int
	LastUpdated time.Time
}

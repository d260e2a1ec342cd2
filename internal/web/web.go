// Package web renders the festify pages with server-side html/template.
//
// View models mirror the template contract of the original front end: the
// three track-type flags are independent mutually-exclusive checked strings
// rather than a single enum, and selection state travels as "checked"/"" so
// templates can splat it into checkbox attributes.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/desertthunder/festify/internal/lineup"
	"github.com/desertthunder/festify/internal/models"
)

//go:embed templates/*.html
var templateFiles embed.FS

//go:embed static
var staticFiles embed.FS

// StaticFiles exposes the embedded assets (stylesheet) for the HTTP static
// handler. Paths are rooted at "static/".
func StaticFiles() fs.FS {
	return staticFiles
}

// Base carries fields every page needs.
type Base struct {
	Title string
	Prod  bool
}

// HomePage renders the festival dropdown.
type HomePage struct {
	Base
	Festivals []models.Festival
}

// CustomizePage renders the customize-list form.
type CustomizePage struct {
	Base
	FestivalName            string
	FestivalDisplayName     string
	FestivalYear            int
	TracksPerArtist         int
	TopTracksCheckedStr     string
	SetlistTracksCheckedStr string
	NewTracksCheckedStr     string
	Artists                 []models.Stateful[models.Artist]
	MainGenres              []models.Stateful[string]
	SpecificGenres          []models.Stateful[string]
	Days                    []models.Stateful[models.LineupDay]
	LastUpdated             string
}

// LineupPage renders the personalized lineup with resolved tracks.
type LineupPage struct {
	Base
	FestivalDisplayName string
	FestivalYear        int
	Artists             []models.ArtistTracks
}

// SuccessPage renders the generate-playlist-success view.
type SuccessPage struct {
	Base
	PlaylistName string
	PlaylistURL  string
}

// FAQPage renders the static FAQ.
type FAQPage struct {
	Base
}

// TrackTypeFlags computes the three mutually-exclusive checked strings from a
// session's track type. An unset type checks top tracks.
func TrackTypeFlags(tt models.TrackType) (top, setlist, recent string) {
	switch tt {
	case models.TrackTypeSetlist:
		return "", models.Checked, ""
	case models.TrackTypeRecent:
		return "", "", models.Checked
	default:
		return models.Checked, "", ""
	}
}

// NewCustomizePage assembles the customize view model from merged selection
// state and session data.
func NewCustomizePage(prod bool, data *models.SessionData, merged lineup.Merged, lastUpdated string) CustomizePage {
	top, setlist, recent := TrackTypeFlags(data.TrackType)
	return CustomizePage{
		Base:                    Base{Title: data.FestivalDisplayName, Prod: prod},
		FestivalName:            data.FestivalName,
		FestivalDisplayName:     data.FestivalDisplayName,
		FestivalYear:            data.FestivalYear,
		TracksPerArtist:         data.TracksPerArtist,
		TopTracksCheckedStr:     top,
		SetlistTracksCheckedStr: setlist,
		NewTracksCheckedStr:     recent,
		Artists:                 merged.Artists,
		MainGenres:              merged.MainGenres,
		SpecificGenres:          merged.SpecificGenres,
		Days:                    merged.Days,
		LastUpdated:             lastUpdated,
	}
}

// Renderer renders named pages from the embedded template set.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.ParseFS(templateFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

// Render executes the named page template with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

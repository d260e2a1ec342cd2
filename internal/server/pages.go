package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/festify/internal/catalog"
	"github.com/desertthunder/festify/internal/lineup"
	"github.com/desertthunder/festify/internal/metadata"
	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/session"
	"github.com/desertthunder/festify/internal/shared"
	"github.com/desertthunder/festify/internal/web"
)

// msgNoSession is the body for pages visited without a prior customize step.
const msgNoSession = "No session data found. Please start from the home page."

// Pages holds the dependencies for all page handlers.
type Pages struct {
	cfg      *shared.Config
	store    session.Store
	meta     metadata.Provider
	resolver *lineup.Resolver
	renderer *web.Renderer
	logger   *log.Logger
}

// NewPages creates the page handler set.
func NewPages(cfg *shared.Config, store session.Store, meta metadata.Provider, resolver *lineup.Resolver, renderer *web.Renderer, logger *log.Logger) *Pages {
	return &Pages{cfg: cfg, store: store, meta: meta, resolver: resolver, renderer: renderer, logger: logger}
}

// Register mounts every page route on the router.
func (p *Pages) Register(r Router) {
	r.Get("/health", p.Health)
	r.Get("/{$}", p.Home)
	r.Get("/customize", p.Customize)
	r.Get("/personalized-lineup", p.PersonalizedLineup)
	r.Get("/generate-playlist-success", p.GeneratePlaylistSuccess)
	r.Get("/faq", p.FAQ)
}

// Health responds with a plain-text liveness probe.
func (p *Pages) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("healthy"))
}

// Home renders the festival dropdown.
func (p *Pages) Home(w http.ResponseWriter, r *http.Request) {
	page := web.HomePage{
		Base:      web.Base{Title: "Home", Prod: p.cfg.Prod()},
		Festivals: catalog.Dropdown(),
	}
	p.render(w, "home", page)
}

// FAQ renders the static FAQ page.
func (p *Pages) FAQ(w http.ResponseWriter, r *http.Request) {
	p.render(w, "faq", web.FAQPage{Base: web.Base{Title: "FAQ", Prod: p.cfg.Prod()}})
}

// Customize renders the customization form for a festival edition.
//
// A session for a different edition is reset to a minimal record for the
// requested one; reset failures are logged and the page proceeds with the
// in-memory data.
func (p *Pages) Customize(w http.ResponseWriter, r *http.Request) {
	festival := r.URL.Query().Get("festival")
	yearStr := r.URL.Query().Get("year")
	year, err := strconv.Atoi(yearStr)
	if festival == "" || yearStr == "" || err != nil {
		http.Error(w, "festival and year query parameters are required", http.StatusBadRequest)
		return
	}

	edition, err := catalog.FindEdition(festival, year)
	if err != nil {
		http.Error(w, "unknown festival or year", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	sessionID := SessionID(r)

	data, err := p.store.Load(ctx, sessionID)
	switch {
	case errors.Is(err, shared.ErrNoSession):
		data = nil
	case err != nil:
		p.logger.Error("failed to load session", "session", sessionID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if data == nil || !data.Matches(edition.Name, year) {
		data = &models.SessionData{
			FestivalName:        edition.Name,
			FestivalDisplayName: edition.DisplayName,
			FestivalYear:        year,
			TracksPerArtist:     models.DefaultTracksPerArtist,
		}
		if err := p.store.Reset(ctx, sessionID, data); err != nil {
			p.logger.Error("failed to reset session", "session", sessionID, "error", err)
		}
	}

	artists, err := p.meta.ArtistsFor(ctx, edition.Name, year)
	if err != nil {
		p.logger.Error("failed to fetch artists", "festival", edition.Name, "year", year, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	days, err := p.meta.Days(ctx, edition.Name, year)
	if err != nil {
		p.logger.Error("failed to fetch days", "festival", edition.Name, "year", year, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	merged := lineup.Merge(artists, days, data)

	var lastUpdated string
	if at, err := p.meta.LastUpdated(ctx, edition.Name, year); err == nil && !at.IsZero() {
		lastUpdated = at.Format("Jan 2, 2006")
	}

	p.render(w, "customize", web.NewCustomizePage(p.cfg.Prod(), data, merged, lastUpdated))
}

// PersonalizedLineup resolves tracks for the session's selected artists and
// renders them.
//
// When the customize form's fields are present in the query they are merged
// into the session first; a bare visit renders from saved state alone.
func (p *Pages) PersonalizedLineup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := SessionID(r)

	data, err := p.store.Load(ctx, sessionID)
	if errors.Is(err, shared.ErrNoSession) {
		http.Error(w, msgNoSession, http.StatusBadRequest)
		return
	} else if err != nil {
		p.logger.Error("failed to load session", "session", sessionID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Has("trackType") {
		p.saveSelections(r, sessionID, data)
	}

	artists, err := p.meta.ArtistsFor(ctx, data.FestivalName, data.FestivalYear)
	if err != nil {
		p.logger.Error("failed to fetch artists", "festival", data.FestivalName, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resolved, err := p.resolver.Resolve(ctx, sessionID, artists, data)
	if err != nil {
		p.logger.Error("failed to resolve tracks", "session", sessionID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := web.LineupPage{
		Base:                web.Base{Title: "Your lineup", Prod: p.cfg.Prod()},
		FestivalDisplayName: data.FestivalDisplayName,
		FestivalYear:        data.FestivalYear,
		Artists:             resolved,
	}
	p.render(w, "lineup", page)
}

// GeneratePlaylistSuccess renders the created playlist's name and URL from
// the session.
func (p *Pages) GeneratePlaylistSuccess(w http.ResponseWriter, r *http.Request) {
	data, err := p.store.Load(r.Context(), SessionID(r))
	if errors.Is(err, shared.ErrNoSession) {
		http.Error(w, msgNoSession, http.StatusBadRequest)
		return
	} else if err != nil {
		p.logger.Error("failed to load session", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	page := web.SuccessPage{
		Base:         web.Base{Title: "Playlist created", Prod: p.cfg.Prod()},
		PlaylistName: data.PlaylistName,
		PlaylistURL:  data.PlaylistURL,
	}
	p.render(w, "success", page)
}

// saveSelections merges the customize form's query fields into the session
// and mirrors them onto the in-memory data. Write failures are logged, and
// the page proceeds with the in-memory state.
func (p *Pages) saveSelections(r *http.Request, sessionID string, data *models.SessionData) {
	q := r.URL.Query()

	artistIDs := shared.JoinList(q["artists"])
	genres := shared.JoinList(q["genres"])
	days := shared.JoinList(q["days"])
	trackType := q.Get("trackType")

	tracksPerArtist := models.DefaultTracksPerArtist
	if n, err := strconv.Atoi(q.Get("tracksPerArtist")); err == nil && n > 0 {
		tracksPerArtist = n
	}

	data.ArtistIDs = &artistIDs
	data.SelectedGenres = &genres
	data.SelectedDays = &days
	data.TrackType = models.TrackType(trackType)
	data.TracksPerArtist = tracksPerArtist

	fields := map[string]string{
		session.FieldArtistIDs:       artistIDs,
		session.FieldSelectedGenres:  genres,
		session.FieldSelectedDays:    days,
		session.FieldTrackType:       trackType,
		session.FieldTracksPerArtist: strconv.Itoa(tracksPerArtist),
	}
	if err := p.store.Merge(r.Context(), sessionID, fields); err != nil {
		p.logger.Error("failed to save selections", "session", sessionID, "error", err)
	}
}

// render executes a page template, logging failures. Render errors after the
// first byte cannot change the status code.
func (p *Pages) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.renderer.Render(w, name, data); err != nil {
		p.logger.Error("render failed", "template", name, "error", err)
	}
}

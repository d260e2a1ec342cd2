// Package lineup implements the customization core: merging saved selections
// with the current edition's options, and resolving chosen artists to tracks.
package lineup

import (
	"sort"
	"strconv"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// mainGenres is the curated list of top-level genre tags. An artist genre is
// classified as main when it appears in this list; everything else is a
// specific genre.
var mainGenres = []string{
	"pop",
	"rap",
	"hip hop",
	"rock",
	"indie",
	"electronic",
	"house",
	"techno",
	"country",
	"r&b",
	"soul",
	"jazz",
	"metal",
	"folk",
	"latin",
}

// Merged is the checked/unchecked state for every selectable item on the
// customize form.
type Merged struct {
	Artists        []models.Stateful[models.Artist]
	MainGenres     []models.Stateful[string]
	SpecificGenres []models.Stateful[string]
	Days           []models.Stateful[models.LineupDay]
}

// selection interprets a previously-saved comma-joined ID list. A nil list
// means the visitor never customized this dimension, so every item counts as
// selected; a non-nil list (even empty) selects exactly its members.
type selection struct {
	all bool
	ids map[string]bool
}

func newSelection(raw *string) selection {
	if raw == nil {
		return selection{all: true}
	}
	ids := make(map[string]bool)
	for _, id := range shared.SplitList(*raw) {
		ids[id] = true
	}
	return selection{ids: ids}
}

func (s selection) contains(id string) bool {
	return s.all || s.ids[id]
}

// isMainGenre reports whether a genre tag belongs to the curated main list.
func isMainGenre(genre string) bool {
	for _, main := range mainGenres {
		if genre == main {
			return true
		}
	}
	return false
}

// Merge reconciles the session's saved selections with the edition's current
// artists and days, deciding checked state per item.
//
// Genres are collected across all artists; a genre is added once, with its
// checked state fixed at first occurrence against the shared saved-genres
// list. Genre lists sort by name and days by number so output order is
// deterministic; artists keep their lineup order.
func Merge(artists []models.Artist, days []models.LineupDay, data *models.SessionData) Merged {
	savedArtists := newSelection(data.ArtistIDs)
	savedGenres := newSelection(data.SelectedGenres)
	savedDays := newSelection(data.SelectedDays)

	merged := Merged{
		Artists: make([]models.Stateful[models.Artist], 0, len(artists)),
		Days:    make([]models.Stateful[models.LineupDay], 0, len(days)),
	}

	seenMain := make(map[string]models.Stateful[string])
	seenSpecific := make(map[string]models.Stateful[string])
	for _, artist := range artists {
		merged.Artists = append(merged.Artists, models.NewStateful(artist, savedArtists.contains(artist.ID)))

		for _, genre := range artist.Genres {
			target := seenSpecific
			if isMainGenre(genre) {
				target = seenMain
			}
			if _, ok := target[genre]; ok {
				continue
			}
			target[genre] = models.NewStateful(genre, savedGenres.contains(genre))
		}
	}

	merged.MainGenres = sortGenres(seenMain)
	merged.SpecificGenres = sortGenres(seenSpecific)

	for _, day := range days {
		merged.Days = append(merged.Days, models.NewStateful(day, savedDays.contains(dayID(day))))
	}
	sort.Slice(merged.Days, func(i, j int) bool {
		return merged.Days[i].Obj.Number < merged.Days[j].Obj.Number
	})

	return merged
}

// dayID renders a day number the way selectedDaysStr stores it.
func dayID(day models.LineupDay) string {
	return strconv.Itoa(day.Number)
}

// sortGenres extracts map values ordered by genre name.
func sortGenres(m map[string]models.Stateful[string]) []models.Stateful[string] {
	out := make([]models.Stateful[string], 0, len(m))
	for _, g := range m {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Obj < out[j].Obj })
	return out
}

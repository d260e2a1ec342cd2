// Package catalog holds the static list of supported festivals and regions.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/desertthunder/festify/internal/models"
	"github.com/desertthunder/festify/internal/shared"
)

// regions groups festivals for the home-page dropdown. Display names carry
// the flag prefix rendered in the separator rows.
var regions = []models.Region{
	{Name: "us-ca", DisplayName: "California"},
	{Name: "us-nv", DisplayName: "Nevada"},
	{Name: "us-tn", DisplayName: "Tennessee"},
	{Name: "us-il", DisplayName: "Illinois"},
	{Name: "eu-be", DisplayName: "Belgium"},
}

// supported lists every festival edition the service can personalize.
// (Name, year) uniquely identifies an edition.
var supported = []models.Festival{
	{Name: "coachella", DisplayName: "Coachella", Region: "us-ca", Years: []int{2022, 2023, 2024}},
	{Name: "bottlerock", DisplayName: "BottleRock", Region: "us-ca", Years: []int{2022, 2023, 2024}},
	{Name: "outsidelands", DisplayName: "Outside Lands", Region: "us-ca", Years: []int{2022, 2023}},
	{Name: "edclv", DisplayName: "EDC Las Vegas", Region: "us-nv", Years: []int{2023, 2024}},
	{Name: "bonnaroo", DisplayName: "Bonnaroo", Region: "us-tn", Years: []int{2023, 2024}},
	{Name: "lollapalooza", DisplayName: "Lollapalooza", Region: "us-il", Years: []int{2023, 2024}},
	{Name: "tomorrowland", DisplayName: "Tomorrowland", Region: "eu-be", Years: []int{2023, 2024}},
}

// FindEdition returns the festival running an edition in the given year.
//
// The name match is case-insensitive, so display-cased links ("Coachella")
// resolve to the canonical lowercase key. Not finding one is a normal outcome
// (user error), reported as [shared.ErrFestivalNotFound].
func FindEdition(name string, year int) (models.Festival, error) {
	for _, f := range supported {
		if strings.EqualFold(f.Name, name) && f.HasYear(year) {
			return f, nil
		}
	}
	return models.Festival{}, fmt.Errorf("%w: %s %d", shared.ErrFestivalNotFound, name, year)
}

// Festivals returns a copy of the supported festival list.
func Festivals() []models.Festival {
	out := make([]models.Festival, len(supported))
	copy(out, supported)
	return out
}

// Regions returns a copy of the region list.
func Regions() []models.Region {
	out := make([]models.Region, len(regions))
	copy(out, regions)
	return out
}

// Dropdown returns the festival list for the home-page dropdown: every
// supported festival plus one synthetic empty-name entry per region that has
// at least one festival. Sorted by (region, name); the empty separator name
// sorts before any real festival within its region.
func Dropdown() []models.Festival {
	out := make([]models.Festival, len(supported))
	copy(out, supported)

	populated := map[string]bool{}
	for _, f := range supported {
		populated[f.Region] = true
	}
	for _, r := range regions {
		if !populated[r.Name] {
			continue
		}
		out = append(out, models.Festival{Region: r.Name, DisplayName: r.DisplayName})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Region != out[j].Region {
			return out[i].Region < out[j].Region
		}
		return out[i].Name < out[j].Name
	})

	return out
}

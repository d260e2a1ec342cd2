package catalog

import (
	"errors"
	"testing"

	"github.com/desertthunder/festify/internal/shared"
)

func TestFindEdition(t *testing.T) {
	t.Run("Match For Every Cataloged Year", func(t *testing.T) {
		for _, f := range Festivals() {
			for _, year := range f.Years {
				edition, err := FindEdition(f.Name, year)
				if err != nil {
					t.Errorf("expected %s %d to resolve, got %v", f.Name, year, err)
					continue
				}
				if edition.Name != f.Name {
					t.Errorf("expected %s, got %s", f.Name, edition.Name)
				}
			}
		}
	})

	t.Run("Display Cased Name", func(t *testing.T) {
		for _, name := range []string{"Coachella", "COACHELLA"} {
			edition, err := FindEdition(name, 2024)
			if err != nil {
				t.Errorf("expected %s to resolve, got %v", name, err)
				continue
			}
			if edition.Name != "coachella" {
				t.Errorf("expected canonical name coachella, got %s", edition.Name)
			}
		}
	})

	t.Run("Year Not In List", func(t *testing.T) {
		_, err := FindEdition("coachella", 1999)
		if !errors.Is(err, shared.ErrFestivalNotFound) {
			t.Errorf("expected ErrFestivalNotFound, got %v", err)
		}
	})

	t.Run("Unknown Festival", func(t *testing.T) {
		_, err := FindEdition("unknownfest", 2024)
		if !errors.Is(err, shared.ErrFestivalNotFound) {
			t.Errorf("expected ErrFestivalNotFound, got %v", err)
		}
	})
}

func TestDropdown(t *testing.T) {
	entries := Dropdown()

	t.Run("Separator Per Populated Region", func(t *testing.T) {
		separators := map[string]int{}
		real := map[string]int{}
		for _, e := range entries {
			if e.Name == "" {
				separators[e.Region]++
			} else {
				real[e.Region]++
			}
		}

		for region, count := range real {
			if count > 0 && separators[region] != 1 {
				t.Errorf("region %s: expected exactly one separator, got %d", region, separators[region])
			}
		}
		for region := range separators {
			if real[region] == 0 {
				t.Errorf("region %s has a separator but no festivals", region)
			}
		}
	})

	t.Run("Sorted By Region Then Name, Separator First", func(t *testing.T) {
		for i := 1; i < len(entries); i++ {
			prev, cur := entries[i-1], entries[i]
			if prev.Region > cur.Region {
				t.Fatalf("entries not sorted by region: %q before %q", prev.Region, cur.Region)
			}
			if prev.Region == cur.Region && prev.Name > cur.Name {
				t.Fatalf("entries not sorted by name within region %s: %q before %q", cur.Region, prev.Name, cur.Name)
			}
		}

		for i, e := range entries {
			if e.Name != "" {
				continue
			}
			// Every earlier entry for the same region would violate the
			// empty-name-first ordering.
			for j := 0; j < i; j++ {
				if entries[j].Region == e.Region {
					t.Errorf("separator for %s sorted after festival %q", e.Region, entries[j].Name)
				}
			}
		}
	})

	t.Run("Does Not Mutate Catalog", func(t *testing.T) {
		before := len(Festivals())
		_ = Dropdown()
		if after := len(Festivals()); after != before {
			t.Errorf("catalog size changed from %d to %d", before, after)
		}
	})
}

// Package scheme defines the input-method scheme records placed on the
// lineage timeline, along with date handling for reduced-precision dates
// and chronological ordering helpers.
//
// Records are immutable once loaded: every downstream stage (timeline
// compression, relationship inference, layout) references the loaded slice
// and never mutates it.
package scheme

import (
	"cmp"
	"slices"
)

// Scheme is one historical input-method scheme on the timeline.
//
// Date is an 8-character digit string in YYYYMMDD form. A month or day
// segment of "00" means the date is only known to coarser precision;
// date math treats those segments as 01.
type Scheme struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Authors     []string `json:"authors"`
	Maintainers []string `json:"maintainers,omitempty"`
	Date        string   `json:"date"`
	Features    []string `json:"features"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty"`
}

// People returns the scheme's authors followed by its maintainers.
// The result is a fresh slice; callers may reorder it freely.
func (s *Scheme) People() []string {
	people := make([]string, 0, len(s.Authors)+len(s.Maintainers))
	people = append(people, s.Authors...)
	people = append(people, s.Maintainers...)
	return people
}

// FeatureSet returns the scheme's feature tags as a set.
func (s *Scheme) FeatureSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Features))
	for _, f := range s.Features {
		set[f] = struct{}{}
	}
	return set
}

// SortChronological returns a new slice sorted ascending by date, with ID
// as a stable tiebreak for equal dates. The input slice is not modified.
func SortChronological(schemes []Scheme) []Scheme {
	sorted := slices.Clone(schemes)
	slices.SortStableFunc(sorted, func(a, b Scheme) int {
		if c := cmp.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return sorted
}

// FilterDeprecated returns the schemes with Deprecated unset.
// Used when the caller disables display of deprecated schemes; filtering
// happens before layout so removed schemes never occupy canvas space.
func FilterDeprecated(schemes []Scheme) []Scheme {
	kept := make([]Scheme, 0, len(schemes))
	for _, s := range schemes {
		if !s.Deprecated {
			kept = append(kept, s)
		}
	}
	return kept
}

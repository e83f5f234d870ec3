// Package relate infers the directed relationship graph between schemes
// from attribute co-occurrence across time.
//
// Three passes run in a fixed order over the chronologically sorted scheme
// list: feature-origin edges, author-chain edges, then similarity edges.
// The order matters: the first two passes populate a direction-agnostic
// seen-pair set that suppresses redundant similarity edges, so reordering
// the passes would change the output.
//
// Every edge points backward in time: From is the later (derived) scheme,
// To the earlier (origin) scheme. The resulting graph is therefore acyclic
// for well-formed input; a cycle diagnostic is provided for the degenerate
// duplicate-date case.
package relate

import "github.com/zhengming-dev/schemeline/pkg/scheme"

// Edge kinds.
const (
	KindFeature = "feature"
	KindAuthor  = "author"
	KindSimilar = "similar"
)

// Edge is an inferred directed relationship between two schemes.
// From is always the chronologically later scheme.
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
}

// pairKey is a direction-agnostic scheme pair.
type pairKey struct{ a, b string }

func newPairKey(x, y string) pairKey {
	if x < y {
		return pairKey{x, y}
	}
	return pairKey{y, x}
}

// Infer derives all relationship edges from schemes sorted ascending by
// date. Passing an unsorted slice produces edges that point forward in
// time; callers are expected to sort with scheme.SortChronological first.
func Infer(sorted []scheme.Scheme) []Edge {
	seen := make(map[pairKey]struct{})
	edges := featureEdges(sorted, seen)
	edges = append(edges, authorEdges(sorted, seen)...)
	edges = append(edges, similarityEdges(sorted, seen)...)
	return edges
}

// featureEdges links every scheme carrying a previously-seen feature tag to
// the first chronological holder of that tag. First-write-wins: the holder
// list is a degenerate one-level union-find with no merging. All prior
// holders of the tag are marked as seen, not just the origin, so two later
// holders of one tag never pick up a redundant similarity edge.
func featureEdges(sorted []scheme.Scheme, seen map[pairKey]struct{}) []Edge {
	holders := make(map[string][]string)
	var edges []Edge
	for i := range sorted {
		s := &sorted[i]
		for _, tag := range s.Features {
			prior := holders[tag]
			if len(prior) == 0 {
				holders[tag] = append(prior, s.ID)
				continue
			}
			if prior[0] == s.ID || prior[len(prior)-1] == s.ID {
				continue
			}
			edges = append(edges, Edge{From: s.ID, To: prior[0], Kind: KindFeature, Label: tag})
			for _, p := range prior {
				seen[newPairKey(s.ID, p)] = struct{}{}
			}
			holders[tag] = append(prior, s.ID)
		}
	}
	return edges
}

// authorEdges links each scheme to every earlier scheme credited to the
// same person (author or maintainer). Deliberately all-pairs-backward, not
// just-previous: a person with k schemes contributes k·(k−1)/2 edges.
func authorEdges(sorted []scheme.Scheme, seen map[pairKey]struct{}) []Edge {
	works := make(map[string][]string)
	var edges []Edge
	for i := range sorted {
		s := &sorted[i]
		for _, person := range s.People() {
			for _, prior := range works[person] {
				if prior == s.ID {
					continue
				}
				edges = append(edges, Edge{From: s.ID, To: prior, Kind: KindAuthor, Label: person})
				seen[newPairKey(s.ID, prior)] = struct{}{}
			}
			works[person] = append(works[person], s.ID)
		}
	}
	return edges
}

// similarityEdges links scheme pairs whose feature sets differ by at most
// one tag, provided they are not already connected and share no person.
// Pairs are scanned in chronological index order, newer scheme first.
func similarityEdges(sorted []scheme.Scheme, seen map[pairKey]struct{}) []Edge {
	var edges []Edge
	for i := range sorted {
		for j := i + 1; j < len(sorted); j++ {
			older, newer := &sorted[i], &sorted[j]
			key := newPairKey(older.ID, newer.ID)
			if _, connected := seen[key]; connected {
				continue
			}
			if sharesPerson(older, newer) {
				continue
			}
			diff := symmetricDiff(older.FeatureSet(), newer.FeatureSet())
			if len(diff) > 1 {
				continue
			}
			label := "identical"
			if len(diff) == 1 {
				label = "differs by: " + diff[0]
			}
			edges = append(edges, Edge{From: newer.ID, To: older.ID, Kind: KindSimilar, Label: label})
			seen[key] = struct{}{}
		}
	}
	return edges
}

func sharesPerson(a, b *scheme.Scheme) bool {
	people := make(map[string]struct{})
	for _, p := range a.People() {
		people[p] = struct{}{}
	}
	for _, p := range b.People() {
		if _, ok := people[p]; ok {
			return true
		}
	}
	return false
}

// symmetricDiff returns the tags present in exactly one of the two sets.
func symmetricDiff(a, b map[string]struct{}) []string {
	var diff []string
	for tag := range a {
		if _, ok := b[tag]; !ok {
			diff = append(diff, tag)
		}
	}
	for tag := range b {
		if _, ok := a[tag]; !ok {
			diff = append(diff, tag)
		}
	}
	return diff
}

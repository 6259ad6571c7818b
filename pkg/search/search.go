// Package search builds a navigable view of the properties matching a query.
// It has no UI dependency: the TUI and the search subcommand both consume the
// same State.
package search

import (
	"strings"

	"github.com/sdtd-tools/sdtdconfig/pkg/catalog"
	"github.com/sdtd-tools/sdtdconfig/pkg/config"
)

// State holds one search's results. Matches is ordered by the fixed category
// sequence, then by document order within each category, so "result 3 of 7"
// is reproducible for the same document and query. State goes stale whenever
// the document changes; rebuild it rather than editing it.
type State struct {
	Query   string
	Matches []string
	Current int
}

// Search matches query case-insensitively as a substring of either the
// property name or its resolved description. An empty query yields an empty
// match list, not match-all; the UI treats that as the unfiltered state.
func Search(doc *config.Document, query string) *State {
	st := &State{Query: query}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return st
	}

	byCategory := make(map[catalog.Category][]string)
	for _, prop := range doc.Properties() {
		if !matches(prop.Name, doc, q) {
			continue
		}
		cat := catalog.CategoryOf(prop.Name)
		byCategory[cat] = append(byCategory[cat], prop.Name)
	}

	for _, cat := range catalog.Categories() {
		st.Matches = append(st.Matches, byCategory[cat]...)
	}
	return st
}

func matches(name string, doc *config.Document, q string) bool {
	if strings.Contains(strings.ToLower(name), q) {
		return true
	}
	desc := catalog.Describe(name, doc)
	return strings.Contains(strings.ToLower(desc), q)
}

// Next advances to the next match, wrapping past the last back to the first.
// No-op when there are no matches.
func (s *State) Next() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current + 1) % len(s.Matches)
}

// Prev retreats to the previous match, wrapping before the first to the
// last. No-op when there are no matches.
func (s *State) Prev() {
	if len(s.Matches) == 0 {
		return
	}
	s.Current = (s.Current - 1 + len(s.Matches)) % len(s.Matches)
}

// CurrentName returns the property the current match points at.
func (s *State) CurrentName() (string, bool) {
	if len(s.Matches) == 0 {
		return "", false
	}
	return s.Matches[s.Current], true
}

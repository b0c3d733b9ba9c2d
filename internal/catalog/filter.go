package catalog

import (
	"sort"
	"strings"
)

// FilterSelection holds the browse-view filter state: selected categories,
// selected platforms, and a free-text search string. The three predicates
// are ANDed. An empty category or platform set means "no restriction".
//
// The text search here is deliberately separate state from the intent
// matcher's query: it filters the browse view, not the search view.
type FilterSelection struct {
	Categories map[string]bool
	Platforms  map[string]bool
	Search     string
}

// NewFilterSelection creates an empty selection with initialized sets.
func NewFilterSelection() FilterSelection {
	return FilterSelection{
		Categories: make(map[string]bool),
		Platforms:  make(map[string]bool),
	}
}

// Matches reports whether a record passes all three filter predicates.
func (sel FilterSelection) Matches(t ToolRecord) bool {
	if len(sel.Categories) > 0 {
		found := false
		for _, c := range t.Categories {
			if sel.Categories[c] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if len(sel.Platforms) > 0 {
		found := false
		for _, p := range t.Platforms {
			if sel.Platforms[p] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(sel.Search)); q != "" {
		if !t.containsQuery(q) {
			return false
		}
	}

	return true
}

// Filter returns the records passing the selection, in catalog order.
func (s *Store) Filter(sel FilterSelection) []ToolRecord {
	results := []ToolRecord{}
	for _, t := range s.tools {
		if sel.Matches(t) {
			results = append(results, t)
		}
	}
	return results
}

// Group is one category's slice of a filtered record list.
type Group struct {
	// Category is the category name shared by all members.
	Category string

	// Members are the records carrying this category, in catalog order.
	Members []ToolRecord
}

// GroupByCategory partitions records into per-category display groups.
//
// One group per distinct category present in the input; groups are ordered
// lexicographically by category name; members keep their input order. A
// record with multiple categories appears once per group it belongs to;
// the duplication across groups is intentional (category browsing).
func GroupByCategory(tools []ToolRecord) []Group {
	byCategory := make(map[string][]ToolRecord)
	for _, t := range tools {
		for _, c := range t.Categories {
			byCategory[c] = append(byCategory[c], t)
		}
	}

	names := make([]string, 0, len(byCategory))
	for c := range byCategory {
		names = append(names, c)
	}
	sort.Strings(names)

	groups := make([]Group, 0, len(names))
	for _, c := range names {
		groups = append(groups, Group{Category: c, Members: byCategory[c]})
	}

	return groups
}

// Categories returns every distinct category in the catalog, sorted.
func (s *Store) Categories() []string {
	return s.distinctField(func(t ToolRecord) []string { return t.Categories })
}

// Platforms returns every distinct platform in the catalog, sorted.
func (s *Store) Platforms() []string {
	return s.distinctField(func(t ToolRecord) []string { return t.Platforms })
}

func (s *Store) distinctField(field func(ToolRecord) []string) []string {
	seen := make(map[string]bool)
	for _, t := range s.tools {
		for _, v := range field(t) {
			seen[v] = true
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

package catalog

import (
	"reflect"
	"testing"
)

// sampleStore builds a small catalog mirroring the shipped sample data.
func sampleStore(t *testing.T) *Store {
	t.Helper()

	store, err := New([]ToolRecord{
		{
			Name:        "PTXprint",
			Tagline:     "High quality scripture layout from Paratext",
			Description: "Create beautiful, print-ready PDFs from Paratext projects with powerful layout controls.",
			Badges:      []string{"PDF", "Layout", "Paratext"},
			Categories:  []string{"Layout"},
			Platforms:   []string{"Windows", "Linux"},
		},
		{
			Name:        "Paratext",
			Tagline:     "Collaborative Bible translation environment",
			Description: "Powerful translation, checking, and collaboration platform for scripture projects.",
			Badges:      []string{"Translation", "Collaboration"},
			Categories:  []string{"Translation"},
			Platforms:   []string{"Windows", "Linux", "macOS"},
		},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	return store
}

// TestMatchEmptyQuery verifies that an empty query returns no results,
// not the full catalog.
func TestMatchEmptyQuery(t *testing.T) {
	store := sampleStore(t)

	if results := store.Match(""); len(results) != 0 {
		t.Errorf("expected no results for empty query, got %d", len(results))
	}
	if results := store.Match("   "); len(results) != 0 {
		t.Errorf("expected no results for whitespace query, got %d", len(results))
	}
}

// TestMatchBadge verifies containment over badges (e.g. "pdf" finds PTXprint).
func TestMatchBadge(t *testing.T) {
	store := sampleStore(t)

	results := store.Match("pdf")
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Name != "PTXprint" {
		t.Errorf("expected PTXprint, got %s", results[0].Name)
	}
}

// TestMatchCaseInsensitive verifies that query case does not matter.
func TestMatchCaseInsensitive(t *testing.T) {
	store := sampleStore(t)

	for _, query := range []string{"paratext", "PARATEXT", "ParaText"} {
		results := store.Match(query)
		if len(results) != 2 {
			t.Errorf("query %q: expected 2 results, got %d", query, len(results))
		}
	}
}

// TestMatchPreservesCatalogOrder verifies the stable-filter contract.
func TestMatchPreservesCatalogOrder(t *testing.T) {
	store := sampleStore(t)

	// "paratext" hits both records (name + description/badge). Order must
	// follow the catalog, not relevance.
	results := store.Match("paratext")
	names := []string{}
	for _, r := range results {
		names = append(names, r.Name)
	}

	want := []string{"PTXprint", "Paratext"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected order %v, got %v", want, names)
	}
}

// TestMatchIdempotent verifies that matching has no side effects.
func TestMatchIdempotent(t *testing.T) {
	store := sampleStore(t)

	first := store.Match("translation")
	second := store.Match("translation")

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated match with same query returned different results")
	}
	if store.Len() != 2 {
		t.Errorf("catalog size changed after match: %d", store.Len())
	}
}

// TestMatchNoResults verifies that a non-matching query returns an empty
// list rather than nil surprises.
func TestMatchNoResults(t *testing.T) {
	store := sampleStore(t)

	results := store.Match("spreadsheet")
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

// TestMatchAllFieldsSearchable verifies each searchable field participates.
func TestMatchAllFieldsSearchable(t *testing.T) {
	store := sampleStore(t)

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"name", "ptxprint", "PTXprint"},
		{"description", "print-ready", "PTXprint"},
		{"badge", "collaboration", "Paratext"},
		{"category", "layout", "PTXprint"},
		{"platform", "macos", "Paratext"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := store.Match(tt.query)
			found := false
			for _, r := range results {
				if r.Name == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("query %q did not return %s", tt.query, tt.want)
			}
		})
	}
}

/*
Package catalog implements the read-only tool catalog and the query logic over it.

The catalog is an ordered list of tool records loaded once at startup, either
from the embedded default data or from a user-supplied JSON file. Matching and
filtering are pure functions of (input, catalog): case-insensitive substring
containment with no tokenization and no relevance scoring, always preserving
catalog order.
*/
package catalog

import "strings"

// Link is a titled URL, used for documentation and support-forum references.
type Link struct {
	// Title is the human-readable label for the link.
	Title string `json:"title"`

	// URL is the link target.
	URL string `json:"url"`
}

// ToolRecord describes a single tool in the catalog.
//
// Records are immutable once loaded. Name is unique across the catalog;
// every other field may be empty.
type ToolRecord struct {
	// Name uniquely identifies the tool.
	Name string `json:"name"`

	// Tagline is a one-line summary shown under the name.
	Tagline string `json:"tagline,omitempty"`

	// Description is the full description text.
	Description string `json:"description,omitempty"`

	// Badges are short keyword labels (e.g. "PDF", "Collaboration").
	Badges []string `json:"badges,omitempty"`

	// Categories are the browse categories the tool belongs to.
	Categories []string `json:"categories,omitempty"`

	// Platforms are the operating systems the tool runs on.
	Platforms []string `json:"platforms,omitempty"`

	// Documentation lists documentation links in display order.
	Documentation []Link `json:"documentation,omitempty"`

	// SupportForums lists support community links in display order.
	SupportForums []Link `json:"supportForums,omitempty"`

	// Related lists names of related tools. These are weak references:
	// they are not guaranteed to resolve to a record in the catalog.
	Related []string `json:"related,omitempty"`
}

// containsQuery reports whether the lower-cased query q is a substring of any
// searchable field: name, description, or any badge, category, or platform.
//
// Both the intent matcher and the catalog text filter use this rule.
func (t ToolRecord) containsQuery(q string) bool {
	if strings.Contains(strings.ToLower(t.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, group := range [][]string{t.Badges, t.Categories, t.Platforms} {
		for _, field := range group {
			if strings.Contains(strings.ToLower(field), q) {
				return true
			}
		}
	}
	return false
}

// HasCategory reports whether the record carries the given category.
func (t ToolRecord) HasCategory(category string) bool {
	for _, c := range t.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// HasPlatform reports whether the record carries the given platform.
func (t ToolRecord) HasPlatform(platform string) bool {
	for _, p := range t.Platforms {
		if p == platform {
			return true
		}
	}
	return false
}

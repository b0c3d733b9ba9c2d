package catalog

import "strings"

// Match returns the records whose searchable text contains the query,
// case-insensitively, in catalog order.
//
// An empty or all-whitespace query returns an empty list, not the full
// catalog: "no query yet" is distinct from "browse everything". Matching is
// plain substring containment with no tokenization and no ranking.
func (s *Store) Match(query string) []ToolRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []ToolRecord{}
	}

	results := []ToolRecord{}
	for _, t := range s.tools {
		if t.containsQuery(q) {
			results = append(results, t)
		}
	}

	return results
}

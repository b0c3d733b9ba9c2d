package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed catalog.json
var defaultCatalog []byte

// Store holds the catalog records in their original order.
//
// The store is loaded once and never mutated afterwards.
type Store struct {
	tools  []ToolRecord
	byName map[string]int
}

// New creates a store from an explicit record list.
//
// Returns an error if two records share a name.
func New(tools []ToolRecord) (*Store, error) {
	byName := make(map[string]int, len(tools))
	for i, t := range tools {
		if t.Name == "" {
			return nil, fmt.Errorf("catalog record %d has no name", i)
		}
		if _, exists := byName[t.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name in catalog: %q", t.Name)
		}
		byName[t.Name] = i
	}

	return &Store{tools: tools, byName: byName}, nil
}

// Load creates a store from the embedded default catalog.
func Load() (*Store, error) {
	return parse(defaultCatalog)
}

// LoadFile creates a store from a JSON catalog file.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Store, error) {
	var tools []ToolRecord
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(tools)
}

// Tools returns all records in catalog order.
func (s *Store) Tools() []ToolRecord {
	return s.tools
}

// Len returns the number of records in the catalog.
func (s *Store) Len() int {
	return len(s.tools)
}

// Get retrieves a record by name.
func (s *Store) Get(name string) (ToolRecord, bool) {
	i, ok := s.byName[name]
	if !ok {
		return ToolRecord{}, false
	}
	return s.tools[i], true
}

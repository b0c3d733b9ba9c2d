/*
Package compare implements the side-by-side tool comparison.

A comparison set is a small ordered set of tool names: membership is toggled
by user action and insertion order is preserved. The table builder renders
one column per member and one row per fixed attribute, with explicit
placeholders for missing values.
*/
package compare

// Set is an ordered-by-insertion set of tool names with no duplicates.
type Set struct {
	names []string
}

// NewSet creates an empty comparison set.
func NewSet() *Set {
	return &Set{}
}

// Toggle flips a tool's membership: present tools are removed, absent tools
// are appended to the end. Returns true when the tool is a member afterwards.
func (s *Set) Toggle(name string) bool {
	for i, n := range s.names {
		if n == name {
			s.names = append(s.names[:i], s.names[i+1:]...)
			return false
		}
	}

	s.names = append(s.names, name)
	return true
}

// Contains reports whether a tool is in the set.
func (s *Set) Contains(name string) bool {
	for _, n := range s.names {
		if n == name {
			return true
		}
	}
	return false
}

// Clear removes all members.
func (s *Set) Clear() {
	s.names = nil
}

// Members returns the tool names in first-added-first order.
func (s *Set) Members() []string {
	members := make([]string, len(s.names))
	copy(members, s.names)
	return members
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.names)
}

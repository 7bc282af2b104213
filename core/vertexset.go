// File: vertexset.go
// Role: VertexSet, the set type shared by components, separators and tree nodes.
//
// Determinism:
//   - Sorted() is the only enumeration surface with a defined order.
//
// Concurrency:
//   - VertexSet is a plain map; it is not safe for concurrent mutation.
package core

import "sort"

// VertexSet is a set of vertex IDs. The zero value (nil) is a valid empty
// set for every read-only method.
type VertexSet map[string]struct{}

// NewVertexSet returns a set holding ids (duplicates collapse).
func NewVertexSet(ids ...string) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id.
func (s VertexSet) Add(id string) { s[id] = struct{}{} }

// Has reports membership.
func (s VertexSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the cardinality.
func (s VertexSet) Len() int { return len(s) }

// Sorted returns the members in lexicographic ascending order.
// Complexity: O(n log n).
func (s VertexSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// Clone returns an independent copy.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Union returns s ∪ t as a new set.
func (s VertexSet) Union(t VertexSet) VertexSet {
	out := make(VertexSet, len(s)+len(t))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range t {
		out[id] = struct{}{}
	}

	return out
}

// Intersect returns s ∩ t as a new set.
func (s VertexSet) Intersect(t VertexSet) VertexSet {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(VertexSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Minus returns s \ t as a new set.
func (s VertexSet) Minus(t VertexSet) VertexSet {
	out := make(VertexSet, len(s))
	for id := range s {
		if _, ok := t[id]; !ok {
			out[id] = struct{}{}
		}
	}

	return out
}

// Equal reports whether s and t hold exactly the same IDs.
func (s VertexSet) Equal(t VertexSet) bool {
	if len(s) != len(t) {
		return false
	}
	for id := range s {
		if _, ok := t[id]; !ok {
			return false
		}
	}

	return true
}

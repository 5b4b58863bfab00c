package xmp

import "sort"

// SubjectSet is an unordered, duplicate-free set of subject strings.
type SubjectSet struct {
	values map[string]struct{}
}

// NewSubjectSet creates a set holding values.
func NewSubjectSet(values ...string) *SubjectSet {
	s := &SubjectSet{values: make(map[string]struct{}, len(values))}
	s.Add(values...)
	return s
}

// Add inserts values; empty strings are ignored.
func (s *SubjectSet) Add(values ...string) {
	for _, v := range values {
		if v != "" {
			s.values[v] = struct{}{}
		}
	}
}

// Len returns the number of distinct values. A nil set is empty.
func (s *SubjectSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// Sorted returns the values in lexicographic order.
func (s *SubjectSet) Sorted() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.values))
	for v := range s.values {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

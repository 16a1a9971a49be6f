package textutil

import "sort"

// WordSet is an unordered collection of distinct words. Extraction and
// tokenization accumulate into it so results from many lines and files merge
// without duplicates.
type WordSet map[string]struct{}

// NewWordSet returns an empty set, optionally seeded with words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	for _, w := range words {
		s.Add(w)
	}
	return s
}

// Add inserts w. Empty strings are ignored.
func (s WordSet) Add(w string) {
	if w == "" {
		return
	}
	s[w] = struct{}{}
}

// Contains reports whether w is in the set.
func (s WordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Merge adds every member of other to s.
func (s WordSet) Merge(other WordSet) {
	for w := range other {
		s[w] = struct{}{}
	}
}

// Len returns the number of distinct words.
func (s WordSet) Len() int {
	return len(s)
}

// Sorted returns the members in ascending byte order.
func (s WordSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for w := range s {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

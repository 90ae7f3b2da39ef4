package sets

// Set is a minimal generic hash set over comparable keys. The navigation
// exclusion set is its main consumer; a fresh set is built per scan so state
// never leaks between builds.
type Set[T comparable] map[T]struct{}

// New returns a set containing the given values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts v.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has reports whether v is present.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// Len returns the number of members.
func (s Set[T]) Len() int { return len(s) }

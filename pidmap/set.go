package pidmap

// Set is a hashed set, built on Map[K, struct{}].
type Set[K comparable] struct {
	m *Map[K, struct{}]
}

// NewSet constructs an empty Set.
func NewSet[K comparable]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// Add inserts key, returning true if it was not already present.
func (s *Set[K]) Add(key K) bool {
	if s.m.Has(key) {
		return false
	}
	s.m.Put(key, struct{}{})
	return true
}

// Has reports whether key is present.
func (s *Set[K]) Has(key K) bool {
	return s.m.Has(key)
}

// Remove deletes key, reporting whether it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.m.Delete(key)
}

// Len returns the number of elements.
func (s *Set[K]) Len() int {
	return s.m.Len()
}

// Each calls fn for every element in unspecified order.
func (s *Set[K]) Each(fn func(key K)) {
	s.m.Each(func(k K, _ struct{}) { fn(k) })
}

// Keys returns a snapshot slice of all elements in unspecified order.
func (s *Set[K]) Keys() []K {
	return s.m.Keys()
}

// Clear removes all elements.
func (s *Set[K]) Clear() {
	s.m.Clear()
}

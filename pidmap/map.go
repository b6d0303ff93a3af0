// Package pidmap provides hashed containers keyed by pointer identity.
//
// spec.md §6 describes the "hashed associative container" consumed
// interface as one with "a custom key hasher and key comparator", with
// "the pointer-identity hash and pointer-identity equality" as the default
// for node-keyed maps — not Go's runtime-internal map hash, which is a
// black box the caller never gets to name. Map therefore buckets every
// entry by an explicit, seeded github.com/dolthub/maphash.Hasher[K] hash
// of the key rather than delegating to a builtin map[K]V: the hasher is
// constructed once per Map and its Hash is on the hot path of every Put,
// Get, Has, and Delete, the same shape flier-goutil's swiss.Map uses
// (hash the key, probe the bucket it lands in, compare keys within the
// bucket) without that package's open-addressing group/metadata layout,
// which exists there to let the map live inside an arena — this module
// has no such requirement, so a plain bucket-of-entries slice suffices.
package pidmap

import "github.com/dolthub/maphash"

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Map is a hashed associative container keyed by an explicit maphash.Hasher
// rather than Go's builtin map hash. The zero value is not usable; use
// NewMap.
type Map[K comparable, V any] struct {
	hasher  maphash.Hasher[K]
	buckets map[uint64][]entry[K, V]
	count   int
}

// NewMap constructs an empty Map with a freshly seeded hasher.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		hasher:  maphash.NewHasher[K](),
		buckets: make(map[uint64][]entry[K, V]),
	}
}

// Hash returns this Map's seeded hash of key, the same value Put/Get/Has/
// Delete bucket key on internally. Exposed for diagnostics and for callers
// that want to pre-compute or compare hash distribution.
func (m *Map[K, V]) Hash(key K) uint64 {
	return m.hasher.Hash(key)
}

func (m *Map[K, V]) find(bucket []entry[K, V], key K) int {
	for i := range bucket {
		if bucket[i].key == key {
			return i
		}
	}
	return -1
}

// Put inserts or overwrites the value for key.
func (m *Map[K, V]) Put(key K, value V) {
	h := m.hasher.Hash(key)
	bucket := m.buckets[h]
	if i := m.find(bucket, key); i >= 0 {
		bucket[i].value = value
		return
	}
	m.buckets[h] = append(bucket, entry[K, V]{key: key, value: value})
	m.count++
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	bucket := m.buckets[m.hasher.Hash(key)]
	if i := m.find(bucket, key); i >= 0 {
		return bucket[i].value, true
	}
	var zero V
	return zero, false
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	bucket := m.buckets[m.hasher.Hash(key)]
	return m.find(bucket, key) >= 0
}

// Delete removes key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	h := m.hasher.Hash(key)
	bucket := m.buckets[h]
	i := m.find(bucket, key)
	if i < 0 {
		return false
	}
	last := len(bucket) - 1
	bucket[i] = bucket[last]
	bucket = bucket[:last]
	if len(bucket) == 0 {
		delete(m.buckets, h)
	} else {
		m.buckets[h] = bucket
	}
	m.count--
	return true
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Each calls fn for every entry in unspecified order. fn must not mutate m.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			fn(e.key, e.value)
		}
	}
}

// Keys returns a snapshot slice of all keys in unspecified order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.count)
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Clear removes all entries, keeping the underlying bucket allocation.
func (m *Map[K, V]) Clear() {
	clear(m.buckets)
	m.count = 0
}

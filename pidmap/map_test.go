package pidmap

import "testing"

func TestMapPutGet(t *testing.T) {
	m := NewMap[*int, string]()
	a, b := new(int), new(int)

	m.Put(a, "a")
	m.Put(b, "b")

	v, ok := m.Get(a)
	if !ok || v != "a" {
		t.Fatalf("expected a -> %q, got %q ok=%v", "a", v, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("expected len 2, got %d", m.Len())
	}
}

func TestMapIdentityNotValue(t *testing.T) {
	type key struct{ n int }
	m := NewMap[*key, int]()

	k1 := &key{n: 5}
	k2 := &key{n: 5}
	m.Put(k1, 1)

	if m.Has(k2) {
		t.Fatal("expected distinct pointers to equal values to be distinct keys")
	}
	if !m.Has(k1) {
		t.Fatal("expected k1 present")
	}
}

func TestMapDelete(t *testing.T) {
	m := NewMap[*int, int]()
	a := new(int)
	m.Put(a, 1)

	if !m.Delete(a) {
		t.Fatal("expected Delete to report true for present key")
	}
	if m.Delete(a) {
		t.Fatal("expected Delete to report false for already-removed key")
	}
	if m.Has(a) {
		t.Fatal("expected key gone after Delete")
	}
}

func TestMapEachVisitsAll(t *testing.T) {
	m := NewMap[*int, int]()
	keys := make([]*int, 10)
	for i := range keys {
		keys[i] = new(int)
		m.Put(keys[i], i)
	}

	seen := make(map[*int]bool)
	m.Each(func(k *int, v int) {
		seen[k] = true
	})

	if len(seen) != len(keys) {
		t.Fatalf("expected %d entries visited, got %d", len(keys), len(seen))
	}
}

func TestMapClear(t *testing.T) {
	m := NewMap[*int, int]()
	m.Put(new(int), 1)
	m.Put(new(int), 2)

	m.Clear()
	if m.Len() != 0 {
		t.Fatalf("expected len 0 after Clear, got %d", m.Len())
	}
}

func TestMapHashStableWithinOneMap(t *testing.T) {
	m := NewMap[*int, int]()
	a := new(int)
	m.Put(a, 1)

	h1 := m.Hash(a)
	h2 := m.Hash(a)
	if h1 != h2 {
		t.Fatal("expected stable hash for the same key within one Map")
	}
}

func TestMapKeysSnapshot(t *testing.T) {
	m := NewMap[*int, int]()
	a, b := new(int), new(int)
	m.Put(a, 1)
	m.Put(b, 2)

	keys := m.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

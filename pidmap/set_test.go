package pidmap

import "testing"

func TestSetAddReportsNewness(t *testing.T) {
	s := NewSet[*int]()
	a := new(int)

	if !s.Add(a) {
		t.Fatal("expected first Add to report true")
	}
	if s.Add(a) {
		t.Fatal("expected second Add of the same key to report false")
	}
	if s.Len() != 1 {
		t.Fatalf("expected len 1, got %d", s.Len())
	}
}

func TestSetRemove(t *testing.T) {
	s := NewSet[*int]()
	a := new(int)
	s.Add(a)

	if !s.Remove(a) {
		t.Fatal("expected Remove to report true for present element")
	}
	if s.Has(a) {
		t.Fatal("expected element gone after Remove")
	}
}

func TestSetEach(t *testing.T) {
	s := NewSet[*int]()
	elems := make([]*int, 5)
	for i := range elems {
		elems[i] = new(int)
		s.Add(elems[i])
	}

	count := 0
	s.Each(func(*int) { count++ })
	if count != len(elems) {
		t.Fatalf("expected %d visits, got %d", len(elems), count)
	}
}

func TestSetKeysSnapshot(t *testing.T) {
	s := NewSet[*int]()
	a, b := new(int), new(int)
	s.Add(a)
	s.Add(b)

	keys := s.Keys()
	if len(keys) != 2 {
		t.Fatalf("expected 2 keys, got %d", len(keys))
	}
}

func TestSetClear(t *testing.T) {
	s := NewSet[*int]()
	s.Add(new(int))
	s.Add(new(int))

	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("expected len 0 after Clear, got %d", s.Len())
	}
}

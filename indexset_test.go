package unicase

import "testing"

func TestIndexSetInsert(t *testing.T) {
	s := NewIndexSet()
	if !s.Insert("Accept") {
		t.Errorf(`Insert("Accept") = false; want: true`)
	}
	for _, key := range []string{"Accept", "accept", "ACCEPT"} {
		if s.Insert(key) {
			t.Errorf("Insert(%q) = true; want: false", key)
		}
	}
	if n := s.Len(); n != 1 {
		t.Errorf("Len() = %d; want: 1", n)
	}
	if k, ok := s.Get("ACCEPT"); !ok || k.String() != "Accept" {
		t.Errorf(`Get("ACCEPT") = %q, %t; want: "Accept", true`, k, ok)
	}
}

func TestIndexSetInsertionOrder(t *testing.T) {
	s := NewIndexSet()
	s.Insert("A")
	s.Insert("B")
	s.Insert("C")

	if got, want := setKeys(s.All()), []string{"A", "B", "C"}; !equalStrings(got, want) {
		t.Errorf("All() = %q; want: %q", got, want)
	}

	// A removed-then-reinserted member moves to the end.
	s.Remove("b")
	s.Insert("B")
	if got, want := setKeys(s.All()), []string{"A", "C", "B"}; !equalStrings(got, want) {
		t.Errorf("All() after remove/reinsert = %q; want: %q", got, want)
	}

	// A rejected duplicate insert does not reorder.
	s.Insert("a")
	if got, want := setKeys(s.All()), []string{"A", "C", "B"}; !equalStrings(got, want) {
		t.Errorf("All() after duplicate insert = %q; want: %q", got, want)
	}
}

func TestIndexSetContains(t *testing.T) {
	s := NewIndexSet()
	s.Insert("A")
	for _, key := range []string{"A", "a"} {
		if !s.Contains(key) {
			t.Errorf("Contains(%q) = false; want: true", key)
		}
	}
	for _, key := range []string{"B", "Å"} {
		if s.Contains(key) {
			t.Errorf("Contains(%q) = true; want: false", key)
		}
	}
}

func TestIndexSetRemove(t *testing.T) {
	s := NewIndexSet()
	s.Insert("A")
	s.Insert("B")

	if !s.Remove("b") {
		t.Errorf(`Remove("b") = false; want: true`)
	}
	if s.Remove("b") {
		t.Errorf(`Remove("b") = true; want: false`)
	}
	if n := s.Len(); n != 1 {
		t.Errorf("Len() = %d; want: 1", n)
	}
}

func TestIndexSetRetain(t *testing.T) {
	s := NewIndexSet()
	s.Insert("gzip")
	s.Insert("Deflate")
	s.Insert("br")
	s.Insert("Zstd")

	s.Retain(func(k Key) bool { return len(k.String()) <= 4 })

	// Survivors keep their relative insertion order.
	if got, want := setKeys(s.All()), []string{"gzip", "br", "Zstd"}; !equalStrings(got, want) {
		t.Errorf("All() after Retain = %q; want: %q", got, want)
	}
}

func TestIndexSetEqual(t *testing.T) {
	a := NewIndexSet()
	b := NewIndexSet()
	for _, key := range []string{"A", "B", "C"} {
		a.Insert(key)
	}
	for _, key := range []string{"c", "b", "a"} {
		b.Insert(key)
	}

	// Equality ignores both insertion order and casing.
	if !a.Equal(b) {
		t.Errorf("Equal(%v, %v) = false; want: true", a, b)
	}
	b.Remove("b")
	if a.Equal(b) {
		t.Errorf("Equal(%v, %v) = true; want: false", a, b)
	}
}

func TestIndexSetClone(t *testing.T) {
	s := NewIndexSet()
	s.Insert("B")
	s.Insert("A")

	c := s.Clone()
	if !s.Equal(c) {
		t.Errorf("Clone() = %v; want: %v", c, s)
	}
	if got, want := setKeys(c.All()), setKeys(s.All()); !equalStrings(got, want) {
		t.Errorf("Clone() members = %q; want: %q", got, want)
	}
	c.Remove("a")
	if !s.Contains("A") {
		t.Errorf("mutating a clone leaked into the original")
	}
}

func TestIndexSetString(t *testing.T) {
	s := NewIndexSet()
	s.Insert("B")
	s.Insert("a")
	if got, want := s.String(), "IndexSet[B a]"; got != want {
		t.Errorf("String() = %q; want: %q", got, want)
	}
}

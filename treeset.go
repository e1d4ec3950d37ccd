package unicase

import (
	"iter"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// TreeSet is a set of case-insensitive keys iterated in canonical key order
// (byte order of the folded forms). A member keeps the casing it was first
// inserted with; membership tests are logarithmic.
//
// The backing engine maps the folded form to the stored Key: its native set
// type replaces the stored element on re-add, which would lose the original
// casing.
//
// A TreeSet is not safe for concurrent use with a writer.
type TreeSet struct {
	inner *treemap.Map[string, Key]
}

// NewTreeSet returns an empty TreeSet.
func NewTreeSet() *TreeSet {
	return &TreeSet{inner: treemap.New[string, Key]()}
}

// Insert adds key to the set and reports whether it was newly added. If an
// equal key is already present the set is left untouched, keeping the
// existing casing, and Insert returns false.
func (s *TreeSet) Insert(key string) bool {
	return s.InsertKey(New(key))
}

// InsertKey is Insert for an already-canonicalized key.
func (s *TreeSet) InsertKey(key Key) bool {
	if _, ok := s.inner.Get(key.folded); ok {
		return false
	}
	s.inner.Put(key.folded, key)
	return true
}

// Get returns the stored Key equal to key, carrying the casing it was
// inserted with.
func (s *TreeSet) Get(key string) (Key, bool) {
	return s.inner.Get(Fold(key))
}

// GetKey is Get for an already-canonicalized key.
func (s *TreeSet) GetKey(key Key) (Key, bool) {
	return s.inner.Get(key.folded)
}

// Contains reports whether the set has a member equal to key.
func (s *TreeSet) Contains(key string) bool {
	_, ok := s.inner.Get(Fold(key))
	return ok
}

// ContainsKey is Contains for an already-canonicalized key.
func (s *TreeSet) ContainsKey(key Key) bool {
	_, ok := s.inner.Get(key.folded)
	return ok
}

// Remove deletes key from the set and reports whether it was present.
// Removing an absent key is a no-op.
func (s *TreeSet) Remove(key string) bool {
	return s.removeFolded(Fold(key))
}

// RemoveKey is Remove for an already-canonicalized key.
func (s *TreeSet) RemoveKey(key Key) bool {
	return s.removeFolded(key.folded)
}

func (s *TreeSet) removeFolded(folded string) bool {
	if _, ok := s.inner.Get(folded); !ok {
		return false
	}
	s.inner.Remove(folded)
	return true
}

// Retain removes every member for which keep returns false. The order of
// the remaining members is unaffected.
func (s *TreeSet) Retain(keep func(key Key) bool) {
	var drop []string
	it := s.inner.Iterator()
	for it.Next() {
		if !keep(it.Value()) {
			drop = append(drop, it.Key())
		}
	}
	for _, folded := range drop {
		s.inner.Remove(folded)
	}
}

// Len returns the number of members in the set.
func (s *TreeSet) Len() int { return s.inner.Size() }

// Clear removes all members.
func (s *TreeSet) Clear() { s.inner.Clear() }

// Clone returns a copy of s that shares no state with it.
func (s *TreeSet) Clone() *TreeSet {
	c := NewTreeSet()
	it := s.inner.Iterator()
	for it.Next() {
		c.inner.Put(it.Key(), it.Value())
	}
	return c
}

// All returns an iterator over the members of s in canonical key order.
// The sequence is restartable; the set must not be modified during
// iteration.
func (s *TreeSet) All() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		it := s.inner.Iterator()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Equal reports whether s and other contain the same members, compared
// case-insensitively. Insertion casing and order play no part.
func (s *TreeSet) Equal(other *TreeSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	it := s.inner.Iterator()
	for it.Next() {
		if _, ok := other.inner.Get(it.Key()); !ok {
			return false
		}
	}
	return true
}

// String returns a debug representation of s.
func (s *TreeSet) String() string {
	var sb strings.Builder
	sb.WriteString("TreeSet[")
	it := s.inner.Iterator()
	for i := 0; it.Next(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(it.Value().text)
	}
	sb.WriteByte(']')
	return sb.String()
}

package unicase

import (
	"iter"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// IndexSet is a set of case-insensitive keys iterated in the order the
// currently present members were first inserted. Removing a member and
// inserting it again moves it to the end. A member keeps the casing it was
// first inserted with; membership tests are amortized constant time.
//
// The backing engine maps the folded form to the stored Key: hashing the
// Key itself would distinguish casings of the same canonical key.
//
// An IndexSet is not safe for concurrent use with a writer.
type IndexSet struct {
	inner *linkedhashmap.Map[string, Key]
}

// NewIndexSet returns an empty IndexSet.
func NewIndexSet() *IndexSet {
	return &IndexSet{inner: linkedhashmap.New[string, Key]()}
}

// Insert adds key to the set and reports whether it was newly added. If an
// equal key is already present the set is left untouched, keeping the
// existing casing and position, and Insert returns false.
func (s *IndexSet) Insert(key string) bool {
	return s.InsertKey(New(key))
}

// InsertKey is Insert for an already-canonicalized key.
func (s *IndexSet) InsertKey(key Key) bool {
	if _, ok := s.inner.Get(key.folded); ok {
		return false
	}
	s.inner.Put(key.folded, key)
	return true
}

// Get returns the stored Key equal to key, carrying the casing it was
// inserted with.
func (s *IndexSet) Get(key string) (Key, bool) {
	return s.inner.Get(Fold(key))
}

// GetKey is Get for an already-canonicalized key.
func (s *IndexSet) GetKey(key Key) (Key, bool) {
	return s.inner.Get(key.folded)
}

// Contains reports whether the set has a member equal to key.
func (s *IndexSet) Contains(key string) bool {
	_, ok := s.inner.Get(Fold(key))
	return ok
}

// ContainsKey is Contains for an already-canonicalized key.
func (s *IndexSet) ContainsKey(key Key) bool {
	_, ok := s.inner.Get(key.folded)
	return ok
}

// Remove deletes key from the set and reports whether it was present. The
// relative order of the remaining members is preserved; removing an absent
// key is a no-op.
func (s *IndexSet) Remove(key string) bool {
	return s.removeFolded(Fold(key))
}

// RemoveKey is Remove for an already-canonicalized key.
func (s *IndexSet) RemoveKey(key Key) bool {
	return s.removeFolded(key.folded)
}

func (s *IndexSet) removeFolded(folded string) bool {
	if _, ok := s.inner.Get(folded); !ok {
		return false
	}
	s.inner.Remove(folded)
	return true
}

// Retain removes every member for which keep returns false. The remaining
// members keep their relative insertion order.
func (s *IndexSet) Retain(keep func(key Key) bool) {
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
func (s *IndexSet) Len() int { return s.inner.Size() }

// Clear removes all members.
func (s *IndexSet) Clear() { s.inner.Clear() }

// Clone returns a copy of s, in the same insertion order, that shares no
// state with it.
func (s *IndexSet) Clone() *IndexSet {
	c := NewIndexSet()
	it := s.inner.Iterator()
	for it.Next() {
		c.inner.Put(it.Key(), it.Value())
	}
	return c
}

// All returns an iterator over the members of s in insertion order. The
// sequence is restartable; the set must not be modified during iteration.
func (s *IndexSet) All() iter.Seq[Key] {
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
func (s *IndexSet) Equal(other *IndexSet) bool {
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
func (s *IndexSet) String() string {
	var sb strings.Builder
	sb.WriteString("IndexSet[")
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

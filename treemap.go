package unicase

import (
	"fmt"
	"iter"
	"strings"

	"github.com/emirpasic/gods/v2/maps/treemap"
)

// treeEntry pairs the stored Key with its value. The engine is keyed by the
// folded form; the Key rides along so iteration can hand back the original
// casing.
type treeEntry[V any] struct {
	key   Key
	value V
}

// TreeMap is a map from case-insensitive keys to values of type V, iterated
// in canonical key order (byte order of the folded forms). A stored key
// keeps the casing it was first inserted with; lookups are logarithmic.
//
// A TreeMap is not safe for concurrent use with a writer.
type TreeMap[V any] struct {
	inner *treemap.Map[string, treeEntry[V]]
}

// NewTreeMap returns an empty TreeMap.
func NewTreeMap[V any]() *TreeMap[V] {
	return &TreeMap[V]{inner: treemap.New[string, treeEntry[V]]()}
}

// Insert sets the value for key. If the key was already present the
// previous value is returned with replaced == true, and the stored key
// keeps its existing casing: the newly supplied casing is discarded.
func (m *TreeMap[V]) Insert(key string, value V) (prev V, replaced bool) {
	return m.InsertKey(New(key), value)
}

// InsertKey is Insert for an already-canonicalized key.
func (m *TreeMap[V]) InsertKey(key Key, value V) (prev V, replaced bool) {
	if e, ok := m.inner.Get(key.folded); ok {
		m.inner.Put(key.folded, treeEntry[V]{key: e.key, value: value})
		return e.value, true
	}
	m.inner.Put(key.folded, treeEntry[V]{key: key, value: value})
	return prev, false
}

// Get returns the value stored for key, matched case-insensitively.
func (m *TreeMap[V]) Get(key string) (V, bool) {
	e, ok := m.inner.Get(Fold(key))
	return e.value, ok
}

// GetKey is Get for an already-canonicalized key.
func (m *TreeMap[V]) GetKey(key Key) (V, bool) {
	e, ok := m.inner.Get(key.folded)
	return e.value, ok
}

// GetKeyValue returns the stored key and value for key. The returned Key
// carries the casing the entry was first inserted with.
func (m *TreeMap[V]) GetKeyValue(key string) (Key, V, bool) {
	e, ok := m.inner.Get(Fold(key))
	return e.key, e.value, ok
}

// Contains reports whether the map has an entry for key.
func (m *TreeMap[V]) Contains(key string) bool {
	_, ok := m.inner.Get(Fold(key))
	return ok
}

// ContainsKey is Contains for an already-canonicalized key.
func (m *TreeMap[V]) ContainsKey(key Key) bool {
	_, ok := m.inner.Get(key.folded)
	return ok
}

// Remove deletes the entry for key and returns its value. Removing an
// absent key is a no-op reported by removed == false.
func (m *TreeMap[V]) Remove(key string) (value V, removed bool) {
	return m.removeFolded(Fold(key))
}

// RemoveKey is Remove for an already-canonicalized key.
func (m *TreeMap[V]) RemoveKey(key Key) (value V, removed bool) {
	return m.removeFolded(key.folded)
}

func (m *TreeMap[V]) removeFolded(folded string) (value V, removed bool) {
	e, ok := m.inner.Get(folded)
	if ok {
		m.inner.Remove(folded)
	}
	return e.value, ok
}

// Retain removes every entry for which keep returns false. The order of
// the remaining entries is unaffected.
func (m *TreeMap[V]) Retain(keep func(key Key, value V) bool) {
	var drop []string
	it := m.inner.Iterator()
	for it.Next() {
		if e := it.Value(); !keep(e.key, e.value) {
			drop = append(drop, it.Key())
		}
	}
	for _, folded := range drop {
		m.inner.Remove(folded)
	}
}

// Len returns the number of entries in the map.
func (m *TreeMap[V]) Len() int { return m.inner.Size() }

// Clear removes all entries.
func (m *TreeMap[V]) Clear() { m.inner.Clear() }

// Clone returns a copy of m that shares no state with it.
func (m *TreeMap[V]) Clone() *TreeMap[V] {
	c := NewTreeMap[V]()
	it := m.inner.Iterator()
	for it.Next() {
		c.inner.Put(it.Key(), it.Value())
	}
	return c
}

// All returns an iterator over the entries of m in canonical key order.
// The sequence is restartable: each range over it walks the map from the
// start. The map must not be modified during iteration.
func (m *TreeMap[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			e := it.Value()
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the stored keys in canonical key order.
func (m *TreeMap[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			if !yield(it.Value().key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in canonical key order.
func (m *TreeMap[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			if !yield(it.Value().value) {
				return
			}
		}
	}
}

// EqualFunc reports whether m and other hold the same set of keys
// (case-insensitively) with values equal under eq. Insertion casing and
// order play no part.
func (m *TreeMap[V]) EqualFunc(other *TreeMap[V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	it := m.inner.Iterator()
	for it.Next() {
		o, ok := other.inner.Get(it.Key())
		if !ok || !eq(it.Value().value, o.value) {
			return false
		}
	}
	return true
}

// TreeMapEqual is [TreeMap.EqualFunc] for comparable values.
func TreeMapEqual[V comparable](a, b *TreeMap[V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// String returns a debug representation of m.
func (m *TreeMap[V]) String() string {
	var sb strings.Builder
	sb.WriteString("TreeMap[")
	it := m.inner.Iterator()
	for i := 0; it.Next(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		e := it.Value()
		fmt.Fprintf(&sb, "%s:%v", e.key.text, e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}

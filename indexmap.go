package unicase

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/v2/maps/linkedhashmap"
)

// indexEntry pairs the stored Key with its value; the engine is keyed by
// the folded form.
type indexEntry[V any] struct {
	key   Key
	value V
}

// IndexMap is a map from case-insensitive keys to values of type V,
// iterated in the order the currently present keys were first inserted.
// Removing a key and inserting it again moves it to the end; value updates
// and Retain never reorder. A stored key keeps the casing it was first
// inserted with; lookups are amortized constant time.
//
// An IndexMap is not safe for concurrent use with a writer.
type IndexMap[V any] struct {
	inner *linkedhashmap.Map[string, indexEntry[V]]
}

// NewIndexMap returns an empty IndexMap.
func NewIndexMap[V any]() *IndexMap[V] {
	return &IndexMap[V]{inner: linkedhashmap.New[string, indexEntry[V]]()}
}

// Insert sets the value for key. If the key was already present the
// previous value is returned with replaced == true, the entry keeps its
// position, and the stored key keeps its existing casing: the newly
// supplied casing is discarded.
func (m *IndexMap[V]) Insert(key string, value V) (prev V, replaced bool) {
	return m.InsertKey(New(key), value)
}

// InsertKey is Insert for an already-canonicalized key.
func (m *IndexMap[V]) InsertKey(key Key, value V) (prev V, replaced bool) {
	if e, ok := m.inner.Get(key.folded); ok {
		m.inner.Put(key.folded, indexEntry[V]{key: e.key, value: value})
		return e.value, true
	}
	m.inner.Put(key.folded, indexEntry[V]{key: key, value: value})
	return prev, false
}

// Get returns the value stored for key, matched case-insensitively.
func (m *IndexMap[V]) Get(key string) (V, bool) {
	e, ok := m.inner.Get(Fold(key))
	return e.value, ok
}

// GetKey is Get for an already-canonicalized key.
func (m *IndexMap[V]) GetKey(key Key) (V, bool) {
	e, ok := m.inner.Get(key.folded)
	return e.value, ok
}

// GetKeyValue returns the stored key and value for key. The returned Key
// carries the casing the entry was first inserted with.
func (m *IndexMap[V]) GetKeyValue(key string) (Key, V, bool) {
	e, ok := m.inner.Get(Fold(key))
	return e.key, e.value, ok
}

// At returns the value for key, panicking if the key is not present. It is
// the indexing counterpart of Get, for callers that treat a missing key as
// a programming error.
func (m *IndexMap[V]) At(key string) V {
	e, ok := m.inner.Get(Fold(key))
	if !ok {
		panic("unicase: IndexMap.At: no entry for key " + strconv.Quote(key))
	}
	return e.value
}

// Contains reports whether the map has an entry for key.
func (m *IndexMap[V]) Contains(key string) bool {
	_, ok := m.inner.Get(Fold(key))
	return ok
}

// ContainsKey is Contains for an already-canonicalized key.
func (m *IndexMap[V]) ContainsKey(key Key) bool {
	_, ok := m.inner.Get(key.folded)
	return ok
}

// Remove deletes the entry for key and returns its value, with removed
// reporting whether the key was present. The relative order of the
// remaining entries is preserved; removing an absent key is a no-op.
func (m *IndexMap[V]) Remove(key string) (value V, removed bool) {
	return m.removeFolded(Fold(key))
}

// RemoveKey is Remove for an already-canonicalized key.
func (m *IndexMap[V]) RemoveKey(key Key) (value V, removed bool) {
	return m.removeFolded(key.folded)
}

func (m *IndexMap[V]) removeFolded(folded string) (value V, removed bool) {
	e, ok := m.inner.Get(folded)
	if ok {
		m.inner.Remove(folded)
	}
	return e.value, ok
}

// Retain removes every entry for which keep returns false. The remaining
// entries keep their relative insertion order.
func (m *IndexMap[V]) Retain(keep func(key Key, value V) bool) {
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
func (m *IndexMap[V]) Len() int { return m.inner.Size() }

// Clear removes all entries.
func (m *IndexMap[V]) Clear() { m.inner.Clear() }

// Clone returns a copy of m, in the same insertion order, that shares no
// state with it.
func (m *IndexMap[V]) Clone() *IndexMap[V] {
	c := NewIndexMap[V]()
	it := m.inner.Iterator()
	for it.Next() {
		c.inner.Put(it.Key(), it.Value())
	}
	return c
}

// All returns an iterator over the entries of m in insertion order. The
// sequence is restartable: each range over it walks the map from the start.
// The map must not be modified during iteration.
func (m *IndexMap[V]) All() iter.Seq2[Key, V] {
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

// Keys returns an iterator over the stored keys in insertion order.
func (m *IndexMap[V]) Keys() iter.Seq[Key] {
	return func(yield func(Key) bool) {
		it := m.inner.Iterator()
		for it.Next() {
			if !yield(it.Value().key) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in insertion order.
func (m *IndexMap[V]) Values() iter.Seq[V] {
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
func (m *IndexMap[V]) EqualFunc(other *IndexMap[V], eq func(a, b V) bool) bool {
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

// IndexMapEqual is [IndexMap.EqualFunc] for comparable values.
func IndexMapEqual[V comparable](a, b *IndexMap[V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// String returns a debug representation of m.
func (m *IndexMap[V]) String() string {
	var sb strings.Builder
	sb.WriteString("IndexMap[")
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

// Entry is a view of a single IndexMap slot, occupied or vacant, obtained
// from [IndexMap.Entry]. It runs the look-up-then-insert-if-absent pattern
// off a single map lookup.
type Entry[V any] struct {
	m       *IndexMap[V]
	key     Key // stored key when present, probe key otherwise
	value   V
	present bool
}

// Entry returns a handle to the slot for key, whether or not it is
// occupied. The handle is invalidated by any other mutation of the map.
func (m *IndexMap[V]) Entry(key string) *Entry[V] {
	return m.EntryKey(New(key))
}

// EntryKey is Entry for an already-canonicalized key.
func (m *IndexMap[V]) EntryKey(key Key) *Entry[V] {
	e := &Entry[V]{m: m, key: key}
	if cur, ok := m.inner.Get(key.folded); ok {
		e.key = cur.key
		e.value = cur.value
		e.present = true
	}
	return e
}

// Key returns the canonical key of the slot: the stored casing when
// occupied, the probe casing otherwise.
func (e *Entry[V]) Key() Key { return e.key }

// Present reports whether the slot is occupied.
func (e *Entry[V]) Present() bool { return e.present }

// Value returns the value in the slot, if occupied.
func (e *Entry[V]) Value() (V, bool) { return e.value, e.present }

// AndModify applies f to the value if the slot is occupied and writes the
// result back. It returns e, so it chains with OrInsert.
func (e *Entry[V]) AndModify(f func(*V)) *Entry[V] {
	if e.present {
		f(&e.value)
		e.m.inner.Put(e.key.folded, indexEntry[V]{key: e.key, value: e.value})
	}
	return e
}

// OrInsert fills a vacant slot with value and returns the value now in the
// slot. A newly filled slot takes the last position, as with Insert.
func (e *Entry[V]) OrInsert(value V) V {
	if !e.present {
		e.value = value
		e.present = true
		e.m.inner.Put(e.key.folded, indexEntry[V]{key: e.key, value: e.value})
	}
	return e.value
}

// OrInsertWith is OrInsert with the value computed only when the slot is
// vacant.
func (e *Entry[V]) OrInsertWith(f func() V) V {
	if !e.present {
		return e.OrInsert(f())
	}
	return e.value
}

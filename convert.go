package unicase

import "iter"

// Bulk constructors. Each accepts keys in any representation covered by
// [KeyInput] and funnels them through [ToKey]; later duplicates of a key
// overwrite the value while the first-seen casing is kept, per the Insert
// contract of the target container.

// CollectTreeMap builds a TreeMap from the key/value pairs of seq.
func CollectTreeMap[K KeyInput, V any](seq iter.Seq2[K, V]) *TreeMap[V] {
	m := NewTreeMap[V]()
	ExtendTreeMap(m, seq)
	return m
}

// ExtendTreeMap inserts every key/value pair of seq into m.
func ExtendTreeMap[K KeyInput, V any](m *TreeMap[V], seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.InsertKey(ToKey(k), v)
	}
}

// CollectIndexMap builds an IndexMap from the key/value pairs of seq, in
// sequence order.
func CollectIndexMap[K KeyInput, V any](seq iter.Seq2[K, V]) *IndexMap[V] {
	m := NewIndexMap[V]()
	ExtendIndexMap(m, seq)
	return m
}

// ExtendIndexMap inserts every key/value pair of seq into m.
func ExtendIndexMap[K KeyInput, V any](m *IndexMap[V], seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.InsertKey(ToKey(k), v)
	}
}

// CollectTreeSet builds a TreeSet from the keys of seq.
func CollectTreeSet[K KeyInput](seq iter.Seq[K]) *TreeSet {
	s := NewTreeSet()
	ExtendTreeSet(s, seq)
	return s
}

// ExtendTreeSet inserts every key of seq into s.
func ExtendTreeSet[K KeyInput](s *TreeSet, seq iter.Seq[K]) {
	for k := range seq {
		s.InsertKey(ToKey(k))
	}
}

// CollectIndexSet builds an IndexSet from the keys of seq, in sequence
// order.
func CollectIndexSet[K KeyInput](seq iter.Seq[K]) *IndexSet {
	s := NewIndexSet()
	ExtendIndexSet(s, seq)
	return s
}

// ExtendIndexSet inserts every key of seq into s.
func ExtendIndexSet[K KeyInput](s *IndexSet, seq iter.Seq[K]) {
	for k := range seq {
		s.InsertKey(ToKey(k))
	}
}

package unicase

import (
	"cmp"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// Key is a case-insensitive string key. It compares and orders by the
// Unicode case-folded form of its text while keeping the exact text it was
// created with. Keys are immutable; the zero Key is the empty key.
type Key struct {
	text   string
	folded string
}

// New returns a Key for s. The folded form is computed once, here.
func New(s string) Key {
	return Key{text: s, folded: Fold(s)}
}

// String returns the original text of k, byte for byte.
func (k Key) String() string { return k.text }

// Folded returns the case-folded form of k that equality and ordering are
// defined on.
func (k Key) Folded() string { return k.folded }

// Equal reports whether k and other fold to the same form.
func (k Key) Equal(other Key) bool { return k.folded == other.folded }

// Compare returns -1, 0, or +1 ordering k against other by folded form.
// The order is total and consistent with Equal: Compare returns 0 iff
// Equal returns true.
func (k Key) Compare(other Key) int { return cmp.Compare(k.folded, other.folded) }

// KeyInput is the set of key representations accepted by [ToKey] and the
// package-level bulk constructors: plain text, a Key by value, or a Key by
// pointer.
type KeyInput interface {
	string | Key | *Key
}

// ToKey converts any accepted key representation to a Key. A Key passes
// through unchanged, a *Key is copied, and a string is folded as by [New].
func ToKey[K KeyInput](k K) Key {
	switch k := any(k).(type) {
	case string:
		return New(k)
	case Key:
		return k
	case *Key:
		return *k
	}
	panic("unreachable")
}

// folders caches case folders for reuse. A cases.Caser is stateful and not
// safe for concurrent use, so handing each Fold call its own keeps read-only
// container lookups safe to run in parallel.
var folders = sync.Pool{
	New: func() any {
		c := cases.Fold()
		return &c
	},
}

// Fold returns the Unicode default case-folded form of s, as produced by
// [cases.Fold]. Two strings name the same key iff their folded forms are
// byte-equal.
func Fold(s string) string {
	if isASCII(s) {
		return foldASCII(s)
	}
	c := folders.Get().(*cases.Caser)
	folded := c.String(s)
	folders.Put(c)
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// foldASCII lowercases s without the caser: below utf8.RuneSelf simple and
// full folding agree. Returns s unchanged (no allocation) when it is
// already folded.
func foldASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if isUpperASCII(s[i]) {
			break
		}
	}
	if i == len(s) {
		return s
	}
	b := []byte(s)
	for ; i < len(b); i++ {
		if isUpperASCII(b[i]) {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func isUpperASCII(c byte) bool { return 'A' <= c && c <= 'Z' }

package unicase_test

import (
	"fmt"
	"strings"

	"github.com/charlievieth/unicase"
)

func ExampleKey() {
	a := unicase.New("Accept-Encoding")
	b := unicase.New("ACCEPT-ENCODING")

	fmt.Println(a.Equal(b))
	fmt.Println(a.Compare(unicase.New("Content-Type")))
	fmt.Println(a) // original casing survives
	// Output:
	// true
	// -1
	// Accept-Encoding
}

func ExampleIndexMap() {
	headers := unicase.NewIndexMap[string]()
	headers.Insert("Accept-Encoding", "gzip")
	headers.Insert("Content-Type", "text/plain")

	v, ok := headers.Get("accept-encoding")
	fmt.Println(v, ok)

	// Updating under another casing changes the value, not the stored key.
	headers.Insert("CONTENT-TYPE", "application/json")
	for k, v := range headers.All() {
		fmt.Printf("%s: %s\n", k, v)
	}
	// Output:
	// gzip true
	// Accept-Encoding: gzip
	// Content-Type: application/json
}

func ExampleIndexMap_Entry() {
	counts := unicase.NewIndexMap[int]()
	for _, word := range strings.Fields("Go go GO gopher") {
		counts.Entry(word).AndModify(func(n *int) { *n++ }).OrInsert(1)
	}
	for k, n := range counts.All() {
		fmt.Printf("%s=%d\n", k, n)
	}
	// Output:
	// Go=3
	// gopher=1
}

func ExampleIndexMap_At() {
	m := unicase.NewIndexMap[int]()
	m.Insert("Retries", 3)

	fmt.Println(m.At("retries"))
	// Output:
	// 3
}

func ExampleTreeMap() {
	m := unicase.NewTreeMap[int]()
	m.Insert("banana", 2)
	m.Insert("Apple", 1)
	m.Insert("CHERRY", 3)

	// Iteration runs in canonical key order.
	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	// Output:
	// Apple 1
	// banana 2
	// CHERRY 3
}

func ExampleTreeSet() {
	s := unicase.NewTreeSet()
	s.Insert("straße")
	fmt.Println(s.Insert("STRASSE")) // full folding: same key
	fmt.Println(s.Contains("Straße"))
	// Output:
	// false
	// true
}

func ExampleIndexSet() {
	s := unicase.NewIndexSet()
	for _, enc := range []string{"gzip", "Deflate", "GZIP", "br"} {
		s.Insert(enc)
	}
	for k := range s.All() {
		fmt.Println(k)
	}
	// Output:
	// gzip
	// Deflate
	// br
}

func ExampleToKey() {
	k := unicase.ToKey("Cache-Control")
	fmt.Println(k.Folded())
	fmt.Println(unicase.ToKey(k) == k)
	// Output:
	// cache-control
	// true
}

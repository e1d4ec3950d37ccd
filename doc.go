// Copyright 2024 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package unicase provides ordered and insertion-ordered maps and sets whose
// keys compare case-insensitively while preserving the exact text they were
// created with: "Accept-Encoding" and "ACCEPT-ENCODING" address the same
// entry, and iterating the container hands back whichever spelling was
// inserted first.
//
// Keys are normalized with Unicode default (full) case folding, as
// implemented by [golang.org/x/text/cases]. Folding is locale-independent
// and includes expansions: "ß" and "ss" are the same key, as are "k" and the
// Kelvin sign "K". Two keys are equal iff their folded forms are byte-equal,
// and the ordered containers iterate in byte order of the folded forms.
//
// Four containers are provided: [TreeMap] and [TreeSet] iterate in canonical
// key order, [IndexMap] and [IndexSet] in insertion order of the currently
// present keys. All of them speak [Key] or plain strings; callers never see
// the backing containers.
//
// None of the containers synchronize internally: any number of readers may
// run concurrently, but a writer needs exclusive access.
package unicase

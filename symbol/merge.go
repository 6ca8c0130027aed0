// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

// InsertionMap records, for a source set X merged into a union set U, the
// names of U that must be inserted at each position of X. A position i in
// [0, X.Len()] designates "immediately before X's i-th name"; position
// X.Len() designates "after the last name of X". InsertionMap is empty iff
// X is already a superset of U.
type InsertionMap struct {
	// inserted[i] holds the names to splice in immediately before
	// position i, in collation order. Positions with nothing to insert
	// are absent from the map.
	inserted map[int][]string
}

// Empty reports whether the map performs no insertions, i.e. the source set
// already equals the union.
func (m InsertionMap) Empty() bool { return len(m.inserted) == 0 }

// At returns the names to insert immediately before position pos, or nil if
// there are none.
func (m InsertionMap) At(pos int) []string { return m.inserted[pos] }

// Merge computes the union U of a and b (sorted, duplicate-free, same
// collation as New), together with the insertion maps describing how U
// extends each of a and b. mA is empty iff a == U; mB is empty iff b == U.
func Merge(a, b *Set) (u *Set, mA, mB InsertionMap) {
	u = union(a, b)
	mA = buildInsertionMap(a, u)
	mB = buildInsertionMap(b, u)
	return u, mA, mB
}

func union(a, b *Set) *Set {
	seen := make(map[string]struct{}, a.Len()+b.Len())
	names := make([]string, 0, a.Len()+b.Len())
	for _, n := range a.names {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	for _, n := range b.names {
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			names = append(names, n)
		}
	}
	return New(names...)
}

// buildInsertionMap walks x and u, both in the same total order, recording
// runs of u-only names as insertions before the next shared position.
func buildInsertionMap(x, u *Set) InsertionMap {
	inserted := make(map[int][]string)
	xi, ui := 0, 0
	for ui < u.Len() {
		if xi < x.Len() && x.names[xi] == u.names[ui] {
			xi++
			ui++
			continue
		}
		// u.names[ui] does not occur (yet) in x: it belongs in the
		// run inserted before position xi.
		inserted[xi] = append(inserted[xi], u.names[ui])
		ui++
	}
	if len(inserted) == 0 {
		return InsertionMap{}
	}
	return InsertionMap{inserted: inserted}
}

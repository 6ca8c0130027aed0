// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// collator orders symbol names with a total, locale-independent,
// reproducible-across-runs comparison. It is not safe for concurrent use;
// sortNames serializes access to it with collatorMu.
var collator = collate.New(language.Und)

var collatorMu sync.Mutex

// Set is an ordered sequence of distinct variable names. The zero value is
// the empty set. A *Set is immutable once constructed; all operations that
// would change membership return a new *Set.
type Set struct {
	names []string
}

// New returns the set containing the distinct names in names, ordered by a
// locale-independent collation. Duplicate names (byte-for-byte equal) are
// removed; the input slice is not mutated.
func New(names ...string) *Set {
	cp := append([]string(nil), names...)
	sortNames(cp)
	cp = dedup(cp)
	return &Set{names: cp}
}

func sortNames(names []string) {
	// collate.Collator.Strings is not documented safe for concurrent use
	// across Collator instances sharing internal buffers, so serialize
	// access to the package collator.
	collatorMu.Lock()
	defer collatorMu.Unlock()
	collator.Strings(names)
}

func dedup(sorted []string) []string {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, n := range sorted[1:] {
		if n != out[len(out)-1] {
			out = append(out, n)
		}
	}
	return out
}

// Len returns the number of names in s.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.names)
}

// Name returns the i-th name in collation order.
func (s *Set) Name(i int) string { return s.names[i] }

// Names returns a copy of the set's names in collation order.
func (s *Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Index returns the position of name in s, and whether it was found.
func (s *Set) Index(name string) (int, bool) {
	for i, n := range s.names {
		if n == name {
			return i, true
		}
	}
	return -1, false
}

// Contains reports whether name appears in s.
func (s *Set) Contains(name string) bool {
	_, ok := s.Index(name)
	return ok
}

// Equal reports whether s and other contain exactly the same names in the
// same order, which for two Sets built by New or Merge is equivalent to
// having the same name content.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	for i := range s.names {
		if s.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// Superset reports whether s contains every name in other.
func (s *Set) Superset(other *Set) bool {
	for _, n := range other.names {
		if !s.Contains(n) {
			return false
		}
	}
	return true
}

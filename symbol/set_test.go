// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package symbol

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewDedupsAndSorts(t *testing.T) {
	s := New("z", "a", "m", "a", "z")
	got := s.Names()
	want := []string{"a", "m", "z"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("New(...) names mismatch (-want +got):\n%s", diff)
	}
}

func TestSetEqual(t *testing.T) {
	a := New("x", "y", "z")
	b := New("z", "y", "x")
	if !a.Equal(b) {
		t.Errorf("%v and %v should be equal regardless of construction order", a.Names(), b.Names())
	}
	c := New("x", "y")
	if a.Equal(c) {
		t.Errorf("%v and %v should not be equal", a.Names(), c.Names())
	}
}

func TestSetIndex(t *testing.T) {
	s := New("a", "b", "c")
	for i, n := range []string{"a", "b", "c"} {
		got, ok := s.Index(n)
		if !ok || got != i {
			t.Errorf("Index(%q) = %d, %v; want %d, true", n, got, ok, i)
		}
	}
	if _, ok := s.Index("d"); ok {
		t.Errorf("Index(%q) unexpectedly found", "d")
	}
}

func TestSetSuperset(t *testing.T) {
	full := New("x", "y", "z")
	sub := New("x", "z")
	if !full.Superset(sub) {
		t.Errorf("%v should be a superset of %v", full.Names(), sub.Names())
	}
	if sub.Superset(full) {
		t.Errorf("%v should not be a superset of %v", sub.Names(), full.Names())
	}
}

func TestEmptySet(t *testing.T) {
	var s *Set
	if s.Len() != 0 {
		t.Errorf("nil *Set.Len() = %d, want 0", s.Len())
	}
	empty := New()
	if diff := cmp.Diff([]string{}, empty.Names(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("New() names mismatch (-want +got):\n%s", diff)
	}
}

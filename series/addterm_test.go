// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"testing"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key/packed"
	"github.com/polyalg/series/symbol"
)

func TestAddTermAccumulates(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)

	if err := AddTerm(p, k, coeff.NewRational(1, 1), AddOptions{CheckZero: true, CheckSize: true}); err != nil {
		t.Fatalf("AddTerm #1: %v", err)
	}
	if err := AddTerm(p, k, coeff.NewRational(2, 1), AddOptions{CheckZero: true, CheckSize: true}); err != nil {
		t.Fatalf("AddTerm #2: %v", err)
	}
	c, ok := p.Find(k)
	if !ok || c.String() != "3" {
		t.Fatalf("after accumulation, Find(x) = %v, %v; want 3, true", c, ok)
	}
}

func TestAddTermSubtractToZeroRemoves(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k, coeff.NewRational(5, 1), AddOptions{CheckZero: true, CheckSize: true}); err != nil {
		t.Fatal(err)
	}
	if err := AddTerm(p, k, coeff.NewRational(5, 1), AddOptions{Sign: signSub, CheckZero: true, CheckSize: true}); err != nil {
		t.Fatal(err)
	}
	if !p.Empty() {
		t.Fatalf("p should be empty after cancelling to zero, got %v", p.Terms())
	}
}

func TestAddTermAssumeUniqueSkipsAccumulation(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k, coeff.NewRational(1, 1), AddOptions{CheckZero: true, CheckSize: true}); err != nil {
		t.Fatal(err)
	}
	// AssumeUnique overwrites rather than accumulates.
	if err := AddTerm(p, k, coeff.NewRational(7, 1), AddOptions{CheckZero: true, CheckSize: true, AssumeUnique: true}); err != nil {
		t.Fatal(err)
	}
	c, _ := p.Find(k)
	if c.String() != "7" {
		t.Fatalf("AssumeUnique insertion should overwrite, got %v", c)
	}
}

func TestAddTermOverflow(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	p.SetSegmentSizeLimit(1)

	k1 := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k1, coeff.NewRational(1, 1), AddOptions{CheckZero: true, CheckSize: true}); err != nil {
		t.Fatalf("first insertion under the limit should succeed: %v", err)
	}

	k2 := packed.FromExponents([]int64{2}, syms)
	err := AddTerm(p, k2, coeff.NewRational(1, 1), AddOptions{CheckZero: true, CheckSize: true})
	var overflow *OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("AddTerm past the segment limit = %v, want *OverflowError", err)
	}
	if !errors.Is(err, ErrOverflow) {
		t.Errorf("errors.Is(err, ErrOverflow) = false, want true")
	}
}

func TestAddTermIncompatibleKey(t *testing.T) {
	// componentsPerWord is 4, so a 5-symbol set needs 2 packed words while
	// a 1-symbol set needs 1; this is enough to make IsCompatible's
	// word-count check fail.
	syms := symbol.New("a", "b", "c", "d", "e")
	other := symbol.New("x")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	k := packed.FromExponents([]int64{1}, other)
	err := AddTerm(p, k, coeff.NewRational(1, 1), AddOptions{CheckCompat: true})
	var incompat *IncompatibleKeyError
	if !errors.As(err, &incompat) {
		t.Fatalf("AddTerm with a mismatched key = %v, want *IncompatibleKeyError", err)
	}
}

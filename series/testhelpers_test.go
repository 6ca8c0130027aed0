// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key/packed"
	"github.com/polyalg/series/symbol"
)

// rawTerm is a test-only shorthand for one (exponents, rational
// coefficient) pair.
type rawTerm struct {
	exps     map[string]int64
	num, den int64
}

func t1(name string, e int64, num, den int64) rawTerm {
	return rawTerm{exps: map[string]int64{name: e}, num: num, den: den}
}

func symbolsXYZ() *symbol.Set { return symbol.New("x", "y", "z") }

func monoOver(syms *symbol.Set, exps map[string]int64) packed.Monomial {
	full := make([]int64, syms.Len())
	for name, e := range exps {
		idx, ok := syms.Index(name)
		if !ok {
			panic("monoOver: unknown symbol " + name)
		}
		full[idx] = e
	}
	return packed.FromExponents(full, syms)
}

// buildPoly constructs a rational-coefficient series over syms from terms,
// using AddTerm directly (so it also exercises the accumulate-on-collision
// path when two raw terms share a monomial).
func buildPoly(t *testing.T, syms *symbol.Set, terms []rawTerm) *Series[packed.Monomial, *coeff.Rational, struct{}] {
	t.Helper()
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	for _, rt := range terms {
		k := monoOver(syms, rt.exps)
		c := coeff.NewRational(rt.num, rt.den)
		if err := AddTerm(p, k, c, AddOptions{CheckZero: true, CheckSize: true}); err != nil {
			t.Fatalf("buildPoly: AddTerm(%v): %v", rt, err)
		}
	}
	return p
}

func unitConst(syms *symbol.Set, num, den int64) *Series[packed.Monomial, *coeff.Rational, struct{}] {
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	var zero packed.Monomial
	if err := AddTerm(p, zero.Unit(syms), coeff.NewRational(num, den), AddOptions{CheckZero: true, CheckSize: true, AssumeUnique: true}); err != nil {
		panic(err)
	}
	return p
}

// variable returns a single-term series over a fresh one-symbol set: the
// named symbol to the first power, coefficient 1.
func variable(name string) *Series[packed.Monomial, *coeff.Rational, struct{}] {
	syms := symbol.New(name)
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k, coeff.NewRational(1, 1), AddOptions{CheckZero: true, CheckSize: true, AssumeUnique: true}); err != nil {
		panic(err)
	}
	return p
}

// ratAt returns the rational coefficient stored at the given exponent map,
// or fails the test if no such term exists.
func ratAt(t *testing.T, p *Series[packed.Monomial, *coeff.Rational, struct{}], exps map[string]int64) *coeff.Rational {
	t.Helper()
	k := monoOver(p.syms, exps)
	c, ok := p.Find(k)
	if !ok {
		t.Fatalf("ratAt(%v): no such term in %v", exps, p.Terms())
	}
	return c
}

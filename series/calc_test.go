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

func TestDiff(t *testing.T) {
	// diff(xyz - 3x + 4y + 5xy + y^2, "y") == xz + 4 + 5x + 2y
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{
		{exps: map[string]int64{"x": 1, "y": 1, "z": 1}, num: 1, den: 1},
		t1("x", 1, -3, 1),
		t1("y", 1, 4, 1),
		{exps: map[string]int64{"x": 1, "y": 1}, num: 5, den: 1},
		t1("y", 2, 1, 1),
	})
	got, err := Diff(p, "y")
	if err != nil {
		t.Fatal(err)
	}
	want := buildPoly(t, syms, []rawTerm{
		{exps: map[string]int64{"x": 1, "z": 1}, num: 1, den: 1},
		{exps: map[string]int64{}, num: 4, den: 1},
		t1("x", 1, 5, 1),
		t1("y", 1, 2, 1),
	})
	if !Equal(got, want) {
		t.Errorf("diff(p, y) = %v, want xz + 4 + 5x + 2y", got.Terms())
	}
}

func TestDiffUnknownSymbol(t *testing.T) {
	p := buildPoly(t, symbolsXYZ(), []rawTerm{t1("x", 1, 1, 1)})
	if _, err := Diff(p, "w"); err == nil {
		t.Fatal("Diff on an unknown symbol should fail")
	}
}

func TestIntegrateThenDiffRoundTrips(t *testing.T) {
	syms := symbol.New("x")
	p := buildPoly(t, syms, []rawTerm{t1("x", 2, 3, 1), t1("x", 0, 1, 1)})
	integ, err := Integrate(p, "x")
	if err != nil {
		t.Fatal(err)
	}
	back, err := Diff(integ, "x")
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(back, p) {
		t.Errorf("diff(integrate(p)) = %v, want %v", back.Terms(), p.Terms())
	}
}

func TestIntegrateRejectsExponentMinusOne(t *testing.T) {
	syms := symbol.New("x")
	p := buildPoly(t, syms, []rawTerm{t1("x", -1, 1, 1)})
	if _, err := Integrate(p, "x"); err == nil {
		t.Fatal("integrating x^-1 should fail")
	}
}

// TestIntegrateIntegerCoefficientExactCase integrates 2x w.r.t. x over
// Integer coefficients: the new exponent factor is 2 and the coefficient 2
// divides by it exactly, landing on x^2 rather than failing outright.
func TestIntegrateIntegerCoefficientExactCase(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Integer, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k, coeff.NewInteger(2), AddOptions{CheckZero: true, CheckSize: true, AssumeUnique: true}); err != nil {
		t.Fatal(err)
	}
	got, err := Integrate(p, "x")
	if err != nil {
		t.Fatalf("Integrate(2x) over Integer coefficients should succeed exactly: %v", err)
	}
	want := packed.FromExponents([]int64{2}, syms)
	c, ok := got.Find(want)
	if !ok {
		t.Fatalf("integrate(2x) = %v, want a single x^2 term", got.Terms())
	}
	if c.String() != "1" {
		t.Errorf("integrate(2x) coefficient = %s, want 1", c.String())
	}
}

// TestIntegrateIntegerCoefficientInexactCase integrates x w.r.t. x: the new
// exponent factor is 2, and the stored coefficient 1 does not divide by 2
// exactly, so Integer's exact Quo contract must reject it.
func TestIntegrateIntegerCoefficientInexactCase(t *testing.T) {
	syms := symbol.New("x")
	p := New[packed.Monomial, *coeff.Integer, struct{}](syms)
	k := packed.FromExponents([]int64{1}, syms)
	if err := AddTerm(p, k, coeff.NewInteger(1), AddOptions{CheckZero: true, CheckSize: true, AssumeUnique: true}); err != nil {
		t.Fatal(err)
	}
	if _, err := Integrate(p, "x"); err == nil {
		t.Fatal("integrate(x) over Integer coefficients should fail: 1/2 is not an exact integer")
	}
}

func TestSubsWithPolynomialValue(t *testing.T) {
	// p = xyz - 3x + 4y + 5xy + y^2; subs(p, {"x" -> 3u}) ==
	// 3uyz - 9u + 4y + 15uy + y^2
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{
		{exps: map[string]int64{"x": 1, "y": 1, "z": 1}, num: 1, den: 1},
		t1("x", 1, -3, 1),
		t1("y", 1, 4, 1),
		{exps: map[string]int64{"x": 1, "y": 1}, num: 5, den: 1},
		t1("y", 2, 1, 1),
	})
	threeU := buildPoly(t, symbol.New("u"), []rawTerm{t1("u", 1, 3, 1)})

	got, err := Subs(p, "x", threeU)
	if err != nil {
		t.Fatal(err)
	}

	wantSyms := symbol.New("u", "y", "z")
	want := buildPoly(t, wantSyms, []rawTerm{
		{exps: map[string]int64{"u": 1, "y": 1, "z": 1}, num: 3, den: 1},
		t1("u", 1, -9, 1),
		t1("y", 1, 4, 1),
		{exps: map[string]int64{"u": 1, "y": 1}, num: 15, den: 1},
		t1("y", 2, 1, 1),
	})
	if !Equal(got, want) {
		t.Errorf("subs(p, x -> 3u) = %v\nwant %v", got.Terms(), want.Terms())
	}
}

func TestEvaluate(t *testing.T) {
	// p = x^2 + 3y, evaluated at x=2, y=5 is 4 + 15 = 19.
	syms := symbol.New("x", "y")
	p := buildPoly(t, syms, []rawTerm{t1("x", 2, 1, 1), t1("y", 1, 3, 1)})
	got, err := Evaluate(p, map[string]*coeff.Rational{
		"x": coeff.NewRational(2, 1),
		"y": coeff.NewRational(5, 1),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != "19" {
		t.Errorf("Evaluate(p, {x:2, y:5}) = %v, want 19", got)
	}
}

func TestEvaluateMissingSymbol(t *testing.T) {
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{t1("x", 1, 1, 1)})
	_, err := Evaluate(p, map[string]*coeff.Rational{
		"x": coeff.NewRational(1, 1),
		"y": coeff.NewRational(1, 1),
	})
	if err == nil {
		t.Fatal("Evaluate with a map missing \"z\" should fail")
	}
}

func TestTrimRemovesUnusedSymbols(t *testing.T) {
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{t1("x", 1, 1, 1)})
	trimmed, err := Trim(p)
	if err != nil {
		t.Fatal(err)
	}
	if trimmed.SymbolSet().Len() != 1 {
		t.Errorf("Trim should drop y and z, got symbol set %v", trimmed.SymbolSet().Names())
	}
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/internal/hash"
	"github.com/polyalg/series/key/packed"
	"github.com/polyalg/series/symbol"
)

// TestStoredTermInvariants checks that every stored term satisfies the
// storage invariant: a nonzero key, a nonzero coefficient, and a key
// compatible with the ambient symbol set.
func TestStoredTermInvariants(t *testing.T) {
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{
		{exps: map[string]int64{"x": 1, "y": 1, "z": 1}, num: 1, den: 1},
		t1("x", 1, -3, 1),
		t1("y", 1, 4, 1),
		{exps: map[string]int64{}, num: 5, den: 1},
	})
	for _, term := range p.Terms() {
		if term.Key.IsZero(syms) {
			t.Errorf("stored key %v is zero", term.Key)
		}
		if term.Cf.IsZero() {
			t.Errorf("stored coefficient for key %v is zero", term.Key)
		}
		if !term.Key.IsCompatible(syms) {
			t.Errorf("stored key %v is not compatible with %v", term.Key, syms.Names())
		}
	}
}

// TestSegmentIndexMatchesHashMask checks that a term physically lives in
// the sub-table segmentIndex computes for it: hash.Mix(k.Hash()) masked to
// its low L bits, not a raw unmasked hash.
func TestSegmentIndexMatchesHashMask(t *testing.T) {
	syms := symbol.New("x", "y", "z")
	p := New[packed.Monomial, *coeff.Rational, struct{}](syms)
	if err := p.SetNSegments(3); err != nil {
		t.Fatal(err)
	}
	for x := int64(0); x < 6; x++ {
		for y := int64(0); y < 6; y++ {
			k := packed.FromExponents([]int64{x, y, 0}, syms)
			if err := AddTerm(p, k, coeff.NewRational(1, 1), AddOptions{
				Sign: signAdd, CheckZero: true, CheckCompat: true, CheckSize: true,
			}); err != nil {
				t.Fatalf("AddTerm(%d,%d): %v", x, y, err)
			}
			want := hash.Segment(k.Hash(), p.NSegmentsLog2())
			if _, ok := p.segs[want][k]; !ok {
				t.Errorf("term (x=%d,y=%d) not found in the segment hash.Segment predicts (%d)", x, y, want)
			}
		}
	}
}

// TestClearResetsSymbolsAndTag checks Clear's documented postcondition:
// size 0, empty symbol set, L unchanged. The tag type here is struct{}, so
// the reset of the tag to its zero value is not observable and not checked.
func TestClearResetsSymbolsAndTag(t *testing.T) {
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{t1("x", 1, 1, 1)})
	if err := p.SetNSegments(2); err != nil {
		t.Fatal(err)
	}
	*p.Tag() = struct{}{}

	p.Clear()

	if p.Size() != 0 {
		t.Errorf("Clear: size = %d, want 0", p.Size())
	}
	if p.SymbolSet().Len() != 0 {
		t.Errorf("Clear: symbol set = %v, want empty", p.SymbolSet().Names())
	}
	if p.NSegmentsLog2() != 2 {
		t.Errorf("Clear: L = %d, want unchanged at 2", p.NSegmentsLog2())
	}
}

// TestClearTermsKeepsSymbolsAndTag checks ClearTerms' documented
// postcondition: size 0, symbol set and L unchanged. The tag type here is
// struct{}, so keeping the tag is not observable and not checked.
func TestClearTermsKeepsSymbolsAndTag(t *testing.T) {
	syms := symbolsXYZ()
	p := buildPoly(t, syms, []rawTerm{t1("x", 1, 1, 1), t1("y", 1, 1, 1)})
	if err := p.SetNSegments(2); err != nil {
		t.Fatal(err)
	}

	p.ClearTerms()

	if p.Size() != 0 {
		t.Errorf("ClearTerms: size = %d, want 0", p.Size())
	}
	if p.SymbolSet() != syms {
		t.Errorf("ClearTerms: symbol set changed identity")
	}
	if p.NSegmentsLog2() != 2 {
		t.Errorf("ClearTerms: L = %d, want unchanged at 2", p.NSegmentsLog2())
	}
}

// TestMulByUnitAndAddZeroAreIdentities checks the a*1==a and a+0==a laws.
func TestMulByUnitAndAddZeroAreIdentities(t *testing.T) {
	syms := symbolsXYZ()
	a := buildPoly(t, syms, []rawTerm{
		{exps: map[string]int64{"x": 1, "y": 1}, num: 2, den: 1},
		t1("z", 1, -1, 1),
	})

	one := unitConst(a.SymbolSet(), 1, 1)
	prod, err := Mul(a, one)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(prod, a) {
		t.Errorf("a*1 = %v, want a = %v", prod.Terms(), a.Terms())
	}

	zero := New[packed.Monomial, *coeff.Rational, struct{}](a.SymbolSet())
	sum, err := Add(a, zero)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(sum, a) {
		t.Errorf("a+0 = %v, want a = %v", sum.Terms(), a.Terms())
	}
}

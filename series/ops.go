// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"reflect"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// reconcile brings a and b onto a common symbol set, extending whichever
// operand(s) need it (§4.4's same-rank protocol, steps 1-2). It never
// mutates a or b; Extend is always called with consumeSrc=false here
// because the dispatch entry points below still need their original
// operands (e.g. to decide which is "larger").
func reconcile[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) (*Series[K, C, Tag], *Series[K, C, Tag], error) {
	if a.syms.Equal(b.syms) {
		return a, b, nil
	}
	u, mA, mB := symbol.Merge(a.syms, b.syms)
	ea, eb := a, b
	var err error
	if !mA.Empty() {
		ea, err = Extend(a, u, mA, false)
		if err != nil {
			return nil, nil, err
		}
	}
	if !mB.Empty() {
		eb, err = Extend(b, u, mB, false)
		if err != nil {
			return nil, nil, err
		}
	}
	return ea, eb, nil
}

// coeffEqual reports whether two Ring values are equal, implemented
// generically as (c1 - c2) == 0 since Ring does not require an explicit
// Equal method.
func coeffEqual[C coeff.Ring[C]](c1, c2 C) bool {
	tmp := c1.Clone()
	tmp.SubAssign(c2)
	return tmp.IsZero()
}

// Add returns a + b, merging symbol sets as needed (§4.4).
func Add[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	return addOrSub(a, b, signAdd)
}

// Sub returns a - b, merging symbol sets as needed (§4.4).
func Sub[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	return addOrSub(a, b, signSub)
}

func addOrSub[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag], sg sign) (*Series[K, C, Tag], error) {
	ea, eb, err := reconcile(a, b)
	if err != nil {
		return nil, err
	}
	// Pick the larger operand as the accumulator; for Sub with swapped
	// operands, negate the accumulator before adding the smaller one in.
	big, small, swapped := ea, eb, false
	if small.Size() > big.Size() {
		big, small, swapped = eb, ea, true
	}
	result := big.clone()
	opSign := sg
	if swapped && sg == signSub {
		negateInPlace(result)
		opSign = signAdd
	}
	var firstErr error
	small.ForEach(func(k K, c C) bool {
		if err := AddTerm(result, k, c, AddOptions{
			Sign: opSign, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
		}); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func negateInPlace[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag]) {
	for _, seg := range p.segs {
		for k, c := range seg {
			c.Neg()
			seg[k] = c
		}
	}
}

// Equal implements same-rank "==" (§4.4): sizes must match, every term of
// a must have a matching key in b with an equal coefficient, and tags (if
// meaningfully comparable) must match too.
func Equal[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) bool {
	ea, eb, err := reconcile(a, b)
	if err != nil {
		return false
	}
	if ea.Size() != eb.Size() {
		return false
	}
	if !reflect.DeepEqual(ea.tag, eb.tag) {
		return false
	}
	match := true
	ea.ForEach(func(k K, c C) bool {
		other, ok := eb.Find(k)
		if !ok || !coeffEqual(c, other) {
			match = false
			return false
		}
		return true
	})
	return match
}

// AddScalar returns series + c, where c has the series' own coefficient
// type (the rank(A) < rank(B) case of §4.4, specialized to a rank
// difference of exactly one — see DESIGN.md for why arbitrary rank gaps
// are out of scope for a from-scratch generic Go port).
func AddScalar[K key.Key[K], C coeff.Ring[C], Tag any](s *Series[K, C, Tag], c C) (*Series[K, C, Tag], error) {
	return scalarOp(s, c, signAdd)
}

// SubScalarFromSeries returns series - c.
func SubScalarFromSeries[K key.Key[K], C coeff.Ring[C], Tag any](s *Series[K, C, Tag], c C) (*Series[K, C, Tag], error) {
	return scalarOp(s, c, signSub)
}

// SubSeriesFromScalar returns c - series.
func SubSeriesFromScalar[K key.Key[K], C coeff.Ring[C], Tag any](c C, s *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	result, err := scalarOp(s, c, signSub)
	if err != nil {
		return nil, err
	}
	negateInPlace(result)
	return result, nil
}

func scalarOp[K key.Key[K], C coeff.Ring[C], Tag any](s *Series[K, C, Tag], c C, sg sign) (*Series[K, C, Tag], error) {
	result := s.clone()
	var zero K
	unit := zero.Unit(s.syms)
	err := AddTerm(result, unit, c, AddOptions{
		Sign: sg, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// MulScalar returns r * s, multiplying every coefficient of s by r
// in place on a clone (§4.5, "Scalar multiplication of a series").
func MulScalar[K key.Key[K], C coeff.Ring[C], Tag any](r C, s *Series[K, C, Tag]) *Series[K, C, Tag] {
	result := s.clone()
	for _, seg := range result.segs {
		for k, c := range seg {
			prod := r.Mul(c)
			if prod.IsZero() {
				delete(seg, k)
				continue
			}
			seg[k] = prod
		}
	}
	return result
}

// Divider is the optional capability a coefficient type needs for
// DivScalar: exact division by another value of the same type.
type Divider[C any] interface {
	Quo(rhs C) (C, error)
}

// DivScalar returns s / r, defined only for rank(a) > rank(b) (§4.4):
// divide every coefficient by r, dropping terms that become zero. Returns
// ErrShapeMismatch if C does not implement Divider.
func DivScalar[K key.Key[K], C coeff.Ring[C], Tag any](s *Series[K, C, Tag], r C) (*Series[K, C, Tag], error) {
	if _, ok := any(r).(Divider[C]); !ok {
		return nil, &ShapeMismatchError{Op: "DivScalar: coefficient type does not support division"}
	}
	result := s.clone()
	for _, seg := range result.segs {
		for k, c := range seg {
			q, err := any(c).(Divider[C]).Quo(r)
			if err != nil {
				return nil, err
			}
			if q.IsZero() {
				delete(seg, k)
				continue
			}
			seg[k] = q
		}
	}
	return result, nil
}

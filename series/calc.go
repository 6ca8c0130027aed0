// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// Exact is the optional capability a coefficient type provides to report
// whether its value carries no rounding error. Integrate requires it of
// any coefficient type that can be inexact (coeff.Float); types that are
// always exact (coeff.Rational, coeff.Integer) need not implement it.
type Exact interface {
	IsExact() bool
}

func isExact[C any](c C) bool {
	if e, ok := any(c).(Exact); ok {
		return e.IsExact()
	}
	return true
}

// Diff differentiates p with respect to the symbol named name, term by
// term (each term's key reports the integer factor its own Diff produces).
func Diff[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], name string) (*Series[K, C, Tag], error) {
	idx, ok := p.syms.Index(name)
	if !ok {
		return nil, &MissingSymbolError{Op: "Diff", Symbol: name}
	}
	result := New[K, C, Tag](p.syms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		factor, nk := k.Diff(idx, p.syms)
		if factor == 0 {
			return true
		}
		nc := c.Mul(c.FromInt(factor))
		if err := AddTerm(result, nk, nc, AddOptions{
			Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
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

// Integrate integrates p with respect to the symbol named name. Every
// resulting coefficient must remain exact (spec.md: integration that
// would otherwise lose precision is rejected rather than silently
// rounded); a coefficient type that does not implement Exact is always
// treated as exact.
func Integrate[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], name string) (*Series[K, C, Tag], error) {
	idx, ok := p.syms.Index(name)
	if !ok {
		return nil, &MissingSymbolError{Op: "Integrate", Symbol: name}
	}
	result := New[K, C, Tag](p.syms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		newExp, nk, err := k.Integrate(idx, p.syms)
		if err != nil {
			firstErr = err
			return false
		}
		divisor, ok := any(c).(Divider[C])
		if !ok {
			firstErr = &ShapeMismatchError{Op: "Integrate: coefficient type does not support division"}
			return false
		}
		nc, err := divisor.Quo(c.FromInt(newExp))
		if err != nil {
			firstErr = err
			return false
		}
		if !isExact(nc) {
			firstErr = &InexactCoefficientError{Op: "Integrate"}
			return false
		}
		if err := AddTerm(result, nk, nc, AddOptions{
			Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
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

// Subs substitutes val, a series over the same (K, C, Tag) instantiation,
// for the symbol named name. Every term's exponent for name is peeled off
// as val raised to that power and multiplied back into the term's
// remaining factor; the resulting terms are summed, so the substituted
// symbol set grows to the union of p's and val's symbol sets (§4.6's
// abstract key_subs specialized to values drawn from the same ring rather
// than an arbitrary foreign type — see DESIGN.md).
//
// name's exponent in a term must be non-negative: Subs raises val to an
// integer power via repeated squaring and has no notion of a Laurent
// substitution.
func Subs[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], name string, val *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	idx, ok := p.syms.Index(name)
	if !ok {
		return nil, &MissingSymbolError{Op: "Subs", Symbol: name}
	}
	result := New[K, C, Tag](p.syms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		e := k.Exponent(idx, p.syms)
		if e < 0 {
			firstErr = ErrNegativeExponent
			return false
		}
		nk := k.WithExponent(idx, 0, p.syms)
		factor := New[K, C, Tag](p.syms)
		if err := AddTerm(factor, nk, c, AddOptions{
			Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true,
		}); err != nil {
			firstErr = err
			return false
		}
		valPow, err := PowUncached(val, e)
		if err != nil {
			firstErr = err
			return false
		}
		term, err := Mul(factor, valPow)
		if err != nil {
			firstErr = err
			return false
		}
		next, err := Add(result, term)
		if err != nil {
			firstErr = err
			return false
		}
		result = next
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Evaluate computes the scalar value of p at the point named by values,
// which must supply a value for every symbol in p's symbol set.
func Evaluate[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], values map[string]C) (C, error) {
	var acc C
	for i := 0; i < p.syms.Len(); i++ {
		name := p.syms.Name(i)
		if _, ok := values[name]; !ok {
			return acc, &MissingSymbolError{Op: "Evaluate", Symbol: name}
		}
	}
	acc = acc.FromInt(0)
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		term := c.Clone()
		for i := 0; i < p.syms.Len(); i++ {
			e := k.Exponent(i, p.syms)
			if e == 0 {
				continue
			}
			term = term.Mul(intPow(values[p.syms.Name(i)], e))
		}
		acc.AddAssign(term)
		return true
	})
	if firstErr != nil {
		return acc, firstErr
	}
	return acc, nil
}

// Trim removes every symbol that does not appear with a nonzero exponent
// in any term of p, returning a new series over the reduced symbol set.
func Trim[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	used := make([]bool, p.syms.Len())
	p.ForEach(func(k K, c C) bool {
		k.TrimIdentify(used, p.syms)
		return true
	})
	removed := make([]int, 0)
	keepNames := make([]string, 0, p.syms.Len())
	for i, u := range used {
		if u {
			keepNames = append(keepNames, p.syms.Name(i))
		} else {
			removed = append(removed, i)
		}
	}
	if len(removed) == 0 {
		return p.Clone(), nil
	}
	trimmedSyms := symbol.New(keepNames...)
	result := New[K, C, Tag](trimmedSyms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		nk := k.Trim(removed, p.syms)
		if err := AddTerm(result, nk, c, AddOptions{
			Sign: signAdd, CheckZero: false, CheckCompat: false, CheckSize: true, AssumeUnique: true,
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

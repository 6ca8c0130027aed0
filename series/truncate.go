// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"sort"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// DegreeHaver is the optional capability a coefficient type provides when
// it carries its own degree (e.g. a nested series coefficient). Degrees
// combine additively across coefficient and key (§4.5).
type DegreeHaver interface {
	Degree() (int64, error)
}

func cfDegree[C any](c C) (int64, error) {
	if dh, ok := any(c).(DegreeHaver); ok {
		return dh.Degree()
	}
	return 0, nil
}

// TotalDegree returns the maximum total degree among p's terms, or 0 for
// an empty series.
func TotalDegree[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag]) (int64, error) {
	var max int64
	first := true
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		deg, err := termDegree(k, c, p.syms)
		if err != nil {
			firstErr = err
			return false
		}
		if first || deg > max {
			max = deg
			first = false
		}
		return true
	})
	if firstErr != nil {
		return 0, firstErr
	}
	return max, nil
}

// TruncateDegree removes every term of p whose total degree exceeds d,
// returning a new series.
func TruncateDegree[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], d int64) (*Series[K, C, Tag], error) {
	result := New[K, C, Tag](p.syms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		deg, err := termDegree(k, c, p.syms)
		if err != nil {
			firstErr = err
			return false
		}
		if deg > d {
			return true
		}
		if err := AddTerm(result, k, c, AddOptions{Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true}); err != nil {
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

// TruncatePDegree removes every term of p whose partial degree, restricted
// to the symbols named in proj, exceeds d.
func TruncatePDegree[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], d int64, proj []string) (*Series[K, C, Tag], error) {
	idx, err := projectionIndices(p.syms, proj)
	if err != nil {
		return nil, err
	}
	result := New[K, C, Tag](p.syms)
	result.tag = p.tag
	var firstErr error
	p.ForEach(func(k K, c C) bool {
		deg, err := k.PDegree(idx, p.syms)
		if err != nil {
			firstErr = err
			return false
		}
		if deg > d {
			return true
		}
		if err := AddTerm(result, k, c, AddOptions{Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true}); err != nil {
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

func projectionIndices(s *symbol.Set, names []string) ([]int, error) {
	idx := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := s.Index(n)
		if !ok {
			return nil, &MissingSymbolError{Op: "TruncatePDegree", Symbol: n}
		}
		idx = append(idx, i)
	}
	return idx, nil
}

func termDegree[K key.Key[K], C coeff.Ring[C]](k K, c C, s *symbol.Set) (int64, error) {
	kd, err := k.Degree(s)
	if err != nil {
		return 0, err
	}
	cd, err := cfDegree(c)
	if err != nil {
		return 0, err
	}
	total := kd + cd
	if (cd > 0 && total < kd) || (cd < 0 && total > kd) {
		return 0, key.ErrDegreeOverflow
	}
	return total, nil
}

// truncatedProduct is the shared engine behind TruncatedMul and
// TruncatedMulPDegree: compute degree vectors, sort by degree, and skip
// any pair whose combined degree would exceed d.
func truncatedProduct[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag], d int64, degreeOf func(K, C) (int64, error)) (*Series[K, C, Tag], error) {
	aTerms := a.Terms()
	bTerms := b.Terms()

	type scored struct {
		term Term[K, C]
		deg  int64
	}
	scoreAll := func(terms []Term[K, C]) ([]scored, error) {
		out := make([]scored, len(terms))
		var firstErr error
		_ = parallelFor(len(terms), DefaultConfig().Workers, func(i int) error {
			deg, err := degreeOf(terms[i].Key, terms[i].Cf)
			if err != nil {
				firstErr = err
				return err
			}
			out[i] = scored{term: terms[i], deg: deg}
			return nil
		})
		return out, firstErr
	}

	sa, err := scoreAll(aTerms)
	if err != nil {
		return nil, err
	}
	sb, err := scoreAll(bTerms)
	if err != nil {
		return nil, err
	}
	sort.Slice(sa, func(i, j int) bool { return sa[i].deg < sa[j].deg })
	sort.Slice(sb, func(i, j int) bool { return sb[i].deg < sb[j].deg })

	result := New[K, C, Tag](a.syms)
	var firstErr error
	for _, x := range sa {
		for _, y := range sb {
			if x.deg+y.deg > d {
				break // sb is ascending: every later y is >= this one
			}
			k := x.term.Key.Mul(y.term.Key, a.syms)
			c := x.term.Cf.Mul(y.term.Cf)
			if err := AddTerm(result, k, c, AddOptions{
				Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
			}); err != nil {
				firstErr = err
				break
			}
		}
		if firstErr != nil {
			break
		}
	}
	if firstErr != nil {
		result.ClearTerms()
		return nil, firstErr
	}
	return result, nil
}

// TruncatedMul returns a*b restricted to terms of total degree at most d,
// without ever materializing the untruncated product (§4.5).
func TruncatedMul[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag], d int64) (*Series[K, C, Tag], error) {
	ea, eb, err := reconcile(a, b)
	if err != nil {
		return nil, err
	}
	return truncatedProduct(ea, eb, d, func(k K, c C) (int64, error) {
		return termDegree(k, c, ea.syms)
	})
}

// TruncatedMulPDegree returns a*b restricted to terms whose partial degree
// over proj is at most d.
func TruncatedMulPDegree[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag], d int64, proj []string) (*Series[K, C, Tag], error) {
	ea, eb, err := reconcile(a, b)
	if err != nil {
		return nil, err
	}
	idx, err := projectionIndices(ea.syms, proj)
	if err != nil {
		return nil, err
	}
	return truncatedProduct(ea, eb, d, func(k K, _ C) (int64, error) {
		return k.PDegree(idx, ea.syms)
	})
}

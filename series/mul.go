// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// rangeOverflowThreshold is the monomial-count cutoff above which the
// pre-multiplication range check runs in parallel (spec.md §4.5: 6000).
const rangeOverflowThreshold = 6000

// checkRangeOverflow reports whether multiplying every term of ta against
// every term of tb, both expressed over s, would stay within the packed
// key encoding's range. It is the mandatory pre-pass Mul runs before doing
// any arithmetic.
func checkRangeOverflow[K key.Key[K], C coeff.Ring[C]](ta, tb []Term[K, C], s *symbol.Set, cfg Config) bool {
	n := len(ta) * len(tb)
	if n == 0 || n < rangeOverflowThreshold || !worthParallelizing(n, cfg) {
		return checkRangeOverflowRange(ta, tb, s)
	}

	workers := cfg.Workers
	if workers > len(ta) {
		workers = len(ta)
	}
	results := make([]bool, workers)
	chunk := (len(ta) + workers - 1) / workers
	_ = parallelFor(workers, workers, func(w int) error {
		results[w] = true
		start := w * chunk
		if start >= len(ta) {
			return nil
		}
		end := start + chunk
		if end > len(ta) {
			end = len(ta)
		}
		results[w] = checkRangeOverflowRange(ta[start:end], tb, s)
		return nil
	})
	for _, ok := range results {
		if !ok {
			return false
		}
	}
	return true
}

func checkRangeOverflowRange[K key.Key[K], C coeff.Ring[C]](ta, tb []Term[K, C], s *symbol.Set) bool {
	for _, x := range ta {
		for _, y := range tb {
			if !x.Key.CheckRangeOverflow(y.Key, s) {
				return false
			}
		}
	}
	return true
}

// Mul returns a*b (§4.5), merging symbol sets first exactly as the
// same-rank "+"/"-" dispatch does.
func Mul[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) (*Series[K, C, Tag], error) {
	ea, eb, err := reconcile(a, b)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if !checkRangeOverflow(ea.Terms(), eb.Terms(), ea.syms, cfg) {
		return nil, &OverflowError{Op: "Mul: range-overflow check failed", Segment: -1, Limit: 0}
	}
	if worthParallelizing(ea.Size()*eb.Size(), cfg) {
		return mulParallel(ea, eb, cfg)
	}
	return mulSerial(ea, eb)
}

func mulSerial[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) (result *Series[K, C, Tag], err error) {
	result = New[K, C, Tag](a.syms)
	defer func() {
		if r := recover(); r != nil {
			result.ClearTerms()
			panic(r)
		}
	}()
	var firstErr error
	a.ForEach(func(ka K, ca C) bool {
		b.ForEach(func(kb K, cb C) bool {
			k := ka.Mul(kb, a.syms)
			c := ca.Mul(cb)
			if err := AddTerm(result, k, c, AddOptions{
				Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: false,
			}); err != nil {
				firstErr = err
				return false
			}
			return true
		})
		return firstErr == nil
	})
	if firstErr != nil {
		result.ClearTerms()
		return nil, firstErr
	}
	return result, nil
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/internal/spinlock"
	"github.com/polyalg/series/key"
)

// segmentsFor picks a log2 segment count for a multiplication result,
// targeting at least 4x more segments than workers to keep spin-lock
// contention low (§5: "typical values giving at least 4x more sub-tables
// than worker threads"), without outrunning the estimated product size.
func segmentsFor(estimatedTerms, workers int) uint {
	target := workers * 4
	l := uint(0)
	for (1 << l) < target {
		l++
		if l >= LMax {
			break
		}
	}
	// Do not over-segment a small result: cap segments so the average
	// segment holds a handful of terms at minimum.
	for l > 0 && estimatedTerms/(1<<l) < 2 {
		l--
	}
	return l
}

// mulParallel is the segmented parallel multiplication kernel (§4.5): the
// outer loop over a's terms is chunked across workers; each worker routes
// every product term to the destination segment its key hashes to,
// acquiring that segment's spin-lock for the duration of one accumulation.
// Because the destination segment is a deterministic function of the
// product key's hash, two workers racing on the same segment always
// resolve correctly under its lock; workers never contend on segments they
// don't both touch simultaneously beyond what the hash distribution
// implies.
func mulParallel[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag], cfg Config) (result *Series[K, C, Tag], err error) {
	estimated := a.Size() * b.Size()
	l := segmentsFor(estimated, cfg.Workers)

	result = New[K, C, Tag](a.syms)
	if err := result.SetNSegments(l); err != nil {
		return nil, err
	}
	result.Reserve(estimated)

	locks := spinlock.NewBank(1 << l)

	aTerms := a.Terms()
	var firstErr error
	var panicked any

	runErr := parallelFor(len(aTerms), cfg.Workers, func(i int) error {
		defer func() {
			if r := recover(); r != nil {
				panicked = r
			}
		}()
		ka, ca := aTerms[i].Key, aTerms[i].Cf
		var innerErr error
		b.ForEach(func(kb K, cb C) bool {
			k := ka.Mul(kb, a.syms)
			c := ca.Mul(cb)
			seg := result.segmentIndex(k)
			locks.Lock(seg)
			innerErr = addTermLocked(result, seg, k, c)
			locks.Unlock(seg)
			return innerErr == nil
		})
		return innerErr
	})

	if panicked != nil {
		result.ClearParallel(cfg)
		panic(panicked)
	}
	if runErr != nil {
		firstErr = runErr
	}
	if firstErr != nil {
		result.ClearParallel(cfg)
		return nil, firstErr
	}
	return result, nil
}

// addTermLocked is AddTerm's accumulation step, called with the
// destination segment's lock already held. It assumes CheckSize=on,
// CheckZero=on, CheckCompat=off, Sign=+, AssumeUnique=off — the same
// flags the serial kernel uses — but operates directly on a single,
// already-resolved segment to avoid re-hashing the key under the lock.
func addTermLocked[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], seg int, k K, c C) (err error) {
	m := p.segs[seg]
	if len(m) >= p.segmentLimit() {
		if _, found := m[k]; !found {
			return &OverflowError{Op: "Mul", Segment: seg, Limit: p.segmentLimit()}
		}
	}
	defer func() {
		if r := recover(); r != nil {
			clear(m)
			panic(r)
		}
	}()
	if existing, found := m[k]; found {
		merged := existing.Clone()
		merged.AddAssign(c)
		if k.IsZero(p.syms) || merged.IsZero() {
			delete(m, k)
		} else {
			m[k] = merged
		}
		return nil
	}
	v := c.Clone()
	if k.IsZero(p.syms) || v.IsZero() {
		return nil
	}
	m[k] = v
	return nil
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"sync"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/internal/hash"
	"github.com/polyalg/series/key"
)

// PowerCache memoizes Pow results for one (K, C, Tag) instantiation. The
// zero value is not ready for use; call NewPowerCache. A PowerCache is
// safe for concurrent use by multiple goroutines: a single mutex guards
// both lookup and insertion, matching spec.md's "no finer-grained locking
// is required, since cache population is rare relative to lookup".
//
// Unlike the original design's implicit process-wide cache, PowerCache is
// an explicit, constructible, clearable service: callers that want a
// shared cache construct one and pass it to every Pow call; callers that
// want isolation construct one per call site or per test.
type PowerCache[K key.Key[K], C coeff.Ring[C], Tag any] struct {
	mu      sync.Mutex
	entries map[uint64][]powCacheEntry[K, C, Tag]
}

type powCacheEntry[K key.Key[K], C coeff.Ring[C], Tag any] struct {
	base   *Series[K, C, Tag]
	n      int64
	result *Series[K, C, Tag]
}

// NewPowerCache returns an empty power cache.
func NewPowerCache[K key.Key[K], C coeff.Ring[C], Tag any]() *PowerCache[K, C, Tag] {
	return &PowerCache[K, C, Tag]{entries: make(map[uint64][]powCacheEntry[K, C, Tag])}
}

// Clear empties the cache, releasing every memoized result.
func (pc *PowerCache[K, C, Tag]) Clear() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries = make(map[uint64][]powCacheEntry[K, C, Tag])
}

func (pc *PowerCache[K, C, Tag]) lookup(b *Series[K, C, Tag], n int64, h uint64) (*Series[K, C, Tag], bool) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	for _, e := range pc.entries[h] {
		if e.n == n && seriesCacheEqual(e.base, b) {
			return e.result, true
		}
	}
	return nil, false
}

func (pc *PowerCache[K, C, Tag]) store(b *Series[K, C, Tag], n int64, h uint64, result *Series[K, C, Tag]) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	pc.entries[h] = append(pc.entries[h], powCacheEntry[K, C, Tag]{base: b, n: n, result: result})
}

// seriesCacheEqual is the cache's identity predicate: same symbol set (by
// identity, not merged — a cache hit never reconciles) and the same terms.
// It is not the user-visible Equal: two series over unrelated-but-equal
// symbol sets will not hit the same cache entry.
func seriesCacheEqual[K key.Key[K], C coeff.Ring[C], Tag any](a, b *Series[K, C, Tag]) bool {
	if a == b {
		return true
	}
	if a.syms != b.syms || a.Size() != b.Size() {
		return false
	}
	match := true
	a.ForEach(func(k K, c C) bool {
		other, ok := b.Find(k)
		if !ok || !coeffEqual(c, other) {
			match = false
			return false
		}
		return true
	})
	return match
}

func termHash[K key.Key[K], C coeff.Ring[C]](k K, c C) uint64 {
	var ch uint64
	if h, ok := any(c).(coeff.Hasher); ok {
		ch = h.Hash()
	}
	return hash.Combine(k.Hash(), ch)
}

func seriesHash[K key.Key[K], C coeff.Ring[C], Tag any](b *Series[K, C, Tag], n int64) uint64 {
	hashes := make([]uint64, 0, b.Size())
	b.ForEach(func(k K, c C) bool {
		hashes = append(hashes, termHash(k, c))
		return true
	})
	return hash.Combine(hash.CombineUnordered(hashes...), uint64(n))
}

// intPow computes c^n for n >= 0 by repeated squaring, using only the
// Ring contract (One, Clone, Mul).
func intPow[C coeff.Ring[C]](c C, n int64) C {
	var zero C
	result := zero.One()
	base := c.Clone()
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// PowUncached returns b^n without consulting or populating any cache.
// n must be non-negative (§4.6).
func PowUncached[K key.Key[K], C coeff.Ring[C], Tag any](b *Series[K, C, Tag], n int64) (*Series[K, C, Tag], error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}
	if n == 0 {
		result := New[K, C, Tag](b.syms)
		var zeroC C
		var zeroK K
		if err := AddTerm(result, zeroK.Unit(b.syms), zeroC.One(), AddOptions{
			Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true,
		}); err != nil {
			return nil, err
		}
		return result, nil
	}
	if b.IsSingleCf() {
		result := New[K, C, Tag](b.syms)
		var firstErr error
		b.ForEach(func(k K, c C) bool {
			pk := k.Pow(n, b.syms)
			pc := intPow(c, n)
			if err := AddTerm(result, pk, pc, AddOptions{
				Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true,
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

	result := b.Clone()
	acc := New[K, C, Tag](b.syms)
	var zeroC C
	var zeroK K
	if err := AddTerm(acc, zeroK.Unit(b.syms), zeroC.One(), AddOptions{
		Sign: signAdd, CheckZero: true, CheckCompat: false, CheckSize: true, AssumeUnique: true,
	}); err != nil {
		return nil, err
	}
	base := result
	for n > 0 {
		if n&1 == 1 {
			next, err := Mul(acc, base)
			if err != nil {
				return nil, err
			}
			acc = next
		}
		n >>= 1
		if n == 0 {
			break
		}
		next, err := Mul(base, base)
		if err != nil {
			return nil, err
		}
		base = next
	}
	return acc, nil
}

// Pow returns b^n, consulting cache first and populating it with the
// result on a miss. The cache key mixes the tag-insensitive hash of b's
// terms (order-independent, so it does not depend on segment layout) with
// n (§4.6, redesigned per spec.md's own note as an explicit injectable
// service rather than implicit global state).
func Pow[K key.Key[K], C coeff.Ring[C], Tag any](cache *PowerCache[K, C, Tag], b *Series[K, C, Tag], n int64) (*Series[K, C, Tag], error) {
	if n < 0 {
		return nil, ErrNegativeExponent
	}
	if cache == nil {
		return PowUncached(b, n)
	}
	h := seriesHash(b, n)
	if cached, ok := cache.lookup(b, n, h); ok {
		return cached.Clone(), nil
	}
	result, err := PowUncached(b, n)
	if err != nil {
		return nil, err
	}
	cache.store(b, n, h, result)
	return result.Clone(), nil
}

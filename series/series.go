// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"runtime"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/internal/hash"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// LMax is the largest legal log2 segment count: size_type is uint64, so
// digits(size_type) - 1 = 63.
const LMax = 63

// Term is a single (key, coefficient) pair.
type Term[K key.Key[K], C coeff.Ring[C]] struct {
	Key K
	Cf  C
}

// Config controls the resource knobs of the parallel algorithms (§5).
// The zero value is not valid; use DefaultConfig.
type Config struct {
	// Workers is the fork-join worker count for parallel loops.
	Workers int
	// ParallelThreshold is the minimum number of (key, coefficient)
	// pairs a loop must process before it is worth parallelizing.
	ParallelThreshold int
}

// DefaultConfig returns a Config sized to the host's GOMAXPROCS, with a
// parallel threshold matching the range-overflow check's own "large
// range" cutoff (spec.md §4.5: 6000 monomials).
func DefaultConfig() Config {
	return Config{
		Workers:           runtime.GOMAXPROCS(0),
		ParallelThreshold: 6000,
	}
}

// Series is a segmented-hashed sparse sum of terms over a symbol set.
type Series[K key.Key[K], C coeff.Ring[C], Tag any] struct {
	syms  *symbol.Set
	segs  []map[K]C
	l     uint
	tag   Tag
	limit int // 0 means maxSegmentSize >> L; overridable for tests via SetSegmentSizeLimit
}

// New returns an empty series over s, with a single segment (L=0).
func New[K key.Key[K], C coeff.Ring[C], Tag any](s *symbol.Set) *Series[K, C, Tag] {
	if s == nil {
		s = symbol.New()
	}
	return &Series[K, C, Tag]{
		syms: s,
		segs: []map[K]C{make(map[K]C)},
		l:    0,
	}
}

// Size returns the total number of terms across every segment.
func (p *Series[K, C, Tag]) Size() int {
	n := 0
	for _, seg := range p.segs {
		n += len(seg)
	}
	return n
}

// Empty reports whether p has no terms.
func (p *Series[K, C, Tag]) Empty() bool { return p.Size() == 0 }

// SymbolSet returns the symbol set p is defined over.
func (p *Series[K, C, Tag]) SymbolSet() *symbol.Set { return p.syms }

// NSegmentsLog2 returns L, the log2 of the number of segments.
func (p *Series[K, C, Tag]) NSegmentsLog2() uint { return p.l }

// Tag returns a pointer to the mutable tag value.
func (p *Series[K, C, Tag]) Tag() *Tag { return &p.tag }

// SetSymbolSet replaces p's symbol set. Only legal on an empty series.
func (p *Series[K, C, Tag]) SetSymbolSet(s *symbol.Set) error {
	if !p.Empty() {
		return &StateError{Op: "SetSymbolSet", Reason: "series is not empty"}
	}
	p.syms = s
	return nil
}

// SetNSegments sets L, the log2 segment count. Only legal on an empty
// series; fails with SegmentRangeError if l > LMax.
func (p *Series[K, C, Tag]) SetNSegments(l uint) error {
	if !p.Empty() {
		return &StateError{Op: "SetNSegments", Reason: "series is not empty"}
	}
	if l > LMax {
		return &SegmentRangeError{Requested: int(l), Max: LMax}
	}
	p.l = l
	p.segs = make([]map[K]C, 1<<l)
	for i := range p.segs {
		p.segs[i] = make(map[K]C)
	}
	return nil
}

// Reserve hints each segment to accommodate ceil(n / 2^L) more terms. Go's
// built-in map has no capacity-reservation API for an existing map, so
// Reserve is a no-op once segments already exist with content; it only
// helps right after SetNSegments on a still-empty series, where it
// reallocates each segment's backing map with a size hint.
func (p *Series[K, C, Tag]) Reserve(n int) {
	if !p.Empty() {
		return
	}
	per := n >> p.l
	if n&(1<<p.l-1) != 0 {
		per++
	}
	if per < 1 {
		per = 1
	}
	for i := range p.segs {
		p.segs[i] = make(map[K]C, per)
	}
}

// ClearTerms erases all terms, keeping the symbol set, L, and tag.
func (p *Series[K, C, Tag]) ClearTerms() {
	for _, seg := range p.segs {
		clear(seg)
	}
}

// Clear erases all terms, resets the symbol set to empty and the tag to
// its zero value, and keeps L.
func (p *Series[K, C, Tag]) Clear() {
	p.ClearTerms()
	p.syms = symbol.New()
	var zero Tag
	p.tag = zero
}

// ClearParallel is like Clear, but deallocates multi-segment tables'
// segments concurrently (§5: "Destruction of a multi-segment series
// deallocates its sub-tables in parallel").
func (p *Series[K, C, Tag]) ClearParallel(cfg Config) {
	if len(p.segs) <= 1 {
		p.Clear()
		return
	}
	parallelFor(len(p.segs), cfg.Workers, func(i int) error {
		p.segs[i] = nil
		return nil
	})
	p.syms = symbol.New()
	var zero Tag
	p.tag = zero
	for i := range p.segs {
		p.segs[i] = make(map[K]C)
	}
}

// Find returns the coefficient stored under k and whether it was found.
func (p *Series[K, C, Tag]) Find(k K) (C, bool) {
	i := p.segmentIndex(k)
	c, ok := p.segs[i][k]
	return c, ok
}

// IsSingleCf reports whether p is empty, or has exactly one term whose key
// is the unit monomial.
func (p *Series[K, C, Tag]) IsSingleCf() bool {
	if p.Empty() {
		return true
	}
	if p.Size() != 1 {
		return false
	}
	for _, seg := range p.segs {
		for k := range seg {
			return k.IsOne(p.syms)
		}
	}
	return false
}

// ForEach calls f for every term, stopping early if f returns false. The
// order is unspecified and not stable: two calls on the same unchanged
// series can visit the terms in different orders.
func (p *Series[K, C, Tag]) ForEach(f func(k K, c C) bool) {
	for _, seg := range p.segs {
		for k, c := range seg {
			if !f(k, c) {
				return
			}
		}
	}
}

// Terms returns all terms as a slice, primarily for tests and callers that
// need a stable snapshot rather than a live callback.
func (p *Series[K, C, Tag]) Terms() []Term[K, C] {
	out := make([]Term[K, C], 0, p.Size())
	p.ForEach(func(k K, c C) bool {
		out = append(out, Term[K, C]{Key: k, Cf: c})
		return true
	})
	return out
}

// ByteSize reports an approximate memory footprint, summing each
// coefficient's ByteSize when C implements coeff.ByteSizer.
func (p *Series[K, C, Tag]) ByteSize() int {
	n := 0
	p.ForEach(func(k K, c C) bool {
		if bs, ok := any(c).(coeff.ByteSizer); ok {
			n += bs.ByteSize()
		}
		return true
	})
	return n
}

func (p *Series[K, C, Tag]) segmentIndex(k K) int {
	if p.l == 0 {
		return 0
	}
	return hash.Segment(k.Hash(), p.l)
}

// clone returns a deep, independent copy of p.
func (p *Series[K, C, Tag]) clone() *Series[K, C, Tag] {
	out := &Series[K, C, Tag]{
		syms: p.syms,
		segs: make([]map[K]C, len(p.segs)),
		l:    p.l,
		tag:  p.tag,
	}
	for i, seg := range p.segs {
		cp := make(map[K]C, len(seg))
		for k, c := range seg {
			cp[k] = c.Clone()
		}
		out.segs[i] = cp
	}
	return out
}

// Clone returns a deep, independent copy of p.
func (p *Series[K, C, Tag]) Clone() *Series[K, C, Tag] { return p.clone() }

// SetSegmentSizeLimit overrides the per-segment size limit CheckSize
// enforces. A limit of 0 restores the default (effectively unbounded).
func (p *Series[K, C, Tag]) SetSegmentSizeLimit(n int) { p.limit = n }

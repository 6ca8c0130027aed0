// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
)

//go:generate stringer -type=sign

// sign selects whether AddTerm accumulates or subtracts a coefficient.
type sign int

const (
	signAdd sign = iota
	signSub
)

// AddOptions are the five compile-time flags of spec.md §4.2, carried as
// runtime struct fields since Go generics do not let a function branch on
// a bool type parameter at compile time the way a C++ template does. The
// branches below are still straight-line and allocation-free when a flag
// is off.
type AddOptions struct {
	// Sign: add or subtract the incoming coefficient.
	Sign sign
	// CheckZero: remove the term if its coefficient (or key) becomes
	// zero after the operation.
	CheckZero bool
	// CheckCompat: fail with IncompatibleKeyError if the key is not
	// compatible with the series' symbol set.
	CheckCompat bool
	// CheckSize: fail with OverflowError if the destination segment is
	// already at its size limit.
	CheckSize bool
	// AssumeUnique: the caller guarantees this is the first insertion
	// for this key; skip the accumulate-into-existing path.
	AssumeUnique bool
}

// maxSegmentSize bounds the combined size of all 2^L segments so that it
// cannot overflow uint64 (spec.md §3); the default per-segment limit is
// maxSegmentSize >> L. In practice this is far larger than any in-memory
// map can reach; CheckSize exists primarily so callers with an externally
// imposed budget can set a smaller limit via SetSegmentSizeLimit.
const maxSegmentSize = 1<<63 - 1

// AddTerm is the single mutation gate: every higher-level operation in
// this package composes it. k must already be expressed over p's symbol
// set; CheckCompat controls whether that precondition is verified.
func AddTerm[K key.Key[K], C coeff.Ring[C], Tag any](p *Series[K, C, Tag], k K, cf C, opt AddOptions) (err error) {
	i := p.segmentIndex(k)
	seg := p.segs[i]

	if opt.CheckSize && len(seg) >= p.segmentLimit() {
		return &OverflowError{Op: "AddTerm", Segment: i, Limit: p.segmentLimit()}
	}
	if opt.CheckCompat && !k.IsCompatible(p.syms) {
		return &IncompatibleKeyError{Op: "AddTerm", Symbols: p.syms}
	}

	defer func() {
		if r := recover(); r != nil {
			clear(seg)
			panic(r)
		}
	}()

	if opt.AssumeUnique {
		v := cf.Clone()
		if opt.Sign == signSub {
			v.Neg()
		}
		seg[k] = v
	} else if existing, found := seg[k]; !found {
		v := cf.Clone()
		if opt.Sign == signSub {
			v.Neg()
		}
		seg[k] = v
	} else {
		merged := existing.Clone()
		if opt.Sign == signAdd {
			merged.AddAssign(cf)
		} else {
			merged.SubAssign(cf)
		}
		seg[k] = merged
	}

	if opt.CheckZero {
		v := seg[k]
		if k.IsZero(p.syms) || v.IsZero() {
			delete(seg, k)
		}
	}
	return nil
}

func (p *Series[K, C, Tag]) segmentLimit() int {
	if p.limit > 0 {
		return p.limit
	}
	return maxSegmentSize >> p.l
}

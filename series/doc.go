// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package series implements a segmented-hashed sparse-series container —
// a bank of hash tables selected by the low bits of a mixed key hash —
// together with the arithmetic, substitution, calculus, and formatting
// algorithms built on top of it.
//
// A Series[K, C, Tag] is a sum of terms (key, coefficient) over an ordered
// symbol.Set. K must implement key.Key[K]; C must implement coeff.Ring[C].
// Tag is an arbitrary user value carried alongside the terms (e.g. a
// truncation limit for a power-series variant).
//
// Every mutating operation funnels through AddTerm, the single insertion
// gate described in the package's design notes; callers building new
// algorithms on top of Series should do the same rather than reaching into
// the segment maps directly.
package series

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package key defines the monomial capability contract that
// github.com/polyalg/series requires of a series's key type. The contract
// takes the ambient symbol.Set as an explicit parameter to every operation;
// a Key value carries no symbol information of its own.
package key

import "github.com/polyalg/series/symbol"

// Key is the capability set a series monomial type must provide. K is
// expected to be a value type (not a pointer): keys are copied freely by
// the segmented table and the multiplication kernel, and two keys with the
// same logical content must compare Equal regardless of which instance
// produced them.
//
// Unit must be callable on the zero value of K: it is the type-level
// constructor a generic algorithm uses to fabricate a key from nothing,
// the same convention coeff.Ring uses for FromInt/One.
//
// K must be comparable: the segmented table stores terms in map[K]C,
// keyed by Go's built-in == rather than by the Equal method above, so an
// implementation's underlying representation must itself be free of
// slices, maps, or functions (see key/packed.Monomial's fixed-size word
// array for the pattern).
type Key[K comparable] interface {
	// Unit returns the monomial representing 1 over s.
	Unit(s *symbol.Set) K
	// Hash returns a deterministic, run-stable hash of the receiver. Two
	// keys that compare Equal must hash equal.
	Hash() uint64
	// Equal reports whether the receiver and other denote the same
	// monomial.
	Equal(other K) bool
	// IsZero reports whether the receiver denotes the zero monomial
	// (meaningless for a pure exponent vector but part of the contract
	// for key types that can encode a literal zero, e.g. after a
	// degenerate trim).
	IsZero(s *symbol.Set) bool
	// IsOne reports whether the receiver is the unit monomial over s.
	IsOne(s *symbol.Set) bool
	// IsCompatible reports whether the receiver is well-formed over s
	// (e.g. has exactly s.Len() exponent components).
	IsCompatible(s *symbol.Set) bool
	// MergeSymbols rebuilds the receiver over the union set described by
	// m (as produced by symbol.Merge against the set the receiver is
	// currently expressed over), inserting a zero exponent for every
	// newly introduced symbol. MergeSymbols must preserve zeroness,
	// compatibility, and the uniqueness of distinct input keys.
	MergeSymbols(m symbol.InsertionMap, s *symbol.Set) K
	// Degree returns the total degree of the receiver over s.
	Degree(s *symbol.Set) (int64, error)
	// PDegree returns the partial degree of the receiver, restricted to
	// the symbol indices in idx, over s.
	PDegree(idx []int, s *symbol.Set) (int64, error)
	// Mul returns the product of the receiver and other over s.
	Mul(other K, s *symbol.Set) K
	// Pow returns the receiver raised to the n-th power over s.
	Pow(n int64, s *symbol.Set) K
	// Diff differentiates the receiver with respect to symbol idx,
	// returning the integer factor produced and the resulting key.
	Diff(idx int, s *symbol.Set) (int64, K)
	// Integrate integrates the receiver with respect to symbol idx,
	// returning the integer factor produced (the new exponent) and the
	// resulting key, or an error if idx already appears with exponent
	// -1 (the antiderivative would be logarithmic, not polynomial).
	Integrate(idx int, s *symbol.Set) (int64, K, error)
	// Exponent returns the exponent of symbol idx in the receiver.
	Exponent(idx int, s *symbol.Set) int64
	// WithExponent returns a copy of the receiver with the exponent of
	// symbol idx set to e.
	WithExponent(idx int, e int64, s *symbol.Set) K
	// TrimIdentify marks, in used, the symbol indices that appear in the
	// receiver with a nonzero exponent.
	TrimIdentify(used []bool, s *symbol.Set)
	// Trim removes the exponent components at the indices in removedIdx
	// (ascending order), returning the resulting key over the trimmed
	// symbol set.
	Trim(removedIdx []int, s *symbol.Set) K
	// WritePlain writes the receiver's plain-text representation to the
	// stream, or nothing if the receiver is the unit monomial.
	WritePlain(w Writer, s *symbol.Set) error
	// WriteTeX writes the receiver's LaTeX representation to the
	// stream, producing a \frac{}{} whenever an exponent is negative.
	WriteTeX(w Writer, s *symbol.Set) error
	// CheckRangeOverflow reports whether multiplying the receiver by
	// other over s would stay within the packed encoding's range.
	CheckRangeOverflow(other K, s *symbol.Set) bool
}

// Writer is the minimal stream-insertion contract WritePlain/WriteTeX need;
// satisfied by *bytes.Buffer, *strings.Builder, and so on.
type Writer interface {
	WriteString(string) (int, error)
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeff

// Ring is the capability set a series coefficient type must provide. C is
// expected to be a pointer-like reference type (as *Rational, *Integer and
// *Float below are) so that AddAssign/SubAssign/Neg can mutate the
// receiver's value in place, matching the add_term primitive's in-place
// accumulation contract.
//
// FromInt and One must be callable on a nil receiver of the concrete type:
// they construct and return a fresh value rather than reading the receiver.
// This is the standard way to give a generic algorithm a type-level
// constructor in Go, in the absence of a C := new(C)-style every-type
// default constructor for arbitrary struct-wrapped types.
type Ring[C any] interface {
	// AddAssign sets the receiver to receiver + rhs.
	AddAssign(rhs C)
	// SubAssign sets the receiver to receiver - rhs.
	SubAssign(rhs C)
	// Neg negates the receiver in place.
	Neg()
	// IsZero reports whether the receiver is the additive identity.
	IsZero() bool
	// Clone returns an independent copy of the receiver.
	Clone() C
	// FromInt returns a new C with value n. Callable on a nil receiver.
	FromInt(n int64) C
	// One returns a new C with value 1. Callable on a nil receiver.
	One() C
	// Mul returns a fresh value equal to receiver * rhs. Unlike
	// AddAssign/SubAssign/Neg, Mul does not mutate the receiver: the
	// multiplication kernel fans the same term out to many products and
	// must not let one product corrupt another.
	Mul(rhs C) C
}

// Hasher is an optional capability: coefficient types that can be used as
// power-cache keys (directly, or nested inside a series tag) implement it.
type Hasher interface {
	Hash() uint64
}

// ByteSizer is an optional capability used by Series.ByteSize to report a
// coefficient's approximate memory footprint.
type ByteSizer interface {
	ByteSize() int
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeff

import (
	"fmt"
	"math/big"

	"github.com/polyalg/series/internal/hash"
)

// Rational is an exact rational coefficient backed by math/big.Rat.
type Rational struct {
	V *big.Rat
}

// NewRational returns a Rational with value n/d.
func NewRational(n, d int64) *Rational {
	return &Rational{V: big.NewRat(n, d)}
}

func (r *Rational) val() *big.Rat {
	if r == nil || r.V == nil {
		return new(big.Rat)
	}
	return r.V
}

func (r *Rational) AddAssign(rhs *Rational) {
	r.V = new(big.Rat).Add(r.val(), rhs.val())
}

func (r *Rational) SubAssign(rhs *Rational) {
	r.V = new(big.Rat).Sub(r.val(), rhs.val())
}

func (r *Rational) Neg() {
	r.V = new(big.Rat).Neg(r.val())
}

func (r *Rational) IsZero() bool {
	return r.val().Sign() == 0
}

func (r *Rational) Clone() *Rational {
	return &Rational{V: new(big.Rat).Set(r.val())}
}

// FromInt returns a new Rational with value n. Safe to call on a nil
// receiver.
func (*Rational) FromInt(n int64) *Rational {
	return &Rational{V: big.NewRat(n, 1)}
}

// One returns a new Rational with value 1. Safe to call on a nil receiver.
func (*Rational) One() *Rational {
	return &Rational{V: big.NewRat(1, 1)}
}

// Hash mixes the numerator and denominator of the reduced fraction.
func (r *Rational) Hash() uint64 {
	v := r.val()
	return hash.Combine(bigIntHash(v.Num()), bigIntHash(v.Denom()))
}

func bigIntHash(x *big.Int) uint64 {
	h := uint64(x.Sign()) + 1
	for _, w := range x.Bits() {
		h = hash.Combine(h, uint64(w))
	}
	return h
}

// ByteSize reports an estimate of the memory used by the big.Rat's limbs.
func (r *Rational) ByteSize() int {
	v := r.val()
	return (len(v.Num().Bits()) + len(v.Denom().Bits())) * 8
}

func (r *Rational) String() string { return r.val().RatString() }

// Mul multiplies two Rationals into a fresh result, used by the
// multiplication kernel's term-product step.
func (r *Rational) Mul(other *Rational) *Rational {
	return &Rational{V: new(big.Rat).Mul(r.val(), other.val())}
}

// Quo divides the receiver by other, returning a fresh result. Used by the
// division-by-scalar operator (§4.4).
func (r *Rational) Quo(other *Rational) (*Rational, error) {
	if other.IsZero() {
		return nil, fmt.Errorf("coeff: division by zero rational")
	}
	return &Rational{V: new(big.Rat).Quo(r.val(), other.val())}, nil
}

var (
	_ Ring[*Rational] = (*Rational)(nil)
	_ Hasher          = (*Rational)(nil)
	_ ByteSizer       = (*Rational)(nil)
)

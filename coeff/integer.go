// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeff

import (
	"fmt"
	"math/big"
)

// Integer is an exact integer coefficient backed by math/big.Int.
type Integer struct {
	V *big.Int
}

// NewInteger returns an Integer with value n.
func NewInteger(n int64) *Integer {
	return &Integer{V: big.NewInt(n)}
}

func (z *Integer) val() *big.Int {
	if z == nil || z.V == nil {
		return new(big.Int)
	}
	return z.V
}

func (z *Integer) AddAssign(rhs *Integer) {
	z.V = new(big.Int).Add(z.val(), rhs.val())
}

func (z *Integer) SubAssign(rhs *Integer) {
	z.V = new(big.Int).Sub(z.val(), rhs.val())
}

func (z *Integer) Neg() {
	z.V = new(big.Int).Neg(z.val())
}

func (z *Integer) IsZero() bool {
	return z.val().Sign() == 0
}

func (z *Integer) Clone() *Integer {
	return &Integer{V: new(big.Int).Set(z.val())}
}

// FromInt returns a new Integer with value n. Safe to call on a nil
// receiver.
func (*Integer) FromInt(n int64) *Integer {
	return &Integer{V: big.NewInt(n)}
}

// One returns a new Integer with value 1. Safe to call on a nil receiver.
func (*Integer) One() *Integer {
	return &Integer{V: big.NewInt(1)}
}

// Hash mixes the big.Int's limbs with its sign.
func (z *Integer) Hash() uint64 {
	return bigIntHash(z.val())
}

// ByteSize reports an estimate of the memory used by the big.Int's limbs.
func (z *Integer) ByteSize() int {
	return len(z.val().Bits()) * 8
}

func (z *Integer) String() string { return z.val().String() }

// Mul multiplies two Integers into a fresh result.
func (z *Integer) Mul(other *Integer) *Integer {
	return &Integer{V: new(big.Int).Mul(z.val(), other.val())}
}

// Quo divides the receiver by other, returning a fresh result. Integer has
// no fractional representation, so a nonzero remainder is reported as an
// error rather than truncated.
func (z *Integer) Quo(other *Integer) (*Integer, error) {
	if other.IsZero() {
		return nil, fmt.Errorf("coeff: division by zero integer")
	}
	q, r := new(big.Int).QuoRem(z.val(), other.val(), new(big.Int))
	if r.Sign() != 0 {
		return nil, fmt.Errorf("coeff: %s does not divide %s exactly", other, z)
	}
	return &Integer{V: q}, nil
}

var (
	_ Ring[*Integer] = (*Integer)(nil)
	_ Hasher         = (*Integer)(nil)
	_ ByteSizer      = (*Integer)(nil)
)

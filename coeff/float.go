// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeff

import (
	"fmt"
	"math/big"
)

// DefaultPrecision is the mantissa precision, in bits, used by FromInt and
// One when fabricating a Float from nothing.
const DefaultPrecision uint = 113 // matches IEEE 754 quad precision

// Float is an arbitrary-precision floating-point coefficient backed by
// math/big.Float. Unlike Rational and Integer, Float does not implement
// Hasher: binary floating-point equality is not a reliable basis for a
// cache key, matching the spec's "hash optional" coefficient contract.
type Float struct {
	V *big.Float
}

// NewFloat returns a Float with value x at the given precision.
func NewFloat(x float64, prec uint) *Float {
	return &Float{V: new(big.Float).SetPrec(prec).SetFloat64(x)}
}

func (f *Float) val() *big.Float {
	if f == nil || f.V == nil {
		return new(big.Float).SetPrec(DefaultPrecision)
	}
	return f.V
}

func (f *Float) AddAssign(rhs *Float) {
	f.V = new(big.Float).SetPrec(f.prec(rhs)).Add(f.val(), rhs.val())
}

func (f *Float) SubAssign(rhs *Float) {
	f.V = new(big.Float).SetPrec(f.prec(rhs)).Sub(f.val(), rhs.val())
}

func (f *Float) prec(rhs *Float) uint {
	p := f.val().Prec()
	if q := rhs.val().Prec(); q > p {
		p = q
	}
	if p == 0 {
		p = DefaultPrecision
	}
	return p
}

func (f *Float) Neg() {
	f.V = new(big.Float).SetPrec(f.val().Prec()).Neg(f.val())
}

func (f *Float) IsZero() bool {
	return f.val().Sign() == 0
}

func (f *Float) Clone() *Float {
	return &Float{V: new(big.Float).Copy(f.val())}
}

// FromInt returns a new Float with value n at DefaultPrecision. Safe to
// call on a nil receiver.
func (*Float) FromInt(n int64) *Float {
	return &Float{V: new(big.Float).SetPrec(DefaultPrecision).SetInt64(n)}
}

// One returns a new Float with value 1 at DefaultPrecision. Safe to call on
// a nil receiver.
func (*Float) One() *Float {
	return &Float{V: new(big.Float).SetPrec(DefaultPrecision).SetInt64(1)}
}

// ByteSize reports an estimate of the memory used by the big.Float mantissa.
func (f *Float) ByteSize() int {
	return int(f.val().Prec()+7) / 8
}

func (f *Float) String() string { return f.val().Text('g', 10) }

// Mul multiplies two Floats into a fresh result.
func (f *Float) Mul(other *Float) *Float {
	return &Float{V: new(big.Float).SetPrec(f.prec(other)).Mul(f.val(), other.val())}
}

// Quo divides the receiver by other, returning a fresh result at the wider
// of the two operands' precision. The result's accuracy can be inspected
// with IsExact.
func (f *Float) Quo(other *Float) (*Float, error) {
	if other.IsZero() {
		return nil, fmt.Errorf("coeff: division by zero float")
	}
	return &Float{V: new(big.Float).SetPrec(f.prec(other)).Quo(f.val(), other.val())}, nil
}

// IsExact reports whether the stored value carries no rounding error from
// the operation that produced it, used by Integrate's exactness
// requirement (§4.7): integrating a key divides its coefficient by an
// integer factor, and that division must land on an exact value.
func (f *Float) IsExact() bool {
	return f.val().Acc() == big.Exact
}

var (
	_ Ring[*Float] = (*Float)(nil)
	_ ByteSizer    = (*Float)(nil)
)

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coeff

import (
	"encoding/binary"
	"io"
	"math/big"
)

func writeBigInt(w io.Writer, v *big.Int) error {
	b := v.Bytes()
	if err := binary.Write(w, binary.LittleEndian, int8(v.Sign())); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, uint64(len(b))); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readBigInt(r io.Reader) (*big.Int, error) {
	var sign int8
	if err := binary.Read(r, binary.LittleEndian, &sign); err != nil {
		return nil, err
	}
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	v := new(big.Int).SetBytes(buf)
	if sign < 0 {
		v.Neg(v)
	}
	return v, nil
}

// RationalCodec implements series.Codec[*Rational] as a (numerator,
// denominator) big.Int pair.
type RationalCodec struct{}

func (RationalCodec) Encode(w io.Writer, v *Rational) error {
	r := v.val()
	if err := writeBigInt(w, r.Num()); err != nil {
		return err
	}
	return writeBigInt(w, r.Denom())
}

func (RationalCodec) Decode(r io.Reader) (*Rational, error) {
	num, err := readBigInt(r)
	if err != nil {
		return nil, err
	}
	den, err := readBigInt(r)
	if err != nil {
		return nil, err
	}
	return &Rational{V: new(big.Rat).SetFrac(num, den)}, nil
}

// IntegerCodec implements series.Codec[*Integer] as a signed big.Int.
type IntegerCodec struct{}

func (IntegerCodec) Encode(w io.Writer, v *Integer) error {
	return writeBigInt(w, v.val())
}

func (IntegerCodec) Decode(r io.Reader) (*Integer, error) {
	v, err := readBigInt(r)
	if err != nil {
		return nil, err
	}
	return &Integer{V: v}, nil
}

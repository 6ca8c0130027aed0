// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package packed

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Codec implements series.Codec[Monomial]: a self-describing little-endian
// encoding of the packed word slice, independent of any symbol set.
type Codec struct{}

// Encode writes the word count followed by each word, little-endian.
func (Codec) Encode(w io.Writer, m Monomial) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(m.n)); err != nil {
		return err
	}
	for i := 0; i < m.n; i++ {
		if err := binary.Write(w, binary.LittleEndian, m.words[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads a Monomial previously written by Encode.
func (Codec) Decode(r io.Reader) (Monomial, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return Monomial{}, err
	}
	if n > maxWords {
		return Monomial{}, fmt.Errorf("packed: encoded word count %d exceeds capacity %d", n, maxWords)
	}
	m := Monomial{n: int(n)}
	for i := 0; i < m.n; i++ {
		if err := binary.Read(r, binary.LittleEndian, &m.words[i]); err != nil {
			return Monomial{}, err
		}
	}
	return m, nil
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"encoding/binary"
	"io"

	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// persistedVersion is the first field of every encoded series, letting a
// future format change be detected before any other field is interpreted.
const persistedVersion uint64 = 1

// Codec is the byte-encoding contract WriteTo/ReadFrom delegate to for the
// key and coefficient types, and for the series' tag. Keeping the wire
// format of K, C, and Tag external to this package is deliberate: framing
// (the segment/term layout below) is this package's concern, encoding a
// concrete K/C/Tag value is the caller's.
type Codec[T any] interface {
	Encode(w io.Writer, v T) error
	Decode(r io.Reader) (T, error)
}

// Encoder pairs the three codecs a (K, C, Tag) instantiation needs to
// persist a Series. The layout it writes is modeled on mat.Dense's
// documented MarshalBinary byte format:
//
//	Version uint64 (8 bytes)
//	L       uint8  (1 byte)  log2 segment count
//	Tag     <TagCodec-defined>
//	Symbols uint64 count, then count × (uint64 length, name bytes)
//	2^L segment blocks, each:
//	  N uint64  term count
//	  N × (key bytes via KeyCodec, coefficient bytes via CfCodec)
//
// All integers are little-endian.
type Encoder[K key.Key[K], C coeff.Ring[C], Tag any] struct {
	KeyCodec Codec[K]
	CfCodec  Codec[C]
	TagCodec Codec[Tag]
}

// WriteTo encodes p to w, in the byte layout documented on Encoder.
func (e Encoder[K, C, Tag]) WriteTo(p *Series[K, C, Tag], w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, persistedVersion); err != nil {
		return cw.n, err
	}
	if err := binary.Write(cw, binary.LittleEndian, uint8(p.l)); err != nil {
		return cw.n, err
	}
	if err := e.TagCodec.Encode(cw, p.tag); err != nil {
		return cw.n, err
	}
	if err := writeSymbols(cw, p.syms); err != nil {
		return cw.n, err
	}
	for _, seg := range p.segs {
		if err := binary.Write(cw, binary.LittleEndian, uint64(len(seg))); err != nil {
			return cw.n, err
		}
		for k, c := range seg {
			if err := e.KeyCodec.Encode(cw, k); err != nil {
				return cw.n, err
			}
			if err := e.CfCodec.Encode(cw, c); err != nil {
				return cw.n, err
			}
		}
	}
	return cw.n, nil
}

// ReadFrom decodes a Series from r, reconstructing it with every AddTerm
// safety check disabled and AssumeUnique set (§6: a well-formed encoding
// is trusted, matching the load-time contract of a binary snapshot).
func (e Encoder[K, C, Tag]) ReadFrom(r io.Reader) (*Series[K, C, Tag], error) {
	var version uint64
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, err
	}
	if version != persistedVersion {
		return nil, &StateError{Op: "ReadFrom", Reason: "unsupported persisted version"}
	}
	var l8 uint8
	if err := binary.Read(r, binary.LittleEndian, &l8); err != nil {
		return nil, err
	}
	tag, err := e.TagCodec.Decode(r)
	if err != nil {
		return nil, err
	}
	syms, err := readSymbols(r)
	if err != nil {
		return nil, err
	}
	p := New[K, C, Tag](syms)
	p.tag = tag
	if err := p.SetNSegments(uint(l8)); err != nil {
		return nil, err
	}
	for range p.segs {
		var n uint64
		if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
			return nil, err
		}
		for j := uint64(0); j < n; j++ {
			k, err := e.KeyCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			c, err := e.CfCodec.Decode(r)
			if err != nil {
				return nil, err
			}
			if err := AddTerm(p, k, c, AddOptions{
				Sign: signAdd, CheckZero: false, CheckCompat: false, CheckSize: false, AssumeUnique: true,
			}); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

func writeSymbols(w io.Writer, s *symbol.Set) error {
	names := s.Names()
	if err := binary.Write(w, binary.LittleEndian, uint64(len(names))); err != nil {
		return err
	}
	for _, n := range names {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(n))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, n); err != nil {
			return err
		}
	}
	return nil
}

func readSymbols(r io.Reader) (*symbol.Set, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, err
	}
	names := make([]string, count)
	for i := range names {
		var ln uint64
		if err := binary.Read(r, binary.LittleEndian, &ln); err != nil {
			return nil, err
		}
		buf := make([]byte, ln)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		names[i] = string(buf)
	}
	return symbol.New(names...), nil
}

// countingWriter tracks total bytes written so WriteTo can report an
// accurate count even through binary.Write's multiple small writes.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// NopTagCodec is a Codec[struct{}] for series instantiated with no tag
// data: Encode and Decode both do nothing.
type NopTagCodec struct{}

func (NopTagCodec) Encode(io.Writer, struct{}) error   { return nil }
func (NopTagCodec) Decode(io.Reader) (struct{}, error) { return struct{}{}, nil }

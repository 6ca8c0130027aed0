// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package packed

import (
	"fmt"
	"math"
	"strings"

	"github.com/polyalg/series/internal/hash"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// componentsPerWord is 64 bits / 16 bits-per-exponent.
const componentsPerWord = 4

// maxWords bounds the packed representation to maxWords*componentsPerWord
// symbols. Monomial stores its words in a fixed-size array rather than a
// slice so that it remains a comparable value usable directly as a Go map
// key (the segmented table indexes each sub-table by map[K]C); a slice
// field would make the struct incomparable regardless of any interface
// constraint on K. 32 symbols comfortably covers any polynomial ring a
// caller is likely to name explicitly.
const maxWords = 8

const maxPackedSymbols = maxWords * componentsPerWord

// exponent range representable by a signed 16-bit component.
const (
	minExponent = math.MinInt16
	maxExponent = math.MaxInt16
)

// Monomial is a packed exponent vector: value type, safe to copy, equal iff
// their decoded exponent vectors are equal over a symbol set of the same
// length. n records how many of words' fixed slots are in use; the rest
// are always zero, which keeps struct equality (as Go's map implementation
// uses it) consistent with Equal.
type Monomial struct {
	words [maxWords]uint64
	n     int
}

func numWords(count int) int {
	if count <= 0 {
		return 0
	}
	if count > maxPackedSymbols {
		panic(fmt.Sprintf("packed: %d symbols exceeds the %d-symbol packed capacity", count, maxPackedSymbols))
	}
	return (count + componentsPerWord - 1) / componentsPerWord
}

// FromExponents builds a Monomial directly from a full exponent vector,
// one entry per symbol in s, in s's order. Every |e| must fit in a signed
// 16-bit component; callers that cannot guarantee this should consult
// CheckRangeOverflow first.
func FromExponents(exps []int64, s *symbol.Set) Monomial {
	m := Monomial{n: numWords(s.Len())}
	for i, e := range exps {
		m.setExponent(i, e)
	}
	return m
}

func (m *Monomial) setExponent(idx int, e int64) {
	wi, shift := idx/componentsPerWord, uint(idx%componentsPerWord)*16
	m.words[wi] = (m.words[wi] &^ (0xFFFF << shift)) | (uint64(uint16(int16(e))) << shift)
}

// Unit returns the monomial with every exponent 0 over s. Callable on the
// zero value of Monomial.
func (Monomial) Unit(s *symbol.Set) Monomial {
	return Monomial{n: numWords(s.Len())}
}

func (m Monomial) Exponent(idx int, s *symbol.Set) int64 {
	wi, shift := idx/componentsPerWord, uint(idx%componentsPerWord)*16
	if wi >= m.n {
		return 0
	}
	return int64(int16(uint16(m.words[wi] >> shift)))
}

func (m Monomial) WithExponent(idx int, e int64, s *symbol.Set) Monomial {
	cp := m
	if cp.n == 0 {
		cp.n = numWords(s.Len())
	}
	cp.setExponent(idx, e)
	return cp
}

func (m Monomial) Hash() uint64 {
	var h uint64
	for i := 0; i < m.n; i++ {
		h = hash.Combine(h, m.words[i])
	}
	return h
}

func (m Monomial) Equal(other Monomial) bool {
	return m == other
}

// IsZero always reports false: an exponent vector has no degenerate "zero
// monomial" encoding distinct from the unit monomial.
func (m Monomial) IsZero(s *symbol.Set) bool { return false }

func (m Monomial) IsOne(s *symbol.Set) bool {
	for i := 0; i < m.n; i++ {
		if m.words[i] != 0 {
			return false
		}
	}
	return true
}

func (m Monomial) IsCompatible(s *symbol.Set) bool {
	return m.n == numWords(s.Len())
}

func (m Monomial) MergeSymbols(im symbol.InsertionMap, s *symbol.Set) Monomial {
	n := s.Len()
	exps := make([]int64, 0, n+4)
	for pos := 0; pos <= n; pos++ {
		for range im.At(pos) {
			exps = append(exps, 0)
		}
		if pos < n {
			exps = append(exps, m.Exponent(pos, s))
		}
	}
	mm := Monomial{n: numWords(len(exps))}
	for i, e := range exps {
		mm.setExponent(i, e)
	}
	return mm
}

func (m Monomial) Degree(s *symbol.Set) (int64, error) {
	var total int64
	n := s.Len()
	for i := 0; i < n; i++ {
		e := m.Exponent(i, s)
		next := total + e
		if (e > 0 && next < total) || (e < 0 && next > total) {
			return 0, key.ErrDegreeOverflow
		}
		total = next
	}
	return total, nil
}

func (m Monomial) PDegree(idx []int, s *symbol.Set) (int64, error) {
	var total int64
	for _, i := range idx {
		e := m.Exponent(i, s)
		next := total + e
		if (e > 0 && next < total) || (e < 0 && next > total) {
			return 0, key.ErrDegreeOverflow
		}
		total = next
	}
	return total, nil
}

func (m Monomial) Mul(other Monomial, s *symbol.Set) Monomial {
	n := s.Len()
	exps := make([]int64, n)
	for i := 0; i < n; i++ {
		exps[i] = m.Exponent(i, s) + other.Exponent(i, s)
	}
	return FromExponents(exps, s)
}

func (m Monomial) Pow(k int64, s *symbol.Set) Monomial {
	n := s.Len()
	exps := make([]int64, n)
	for i := 0; i < n; i++ {
		exps[i] = m.Exponent(i, s) * k
	}
	return FromExponents(exps, s)
}

func (m Monomial) Diff(idx int, s *symbol.Set) (int64, Monomial) {
	e := m.Exponent(idx, s)
	if e == 0 {
		return 0, m
	}
	return e, m.WithExponent(idx, e-1, s)
}

func (m Monomial) Integrate(idx int, s *symbol.Set) (int64, Monomial, error) {
	e := m.Exponent(idx, s)
	if e == -1 {
		return 0, Monomial{}, key.ErrNotIntegrable
	}
	return e + 1, m.WithExponent(idx, e+1, s), nil
}

func (m Monomial) TrimIdentify(used []bool, s *symbol.Set) {
	n := s.Len()
	for i := 0; i < n; i++ {
		if m.Exponent(i, s) != 0 {
			used[i] = true
		}
	}
}

func (m Monomial) Trim(removedIdx []int, s *symbol.Set) Monomial {
	removed := make(map[int]bool, len(removedIdx))
	for _, i := range removedIdx {
		removed[i] = true
	}
	n := s.Len()
	exps := make([]int64, 0, n-len(removedIdx))
	for i := 0; i < n; i++ {
		if removed[i] {
			continue
		}
		exps = append(exps, m.Exponent(i, s))
	}
	mm := Monomial{n: numWords(len(exps))}
	for i, e := range exps {
		mm.setExponent(i, e)
	}
	return mm
}

// CheckRangeOverflow reports whether m*other stays within the signed
// 16-bit component range over every symbol.
func (m Monomial) CheckRangeOverflow(other Monomial, s *symbol.Set) bool {
	n := s.Len()
	for i := 0; i < n; i++ {
		sum := m.Exponent(i, s) + other.Exponent(i, s)
		if sum < minExponent || sum > maxExponent {
			return false
		}
	}
	return true
}

func (m Monomial) WritePlain(w key.Writer, s *symbol.Set) error {
	n := s.Len()
	var wrote bool
	for i := 0; i < n; i++ {
		e := m.Exponent(i, s)
		if e == 0 {
			continue
		}
		if wrote {
			if _, err := w.WriteString("*"); err != nil {
				return err
			}
		}
		term := s.Name(i)
		if e != 1 {
			term = fmt.Sprintf("%s**%d", term, e)
		}
		if _, err := w.WriteString(term); err != nil {
			return err
		}
		wrote = true
	}
	return nil
}

func (m Monomial) WriteTeX(w key.Writer, s *symbol.Set) error {
	n := s.Len()
	var num, den []string
	for i := 0; i < n; i++ {
		e := m.Exponent(i, s)
		switch {
		case e == 0:
		case e > 0:
			num = append(num, texFactor(s.Name(i), e))
		default:
			den = append(den, texFactor(s.Name(i), -e))
		}
	}
	var out string
	switch {
	case len(den) == 0:
		out = strings.Join(num, "")
	case len(num) == 0:
		out = fmt.Sprintf(`\frac{1}{%s}`, strings.Join(den, ""))
	default:
		out = fmt.Sprintf(`\frac{%s}{%s}`, strings.Join(num, ""), strings.Join(den, ""))
	}
	_, err := w.WriteString(out)
	return err
}

func texFactor(name string, e int64) string {
	if e == 1 {
		return name
	}
	return fmt.Sprintf("{%s}^{%d}", name, e)
}

var _ key.Key[Monomial] = Monomial{}

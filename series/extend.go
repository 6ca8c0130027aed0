// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"github.com/polyalg/series/coeff"
	"github.com/polyalg/series/key"
	"github.com/polyalg/series/symbol"
)

// Extend rebuilds src over the enlarged symbol set u, using the insertion
// map m produced by symbol.Merge(src.SymbolSet(), ...). It preserves src's
// segmentation layout (§4.3).
//
// If consumeSrc is true, src is treated as consumed by exclusive ownership
// and is emptied (via Clear) when Extend returns, by any path — including
// on error — matching the "scope-guard" discipline spec.md's design notes
// require when a source series' coefficients may have been moved out.
func Extend[K key.Key[K], C coeff.Ring[C], Tag any](src *Series[K, C, Tag], u *symbol.Set, m symbol.InsertionMap, consumeSrc bool) (*Series[K, C, Tag], error) {
	if consumeSrc {
		defer src.Clear()
	}

	dst := New[K, C, Tag](u)
	dst.tag = src.tag
	if err := dst.SetNSegments(src.l); err != nil {
		return nil, err
	}
	dst.Reserve(src.Size())

	var firstErr error
	src.ForEach(func(k K, c C) bool {
		nk := k.MergeSymbols(m, src.syms)
		if err := AddTerm(dst, nk, c, AddOptions{
			Sign:         signAdd,
			CheckZero:    false,
			CheckCompat:  false,
			CheckSize:    true,
			AssumeUnique: true,
		}); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return dst, nil
}

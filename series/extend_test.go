// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"testing"

	"github.com/polyalg/series/symbol"
)

func TestExtendAddsSymbolKeepsTerms(t *testing.T) {
	x := variable("x")
	u, mX, _ := symbol.Merge(x.SymbolSet(), symbol.New("y"))
	if mX.Empty() {
		t.Fatal("expected y to need insertion into x's symbol set")
	}
	ex, err := Extend(x, u, mX, false)
	if err != nil {
		t.Fatal(err)
	}
	if ex.SymbolSet().Len() != 2 {
		t.Fatalf("extended symbol set = %v, want 2 symbols", ex.SymbolSet().Names())
	}
	if ex.Size() != x.Size() {
		t.Fatalf("Extend changed term count: %d vs %d", ex.Size(), x.Size())
	}
	// original series is untouched since consumeSrc was false.
	if x.SymbolSet().Len() != 1 {
		t.Fatalf("Extend(consumeSrc=false) mutated the source's symbol set")
	}
}

func TestExtendConsumesSource(t *testing.T) {
	x := variable("x")
	u, mX, _ := symbol.Merge(x.SymbolSet(), symbol.New("y"))
	if _, err := Extend(x, u, mX, true); err != nil {
		t.Fatal(err)
	}
	if !x.Empty() {
		t.Errorf("Extend(consumeSrc=true) should have cleared the source, got %v", x.Terms())
	}
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import (
	"errors"
	"fmt"

	"github.com/polyalg/series/symbol"
)

// Sentinel markers usable with errors.Is; every concrete error type below
// except StateError Unwraps to one of these.
var (
	ErrIncompatibleKey  = errors.New("series: incompatible key")
	ErrOverflow         = errors.New("series: overflow")
	ErrSegmentRange     = errors.New("series: segment count out of range")
	ErrMissingSymbol    = errors.New("series: missing symbol")
	ErrInexactCoeff     = errors.New("series: inexact coefficient")
	ErrShapeMismatch    = errors.New("series: operand shapes cannot be reconciled")
	ErrDivisionByZero   = errors.New("series: division by zero")
	ErrNegativeExponent = errors.New("series: exponent must be non-negative")
)

// IncompatibleKeyError reports that a key is not compatible with the
// ambient symbol set on insertion.
type IncompatibleKeyError struct {
	Op      string
	Symbols *symbol.Set
}

func (e *IncompatibleKeyError) Error() string {
	return fmt.Sprintf("series: %s: key is not compatible with symbol set %v", e.Op, e.Symbols.Names())
}

func (e *IncompatibleKeyError) Unwrap() error { return ErrIncompatibleKey }

// OverflowError reports that a segment's per-table size limit was
// exceeded.
type OverflowError struct {
	Op      string
	Segment int
	Limit   int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("series: %s: segment %d exceeds its %d-term limit", e.Op, e.Segment, e.Limit)
}

func (e *OverflowError) Unwrap() error { return ErrOverflow }

// SegmentRangeError reports that SetNSegments was called with too large a
// log2 segment count.
type SegmentRangeError struct {
	Requested, Max int
}

func (e *SegmentRangeError) Error() string {
	return fmt.Sprintf("series: SetNSegments: requested log2 segment count %d exceeds max %d", e.Requested, e.Max)
}

func (e *SegmentRangeError) Unwrap() error { return ErrSegmentRange }

// StateError reports a method called on a series in the wrong lifecycle
// state (e.g. SetSymbolSet on a non-empty series).
type StateError struct {
	Op     string
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("series: %s: %s", e.Op, e.Reason)
}

// MissingSymbolError reports that an evaluation map did not cover every
// symbol in the ambient set, or that an operation was given a symbol name
// that is not in the ambient set.
type MissingSymbolError struct {
	Op     string
	Symbol string
}

func (e *MissingSymbolError) Error() string {
	return fmt.Sprintf("series: %s: missing value for symbol %q", e.Op, e.Symbol)
}

func (e *MissingSymbolError) Unwrap() error { return ErrMissingSymbol }

// InexactCoefficientError reports that integration produced a
// non-exact coefficient.
type InexactCoefficientError struct {
	Op string
}

func (e *InexactCoefficientError) Error() string {
	return fmt.Sprintf("series: %s: integration produced a non-exact coefficient", e.Op)
}

func (e *InexactCoefficientError) Unwrap() error { return ErrInexactCoeff }

// ShapeMismatchError reports a binary operator called on operand shapes
// the dispatch layer cannot reconcile.
type ShapeMismatchError struct {
	Op string
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("series: %s: operand shapes cannot be reconciled", e.Op)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

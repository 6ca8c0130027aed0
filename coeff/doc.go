// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coeff defines the coefficient capability contract that
// github.com/polyalg/series requires of a series's value type, plus three
// reference implementations: exact rational (*big.Rat), exact integer
// (*big.Int), and arbitrary-precision float (*big.Float).
package coeff

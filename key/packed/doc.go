// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package packed provides Monomial, a reference implementation of
// key.Key[Monomial] that Kronecker-packs signed 16-bit exponents into a
// fixed-size array of uint64 words, four components per word. It exists to
// give the generic series algorithms a concrete, fully tested key type to
// run against, the same way mat.Dense gives gonum's abstract mat.Matrix
// interface a concrete implementation to exercise.
package packed

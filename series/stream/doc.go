// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stream renders a series as a human-readable plain-text or LaTeX
// expression: terms composed with "+"/"-", the unit key omitted when a
// coefficient stands alone, multi-term coefficients bracketed, and long
// series cut to their first 50 terms in sorted order and ended with an
// ellipsis; every term is rendered and sorted before the cut.
package stream

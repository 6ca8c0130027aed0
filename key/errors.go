// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package key

import "errors"

// ErrDegreeOverflow is returned by Degree/PDegree when accumulating the
// exponents would overflow the degree accumulator's range.
var ErrDegreeOverflow = errors.New("key: degree accumulation overflow")

// ErrNotIntegrable is returned by Integrate when the antiderivative with
// respect to the requested symbol is not a polynomial (exponent -1).
var ErrNotIntegrable = errors.New("key: cannot integrate exponent -1")

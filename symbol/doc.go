// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol implements ordered sets of distinct variable names and the
// set-merge algebra used to reconcile two series defined over different
// symbol sets before a binary operation.
package symbol

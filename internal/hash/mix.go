// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hash implements the fixed-seed hash finalizer shared by every
// series sub-table lookup and by the process-wide power cache. The mixer is
// deliberately unsalted: hashes must be reproducible across runs so that a
// power-cache key computed in one process matches a key computed in
// another, and so that a sub-table index for a given key is the same on
// every run of the program. Do not expose these hashes on a network
// surface; they are not collision-resistant against an adversarial input.
package hash

// seed is the fixed finalizer constant. It is not process-random.
const seed uint64 = 0x9e3779b97f4a7c15

// Mix applies a SplitMix64-style finalizer to x. Mix is a bijection on
// uint64 and passes the standard avalanche test suites used to validate
// 64-bit integer hash finalizers; it is the same family of mixer used by
// xoroshiro128+'s output scrambler.
func Mix(x uint64) uint64 {
	x += seed
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

// Combine folds h2 into h1, order-sensitively. Used to build a single hash
// from a key's structured exponent data.
func Combine(h1, h2 uint64) uint64 {
	return Mix(h1 ^ Mix(h2))
}

// CombineUnordered folds a set of hashes into one value that does not
// depend on the order the values are supplied in: it mixes their sum. The
// power cache applies it to the per-term (key and coefficient) hashes of a
// series; the series' tag is not part of that hash.
func CombineUnordered(hashes ...uint64) uint64 {
	var sum uint64
	for _, h := range hashes {
		sum += h
	}
	return Mix(sum)
}

// Segment returns the sub-table index for hash h under a table with 2^l
// segments.
func Segment(h uint64, l uint) int {
	if l == 0 {
		return 0
	}
	mask := uint64(1)<<l - 1
	return int(Mix(h) & mask)
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package series

import "golang.org/x/sync/errgroup"

// parallelFor partitions [0, n) into at most workers contiguous chunks and
// runs f over each index concurrently via an errgroup.Group, joining
// before returning. It is the fork-join primitive every parallel loop in
// this package (multiply, range-overflow check, degree-vector precompute,
// segment deallocation) is built from.
func parallelFor(n, workers int, f func(i int) error) error {
	if n == 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := f(i); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// worthParallelizing reports whether a loop over n items clears the
// configured parallel threshold.
func worthParallelizing(n int, cfg Config) bool {
	return n >= cfg.ParallelThreshold && cfg.Workers > 1
}

// Copyright ©2024 The polyalg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spinlock provides a lightweight mutual-exclusion primitive sized
// for the very short critical sections of the parallel multiplication
// kernel: acquiring a sub-table lock, accumulating one product term, and
// releasing it. Holding times are short enough that a futex-backed
// sync.Mutex's syscall overhead would dominate; a CAS spin with a bounded
// Gosched backoff does not.
package spinlock

import (
	"runtime"
	"sync/atomic"
)

// spinLimit is the number of bare CAS attempts before yielding the
// goroutine's time slice. Chosen to be a few times the cost of a cache-line
// bounce on contemporary hardware; it is not load-bearing for correctness.
const spinLimit = 64

// L is a spinlock. The zero value is unlocked and ready to use.
type L struct {
	state atomic.Bool
}

// Lock blocks until the lock is acquired.
func (l *L) Lock() {
	spins := 0
	for !l.state.CompareAndSwap(false, true) {
		spins++
		if spins > spinLimit {
			runtime.Gosched()
			spins = 0
		}
	}
}

// TryLock attempts to acquire the lock without blocking.
func (l *L) TryLock() bool {
	return l.state.CompareAndSwap(false, true)
}

// Unlock releases the lock. Unlock on an already-unlocked L is a no-op,
// matching the minimal contract the multiplication kernel needs (each
// worker pairs its own Lock with its own Unlock).
func (l *L) Unlock() {
	l.state.Store(false)
}

// Bank is a fixed-size array of independently lockable spinlocks, one per
// sub-table of a segmented series.
type Bank struct {
	locks []L
}

// NewBank returns a Bank with n locks, all unlocked.
func NewBank(n int) *Bank {
	return &Bank{locks: make([]L, n)}
}

// Lock acquires the i-th lock in the bank.
func (b *Bank) Lock(i int) { b.locks[i].Lock() }

// Unlock releases the i-th lock in the bank.
func (b *Bank) Unlock(i int) { b.locks[i].Unlock() }

// Len returns the number of locks in the bank.
func (b *Bank) Len() int { return len(b.locks) }

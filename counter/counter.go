// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - lock free counters shared between goroutines
//
// used for live rpc connections and ledger execution totals
package counter

import (
	"sync/atomic"
)

// Counter - a 64 bit unsigned integer updated atomically
type Counter uint64

// Increment - add 1, returns new value
func (ic *Counter) Increment() uint64 {
	return atomic.AddUint64((*uint64)(ic), 1)
}

// Decrement - subtract 1, returns new value
//
// wraps on underflow
func (ic *Counter) Decrement() uint64 {
	return atomic.AddUint64((*uint64)(ic), ^uint64(0))
}

// Uint64 - current value
func (ic *Counter) Uint64() uint64 {
	return atomic.LoadUint64((*uint64)(ic))
}

// IsZero - check if zero
func (ic *Counter) IsZero() bool {
	return 0 == ic.Uint64()
}

// Gauge - current and peak values of a counter that goes up and down
type Gauge struct {
	current Counter
	peak    Counter
}

// Enter - increment and record a new peak, returns new value
func (g *Gauge) Enter() uint64 {
	n := g.current.Increment()
	for {
		p := g.peak.Uint64()
		if n <= p || atomic.CompareAndSwapUint64((*uint64)(&g.peak), p, n) {
			return n
		}
	}
}

// Leave - decrement, returns new value
func (g *Gauge) Leave() uint64 {
	return g.current.Decrement()
}

// Current - value now
func (g *Gauge) Current() uint64 {
	return g.current.Uint64()
}

// Peak - highest value seen
func (g *Gauge) Peak() uint64 {
	return g.peak.Uint64()
}

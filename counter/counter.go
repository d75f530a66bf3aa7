// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package counter - event counters safe for concurrent use
package counter

import (
	"sync/atomic"
)

// Counter - a monotonic event count, the zero value is ready to use
type Counter struct {
	value atomic.Uint64
}

// Increment - add one, returns the new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Uint64 - current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - nothing counted yet
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/baliola/medblock/counter"
)

// DefaultSize - queue length when none is given
const DefaultSize = 1000

// Message - one queued item and the component that sent it
type Message struct {
	From string
	Item interface{}
}

// Bus - the queue
type Bus struct {
	queue   chan Message
	dropped counter.Counter
}

// New - create a bus holding up to size pending messages
func New(size int) *Bus {
	if size < 1 {
		size = DefaultSize
	}
	return &Bus{
		queue: make(chan Message, size),
	}
}

// Send - queue an item, false if it was dropped
func (b *Bus) Send(from string, item interface{}) bool {
	select {
	case b.queue <- Message{From: from, Item: item}:
		return true
	default:
		b.dropped.Increment()
		return false
	}
}

// Chan - channel to read from
func (b *Bus) Chan() <-chan Message {
	return b.queue
}

// Dropped - number of messages lost to a full queue
func (b *Bus) Dropped() uint64 {
	return b.dropped.Uint64()
}

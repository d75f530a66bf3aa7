// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/background"
)

type ticker struct {
	count    int64
	finished bool
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.count, step)
		time.Sleep(time.Millisecond)
	}

	state.finished = true
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	assert.True(t, proc1.finished, "first process finished")
	assert.True(t, proc2.finished, "second process finished")
	assert.True(t, atomic.LoadInt64(&proc1.count) > 0, "first process ran")
	assert.Equal(t, int64(0), atomic.LoadInt64(&proc2.count)%3, "argument passed")

	// second stop is harmless
	p.Stop()
}

func TestBackgroundEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}

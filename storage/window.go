// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"math"
	"math/bits"
)

// Splitter - locate the parts of a key that a windowed scan uses
//
// Threshold is the leading part held fixed for the scan, Suffix
// identifies a logical item; consecutive keys with the same suffix
// are one item.
type Splitter interface {
	Threshold(key []byte) []byte
	Suffix(key []byte) []byte
}

// scan from start while the threshold of start holds, calling f with
// the zero based item index and the first element of each item, until
// f returns false
func (p *PoolHandle) scanItems(start []byte, s Splitter, f func(index int, e Element) bool) {
	target := s.Threshold(start)
	if nil == target {
		return
	}
	target = append([]byte(nil), target...)

	index := -1
	var last []byte

	err := p.NewFetchCursor().Seek(start).Walk(func(key []byte, value []byte) bool {

		// ordered store: once the threshold changes it never comes back
		if !bytes.Equal(s.Threshold(key), target) {
			return false
		}

		suffix := s.Suffix(key)
		if nil != last && bytes.Equal(suffix, last) {
			return true
		}
		last = suffix
		index += 1

		return f(index, Element{Key: key, Value: value})
	})
	if nil != err {
		p.database.log.Errorf("scan from: %x  error: %s", start, err)
	}
}

// Page - the first element of each distinct item in a window
//
// items [page×limit, page×limit+limit) are returned. nil is returned
// when no item falls in the window, including limit zero and pages
// beyond the end, so the result is never an empty non-nil slice.
func (p *PoolHandle) Page(start []byte, s Splitter, page int, limit int) []Element {
	if page < 0 || limit <= 0 {
		return nil
	}

	// a window that cannot be indexed is past any end
	high, from := bits.Mul64(uint64(page), uint64(limit))
	if 0 != high || from > math.MaxInt64-uint64(limit) {
		return nil
	}
	to := from + uint64(limit)

	var items []Element
	p.scanItems(start, s, func(index int, e Element) bool {
		i := uint64(index)
		if i < from {
			return true
		}
		if i >= to {
			return false
		}
		items = append(items, e)
		return true
	})
	return items
}

// All - the first element of every distinct item, nil if none
func (p *PoolHandle) All(start []byte, s Splitter) []Element {
	var items []Element
	p.scanItems(start, s, func(_ int, e Element) bool {
		items = append(items, e)
		return true
	})
	return items
}

// Count - the number of distinct items
func (p *PoolHandle) Count(start []byte, s Splitter) int {
	n := 0
	p.scanItems(start, s, func(index int, _ Element) bool {
		n = index + 1
		return true
	})
	return n
}

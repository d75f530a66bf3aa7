// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/baliola/medblock/fault"
)

// FetchCursor - cursor structure
type FetchCursor struct {
	pool     *PoolHandle
	maxRange ldb_util.Range
}

// NewFetchCursor - initialise a cursor to the start of a key range
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		maxRange: ldb_util.Range{
			Start: []byte{p.prefix}, // Start of key range, included in the range
			Limit: p.limit,          // Limit of key range, excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - return some elements starting from key
//
// the cursor is left just after the last element returned
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.Walk(func(key []byte, value []byte) bool {
		results = append(results, Element{Key: key, Value: value})
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key greater than the last one returned
		next := cursor.pool.prefixKey(results[n-1].Key)
		cursor.maxRange.Start = append(next, 0x00)
	}
	return results, err
}

// Walk - run a function on each element in the range until it returns false
//
// key and value passed to the function are copies
func (cursor *FetchCursor) Walk(f func(key []byte, value []byte) bool) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}

	database := cursor.pool.database
	database.RLock()
	defer database.RUnlock()
	if nil == database.db {
		return nil
	}

	iter := database.db.NewIterator(&cursor.maxRange, nil)

iterating:
	for iter.Next() {
		e := copyElement(iter.Key(), iter.Value())
		if !f(e.Key, e.Value) {
			break iterating
		}
	}
	iter.Release()
	return iter.Error()
}

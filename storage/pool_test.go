// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/storage"
)

// helper to add to pool
func poolPut(p *storage.PoolHandle, key string, data string) {
	p.Put([]byte(key), []byte(data))
}

// helper to remove from pool
func poolDelete(p *storage.PoolHandle, key string) {
	p.Delete([]byte(key))
}

// main pool test
func TestPool(t *testing.T) {
	db := setup(t)

	p := db.Pool.TestData

	// ensure that pool was empty
	checkEmpty(t, p)

	poolPut(p, "key-one", "data-one")
	poolPut(p, "key-two", "data-two")
	poolPut(p, "key-remove-me", "to be deleted")
	poolDelete(p, "key-remove-me")
	poolPut(p, "key-three", "data-three")
	poolPut(p, "key-one", "data-one")     // duplicate
	poolPut(p, "key-three", "data-three") // duplicate
	poolPut(p, "key-four", "data-four")
	poolPut(p, "key-delete-this", "to be deleted")
	poolPut(p, "key-five", "data-five")
	poolPut(p, "key-six", "data-six")
	poolDelete(p, "key-delete-this")
	poolPut(p, "key-seven", "data-seven")
	poolPut(p, "key-one", "data-one(NEW)") // duplicate

	// ensure that data is correct
	checkResults(t, p)

	// check that reopening database keeps data
	db.Close()
	db, err := storage.Open(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage reopen error: %s", err)
	}
	defer teardown(db)

	checkResults(t, db.Pool.TestData)
}

func checkEmpty(t *testing.T, p *storage.PoolHandle) {
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if 0 != len(data) {
		t.Errorf("pool was not empty, got: %d items", len(data))
	}
}

func checkResults(t *testing.T, p *storage.PoolHandle) {

	// ensure we get all of the pool
	cursor := p.NewFetchCursor()
	data, err := cursor.Fetch(20)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}

	// ensure lengths match
	if len(data) != len(expectedElements) {
		t.Errorf("Length mismatch, got: %d  expected: %d", len(data), len(expectedElements))
	}

	// compare all items from pool
	for i, a := range data {
		if i >= len(expectedElements) {
			t.Errorf("%d: Excess, got: '%s'  expected: Nothing", i, a.Key)
		} else if !bytes.Equal(expectedElements[i].Key, a.Key) || !bytes.Equal(expectedElements[i].Value, a.Value) {
			t.Errorf("%d: Mismatch, got: '%s:%s'  expected: '%s:%s'", i,
				a.Key, a.Value,
				expectedElements[i].Key, expectedElements[i].Value)
		}
	}

	// retrieve 2 elements then next 2 - ensure no overlap
	cursor.Seek(nil)
	firstPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	secondPair, err := cursor.Fetch(2)
	if nil != err {
		t.Errorf("Error on Fetch: %v", err)
		return
	}
	if bytes.Equal(firstPair[1].Key, secondPair[0].Key) {
		t.Errorf("Fetch Overlap got duplicate: '%s:%s'", firstPair[1].Key, firstPair[1].Value)
	}
	assert.Equal(t, expectedElements[2].Key, secondPair[0].Key, "cursor did not continue after last key")

	// check key exists
	if !p.Has(testKey) {
		t.Errorf("not found: %q", testKey)
	}

	// retrieve a key
	d2 := p.Get(testKey)
	if nil == d2 {
		t.Errorf("not found: %q", testKey)
	}
	if string(d2) != testData {
		t.Errorf("Mismatch on Get, got: '%s'  expected: '%s'", d2, testData)
	}

	// check that key does not exist
	if p.Has(nonExistantKey) {
		t.Errorf("unexpectedly found: %q", nonExistantKey)
	}
	assert.Nil(t, p.Get(nonExistantKey), "get of missing key")

	last, found := p.LastElement()
	assert.True(t, found, "last element")
	assert.Equal(t, expectedElements[len(expectedElements)-1].Key, last.Key, "last element key")
}

func TestPoolsAreSeparate(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	db.Pool.TestData.Put([]byte("same"), []byte("test"))
	db.Pool.Counters.Put([]byte("same"), []byte("counter"))

	assert.Equal(t, []byte("test"), db.Pool.TestData.Get([]byte("same")), "test pool")
	assert.Equal(t, []byte("counter"), db.Pool.Counters.Get([]byte("same")), "counter pool")

	data, err := db.Pool.TestData.NewFetchCursor().Fetch(10)
	assert.Nil(t, err, "fetch")
	assert.Equal(t, 1, len(data), "cursor leaked into another pool")
}

func TestGetN(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	p := db.Pool.Counters
	_, found := p.GetN([]byte("none"))
	assert.False(t, found, "missing counter")

	p.PutN([]byte("n"), 12345)
	n, found := p.GetN([]byte("n"))
	assert.True(t, found, "counter")
	assert.Equal(t, uint64(12345), n, "counter value")

	p.Put([]byte("short"), []byte{1, 2})
	assert.Panics(t, func() { p.GetN([]byte("short")) }, "truncated counter")
}

func TestFetchInvalidCount(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	_, err := db.Pool.TestData.NewFetchCursor().Fetch(0)
	assert.NotNil(t, err, "zero count")
}

func TestMemoryDatabase(t *testing.T) {
	db, err := storage.OpenMemory()
	assert.Nil(t, err, "open memory")
	defer db.Close()

	db.Pool.TestData.Put([]byte("k"), []byte("v"))
	assert.True(t, db.Pool.TestData.Has([]byte("k")), "memory put")
}

func TestClosedDatabase(t *testing.T) {
	db := setup(t)
	teardown(db)

	p := db.Pool.TestData
	assert.Nil(t, p.Get([]byte("k")), "get after close")
	assert.False(t, p.Has([]byte("k")), "has after close")
	assert.Panics(t, func() { p.Put([]byte("k"), []byte("v")) }, "put after close")
}

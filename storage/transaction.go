// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/baliola/medblock/fault"
)

// Transaction - a batch of writes applied atomically by Commit
//
// Get and Has see the pending writes of the transaction.
// Cursors only see committed data.
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	database *Database
	batch    *leveldb.Batch
	cache    Cache
	done     bool
}

// Begin - start a transaction
//
// only one transaction may be open at a time
func (d *Database) Begin() (Transaction, error) {
	d.trxLock.Lock()
	defer d.trxLock.Unlock()

	if d.trxInUse {
		return nil, fault.ErrTransactionInUse
	}
	d.trxInUse = true

	return &transaction{
		database: d,
		batch:    new(leveldb.Batch),
		cache:    newCache(),
		done:     false,
	}, nil
}

func (t *transaction) Put(handle *PoolHandle, key []byte, value []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbPut, string(k), value)
	t.batch.Put(k, value)
}

func (t *transaction) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.Put(handle, key, buffer)
}

func (t *transaction) Delete(handle *PoolHandle, key []byte) {
	k := handle.prefixKey(key)
	t.cache.Set(dbDelete, string(k), nil)
	t.batch.Delete(k)
}

func (t *transaction) Get(handle *PoolHandle, key []byte) []byte {
	value, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return nil
	}
	if found {
		return value
	}
	return handle.Get(key)
}

func (t *transaction) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	buffer := t.Get(handle, key)
	if nil == buffer {
		return 0, false
	}
	if len(buffer) < 8 {
		fault.Panicf("transaction.GetN truncated record for: %x: %x", key, buffer)
	}
	return binary.BigEndian.Uint64(buffer[:8]), true
}

func (t *transaction) Has(handle *PoolHandle, key []byte) bool {
	_, deleted, found := t.cache.Get(string(handle.prefixKey(key)))
	if deleted {
		return false
	}
	if found {
		return true
	}
	return handle.Has(key)
}

// Commit - write the batch and end the transaction
func (t *transaction) Commit() error {
	if t.done {
		return fault.ErrTransactionNotStarted
	}

	t.database.RLock()
	db := t.database.db
	var err error
	if nil == db {
		err = fault.ErrNotInitialised
	} else {
		err = db.Write(t.batch, nil)
	}
	t.database.RUnlock()

	t.finish()
	return err
}

// Abort - discard pending writes and end the transaction
//
// no effect after Commit, so it can be deferred
func (t *transaction) Abort() {
	if !t.done {
		t.finish()
	}
}

func (t *transaction) finish() {
	t.done = true
	t.batch.Reset()
	t.cache.Clear()

	t.database.trxLock.Lock()
	t.database.trxInUse = false
	t.database.trxLock.Unlock()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
)

// Encoder - a fixed width value that can be stored as part of a key
type Encoder interface {
	Bytes() []byte
}

// Decoder - convert stored bytes back to a value
type Decoder[T any] func([]byte) (T, error)

// PairStore - an ordered set of (K, V) pairs with no payload
//
// each pair is stored as the key K ⧺ V in its pool, so iterating
// from K visits every V of that K in byte order.
type PairStore[K Encoder, V Encoder] struct {
	pool        *PoolHandle
	keyLength   int
	decodeKey   Decoder[K]
	decodeValue Decoder[V]
}

// NewPairStore - a pair store over a pool, K must encode to keyLength bytes
func NewPairStore[K Encoder, V Encoder](pool *PoolHandle, keyLength int, decodeKey Decoder[K], decodeValue Decoder[V]) *PairStore[K, V] {
	return &PairStore[K, V]{
		pool:        pool,
		keyLength:   keyLength,
		decodeKey:   decodeKey,
		decodeValue: decodeValue,
	}
}

func (s *PairStore[K, V]) pairKey(k K, v V) []byte {
	return append(k.Bytes(), v.Bytes()...)
}

// Insert - add a pair, no effect if already present
//
// trx may be nil to write directly
func (s *PairStore[K, V]) Insert(trx Transaction, k K, v V) {
	key := s.pairKey(k, v)
	if nil == trx {
		if !s.pool.Has(key) {
			s.pool.Put(key, []byte{})
		}
		return
	}
	if !trx.Has(s.pool, key) {
		trx.Put(s.pool, key, []byte{})
	}
}

// Remove - delete a pair, no effect if absent
func (s *PairStore[K, V]) Remove(trx Transaction, k K, v V) {
	key := s.pairKey(k, v)
	if nil == trx {
		s.pool.Delete(key)
		return
	}
	trx.Delete(s.pool, key)
}

// Contains - check membership of a pair
func (s *PairStore[K, V]) Contains(k K, v V) bool {
	return s.pool.Has(s.pairKey(k, v))
}

// RangeFrom - visit pairs with first component ≥ k in ascending order
// until f returns false
func (s *PairStore[K, V]) RangeFrom(k K, f func(K, V) bool) error {
	var decodeErr error
	err := s.pool.NewFetchCursor().Seek(k.Bytes()).Walk(func(key []byte, _ []byte) bool {
		if len(key) <= s.keyLength {
			return true // not a pair of this store
		}
		kk, err := s.decodeKey(key[:s.keyLength])
		if nil != err {
			decodeErr = err
			return false
		}
		vv, err := s.decodeValue(key[s.keyLength:])
		if nil != err {
			decodeErr = err
			return false
		}
		return f(kk, vv)
	})
	if nil != err {
		return err
	}
	return decodeErr
}

// Values - every V paired with exactly k, ascending
func (s *PairStore[K, V]) Values(k K) ([]V, error) {
	target := k.Bytes()
	values := make([]V, 0)
	var decodeErr error
	err := s.pool.NewFetchCursor().Seek(target).Walk(func(key []byte, _ []byte) bool {
		if len(key) <= s.keyLength || !bytes.Equal(key[:s.keyLength], target) {
			return false
		}
		v, err := s.decodeValue(key[s.keyLength:])
		if nil != err {
			decodeErr = err
			return false
		}
		values = append(values, v)
		return true
	})
	if nil != err {
		return nil, err
	}
	return values, decodeErr
}

// HasAny - true if at least one pair has first component k
func (s *PairStore[K, V]) HasAny(k K) bool {
	target := k.Bytes()
	found := false
	s.pool.NewFetchCursor().Seek(target).Walk(func(key []byte, _ []byte) bool {
		found = len(key) > s.keyLength && bytes.Equal(key[:s.keyLength], target)
		return false
	})
	return found
}

// Count - number of pairs in the store
func (s *PairStore[K, V]) Count() int {
	n := 0
	s.pool.NewFetchCursor().Walk(func(_ []byte, _ []byte) bool {
		n += 1
		return true
	})
	return n
}

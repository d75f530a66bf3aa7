// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/storage"
)

// two byte test identifier
type tag [2]byte

func (t tag) Bytes() []byte { return []byte{t[0], t[1]} }

func decodeTag(b []byte) (tag, error) {
	if 2 != len(b) {
		return tag{}, fault.ErrInvalidIdentifier
	}
	return tag{b[0], b[1]}, nil
}

func newTagPairs(db *storage.Database) *storage.PairStore[tag, tag] {
	return storage.NewPairStore[tag, tag](db.Pool.TestData, 2, decodeTag, decodeTag)
}

func TestPairInsertIsIdempotent(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := newTagPairs(db)
	s.Insert(nil, tag{1, 1}, tag{2, 2})
	assert.Equal(t, 1, s.Count(), "first insert")

	s.Insert(nil, tag{1, 1}, tag{2, 2})
	assert.Equal(t, 1, s.Count(), "duplicate insert changed size")

	trx, _ := db.Begin()
	s.Insert(trx, tag{1, 1}, tag{2, 2})
	s.Insert(trx, tag{1, 1}, tag{3, 3})
	s.Insert(trx, tag{1, 1}, tag{3, 3})
	_ = trx.Commit()
	assert.Equal(t, 2, s.Count(), "transaction insert")

	assert.True(t, s.Contains(tag{1, 1}, tag{2, 2}), "contains")
	assert.False(t, s.Contains(tag{2, 2}, tag{1, 1}), "reversed pair")
}

func TestPairRangeOrdering(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := newTagPairs(db)

	// insert out of order
	s.Insert(nil, tag{3, 0}, tag{0, 1})
	s.Insert(nil, tag{1, 0}, tag{0, 9})
	s.Insert(nil, tag{2, 0}, tag{0, 5})
	s.Insert(nil, tag{1, 0}, tag{0, 2})
	s.Insert(nil, tag{0, 9}, tag{0, 0})

	type pair struct{ k, v tag }
	visited := []pair{}
	err := s.RangeFrom(tag{1, 0}, func(k tag, v tag) bool {
		visited = append(visited, pair{k, v})
		return true
	})
	assert.Nil(t, err, "range")

	expected := []pair{
		{tag{1, 0}, tag{0, 2}},
		{tag{1, 0}, tag{0, 9}},
		{tag{2, 0}, tag{0, 5}},
		{tag{3, 0}, tag{0, 1}},
	}
	assert.Equal(t, expected, visited, "range order")

	// early stop
	n := 0
	_ = s.RangeFrom(tag{0, 0}, func(k tag, v tag) bool {
		n += 1
		return n < 2
	})
	assert.Equal(t, 2, n, "range did not stop")
}

func TestPairValues(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := newTagPairs(db)
	s.Insert(nil, tag{1, 0}, tag{0, 3})
	s.Insert(nil, tag{1, 0}, tag{0, 1})
	s.Insert(nil, tag{1, 1}, tag{0, 2})
	s.Insert(nil, tag{0, 1}, tag{0, 4})

	values, err := s.Values(tag{1, 0})
	assert.Nil(t, err, "values")
	assert.Equal(t, []tag{{0, 1}, {0, 3}}, values, "one to many")

	values, err = s.Values(tag{9, 9})
	assert.Nil(t, err, "values")
	assert.Equal(t, 0, len(values), "no values")

	assert.True(t, s.HasAny(tag{1, 1}), "has any")
	assert.False(t, s.HasAny(tag{1, 2}), "has none")
}

func TestPairRemove(t *testing.T) {
	db := setup(t)
	defer teardown(db)

	s := newTagPairs(db)
	s.Insert(nil, tag{1, 0}, tag{0, 1})
	s.Insert(nil, tag{1, 0}, tag{0, 2})

	s.Remove(nil, tag{1, 0}, tag{0, 1})
	assert.False(t, s.Contains(tag{1, 0}, tag{0, 1}), "removed")
	assert.True(t, s.Contains(tag{1, 0}, tag{0, 2}), "other kept")

	// absent pair
	s.Remove(nil, tag{7, 7}, tag{7, 7})
	assert.Equal(t, 1, s.Count(), "remove of absent pair")

	trx, _ := db.Begin()
	s.Remove(trx, tag{1, 0}, tag{0, 2})
	_ = trx.Commit()
	assert.Equal(t, 0, s.Count(), "transaction remove")
}

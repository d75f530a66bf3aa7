// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/keys"
	"github.com/baliola/medblock/registry"
)

func keysFragment(owner identifier.Owner, issuer identifier.Issuer, record identifier.Record, name string) []byte {
	return keys.Fragment().Owner(owner).Issuer(issuer).Record(record).Field(identifier.MustField(name)).Build().Bytes()
}

// n sorted records for owner from issuer, each with two fragments
func addRecords(t *testing.T, r *registry.Registry, owner identifier.Owner, issuer identifier.Issuer, n int) []registry.Header {
	headers := make([]registry.Header, 0, n)
	for i := 0; i < n; i += 1 {
		record := identifier.NewRecord()
		err := r.Add(owner, issuer, record, []registry.Fragment{
			fragment("f1", "one"),
			fragment("f2", "two"),
		})
		if nil != err {
			t.Fatalf("add error: %s", err)
		}
		headers = append(headers, registry.Header{Owner: owner, Issuer: issuer, Record: record})
	}
	sort.Slice(headers, func(i, j int) bool {
		return bytes.Compare(headers[i].Record[:], headers[j].Record[:]) < 0
	})
	return headers
}

func TestListByOwnerDeduplicates(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	owner := mustOwner(t, "1")
	issuer := identifier.NewIssuer()
	headers := addRecords(t, r, owner, issuer, 1)

	list, ok := r.ListByOwner(owner, 0, 1)
	assert.True(t, ok, "page present")
	assert.Equal(t, headers, list, "one record not one per fragment")
}

func TestListByOwnerPages(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	owner := mustOwner(t, "1")
	other := mustOwner(t, "2")
	issuer := identifier.NewIssuer()
	headers := addRecords(t, r, owner, issuer, 3)
	addRecords(t, r, other, issuer, 2)

	list, ok := r.ListByOwner(owner, 0, 2)
	assert.True(t, ok, "first page")
	assert.Equal(t, headers[:2], list, "first page items")

	list, ok = r.ListByOwner(owner, 1, 2)
	assert.True(t, ok, "second page")
	assert.Equal(t, headers[2:], list, "second page items")

	list, ok = r.ListByOwner(owner, 1000, 10)
	assert.False(t, ok, "page beyond end")
	assert.Nil(t, list, "page beyond end items")

	_, ok = r.ListByOwner(owner, 0, 0)
	assert.False(t, ok, "zero limit")

	_, ok = r.ListByOwner(mustOwner(t, "3"), 0, 10)
	assert.False(t, ok, "unknown owner")

	assert.Equal(t, 3, r.CountByOwner(owner), "count owner")
	assert.Equal(t, 2, r.CountByOwner(other), "count other")
	assert.Equal(t, headers, r.AllByOwner(owner), "all")
}

func TestListByIssuer(t *testing.T) {
	db, r := setup(t)
	defer db.Close()

	issuer := identifier.NewIssuer()
	otherIssuer := identifier.NewIssuer()

	h1 := addRecords(t, r, mustOwner(t, "1"), issuer, 2)
	h2 := addRecords(t, r, mustOwner(t, "2"), issuer, 2)
	addRecords(t, r, mustOwner(t, "1"), otherIssuer, 1)

	// issuer layout orders by owner first
	expected := append(append([]registry.Header{}, h1...), h2...)
	sort.SliceStable(expected, func(i, j int) bool {
		return bytes.Compare(expected[i].Owner[:], expected[j].Owner[:]) < 0
	})

	list, ok := r.ListByIssuer(issuer, 0, 10)
	assert.True(t, ok, "issuer page")
	assert.Equal(t, expected, list, "issuer records")

	list, ok = r.ListByIssuer(issuer, 1, 3)
	assert.True(t, ok, "partial page")
	assert.Equal(t, expected[3:], list, "partial page items")

	_, ok = r.ListByIssuer(issuer, 2, 2)
	assert.False(t, ok, "beyond end")

	assert.Equal(t, 4, r.CountByIssuer(issuer), "count issuer")
	assert.Equal(t, 1, r.CountByIssuer(otherIssuer), "count other issuer")
}

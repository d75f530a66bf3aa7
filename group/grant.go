// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"bytes"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
)

// Grant - grantee may read the records of granter
type Grant struct {
	Granter identifier.Owner `json:"granter"`
	Grantee identifier.Owner `json:"grantee"`
	Group   identifier.Group `json:"group,string"`
}

func grantKey(granter identifier.Owner, grantee identifier.Owner) []byte {
	return append(granter.Bytes(), grantee[:]...)
}

// Grant - store a grant, replacing any earlier one for the pair
func (e *Engine) Grant(granter identifier.Owner, grantee identifier.Owner, id identifier.Group) {
	e.grants.Put(grantKey(granter, grantee), id.Bytes())
	e.log.Debugf("grant: %s → %s  group: %d", granter, grantee, id)
}

// Revoke - delete a grant, no effect if absent
func (e *Engine) Revoke(granter identifier.Owner, grantee identifier.Owner) {
	e.grants.Delete(grantKey(granter, grantee))
	e.log.Debugf("revoke: %s → %s", granter, grantee)
}

// HasAccess - true if grantee may read the records of granter
func (e *Engine) HasAccess(granter identifier.Owner, grantee identifier.Owner) bool {
	return e.grants.Has(grantKey(granter, grantee))
}

// AccessGroupOf - the group a grant was made in
func (e *Engine) AccessGroupOf(granter identifier.Owner, grantee identifier.Owner) (identifier.Group, bool) {
	buffer := e.grants.Get(grantKey(granter, grantee))
	if nil == buffer {
		return 0, false
	}
	id, err := identifier.GroupFromBytes(buffer)
	fault.PanicIfError("group: grant value", err)
	return id, true
}

// GrantsBy - all grants made by one granter in grantee order
func (e *Engine) GrantsBy(granter identifier.Owner) ([]Grant, error) {
	grants := make([]Grant, 0)
	var decodeErr error

	err := e.grants.NewFetchCursor().Seek(granter[:]).Walk(func(key []byte, value []byte) bool {
		if len(key) != 2*identifier.OwnerLength || !bytes.Equal(key[:identifier.OwnerLength], granter[:]) {
			return false
		}
		grantee, err := identifier.OwnerFromBytes(key[identifier.OwnerLength:])
		if nil != err {
			decodeErr = err
			return false
		}
		id, err := identifier.GroupFromBytes(value)
		if nil != err {
			decodeErr = err
			return false
		}
		grants = append(grants, Grant{
			Granter: granter,
			Grantee: grantee,
			Group:   id,
		})
		return true
	})
	if nil != err {
		return nil, err
	}
	return grants, decodeErr
}

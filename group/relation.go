// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"github.com/baliola/medblock/fault"
)

// Relation - how a member relates to the group leader
type Relation byte

// the relations
const (
	Self Relation = iota
	Spouse
	Parent
	Child
	Sibling
	Other
	lastRelation // keep last
)

var relationNames = [...]string{
	Self:    "self",
	Spouse:  "spouse",
	Parent:  "parent",
	Child:   "child",
	Sibling: "sibling",
	Other:   "other",
}

// RelationFromString - convert a relation name
func RelationFromString(s string) (Relation, error) {
	for i, name := range relationNames {
		if name == s {
			return Relation(i), nil
		}
	}
	return 0, fault.ErrInvalidRelation
}

// IsValid - true for known relations
func (r Relation) IsValid() bool {
	return r < lastRelation
}

// String - the relation name
func (r Relation) String() string {
	if !r.IsValid() {
		return "invalid"
	}
	return relationNames[r]
}

// MarshalText - convert relation to its name
func (r Relation) MarshalText() ([]byte, error) {
	if !r.IsValid() {
		return nil, fault.ErrInvalidRelation
	}
	return []byte(r.String()), nil
}

// UnmarshalText - convert a name to a relation
func (r *Relation) UnmarshalText(s []byte) error {
	relation, err := RelationFromString(string(s))
	if nil != err {
		return err
	}
	*r = relation
	return nil
}

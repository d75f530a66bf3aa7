// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/util"
)

// MaximumNameLength - bytes allowed in a group name
const MaximumNameLength = 64

// Member - a member of a group
type Member struct {
	Owner    identifier.Owner `json:"owner"`
	Relation Relation         `json:"relation"`
}

// Group - a stored group
type Group struct {
	ID      identifier.Group `json:"id,string"`
	Name    string           `json:"name"`
	Leader  identifier.Owner `json:"leader"`
	Members []Member         `json:"members"`
}

// index of a member, -1 if absent
func (g *Group) find(owner identifier.Owner) int {
	for i, m := range g.Members {
		if m.Owner == owner {
			return i
		}
	}
	return -1
}

// make a member the leader; only the leader is tagged Self and the
// previous leader's relation to the new one is not known
func (g *Group) promote(i int) {
	if j := g.find(g.Leader); j >= 0 {
		g.Members[j].Relation = Other
	}
	g.Leader = g.Members[i].Owner
	g.Members[i].Relation = Self
}

// IsMember - check membership
func (g *Group) IsMember(owner identifier.Owner) bool {
	return g.find(owner) >= 0
}

func validName(name string) bool {
	return len(name) > 0 && len(name) <= MaximumNameLength
}

func (g *Group) pack() []byte {
	buffer := util.AppendString(nil, g.Name)
	buffer = append(buffer, g.Leader[:]...)
	buffer = util.AppendVarint64(buffer, uint64(len(g.Members)))
	for _, m := range g.Members {
		buffer = append(buffer, m.Owner[:]...)
		buffer = append(buffer, byte(m.Relation))
	}
	return buffer
}

func unpack(id identifier.Group, buffer []byte) (*Group, error) {
	g := &Group{ID: id}

	name, n := util.FromString(buffer, 1, MaximumNameLength)
	if 0 == n {
		return nil, fault.ErrTruncatedRecord
	}
	g.Name = name
	buffer = buffer[n:]
	if len(buffer) < identifier.OwnerLength {
		return nil, fault.ErrTruncatedRecord
	}

	copy(g.Leader[:], buffer[:identifier.OwnerLength])
	buffer = buffer[identifier.OwnerLength:]

	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fault.ErrTruncatedRecord
	}
	buffer = buffer[n:]

	const memberLength = identifier.OwnerLength + 1
	if uint64(len(buffer)) != count*memberLength {
		return nil, fault.ErrTruncatedRecord
	}

	g.Members = make([]Member, count)
	for i := range g.Members {
		copy(g.Members[i].Owner[:], buffer[:identifier.OwnerLength])
		g.Members[i].Relation = Relation(buffer[identifier.OwnerLength])
		buffer = buffer[memberLength:]
	}
	return g, nil
}

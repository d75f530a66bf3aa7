// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/identifier"
)

func TestCreate(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")

	id1, err := e.Create("family", leader)
	assert.Nil(t, err, "create")
	id2, err := e.Create("other", leader)
	assert.Nil(t, err, "create second")
	assert.Equal(t, id1+1, id2, "sequential ids")

	g, err := e.Get(id1)
	assert.Nil(t, err, "get")
	assert.Equal(t, "family", g.Name, "name")
	assert.Equal(t, leader, g.Leader, "leader")
	assert.Equal(t, []group.Member{{Owner: leader, Relation: group.Self}}, g.Members, "members")

	groups, err := e.GroupsOf(leader)
	assert.Nil(t, err, "groups of")
	assert.Equal(t, []identifier.Group{id1, id2}, groups, "both groups")

	_, err = e.Create("", leader)
	assert.Equal(t, fault.ErrInvalidGroupName, err, "empty name")
}

func TestAddMember(t *testing.T) {
	db, e := setup(t, 2)
	defer db.Close()

	leader := mustOwner(t, "1")
	member := mustOwner(t, "2")

	id, _ := e.Create("family", leader)

	assert.Nil(t, e.AddMember(id, member, group.Spouse), "add")
	assert.Equal(t, fault.ErrGroupFull, e.AddMember(id, mustOwner(t, "3"), group.Child), "full")

	g, err := e.Get(id)
	assert.Nil(t, err, "get")
	assert.Equal(t, []group.Member{
		{Owner: leader, Relation: group.Self},
		{Owner: member, Relation: group.Spouse},
	}, g.Members, "members")

	assert.Equal(t, fault.ErrGroupNotFound, e.AddMember(id+1, member, group.Child), "no group")
	assert.Equal(t, fault.ErrInvalidRelation, e.AddMember(id, member, group.Relation(99)), "bad relation")
}

func TestAddDuplicateMember(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	id, _ := e.Create("family", leader)

	assert.Equal(t, fault.ErrMemberAlreadyExists, e.AddMember(id, leader, group.Other), "leader again")
}

func TestRemoveLastMemberDeletesGroup(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	id, _ := e.Create("solo", leader)

	assert.Nil(t, e.RemoveMember(id, leader), "remove leader")

	_, err := e.Get(id)
	assert.Equal(t, fault.ErrGroupNotFound, err, "group deleted")

	groups, err := e.GroupsOf(leader)
	assert.Nil(t, err, "groups of")
	assert.Equal(t, 0, len(groups), "membership index cleared")
}

func TestRemoveLeaderTransfersLeadership(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	member := mustOwner(t, "2")
	id, _ := e.Create("family", leader)
	_ = e.AddMember(id, member, group.Child)

	assert.Nil(t, e.RemoveMember(id, leader), "remove leader")

	g, err := e.Get(id)
	assert.Nil(t, err, "group survives")
	assert.Equal(t, member, g.Leader, "new leader")
	assert.Equal(t, 1, len(g.Members), "one member")
	assert.True(t, g.IsMember(member), "member kept")
	assert.False(t, g.IsMember(leader), "old leader gone")
	assert.Equal(t, group.Self, g.Members[0].Relation, "new leader tagged self")
}

func TestRemoveMember(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	member := mustOwner(t, "2")
	id, _ := e.Create("family", leader)
	_ = e.AddMember(id, member, group.Sibling)

	assert.Nil(t, e.RemoveMember(id, member), "remove member")
	assert.Equal(t, fault.ErrMemberNotFound, e.RemoveMember(id, member), "remove again")

	g, _ := e.Get(id)
	assert.Equal(t, leader, g.Leader, "leader unchanged")
	assert.Equal(t, 1, len(g.Members), "one member")
}

func TestTransferLeadership(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	member := mustOwner(t, "2")
	id, _ := e.Create("family", leader)

	assert.Equal(t, fault.ErrMemberNotFound, e.TransferLeadership(id, member), "not a member")

	_ = e.AddMember(id, member, group.Parent)
	assert.Nil(t, e.TransferLeadership(id, member), "transfer")

	g, _ := e.Get(id)
	assert.Equal(t, member, g.Leader, "leader")
	assert.Equal(t, 2, len(g.Members), "members unchanged")
	assert.Equal(t, []group.Member{
		{Owner: leader, Relation: group.Other},
		{Owner: member, Relation: group.Self},
	}, g.Members, "relations follow leadership")
}

func TestDissolve(t *testing.T) {
	db, e := setup(t, group.DefaultMembers)
	defer db.Close()

	leader := mustOwner(t, "1")
	member := mustOwner(t, "2")
	id, _ := e.Create("family", leader)
	_ = e.AddMember(id, member, group.Parent)

	assert.Nil(t, e.Dissolve(id), "dissolve")
	assert.Equal(t, fault.ErrGroupNotFound, e.Dissolve(id), "dissolve twice")

	groups, _ := e.GroupsOf(member)
	assert.Equal(t, 0, len(groups), "member index cleared")
}

func TestRelationText(t *testing.T) {
	r, err := group.RelationFromString("spouse")
	assert.Nil(t, err, "spouse")
	assert.Equal(t, group.Spouse, r, "value")

	_, err = group.RelationFromString("cousin")
	assert.Equal(t, fault.ErrInvalidRelation, err, "unknown")
}

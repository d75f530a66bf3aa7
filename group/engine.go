// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package group

import (
	"github.com/bitmark-inc/logger"

	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/storage"
)

// member limits
const (
	MinimumMembers = 2
	MaximumMembers = 64
	DefaultMembers = 10
)

var counterKey = []byte("group")

// Engine - groups and grants
type Engine struct {
	log            *logger.L
	database       *storage.Database
	maximumMembers int

	groups       *storage.PoolHandle
	counters     *storage.PoolHandle
	grants       *storage.PoolHandle
	memberGroups *storage.PairStore[identifier.Owner, identifier.Group]
}

// New - create the engine, maximumMembers is clamped to MinimumMembers..MaximumMembers
func New(database *storage.Database, maximumMembers int) *Engine {
	if maximumMembers < MinimumMembers {
		maximumMembers = MinimumMembers
	} else if maximumMembers > MaximumMembers {
		maximumMembers = MaximumMembers
	}
	return &Engine{
		log:            logger.New("group"),
		database:       database,
		maximumMembers: maximumMembers,
		groups:         database.Pool.Groups,
		counters:       database.Pool.Counters,
		grants:         database.Pool.Grants,
		memberGroups: storage.NewPairStore(
			database.Pool.MemberGroups,
			identifier.OwnerLength,
			identifier.OwnerFromBytes,
			identifier.GroupFromBytes,
		),
	}
}

// Create - a new group with the leader as its only member
func (e *Engine) Create(name string, leader identifier.Owner) (identifier.Group, error) {
	if !validName(name) {
		return 0, fault.ErrInvalidGroupName
	}

	trx, err := e.database.Begin()
	if nil != err {
		return 0, err
	}
	defer trx.Abort()

	last, _ := trx.GetN(e.counters, counterKey)
	id := identifier.Group(last + 1)
	trx.PutN(e.counters, counterKey, uint64(id))

	g := &Group{
		ID:     id,
		Name:   name,
		Leader: leader,
		Members: []Member{
			{Owner: leader, Relation: Self},
		},
	}
	trx.Put(e.groups, id.Bytes(), g.pack())
	e.memberGroups.Insert(trx, leader, id)

	err = trx.Commit()
	if nil != err {
		return 0, err
	}
	e.log.Infof("create group: %d  leader: %s", id, leader)
	return id, nil
}

// Get - fetch a group
func (e *Engine) Get(id identifier.Group) (*Group, error) {
	buffer := e.groups.Get(id.Bytes())
	if nil == buffer {
		return nil, fault.ErrGroupNotFound
	}
	return unpack(id, buffer)
}

func (e *Engine) getInTransaction(trx storage.Transaction, id identifier.Group) (*Group, error) {
	buffer := trx.Get(e.groups, id.Bytes())
	if nil == buffer {
		return nil, fault.ErrGroupNotFound
	}
	return unpack(id, buffer)
}

// AddMember - add an owner to a group
func (e *Engine) AddMember(id identifier.Group, member identifier.Owner, relation Relation) error {
	if !relation.IsValid() {
		return fault.ErrInvalidRelation
	}

	trx, err := e.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	g, err := e.getInTransaction(trx, id)
	if nil != err {
		return err
	}
	if len(g.Members) >= e.maximumMembers {
		return fault.ErrGroupFull
	}
	if g.IsMember(member) {
		return fault.ErrMemberAlreadyExists
	}

	g.Members = append(g.Members, Member{Owner: member, Relation: relation})
	trx.Put(e.groups, id.Bytes(), g.pack())
	e.memberGroups.Insert(trx, member, id)

	err = trx.Commit()
	if nil != err {
		return err
	}
	e.log.Debugf("group: %d  add member: %s  relation: %s", id, member, relation)
	return nil
}

// RemoveMember - drop an owner from a group
//
// a departing leader passes leadership to the first remaining member,
// and the group is deleted when its last member leaves
func (e *Engine) RemoveMember(id identifier.Group, member identifier.Owner) error {
	trx, err := e.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	g, err := e.getInTransaction(trx, id)
	if nil != err {
		return err
	}
	i := g.find(member)
	if i < 0 {
		return fault.ErrMemberNotFound
	}

	g.Members = append(g.Members[:i], g.Members[i+1:]...)
	e.memberGroups.Remove(trx, member, id)

	switch {
	case 0 == len(g.Members):
		trx.Delete(e.groups, id.Bytes())
		e.log.Infof("group: %d  last member left, deleted", id)

	case g.Leader == member:
		g.promote(0)
		trx.Put(e.groups, id.Bytes(), g.pack())
		e.log.Infof("group: %d  leader left, new leader: %s", id, g.Leader)

	default:
		trx.Put(e.groups, id.Bytes(), g.pack())
	}

	return trx.Commit()
}

// TransferLeadership - make an existing member the leader
func (e *Engine) TransferLeadership(id identifier.Group, leader identifier.Owner) error {
	trx, err := e.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	g, err := e.getInTransaction(trx, id)
	if nil != err {
		return err
	}
	i := g.find(leader)
	if i < 0 {
		return fault.ErrMemberNotFound
	}

	g.promote(i)
	trx.Put(e.groups, id.Bytes(), g.pack())

	err = trx.Commit()
	if nil != err {
		return err
	}
	e.log.Infof("group: %d  leadership to: %s", id, leader)
	return nil
}

// Dissolve - delete a group whatever its members
func (e *Engine) Dissolve(id identifier.Group) error {
	trx, err := e.database.Begin()
	if nil != err {
		return err
	}
	defer trx.Abort()

	g, err := e.getInTransaction(trx, id)
	if nil != err {
		return err
	}

	for _, m := range g.Members {
		e.memberGroups.Remove(trx, m.Owner, id)
	}
	trx.Delete(e.groups, id.Bytes())

	err = trx.Commit()
	if nil != err {
		return err
	}
	e.log.Infof("group: %d  dissolved, members: %d", id, len(g.Members))
	return nil
}

// GroupsOf - the groups an owner belongs to, ascending
func (e *Engine) GroupsOf(owner identifier.Owner) ([]identifier.Group, error) {
	return e.memberGroups.Values(owner)
}

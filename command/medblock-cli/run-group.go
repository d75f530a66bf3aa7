// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/registry"
)

type accessResult struct {
	Owner  identifier.Owner `json:"owner"`
	Actor  identifier.Actor `json:"actor"`
	Access bool             `json:"access"`
}

// show the group as it is after a change, or just the id once deleted
func printGroup(m *metadata, id identifier.Group) error {
	g, err := m.groups.Get(id)
	if nil != err {
		return printJson(m.w, map[string]string{"id": id.String(), "status": "deleted"})
	}
	return printJson(m.w, g)
}

func runGroupCreate(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	name, err := required(c, "name")
	if nil != err {
		return err
	}
	leader, err := checkOwner(c, "leader")
	if nil != err {
		return err
	}
	id, err := m.groups.Create(name, leader)
	if nil != err {
		return err
	}
	return printGroup(m, id)
}

func runGroupAdd(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	member, err := checkOwner(c, "member")
	if nil != err {
		return err
	}
	relation, err := group.RelationFromString(c.String("relation"))
	if nil != err {
		return err
	}
	if err := m.groups.AddMember(id, member, relation); nil != err {
		return err
	}
	return printGroup(m, id)
}

func runGroupRemove(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	member, err := checkOwner(c, "member")
	if nil != err {
		return err
	}
	if err := m.groups.RemoveMember(id, member); nil != err {
		return err
	}
	return printGroup(m, id)
}

func runGroupLeader(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	leader, err := checkOwner(c, "leader")
	if nil != err {
		return err
	}
	if err := m.groups.TransferLeadership(id, leader); nil != err {
		return err
	}
	return printGroup(m, id)
}

func runGroupDissolve(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	if err := m.groups.Dissolve(id); nil != err {
		return err
	}
	return printGroup(m, id)
}

func runGroupShow(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	g, err := m.groups.Get(id)
	if nil != err {
		return err
	}
	return printJson(m.w, g)
}

func runGroupOf(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	ids, err := m.groups.GroupsOf(owner)
	if nil != err {
		return err
	}
	groups := make([]*group.Group, 0, len(ids))
	for _, id := range ids {
		g, err := m.groups.Get(id)
		if nil != err {
			return err
		}
		groups = append(groups, g)
	}
	return printJson(m.w, groups)
}

func runGrant(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	id, err := checkGroup(c)
	if nil != err {
		return err
	}
	grantee, err := checkOwner(c, "grantee")
	if nil != err {
		return err
	}
	if err := m.access.GrantGroupAccess(actor, id, grantee); nil != err {
		return err
	}
	granter, err := m.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	return printJson(m.w, group.Grant{Granter: granter, Grantee: grantee, Group: id})
}

func runRevokeGrant(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	grantee, err := checkOwner(c, "grantee")
	if nil != err {
		return err
	}
	if err := m.access.RevokeGroupAccess(actor, grantee); nil != err {
		return err
	}
	granter, err := m.patients.OwnerOf(actor)
	if nil != err {
		return err
	}
	grants, err := m.groups.GrantsBy(granter)
	if nil != err {
		return err
	}
	return printJson(m.w, grants)
}

func runGrants(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	grants, err := m.groups.GrantsBy(owner)
	if nil != err {
		return err
	}
	if nil == grants {
		grants = []group.Grant{}
	}
	return printJson(m.w, grants)
}

func runHasAccess(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	return printJson(m.w, accessResult{Owner: owner, Actor: actor, Access: m.access.HasAccess(owner, actor)})
}

func runMemberRead(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	h, err := checkHeader(c)
	if nil != err {
		return err
	}
	r, err := m.access.ReadAsGroupMember(actor, h.Owner, h.Issuer, h.Record)
	if nil != err {
		return err
	}
	return printJson(m.w, r)
}

func runMemberList(c *cli.Context) error {
	m := c.App.Metadata["config"].(*metadata)

	actor, err := checkActor(c)
	if nil != err {
		return err
	}
	owner, err := checkOwner(c, "owner")
	if nil != err {
		return err
	}
	page := c.Int("page")
	headers, _, err := m.access.ListAsGroupMember(actor, owner, page, c.Int("limit"))
	if nil != err {
		return err
	}
	if nil == headers {
		headers = []registry.Header{}
	}
	return printJson(m.w, listResult{Page: page, Total: m.records.CountByOwner(owner), Headers: headers})
}

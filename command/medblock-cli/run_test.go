// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/group"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/registry"
)

func makeActor(b byte) identifier.Actor {
	a := identifier.Actor{}
	a[0] = b
	a[identifier.ActorLength-1] = 0x5a
	return a
}

// bind an actor and return its owner
func bind(t *testing.T, h *harness, actor identifier.Actor, nik string) identifier.Owner {
	err := h.run(t, runBind, map[string]string{"actor": actor.String(), "nik": nik})
	assert.Nil(t, err, "bind")
	var result bindingResult
	h.decode(t, &result)
	assert.Equal(t, actor, result.Actor, "bound actor")
	return result.Owner
}

func TestRecordCommands(t *testing.T) {
	h := setup(t)

	owner := bind(t, h, makeActor(1), "3201010101010001")
	expected, _ := identifier.OwnerFromNIK("3201010101010001")
	assert.Equal(t, expected, owner, "owner from NIK")

	err := h.run(t, runAdd, map[string]string{"owner": owner.String()}, "blood=O+", "allergy=none")
	assert.Nil(t, err, "add")
	var header registry.Header
	h.decode(t, &header)
	assert.Equal(t, owner, header.Owner, "added owner")

	where := map[string]string{
		"owner":  owner.String(),
		"issuer": header.Issuer.String(),
		"record": header.Record.String(),
	}

	err = h.run(t, runUpdate, where, "blood=AB-")
	assert.Nil(t, err, "update")

	err = h.run(t, runRead, where)
	assert.Nil(t, err, "read")
	var record registry.Record
	h.decode(t, &record)
	assert.Equal(t, header, record.Header, "read header")
	assert.Equal(t, []registry.Fragment{
		{Field: identifier.MustField("allergy"), Value: "none"},
		{Field: identifier.MustField("blood"), Value: "AB-"},
	}, record.Fragments, "fragments in field order")

	err = h.run(t, runList, map[string]string{"owner": owner.String(), "limit": "100"})
	assert.Nil(t, err, "list")
	var list listResult
	h.decode(t, &list)
	assert.Equal(t, 1, list.Total, "total")
	assert.Equal(t, []registry.Header{header}, list.Headers, "headers")

	err = h.run(t, runList, map[string]string{"issuer": header.Issuer.String()})
	assert.Nil(t, err, "list by issuer")
	h.decode(t, &list)
	assert.Equal(t, []registry.Header{header}, list.Headers, "issuer headers")

	err = h.run(t, runList, map[string]string{})
	assert.Equal(t, ErrNoOwnerOrIssuer, err, "no selector")

	err = h.run(t, runRemove, where)
	assert.Nil(t, err, "remove")

	err = h.run(t, runRead, where)
	assert.Equal(t, fault.ErrRecordNotExist, err, "read after remove")
}

func TestRecordCommandsMissingParameter(t *testing.T) {
	h := setup(t)

	err := h.run(t, runRead, map[string]string{"owner": "", "issuer": "", "record": ""})
	assert.NotNil(t, err, "missing owner")

	err = h.run(t, runAdd, map[string]string{"owner": identifier.Owner{1}.String()}, "bad")
	assert.NotNil(t, err, "bad fragment")
}

func TestConsentCommands(t *testing.T) {
	h := setup(t)

	patient := makeActor(1)
	doctor := makeActor(2)
	owner := bind(t, h, patient, "3201010101010001")

	err := h.run(t, runAdd, map[string]string{"owner": owner.String()}, "blood=O+")
	assert.Nil(t, err, "add")
	var header registry.Header
	h.decode(t, &header)

	err = h.run(t, runConsentGenerate, map[string]string{"owner": owner.String()})
	assert.Nil(t, err, "generate")
	var generated codeResult
	h.decode(t, &generated)
	assert.Equal(t, consent.DefaultDigits, len(generated.Code), "digits")

	err = h.run(t, runConsentList, map[string]string{"owner": owner.String()})
	assert.Nil(t, err, "list codes")
	var codes []consent.Code
	h.decode(t, &codes)
	assert.Equal(t, []consent.Code{generated.Code}, codes, "outstanding")

	err = h.run(t, runClaim, map[string]string{"code": string(generated.Code), "actor": doctor.String()})
	assert.Nil(t, err, "claim")
	var claimed sessionResult
	h.decode(t, &claimed)
	assert.Equal(t, owner, claimed.Owner, "claimed owner")

	err = h.run(t, runSessionRead, map[string]string{
		"session": claimed.Session.String(),
		"actor":   doctor.String(),
		"issuer":  header.Issuer.String(),
		"record":  header.Record.String(),
	})
	assert.Nil(t, err, "session read")
	var record registry.Record
	h.decode(t, &record)
	assert.Equal(t, header, record.Header, "session record")

	err = h.run(t, runSessionList, map[string]string{
		"session": claimed.Session.String(),
		"actor":   doctor.String(),
		"limit":   "100",
	})
	assert.Nil(t, err, "session list")
	var list listResult
	h.decode(t, &list)
	assert.Equal(t, 1, list.Total, "session total")
	assert.Equal(t, 1, len(list.Headers), "one header")

	err = h.run(t, runResolve, map[string]string{"session": claimed.Session.String(), "actor": patient.String()})
	assert.Equal(t, fault.ErrSessionNotFound, err, "other actor")

	err = h.run(t, runFinish, map[string]string{"session": claimed.Session.String(), "actor": doctor.String()})
	assert.Nil(t, err, "finish")

	err = h.run(t, runStats, nil)
	assert.Nil(t, err, "stats")
	var stats consent.Statistics
	h.decode(t, &stats)
	assert.Equal(t, consent.Statistics{}, stats, "nothing left")
}

func TestGroupCommands(t *testing.T) {
	h := setup(t)

	leaderActor := makeActor(1)
	memberActor := makeActor(2)
	leader := bind(t, h, leaderActor, "3201010101010001")
	member := bind(t, h, memberActor, "3201010101010002")

	err := h.run(t, runGroupCreate, map[string]string{"name": "family", "leader": leader.String()})
	assert.Nil(t, err, "create")
	var g group.Group
	h.decode(t, &g)
	assert.Equal(t, leader, g.Leader, "leader")

	err = h.run(t, runGroupAdd, map[string]string{
		"group":    g.ID.String(),
		"member":   member.String(),
		"relation": "child",
	})
	assert.Nil(t, err, "add member")
	h.decode(t, &g)
	assert.True(t, g.IsMember(member), "member added")

	err = h.run(t, runAdd, map[string]string{"owner": leader.String()}, "blood=O+")
	assert.Nil(t, err, "add record")
	var header registry.Header
	h.decode(t, &header)

	err = h.run(t, runHasAccess, map[string]string{"owner": leader.String(), "actor": memberActor.String()})
	assert.Nil(t, err, "has access")
	var result accessResult
	h.decode(t, &result)
	assert.False(t, result.Access, "no grant yet")

	err = h.run(t, runGrant, map[string]string{
		"actor":   leaderActor.String(),
		"group":   g.ID.String(),
		"grantee": member.String(),
	})
	assert.Nil(t, err, "grant")

	err = h.run(t, runMemberRead, map[string]string{
		"actor":  memberActor.String(),
		"owner":  leader.String(),
		"issuer": header.Issuer.String(),
		"record": header.Record.String(),
	})
	assert.Nil(t, err, "member read")

	err = h.run(t, runGrants, map[string]string{"owner": leader.String()})
	assert.Nil(t, err, "grants")
	var grants []group.Grant
	h.decode(t, &grants)
	assert.Equal(t, []group.Grant{{Granter: leader, Grantee: member, Group: g.ID}}, grants, "grant listed")

	err = h.run(t, runRevokeGrant, map[string]string{"actor": leaderActor.String(), "grantee": member.String()})
	assert.Nil(t, err, "revoke")

	err = h.run(t, runMemberList, map[string]string{"actor": memberActor.String(), "owner": leader.String()})
	assert.Equal(t, fault.ErrNotPermitted, err, "revoked")

	err = h.run(t, runGroupOf, map[string]string{"owner": member.String()})
	assert.Nil(t, err, "group of")
	var groups []group.Group
	h.decode(t, &groups)
	assert.Equal(t, 1, len(groups), "one group")

	err = h.run(t, runGroupDissolve, map[string]string{"group": g.ID.String()})
	assert.Nil(t, err, "dissolve")

	err = h.run(t, runGroupShow, map[string]string{"group": g.ID.String()})
	assert.Equal(t, fault.ErrGroupNotFound, err, "gone")
}

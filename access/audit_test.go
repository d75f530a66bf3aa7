// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baliola/medblock/access"
	"github.com/baliola/medblock/consent"
	"github.com/baliola/medblock/fault"
	"github.com/baliola/medblock/identifier"
	"github.com/baliola/medblock/messagebus"
	"github.com/baliola/medblock/registry"
)

func TestAuditEvents(t *testing.T) {
	bus := messagebus.New(10)
	f := newFixture(t, access.Options{
		ClaimRate:    0.001,
		ClaimBurst:   1,
		MaximumLimit: 10,
		Events:       bus,
	})
	defer f.ctl.Finish()

	code := consent.Code("123456")
	session := identifier.NewSession()

	f.sessions.EXPECT().Claim(code, actor(1)).Return(session, owner(9), nil).Times(1)
	f.sessions.EXPECT().Resolve(session, actor(2)).Return(nil, false).Times(1)

	_, _, err := f.c.ClaimConsent(code, actor(1))
	assert.Nil(t, err, "claim")
	_, _, err = f.c.ClaimConsent(code, actor(1))
	assert.Equal(t, fault.ErrRateLimited, err, "second claim")
	_, err = f.c.ReadWithSession(session, actor(2), identifier.NewIssuer(), identifier.NewRecord())
	assert.Equal(t, fault.ErrNotSessionOwner, err, "foreign session")

	expected := []access.Event{
		{Action: access.ActionClaim, Actor: actor(1), Owner: owner(9), Allowed: true},
		{Action: access.ActionClaim, Actor: actor(1), Allowed: false},
		{Action: access.ActionSessionRead, Actor: actor(2), Allowed: false},
	}
	for i, e := range expected {
		m := <-bus.Chan()
		assert.Equal(t, "access", m.From, "from: %d", i)
		assert.Equal(t, e, m.Item, "event: %d", i)
	}

	assert.Equal(t, access.Statistics{Allowed: 1, Refused: 2, RateLimited: 1}, f.c.Statistics(), "statistics")
}

func TestAuditWithoutBus(t *testing.T) {
	f := newFixture(t, defaultOptions)
	defer f.ctl.Finish()

	f.patients.EXPECT().OwnerOf(actor(2)).Return(owner(2), nil).Times(1)
	f.groups.EXPECT().HasAccess(owner(1), owner(2)).Return(true).Times(1)
	f.records.EXPECT().ListByOwner(owner(1), 0, 5).Return([]registry.Header{}, false).Times(1)

	_, _, err := f.c.ListAsGroupMember(actor(2), owner(1), 0, 5)
	assert.Nil(t, err, "list")
	assert.Equal(t, access.Statistics{Allowed: 1}, f.c.Statistics(), "counted without a bus")
}

func TestAuditQueueFull(t *testing.T) {
	bus := messagebus.New(1)
	f := newFixture(t, access.Options{
		ClaimRate:    100,
		ClaimBurst:   10,
		MaximumLimit: 10,
		Events:       bus,
	})
	defer f.ctl.Finish()

	f.patients.EXPECT().OwnerOf(actor(1)).Return(owner(1), nil).Times(2)
	f.groups.EXPECT().Revoke(owner(1), owner(2)).Times(2)

	assert.Nil(t, f.c.RevokeGroupAccess(actor(1), owner(2)), "first revoke")
	assert.Nil(t, f.c.RevokeGroupAccess(actor(1), owner(2)), "second revoke")
	assert.Equal(t, uint64(1), bus.Dropped(), "one dropped")
	assert.Equal(t, uint64(2), f.c.Statistics().Allowed, "both counted")
}

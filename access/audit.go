// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package access

import (
	"github.com/baliola/medblock/identifier"
)

// Action - kind of audited request
type Action string

// audited requests
const (
	ActionClaim       Action = "claim"
	ActionSessionRead Action = "session-read"
	ActionSessionList Action = "session-list"
	ActionMemberRead  Action = "member-read"
	ActionMemberList  Action = "member-list"
	ActionGrant       Action = "grant"
	ActionRevoke      Action = "revoke"
)

// Event - one access decision, Owner is the owner whose records were
// at stake and is zero when it could not be determined
type Event struct {
	Action  Action           `json:"action"`
	Actor   identifier.Actor `json:"actor"`
	Owner   identifier.Owner `json:"owner"`
	Allowed bool             `json:"allowed"`
}

// Statistics - decisions since the controller was created
type Statistics struct {
	Allowed     uint64 `json:"allowed"`
	Refused     uint64 `json:"refused"`
	RateLimited uint64 `json:"rate_limited"` // also counted in Refused
}

// Statistics - current decision counts
func (c *Controller) Statistics() Statistics {
	return Statistics{
		Allowed:     c.allowed.Uint64(),
		Refused:     c.refused.Uint64(),
		RateLimited: c.rateLimited.Uint64(),
	}
}

// count a decision and queue it when an audit bus is attached
func (c *Controller) audit(action Action, actor identifier.Actor, owner identifier.Owner, allowed bool) {
	if allowed {
		c.allowed.Increment()
	} else {
		c.refused.Increment()
	}
	if nil == c.events {
		return
	}
	if !c.events.Send("access", Event{Action: action, Actor: actor, Owner: owner, Allowed: allowed}) {
		c.log.Warnf("audit queue full, dropped: %s  actor: %s", action, actor)
	}
}
